package errors

var (
	ErrInvalidCredential = &DomainError{
		Code:    "INVALID_CREDENTIAL",
		Message: "Access Denied",
	}
	ErrMalformedExpression = &DomainError{
		Code:    "MALFORMED_EXPRESSION",
		Message: "malformed expression",
	}
	ErrInvalidSettings = &DomainError{
		Code:    "INVALID_SETTINGS",
		Message: "invalid settings",
	}
	ErrDraftNotFound = &DomainError{
		Code:    "DRAFT_NOT_FOUND",
		Message: "settings draft not found",
	}
	ErrSessionNotFound = &DomainError{
		Code:    "SESSION_NOT_FOUND",
		Message: "calculator session not found",
	}
	ErrInvalidRequest = &DomainError{
		Code:    "INVALID_REQUEST",
		Message: "invalid request body",
	}
	ErrStoreUnavailable = &DomainError{
		Code:    "STORE_UNAVAILABLE",
		Message: "settings store unavailable",
	}
)
