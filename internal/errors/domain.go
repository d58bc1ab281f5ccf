// Package errors defines the error codes returned to API clients.
package errors

// DomainError is an error with a stable code clients can branch on.
type DomainError struct {
	Code    string            `json:"code"`
	Message string            `json:"error"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func (e *DomainError) Error() string {
	return e.Message
}

// Is matches any DomainError with the same code.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	return ok && t.Code == e.Code
}

// WithFields returns a copy of e carrying per-field details.
func (e *DomainError) WithFields(fields map[string]string) *DomainError {
	return &DomainError{Code: e.Code, Message: e.Message, Fields: fields}
}

// WithMessage returns a copy of e with a more specific message.
func (e *DomainError) WithMessage(msg string) *DomainError {
	return &DomainError{Code: e.Code, Message: msg, Fields: e.Fields}
}
