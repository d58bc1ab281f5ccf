package calculator

import "errors"

var (
	ErrMalformedExpression = errors.New("malformed expression")
	ErrDivisionByZero      = errors.New("division by zero")
	ErrUnknownToken        = errors.New("unknown calculator token")
	ErrInvalidSnapshot     = errors.New("invalid calculator snapshot")
	ErrSessionNotFound     = errors.New("calculator session not found")
)
