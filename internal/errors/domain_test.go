package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_Is(t *testing.T) {
	withFields := ErrInvalidSettings.WithFields(map[string]string{"minBilling": "must not be negative"})

	assert.True(t, errors.Is(withFields, ErrInvalidSettings))
	assert.True(t, errors.Is(fmt.Errorf("commit: %w", withFields), ErrInvalidSettings))
	assert.False(t, errors.Is(withFields, ErrDraftNotFound))
	assert.Nil(t, ErrInvalidSettings.Fields)
}

func TestDomainError_WithMessage(t *testing.T) {
	e := ErrMalformedExpression.WithMessage("division by zero")
	assert.Equal(t, "division by zero", e.Error())
	assert.Equal(t, ErrMalformedExpression.Code, e.Code)
	assert.Equal(t, "malformed expression", ErrMalformedExpression.Message)
}
