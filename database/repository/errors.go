package repository

import (
	"errors"
	"fmt"
)

// ErrNotFound signals that the addressed row does not exist.
var ErrNotFound = errors.New("record not found")

// ErrConflict signals a uniqueness violation that survived validation, e.g.
// two concurrent inserts racing for the same slug.
var ErrConflict = errors.New("conflicting record")

// ValidationError carries a field-level description of a rejected input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func IsValidationError(err error) bool {
	var target *ValidationError

	return errors.As(err, &target)
}
