package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")

	// ErrInvalidAssignment is returned when a deficiency is assigned to a user
	// that is not a trade of the deficiency's builder tenant.
	ErrInvalidAssignment = errors.New("invalid assignment")

	// ErrNotAnEmployee is returned when an employee account has no employing
	// builder. It signals broken data, not a user mistake.
	ErrNotAnEmployee = errors.New("not an employee")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// AssignmentError explains why a trade assignment was rejected.
type AssignmentError struct {
	TradeID uuid.UUID
	Reason  string
}

func (e *AssignmentError) Error() string {
	return fmt.Sprintf("invalid assignment of %s: %s", e.TradeID, e.Reason)
}

func (e *AssignmentError) Unwrap() error { return ErrInvalidAssignment }

// IdentityError reports a broken employment or ownership relation.
type IdentityError struct {
	UserID uuid.UUID
	Reason string
}

func (e *IdentityError) Error() string {
	return fmt.Sprintf("identity %s: %s", e.UserID, e.Reason)
}

func (e *IdentityError) Unwrap() error { return ErrNotAnEmployee }
