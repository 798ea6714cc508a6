package errors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrNotOwner           = errors.New("not the owner")
	ErrRoleViolation      = errors.New("wrong role for this operation")
	ErrTierSetInvalid     = errors.New("details must include exactly one of each tier: basic, standard, premium")
	ErrInvalidDetail      = errors.New("invalid offer detail values")
	ErrInvalidTransition  = errors.New("invalid order status transition")
	ErrDuplicateReview    = errors.New("review for this business already exists")
	ErrRatingOutOfRange   = errors.New("rating must be between 1 and 5")
	ErrSelfReview         = errors.New("a business cannot review itself")
	ErrInvalidFilter      = errors.New("invalid filter value")
	ErrTransactionFailed  = errors.New("transaction failed")
	ErrAlreadyExists      = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordMismatch   = errors.New("passwords do not match")
)

// InvalidFilterError names the filter parameter that failed validation.
// It matches ErrInvalidFilter under errors.Is.
type InvalidFilterError struct {
	Field string
}

func (e *InvalidFilterError) Error() string {
	return fmt.Sprintf("invalid filter value for %q", e.Field)
}

func (e *InvalidFilterError) Is(target error) bool {
	return target == ErrInvalidFilter
}

// NewInvalidFilter builds an InvalidFilterError for the given field.
func NewInvalidFilter(field string) error {
	return &InvalidFilterError{Field: field}
}
