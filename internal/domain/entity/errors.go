package entity

import "errors"

// Validation errors raised by entity constructors and mutators.
var (
	ErrInvalidEmailFormat = errors.New("invalid email format")
	ErrEmptyName          = errors.New("name cannot be empty")
	ErrEmptyTitle         = errors.New("title cannot be empty")
)

// IsValidationError reports whether err originates from entity validation.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidEmailFormat) ||
		errors.Is(err, ErrEmptyName) ||
		errors.Is(err, ErrEmptyTitle)
}
