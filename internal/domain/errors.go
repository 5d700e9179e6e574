package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks input rejected by entity validation.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidRange is returned when an end date precedes its start date.
	ErrInvalidRange = errors.New("end date is before start date")
)

func validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
