package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrDataUnavailable reports a missing dataset file. It is the only
	// error that is fatal at startup.
	ErrDataUnavailable = errors.New("dataset unavailable")

	// ErrSelectionNotFound reports a selected flight or hotel id that is
	// absent from the current result set. Display-only, never fatal.
	ErrSelectionNotFound = errors.New("selection not in cached list")

	// ErrPersistenceUnavailable reports an inaccessible booking store on
	// read paths. Save errors propagate as-is instead.
	ErrPersistenceUnavailable = errors.New("booking store unavailable")

	// ErrAdvisoryFailure reports a failed itinerary generation. Callers
	// substitute placeholder text, no retry.
	ErrAdvisoryFailure = errors.New("itinerary generation failed")
)

// ValidationError is a user-input error: the caller re-prompts, no state is
// mutated.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Reason)
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
