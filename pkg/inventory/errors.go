package inventory

import "errors"

var (
	// ErrNotFound is returned when an item is missing so the console can say so.
	ErrNotFound = errors.New("inventory item not found")

	// ErrDuplicateKey is returned by Add when the identifier is already taken.
	ErrDuplicateKey = errors.New("inventory item already exists")
)

// validationError communicates rule violations back to the console.
type validationError struct {
	message string
}

func (e validationError) Error() string { return e.message }

func newValidationError(msg string) error {
	return validationError{message: msg}
}

// IsValidation helps callers distinguish between input and infrastructure failures.
func IsValidation(err error) bool {
	var v validationError
	return errors.As(err, &v)
}
