package booking

import "fmt"

// ValidationError reports a malformed booking request (bad timestamp,
// non-positive duration). It maps to a 4xx response at the API boundary.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, msg string) error {
	return &ValidationError{
		Field:   field,
		Message: msg,
	}
}
