package dispatch

import "fmt"

// ValidationError reports a malformed action payload from the oracle, such
// as a missing required argument. Maps to a 4xx response.
type ValidationError struct {
	Action  string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Action, e.Message)
}

func NewValidationError(action, msg string) error {
	return &ValidationError{
		Action:  action,
		Message: msg,
	}
}

// OracleError wraps a failed oracle round trip. Fatal for the request, never
// retried; maps to a 502 response.
type OracleError struct {
	Err error
}

func (e *OracleError) Error() string {
	return fmt.Sprintf("oracle call failed: %v", e.Err)
}

func (e *OracleError) Unwrap() error {
	return e.Err
}
