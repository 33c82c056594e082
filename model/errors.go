package model

// ValidationError reports caller-supplied data that violates a domain
// invariant. It is always recoverable by supplying corrected input.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Msg: msg}
}
