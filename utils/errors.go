package utils

// Typed errors raised by the scheduling core. Handlers map them onto HTTP
// status codes; the core itself never retries and never masks storage
// failures behind them.

// ValidationError signals malformed or missing input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func ErrValidation(msg string) error {
	return &ValidationError{Message: msg}
}

// ConflictError signals a booking interval that overlaps an existing
// scheduled appointment. Kept distinct from validation so clients can offer
// "choose another time".
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func ErrConflict(msg string) error {
	return &ConflictError{Message: msg}
}

// NotFoundError signals a missing appointment or schedule document.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func ErrNotFound(msg string) error {
	return &NotFoundError{Message: msg}
}
