package errs

import "fmt"

type ErrorMessage struct {
	Message string
}

func (e *ErrorMessage) Error() string { return e.Message }

type NotFoundError struct {
	ErrorMessage
}

type ValidationError struct {
	ErrorMessage
}

// UnauthorizedError is a failed login or a request without an admin session.
type UnauthorizedError struct {
	ErrorMessage
}

// StoreError is a failure talking to the document store. Operation is
// "read" or "write".
type StoreError struct {
	ErrorMessage
	Operation string
	Err       error
}

func (e *StoreError) Unwrap() error { return e.Err }

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewUnauthorizedError(message string) *UnauthorizedError {
	return &UnauthorizedError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewStoreError(operation, message string, err error) *StoreError {
	return &StoreError{
		ErrorMessage: ErrorMessage{Message: fmt.Sprintf("%s: %v", message, err)},
		Operation:    operation,
		Err:          err,
	}
}

// IsWrite reports whether the failure happened while persisting.
func (e *StoreError) IsWrite() bool { return e.Operation == OpWrite }

const (
	OpRead  = "read"
	OpWrite = "write"
)
