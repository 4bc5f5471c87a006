package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode classifies a TodoError.
type ErrorCode string

const (
	ErrValidation     ErrorCode = "VALIDATION"      // bad user input (title too short)
	ErrInvalidRequest ErrorCode = "INVALID_REQUEST" // malformed surface request (bad id, missing arg)
	ErrNotFound       ErrorCode = "NOT_FOUND"       // surface-level lookups only; store ops are silent
	ErrUnexpected     ErrorCode = "UNEXPECTED"      // anything that should not happen
)

// Op identifies the operation that failed. Its prefix is prepended to the
// message when the error is shown to the user.
type Op string

const (
	OpAdd      Op = "add"
	OpComplete Op = "complete"
	OpDelete   Op = "delete"
	OpRender   Op = "render"
)

var opPrefixes = map[Op]string{
	OpComplete: "Error completing todo: ",
	OpDelete:   "Error deleting todo: ",
	OpRender:   "Error rendering todos: ",
}

// TodoError is the single error type crossing package boundaries.
type TodoError struct {
	Code    ErrorCode
	Op      Op
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TodoError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *TodoError) Unwrap() error { return e.Err }

// Alert returns the text shown in a blocking notification.
// Validation messages are shown as-is.
func (e *TodoError) Alert() string {
	if e.Code == ErrValidation {
		return e.Message
	}
	return opPrefixes[e.Op] + e.Message
}

// NewValidation creates an input validation error.
func NewValidation(msg string) *TodoError {
	return &TodoError{Code: ErrValidation, Op: OpAdd, Message: msg}
}

// NewInvalidRequest creates an error for malformed requests.
func NewInvalidRequest(msg string) *TodoError {
	return &TodoError{Code: ErrInvalidRequest, Message: msg}
}

// NewNotFound creates an error for a missing todo.
func NewNotFound(id int64) *TodoError {
	return &TodoError{Code: ErrNotFound, Message: fmt.Sprintf("todo not found: %d", id)}
}

// NewUnexpected wraps an unexpected failure of op.
func NewUnexpected(op Op, err error) *TodoError {
	msg := "unexpected error"
	if err != nil {
		msg = err.Error()
	}
	return &TodoError{Code: ErrUnexpected, Op: op, Message: msg, Err: err}
}

// FromPanic converts a recovered panic value into an UNEXPECTED error.
func FromPanic(op Op, r any) *TodoError {
	if err, ok := r.(error); ok {
		return NewUnexpected(op, err)
	}
	return NewUnexpected(op, fmt.Errorf("%v", r))
}

// As returns err as a *TodoError, wrapping anything else as UNEXPECTED.
func As(op Op, err error) *TodoError {
	if err == nil {
		return nil
	}
	var tErr *TodoError
	if stderrors.As(err, &tErr) {
		return tErr
	}
	return NewUnexpected(op, err)
}

// Is checks if an error is a TodoError with the given code.
func Is(err error, code ErrorCode) bool {
	var tErr *TodoError
	if stderrors.As(err, &tErr) {
		return tErr.Code == code
	}
	return false
}
