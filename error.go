package argfail

import (
	"errors"
)

// FailStatusCode is the status code that a field failure exits with.
const FailStatusCode = 255

// ErrUnknownField is returned when a Field value isn't one of the fields of
// Args.
var ErrUnknownField = errors.New("unknown field")

// StatusCodeError represents an error that reports an associated status code.
type StatusCodeError interface {
	error

	// StatusCode returns the status code of the error, which can be used by an
	// app's execution error to know which status code to return.
	StatusCode() int
}

type statusCodeError struct {
	error

	statusCode int
}

// ErrWithStatusCode takes an error and a status code and returns a type that
// satisfies StatusCodeError.
func ErrWithStatusCode(err error, statusCode int) StatusCodeError {
	return &statusCodeError{error: err, statusCode: statusCode}
}

// StatusCode returns the status code of the error.
func (e *statusCodeError) StatusCode() int {
	return e.statusCode
}

// Unwrap returns the wrapped error.
func (e *statusCodeError) Unwrap() error {
	return e.error
}

// FieldError is a failure caused by the value of a single field of Args.
type FieldError struct {
	// Args is a copy of the record at the time of the failure.
	Args Args

	Field   Field
	Message string
}

// NewFieldError returns a FieldError for the given field of args.
func NewFieldError(args Args, field Field, msg string) *FieldError {
	return &FieldError{Args: args, Field: field, Message: msg}
}

// Error returns the failure message.
func (e *FieldError) Error() string {
	return e.Message
}

// Hint returns the usage hint for the failing field.
func (e *FieldError) Hint() (string, error) {
	return Hint(e.Args, e.Field)
}

// StatusCode returns the status code of the error.
func (e *FieldError) StatusCode() int {
	return FailStatusCode
}
