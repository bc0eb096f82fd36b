// Package exitcode maps command errors to process exit codes.
package exitcode

import (
	"errors"
	"fmt"
)

const (
	Success = 0
	// Usage covers invalid input: bad arguments, flags or form values.
	Usage = 1
	// Failure covers storage and API errors.
	Failure = 2
)

// Error is an error that carries an exit code.
type Error struct {
	Code    int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Err)
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ExitCode extracts the exit code from err. Errors without a code are failures.
func ExitCode(err error) int {
	if err == nil {
		return Success
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return Failure
}

// Usagef returns a usage error with a formatted message.
func Usagef(format string, args ...any) *Error {
	return &Error{Code: Usage, Message: fmt.Sprintf(format, args...)}
}

// AsUsage marks err as a usage error.
func AsUsage(err error) *Error {
	return &Error{Code: Usage, Err: err}
}

// Fail wraps err as a failure with a leading message.
func Fail(msg string, err error) *Error {
	return &Error{Code: Failure, Message: msg, Err: err}
}
