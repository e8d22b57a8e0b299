package errors

import (
	"errors"
	"fmt"
)

// Wrap wraps an error with a code and message while preserving the original error.
// The wrapped error is accessible via Unwrap() and compatible with errors.Is and errors.As.
//
// The kind always follows code. If the wrapped error is already an Error,
// its context is carried over.
//
// Returns nil if err is nil.
//
// Example:
//
//	f, err := fsys.Open(path)
//	if err != nil {
//	    return errors.Wrap(err, errors.CodeIO, "failed to open container")
//	}
func Wrap(err error, code ErrorCode, message string) Error {
	if err == nil {
		return nil
	}

	var ctx map[string]interface{}
	var inner Error
	if errors.As(err, &inner) {
		ctx = inner.Context()
	}

	return &fdirError{
		code:    code,
		kind:    getDefaultKind(code),
		message: message,
		context: ctx,
		cause:   err,
	}
}

// Wrapf wraps an error with a formatted message while preserving the original error.
//
// Returns nil if err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) Error {
	if err == nil {
		return nil
	}

	return Wrap(err, code, fmt.Sprintf(format, args...))
}
