package errors

import "fmt"

// New creates a new Error with the given code and message.
// The kind is determined by the error code.
//
// Example:
//
//	err := errors.New(errors.CodeInvalidInput, "output base name cannot be empty")
func New(code ErrorCode, message string) Error {
	return &fdirError{
		code:    code,
		kind:    getDefaultKind(code),
		message: message,
	}
}

// Newf creates a new Error with a formatted message.
//
// Example:
//
//	err := errors.Newf(errors.CodeCorrupt, "missing %s delimiter at offset %d", tag, offset)
func Newf(code ErrorCode, format string, args ...interface{}) Error {
	return &fdirError{
		code:    code,
		kind:    getDefaultKind(code),
		message: fmt.Sprintf(format, args...),
	}
}
