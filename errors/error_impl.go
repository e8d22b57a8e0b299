package errors

import "fmt"

// fdirError is the concrete implementation of Error.
// It is private to enforce construction through package functions.
type fdirError struct {
	code    ErrorCode
	kind    Kind
	message string
	context map[string]interface{}
	cause   error
}

// Error returns "[CODE] message" or "[CODE] message: cause".
func (e *fdirError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.code, e.message)
}

func (e *fdirError) Code() ErrorCode { return e.code }

func (e *fdirError) Kind() Kind { return e.kind }

func (e *fdirError) Message() string { return e.message }

// Context returns a copy of the context map, or nil when none is attached.
func (e *fdirError) Context() map[string]interface{} {
	if e.context == nil {
		return nil
	}
	ctx := make(map[string]interface{}, len(e.context))
	for k, v := range e.context {
		ctx[k] = v
	}
	return ctx
}

func (e *fdirError) Unwrap() error { return e.cause }
