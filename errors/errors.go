package errors

// Error extends the standard error interface with structured information.
//
// Error carries a code for categorization, a kind for coarse branching,
// contextual metadata, and compatibility with standard library error handling
// (errors.Is, errors.As, errors.Unwrap).
type Error interface {
	error

	// Code returns the error code identifying the type of error.
	Code() ErrorCode

	// Kind returns the taxonomy bucket the error belongs to.
	Kind() Kind

	// Message returns the human-readable error message without the cause.
	Message() string

	// Context returns attached metadata as a read-only map.
	// Returns nil if no context has been attached.
	Context() map[string]interface{}

	// Unwrap returns the wrapped error for errors.Is and errors.As compatibility.
	// Returns nil if this error does not wrap another error.
	Unwrap() error
}
