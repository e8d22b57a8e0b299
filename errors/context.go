package errors

import "errors"

// WithContext adds a single context field to an error.
// Returns a new Error with the context field added; existing fields are preserved.
//
// If err is not an Error, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
//
// Example:
//
//	err = errors.WithContext(err, "path", rec.Path())
func WithContext(err error, key string, value interface{}) Error {
	if err == nil {
		return nil
	}
	return WithContextMap(err, map[string]interface{}{key: value})
}

// WithContextMap adds multiple context fields to an error.
// New fields override existing ones with the same key.
//
// If err is not an Error, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
func WithContextMap(err error, ctx map[string]interface{}) Error {
	if err == nil {
		return nil
	}

	var inner Error
	if !errors.As(err, &inner) {
		inner = &fdirError{
			code:    CodeUnknown,
			kind:    KindOther,
			message: err.Error(),
			cause:   err,
		}
	}

	merged := make(map[string]interface{}, len(ctx))
	for k, v := range inner.Context() {
		merged[k] = v
	}
	for k, v := range ctx {
		merged[k] = v
	}

	return &fdirError{
		code:    inner.Code(),
		kind:    inner.Kind(),
		message: inner.Message(),
		context: merged,
		cause:   inner.Unwrap(),
	}
}
