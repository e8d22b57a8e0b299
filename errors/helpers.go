package errors

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// GetCode extracts the ErrorCode from the outermost Error in err's chain.
// Returns CodeUnknown if err is nil or carries no Error.
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeUnknown
	}

	var e Error
	if stderrors.As(err, &e) {
		return e.Code()
	}

	return CodeUnknown
}

// GetKind extracts the Kind from the outermost Error in err's chain.
// Returns KindOther if err is nil or carries no Error.
func GetKind(err error) Kind {
	if err == nil {
		return KindOther
	}

	var e Error
	if stderrors.As(err, &e) {
		return e.Kind()
	}

	return KindOther
}

// GetContext returns a single context value from the outermost Error in err's chain.
func GetContext(err error, key string) (interface{}, bool) {
	var e Error
	if !stderrors.As(err, &e) {
		return nil, false
	}
	v, ok := e.Context()[key]
	return v, ok
}

// IsInputError reports whether err is a bad-path or wrong-kind-of-path error.
func IsInputError(err error) bool {
	return err != nil && GetKind(err) == KindInput
}

// IsFormatError reports whether err indicates a corrupt container.
func IsFormatError(err error) bool {
	return err != nil && GetKind(err) == KindFormat
}

// IsIOError reports whether err is an underlying filesystem failure.
func IsIOError(err error) bool {
	return err != nil && GetKind(err) == KindIO
}
