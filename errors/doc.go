// Package errors provides structured error handling for container operations.
//
// It extends Go's standard error handling with error codes, a coarse error
// kind (input, format, I/O) derived from the code, and context metadata such as
// the delimiter that was expected and the byte offset at which it was missing.
// It stays compatible with the standard library errors package (errors.Is,
// errors.As, errors.Unwrap).
//
// # Quick Start
//
// Creating errors:
//
//	err := errors.New(errors.CodeInvalidInput, "input path is a special file")
//	err := errors.Newf(errors.CodeNotFound, "container %s does not exist", path)
//
// Wrapping errors:
//
//	data, err := fsys.ReadFile(path)
//	if err != nil {
//	    return errors.Wrapf(err, errors.CodeIO, "failed to read %s", path)
//	}
//
// Adding context:
//
//	err := errors.New(errors.CodeCorrupt, "missing [/FILE] delimiter")
//	err = errors.WithContextMap(err, map[string]interface{}{
//	    "expected": "[/FILE]",
//	    "offset":   int64(412),
//	})
//
// Branching on the error taxonomy:
//
//	switch {
//	case errors.IsInputError(err):
//	    // bad path or wrong kind of path
//	case errors.IsFormatError(err):
//	    // corrupt container
//	case errors.IsIOError(err):
//	    // open/read/write failure
//	}
//
// # Error Codes
//
//   - Input errors: CodeInvalidInput, CodeNotFound
//   - Format errors: CodeCorrupt
//   - I/O errors: CodeIO
//   - Policy errors: CodeSecurityViolation
//   - Control flow: CodeCanceled
//   - System errors: CodeInternal
//   - Generic: CodeUnknown
//
// Each code maps to a Kind. The outermost code decides the kind, so GetCode
// and the Is*Error helpers always agree. Wrapping keeps the inner context.
//
// # JSON
//
// ToJSON flattens any error into an ErrorResponse for machine-readable output.
// The wrapped cause chain is not included.
package errors
