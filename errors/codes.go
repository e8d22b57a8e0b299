package errors

// ErrorCode represents a specific error condition.
// Error codes are string-based for debuggability and natural JSON serialization.
type ErrorCode string

const (
	// Input errors.

	// CodeInvalidInput indicates a path or argument is unusable, such as a
	// special file given as pack input or a file given as unpack destination.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeNotFound indicates an input path does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// Format errors.

	// CodeCorrupt indicates a container does not follow the framing rules:
	// an expected delimiter is missing or the input ends mid-record.
	CodeCorrupt ErrorCode = "CORRUPT_CONTAINER"

	// I/O errors.

	// CodeIO indicates an underlying open, read or write failure.
	CodeIO ErrorCode = "IO_ERROR"

	// Policy errors.

	// CodeSecurityViolation indicates a record was refused during unpack,
	// either because its path escapes the output directory or because an
	// extraction limit was exceeded.
	CodeSecurityViolation ErrorCode = "SECURITY_VIOLATION"

	// Control flow.

	// CodeCanceled indicates the caller's context was canceled mid-operation.
	CodeCanceled ErrorCode = "CANCELED"

	// System errors.

	// CodeInternal indicates an internal error occurred.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// Generic errors.

	// CodeUnknown indicates an unknown or unclassified error occurred.
	CodeUnknown ErrorCode = "UNKNOWN"
)
