package errors

// Kind groups error codes into the taxonomy callers branch on.
type Kind string

const (
	// KindInput covers bad paths and wrong kinds of paths.
	KindInput Kind = "INPUT"

	// KindFormat covers corrupt containers.
	KindFormat Kind = "FORMAT"

	// KindIO covers underlying filesystem failures.
	KindIO Kind = "IO"

	// KindOther covers everything else.
	KindOther Kind = "OTHER"
)

// defaultKinds maps error codes to their kind.
var defaultKinds = map[ErrorCode]Kind{
	CodeInvalidInput: KindInput,
	CodeNotFound:     KindInput,

	CodeCorrupt: KindFormat,

	CodeIO: KindIO,

	CodeSecurityViolation: KindOther,
	CodeCanceled:          KindOther,
	CodeInternal:          KindOther,
	CodeUnknown:           KindOther,
}

// getDefaultKind returns the kind for an error code.
// Returns KindOther if the code is not in the map.
func getDefaultKind(code ErrorCode) Kind {
	if kind, ok := defaultKinds[code]; ok {
		return kind
	}
	return KindOther
}
