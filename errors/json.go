package errors

import (
	"encoding/json"
)

// ErrorResponse is the flat JSON shape of an error.
// The wrapped cause chain is excluded.
type ErrorResponse struct {
	// Code is the error code identifying the type of error.
	Code string `json:"code"`

	// Kind is the taxonomy bucket (INPUT, FORMAT, IO, OTHER).
	Kind string `json:"kind"`

	// Message is the human-readable error message.
	Message string `json:"message"`

	// Context contains optional metadata about the error.
	Context map[string]interface{} `json:"context,omitempty"`
}

// ToJSON converts any error to an ErrorResponse suitable for JSON serialization.
// Returns nil if err is nil.
//
// For standard errors, uses CodeUnknown, KindOther and the error text.
func ToJSON(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	message := err.Error()
	var context map[string]interface{}

	var e Error
	if As(err, &e) {
		message = e.Message()
		context = e.Context()
	}

	return &ErrorResponse{
		Code:    string(GetCode(err)),
		Kind:    string(GetKind(err)),
		Message: message,
		Context: context,
	}
}

// MarshalJSON implements json.Marshaler so an Error can be passed to
// json.Marshal directly.
func (e *fdirError) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(&ErrorResponse{
		Code:    string(e.code),
		Kind:    string(e.kind),
		Message: e.message,
		Context: e.context,
	})
	if err != nil {
		return nil, &fdirError{
			code:    CodeInternal,
			kind:    KindOther,
			message: "failed to marshal error response",
			cause:   err,
		}
	}
	return data, nil
}
