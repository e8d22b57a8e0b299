package errors

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(CodeNotFound, "container not found")

	require.NotNil(t, err)
	require.Equal(t, CodeNotFound, err.Code())
	require.Equal(t, "container not found", err.Message())
	require.Equal(t, KindInput, err.Kind())
	require.Nil(t, err.Context())
	require.Nil(t, err.Unwrap())
	require.Equal(t, "[NOT_FOUND] container not found", err.Error())
}

func TestNew_AllErrorCodes(t *testing.T) {
	codes := []ErrorCode{
		CodeInvalidInput,
		CodeNotFound,
		CodeCorrupt,
		CodeIO,
		CodeSecurityViolation,
		CodeCanceled,
		CodeInternal,
		CodeUnknown,
	}

	for _, code := range codes {
		t.Run(string(code), func(t *testing.T) {
			err := New(code, "test message")
			require.Equal(t, code, err.Code())
			require.NotEmpty(t, err.Kind())
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CodeCorrupt, "missing %s delimiter at offset %d", "[/FILE]", 42)

	require.NotNil(t, err)
	require.Equal(t, CodeCorrupt, err.Code())
	require.Equal(t, "missing [/FILE] delimiter at offset 42", err.Message())
}
