package fdir

import (
	"context"
	"testing"

	"github.com/opencontainers/go-digest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/fdir/errors"
	"github.com/jmgilman/go/fdir/format"
)

func TestList(t *testing.T) {
	a, mem := newMemArchiver(t)
	writeContainer(t, mem, "box.fdir",
		format.NewRecord("b/notes.txt", []byte("notes")),
		format.NewRecord(".profile", []byte("")),
	)

	entries, err := a.List(context.Background(), "box.fdir")
	require.NoError(t, err)

	assert.Equal(t, []Entry{
		{Path: "b/notes.txt", Name: "b/notes", Extension: "txt", Size: 5, Digest: digest.FromString("notes")},
		{Path: ".profile", Name: ".profile", Extension: "", Size: 0, Digest: digest.FromString("")},
	}, entries)

	ok, err := mem.Exists("b")
	require.NoError(t, err)
	assert.False(t, ok, "List must not write records")
}

func TestList_Errors(t *testing.T) {
	a, mem := newMemArchiver(t)
	require.NoError(t, mem.WriteFile("bad.fdir", []byte("[FILE][NAME]x"), 0o644))
	ctx := context.Background()

	_, err := a.List(ctx, "bad.fdir")
	require.Error(t, err)
	assert.True(t, errors.IsFormatError(err))
	expected, _ := errors.GetContext(err, "expected")
	assert.Equal(t, "[/NAME]", expected)

	_, err = a.List(ctx, "missing.fdir")
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))

	_, err = a.List(ctx, "")
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}
