package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitPath(t *testing.T) {
	tests := []struct {
		path string
		name string
		ext  string
	}{
		{"file.txt", "file", "txt"},
		{"archive.tar.gz", "archive.tar", "gz"},
		{"README", "README", ""},
		{".bashrc", ".bashrc", ""},
		{"a.", "a.", ""},
		{"a..", "a..", ""},
		{"..b", ".", "b"},
		{"docs/notes.md", "docs/notes", "md"},
		{"dir.d/file", "dir.d/file", ""},
		{"nested/deep/.env", "nested/deep/.env", ""},
		{"unicodé/日本.текст", "unicodé/日本", "текст"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			name, ext := SplitPath(tt.path)
			assert.Equal(t, tt.name, name)
			assert.Equal(t, tt.ext, ext)

			rec := NewRecord(tt.path, nil)
			assert.Equal(t, tt.path, rec.Path())
		})
	}
}

func TestRecord_Path(t *testing.T) {
	assert.Equal(t, "a.b", Record{Name: "a", Extension: "b"}.Path())
	assert.Equal(t, "a", Record{Name: "a"}.Path())
	assert.Equal(t, "", Record{}.Path())
}

func TestContentCollides(t *testing.T) {
	assert.False(t, ContentCollides(nil))
	assert.False(t, ContentCollides([]byte("plain [CON] text [/CO")))
	assert.True(t, ContentCollides([]byte("has [/CON] inside")))
}
