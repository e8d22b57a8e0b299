package format

import (
	"bytes"
	"path"
	"strings"
)

// Record is one archived file.
//
// Name is the slash-separated relative path without its extension and
// Extension is the text after the last dot of the base name. Files without
// an extension, dotfiles such as ".bashrc", and names ending in a bare dot
// keep their whole path in Name and have an empty Extension.
type Record struct {
	Name      string
	Extension string
	Content   []byte
}

// NewRecord builds a record for the relative slash path p.
func NewRecord(p string, content []byte) Record {
	name, ext := SplitPath(p)
	return Record{Name: name, Extension: ext, Content: content}
}

// Path joins Name and Extension back into a relative path.
func (r Record) Path() string {
	if r.Extension == "" {
		return r.Name
	}
	return r.Name + "." + r.Extension
}

// SplitPath splits a relative slash path into a record name and extension.
// Record{Name: name, Extension: ext}.Path() always returns p.
func SplitPath(p string) (name, ext string) {
	base := path.Base(p)
	ext = path.Ext(base)
	if ext == base || ext == "." || ext == "" {
		return p, ""
	}
	return strings.TrimSuffix(p, ext), ext[1:]
}

// ContentCollides reports whether content contains the content closing tag.
// Such content is written as-is but is cut short when read back.
func ContentCollides(content []byte) bool {
	return bytes.Contains(content, FieldContent.Close())
}
