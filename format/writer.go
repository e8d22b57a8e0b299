package format

import (
	"bytes"
	"io"

	"github.com/jmgilman/go/fdir/errors"
)

// Writer encodes records onto an underlying stream.
type Writer struct {
	w io.Writer
}

// NewWriter returns a Writer appending records to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteRecord encodes rec and returns the number of bytes written.
//
// A name containing the name closing tag, or an extension containing the
// extension closing tag, could never be decoded and is rejected before
// anything is written. Content is never rejected; see ContentCollides.
func (w *Writer) WriteRecord(rec Record) (int64, error) {
	if bytes.Contains([]byte(rec.Name), FieldName.Close()) {
		return 0, errors.WithContext(
			errors.Newf(errors.CodeInvalidInput, "record name contains %s", FieldName.Close()),
			"name", rec.Name)
	}
	if bytes.Contains([]byte(rec.Extension), FieldExtension.Close()) {
		return 0, errors.WithContext(
			errors.Newf(errors.CodeInvalidInput, "record extension contains %s", FieldExtension.Close()),
			"extension", rec.Extension)
	}

	values := [...][]byte{
		FieldName:      []byte(rec.Name),
		FieldExtension: []byte(rec.Extension),
		FieldContent:   rec.Content,
	}

	var written int64
	write := func(p []byte) error {
		n, err := w.w.Write(p)
		written += int64(n)
		if err != nil {
			return errors.Wrap(err, errors.CodeIO, "failed to write record")
		}
		return nil
	}

	if err := write(FieldRecord.Open()); err != nil {
		return written, err
	}
	for _, f := range recordFields {
		if err := w.writeField(f, values[f], write); err != nil {
			return written, err
		}
	}
	if err := write(FieldRecord.Close()); err != nil {
		return written, err
	}
	return written, nil
}

// writeField frames value with the tags of f.
func (w *Writer) writeField(f Field, value []byte, write func([]byte) error) error {
	if err := write(f.Open()); err != nil {
		return err
	}
	if err := write(value); err != nil {
		return err
	}
	return write(f.Close())
}
