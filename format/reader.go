package format

import (
	"bufio"
	"bytes"
	"io"

	"github.com/jmgilman/go/fdir/errors"
)

// Reader decodes records from a container stream, one at a time.
type Reader struct {
	r   *bufio.Reader
	off int64
}

// NewReader returns a Reader decoding from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int64 {
	return r.off
}

// Next decodes the next record.
//
// It returns io.EOF only when the stream ends exactly on a record boundary.
// Any other short or malformed input is a CodeCorrupt error whose context
// holds the tag that was expected ("expected") and where ("offset").
func (r *Reader) Next() (*Record, error) {
	if _, err := r.r.Peek(1); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, errors.Wrap(err, errors.CodeIO, "failed to read container")
	}

	if err := r.expect(FieldRecord.Open()); err != nil {
		return nil, err
	}

	var values [len(fieldTags)][]byte
	for _, f := range recordFields {
		v, err := r.readDelimited(f)
		if err != nil {
			return nil, err
		}
		values[f] = v
	}

	if err := r.expect(FieldRecord.Close()); err != nil {
		return nil, err
	}

	return &Record{
		Name:      string(values[FieldName]),
		Extension: string(values[FieldExtension]),
		Content:   values[FieldContent],
	}, nil
}

// readDelimited reads one framed field: the literal opening tag, then bytes
// up to the first point where the accumulated value ends with the closing
// tag. The closing tag is stripped from the result.
func (r *Reader) readDelimited(f Field) ([]byte, error) {
	if err := r.expect(f.Open()); err != nil {
		return nil, err
	}

	closeTag := f.Close()
	var buf []byte
	for {
		b, err := r.r.ReadByte()
		if err != nil {
			return nil, r.readErr(err, closeTag, r.off)
		}
		r.off++
		buf = append(buf, b)
		if bytes.HasSuffix(buf, closeTag) {
			return buf[:len(buf)-len(closeTag)], nil
		}
	}
}

// expect consumes len(tag) bytes and fails unless they equal tag.
func (r *Reader) expect(tag []byte) error {
	at := r.off
	for _, want := range tag {
		b, err := r.r.ReadByte()
		if err != nil {
			return r.readErr(err, tag, at)
		}
		r.off++
		if b != want {
			return corrupt(tag, at, "unexpected byte where %s was expected")
		}
	}
	return nil
}

func (r *Reader) readErr(err error, tag []byte, at int64) error {
	if err == io.EOF {
		return corrupt(tag, at, "unexpected end of container, expected %s")
	}
	return errors.WithContext(errors.Wrap(err, errors.CodeIO, "failed to read container"), "offset", r.off)
}

func corrupt(tag []byte, at int64, msg string) error {
	return errors.WithContextMap(
		errors.Newf(errors.CodeCorrupt, msg, tag),
		map[string]interface{}{"expected": string(tag), "offset": at},
	)
}
