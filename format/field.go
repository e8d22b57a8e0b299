package format

// Extension is the file extension of a container, without the dot.
const Extension = "fdir"

// Field identifies one of the framed parts of a record.
type Field int

const (
	// FieldRecord frames a whole record.
	FieldRecord Field = iota
	// FieldName frames the record name.
	FieldName
	// FieldExtension frames the record extension.
	FieldExtension
	// FieldContent frames the raw file bytes.
	FieldContent
)

var fieldTags = [...]string{
	FieldRecord:    "FILE",
	FieldName:      "NAME",
	FieldExtension: "EXT",
	FieldContent:   "CON",
}

var fieldNames = [...]string{
	FieldRecord:    "record",
	FieldName:      "name",
	FieldExtension: "extension",
	FieldContent:   "content",
}

// Open returns the opening tag, e.g. "[NAME]".
func (f Field) Open() []byte {
	return []byte("[" + fieldTags[f] + "]")
}

// Close returns the closing tag, e.g. "[/NAME]".
func (f Field) Close() []byte {
	return []byte("[/" + fieldTags[f] + "]")
}

// String returns the lowercase field name.
func (f Field) String() string {
	if f < FieldRecord || f > FieldContent {
		return "unknown"
	}
	return fieldNames[f]
}

// recordFields lists the inner fields in the order they are framed.
var recordFields = [...]Field{FieldName, FieldExtension, FieldContent}
