// Package format defines the FDIR container layout and streams records in
// and out of it.
//
// A container is a bare concatenation of records. Each record frames three
// fields with literal ASCII tags:
//
//	[FILE][NAME]notes/todo[/NAME][EXT]txt[/EXT][CON]...bytes...[/CON][/FILE]
//
// There is no header, length prefix or index. A reader expects every tag at
// the exact byte position it should appear and scans field values until the
// first occurrence of the field's closing tag. Content that itself contains
// the content closing tag is therefore truncated on read; ContentCollides
// reports that case before a record is written.
//
// The tags live only in the Field enumeration. Writer and Reader both derive
// their framing from it.
package format
