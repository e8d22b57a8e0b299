// Package fdir packs files into FDIR containers and unpacks them again.
//
// A container is a flat sequence of tagged records, one per packed file. The
// layout itself lives in the format subpackage; this package drives it over
// a filesystem:
//
//	a := fdir.New()
//	res, err := a.Pack(ctx, "docs", "backup")          // writes backup.fdir
//	_, err = a.Unpack(ctx, "backup.fdir", "restored")  // recreates docs/...
//
// Pack walks a directory recursively in lexical order and stores each regular
// file under its path relative to the input directory. Existing containers are
// appended to, never truncated. Files that are themselves containers are
// skipped with a warning.
//
// Unpack validates every record path before writing and refuses anything that
// would land outside the output directory. Optional limits cap the number and
// size of extracted files. There is no rollback: records extracted before a
// failure stay on disk.
//
// Errors carry codes from github.com/jmgilman/go/fdir/errors so callers can
// tell bad input, corrupt containers and I/O failures apart.
package fdir
