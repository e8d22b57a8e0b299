// Package billy provides the go-billy-backed implementation of core.FS.
//
// It wraps go-billy's osfs (local disk) and memfs (in-memory) behind a
// single FS type. The archiver uses the local variant by default and the
// in-memory variant in tests.
//
//	local := billy.NewLocal()
//	data, err := local.ReadFile("notes/todo.txt")
//
//	mem := billy.NewMemory()
//	err := mem.WriteFile("temp.txt", []byte("data"), 0o644)
//
// Relative paths on the local filesystem resolve against the working
// directory. Walk and ReadDir always return entries in lexical order.
//
// # Thread Safety
//
// FS instances are safe for concurrent use by multiple goroutines.
// File handles are not.
package billy
