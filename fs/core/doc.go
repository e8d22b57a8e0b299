// Package core defines the filesystem abstraction the archiver runs on.
//
// Pack and unpack never touch the os package directly. They go through the
// FS interface, which lets the same encoder and decoder run against the local
// disk or an in-memory filesystem in tests.
//
// # Interface Hierarchy
//
// FS is composed of four sub-interfaces:
//
//   - ReadFS: Open, Stat, ReadDir, ReadFile, Exists
//   - WriteFS: Create, OpenFile, WriteFile, MkdirAll
//   - ManageFS: Remove, RemoveAll
//   - WalkFS: Walk
//
// Because FS embeds fs.FS it also works with io/fs helpers such as
// fs.WalkDir and fs.ReadFile.
//
// # Providers
//
// The go-billy backed provider lives in github.com/jmgilman/go/fdir/fs/billy.
package core
