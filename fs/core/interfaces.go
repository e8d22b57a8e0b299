package core

import (
	"io"
	"io/fs"
)

// FSType represents the underlying type of filesystem implementation.
type FSType int

const (
	// FSTypeUnknown indicates the filesystem type is unknown or unspecified.
	FSTypeUnknown FSType = iota
	// FSTypeLocal indicates a disk-backed filesystem.
	FSTypeLocal
	// FSTypeMemory indicates an in-memory filesystem.
	FSTypeMemory
)

// String returns a string representation of the FSType.
func (t FSType) String() string {
	switch t {
	case FSTypeLocal:
		return "local"
	case FSTypeMemory:
		return "memory"
	default:
		return "unknown"
	}
}

// FS is the filesystem interface used by pack and unpack.
type FS interface {
	fs.FS
	ReadFS
	WriteFS
	ManageFS
	WalkFS

	// Type returns the underlying filesystem type.
	Type() FSType
}

// ReadFS defines read-only filesystem operations.
type ReadFS interface {
	// Open opens the named file for reading.
	// The returned file should be closed when no longer needed.
	Open(name string) (fs.File, error)

	// Stat returns file metadata, following symbolic links.
	// If there is an error, it will be of type *fs.PathError.
	Stat(name string) (fs.FileInfo, error)

	// ReadDir returns the entries of the named directory sorted by filename.
	ReadDir(name string) ([]fs.DirEntry, error)

	// ReadFile reads the whole named file into memory.
	ReadFile(name string) ([]byte, error)

	// Exists reports whether the named file or directory exists.
	// A false result with a non-nil error means existence could not be
	// determined, not that the path is absent.
	Exists(name string) (bool, error)
}

// WriteFS defines write operations.
type WriteFS interface {
	// Create creates or truncates the named file for writing.
	Create(name string) (File, error)

	// OpenFile opens a file with the given flags (os.O_APPEND, os.O_CREATE,
	// ...) and permission bits. Pack relies on O_APPEND to grow an existing
	// container.
	OpenFile(name string, flag int, perm fs.FileMode) (File, error)

	// WriteFile writes data to the named file, creating or truncating it.
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// MkdirAll creates a directory named path along with any necessary
	// parents. It does nothing if path is already a directory.
	MkdirAll(path string, perm fs.FileMode) error
}

// ManageFS defines removal operations.
type ManageFS interface {
	// Remove removes the named file or empty directory.
	Remove(name string) error

	// RemoveAll removes path and any children it contains.
	// It returns nil if the path does not exist.
	RemoveAll(path string) error
}

// WalkFS defines directory tree traversal.
type WalkFS interface {
	// Walk walks the file tree rooted at root, calling walkFn for each file
	// or directory in the tree, including root. Entries are visited in
	// lexical order, so the traversal is deterministic. A symbolic link at
	// root is followed; links below root are reported but not followed.
	Walk(root string, walkFn fs.WalkDirFunc) error
}

// File represents an open file handle that can also be written to.
type File interface {
	fs.File
	io.Writer

	// Name returns the name of the file as provided to Open or Create.
	Name() string
}

// Syncer allows flushing file contents to stable storage.
//
//	if s, ok := file.(Syncer); ok {
//	    err := s.Sync()
//	}
type Syncer interface {
	Sync() error
}
