package billy

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/jmgilman/go/fdir/fs/core"
)

// FS adapts a billy.Filesystem to core.FS.
type FS struct {
	bfs  billy.Filesystem
	kind core.FSType
}

// NewLocal creates a go-billy-backed local filesystem rooted at "/".
// Relative paths are resolved against the process working directory.
func NewLocal() *FS {
	return &FS{bfs: osfs.New("/"), kind: core.FSTypeLocal}
}

// NewMemory creates an empty go-billy-backed in-memory filesystem.
func NewMemory() *FS {
	return &FS{bfs: memfs.New(), kind: core.FSTypeMemory}
}

// Unwrap returns the underlying billy.Filesystem.
func (b *FS) Unwrap() billy.Filesystem {
	return b.bfs
}

// Type returns the kind of backing store.
func (b *FS) Type() core.FSType {
	return b.kind
}

// normalize converts a caller path into the form billy expects.
func (b *FS) normalize(name string) string {
	if b.kind == core.FSTypeLocal && !filepath.IsAbs(name) {
		if abs, err := filepath.Abs(name); err == nil {
			name = abs
		}
	}
	return filepath.ToSlash(filepath.Clean(name))
}

// dirEntry wraps fs.FileInfo to implement fs.DirEntry.
type dirEntry struct {
	info fs.FileInfo
}

func (d *dirEntry) Name() string               { return d.info.Name() }
func (d *dirEntry) IsDir() bool                { return d.info.IsDir() }
func (d *dirEntry) Type() fs.FileMode          { return d.info.Mode().Type() }
func (d *dirEntry) Info() (fs.FileInfo, error) { return d.info, nil }

// Open opens the named file for reading.
func (b *FS) Open(name string) (fs.File, error) {
	name = b.normalize(name)
	f, err := b.bfs.Open(name)
	if err != nil {
		return nil, err
	}
	return &File{file: f, fs: b.bfs, name: name}, nil
}

// Stat returns file metadata for the named file.
func (b *FS) Stat(name string) (fs.FileInfo, error) {
	return b.bfs.Stat(b.normalize(name))
}

// ReadDir returns the directory entries sorted by filename.
func (b *FS) ReadDir(name string) ([]fs.DirEntry, error) {
	infos, err := b.readDir(b.normalize(name))
	if err != nil {
		return nil, err
	}
	entries := make([]fs.DirEntry, len(infos))
	for i, info := range infos {
		entries[i] = &dirEntry{info: info}
	}
	return entries, nil
}

// readDir lists a normalized directory in lexical order. Not every billy
// backend sorts its listing.
func (b *FS) readDir(name string) ([]fs.FileInfo, error) {
	infos, err := b.bfs.ReadDir(name)
	if err != nil {
		return nil, err
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name() < infos[j].Name() })
	return infos, nil
}

// ReadFile reads the named file and returns its contents.
func (b *FS) ReadFile(name string) ([]byte, error) {
	f, err := b.bfs.Open(b.normalize(name))
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return io.ReadAll(f)
}

// Exists reports whether the named file or directory exists.
func (b *FS) Exists(name string) (bool, error) {
	_, err := b.bfs.Stat(b.normalize(name))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Create creates or truncates the named file for writing.
func (b *FS) Create(name string) (core.File, error) {
	name = b.normalize(name)
	f, err := b.bfs.Create(name)
	if err != nil {
		return nil, err
	}
	return &File{file: f, fs: b.bfs, name: name}, nil
}

// OpenFile opens a file with the specified flags and permissions.
func (b *FS) OpenFile(name string, flag int, perm fs.FileMode) (core.File, error) {
	name = b.normalize(name)
	f, err := b.bfs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return &File{file: f, fs: b.bfs, name: name}, nil
}

// WriteFile writes data to the named file, creating it if necessary.
func (b *FS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	f, err := b.bfs.OpenFile(b.normalize(name), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (b *FS) MkdirAll(path string, perm fs.FileMode) error {
	return b.bfs.MkdirAll(b.normalize(path), perm)
}

// Remove removes the named file or empty directory.
func (b *FS) Remove(name string) error {
	return b.bfs.Remove(b.normalize(name))
}

// RemoveAll removes path and any children it contains.
func (b *FS) RemoveAll(path string) error {
	return b.removeAll(b.normalize(path))
}

func (b *FS) removeAll(path string) error {
	// billy has no RemoveAll
	info, err := b.bfs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if !info.IsDir() {
		return b.bfs.Remove(path)
	}

	entries, err := b.bfs.ReadDir(path)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if err := b.removeAll(filepath.ToSlash(filepath.Join(path, entry.Name()))); err != nil {
			return err
		}
	}
	return b.bfs.Remove(path)
}

// Walk walks the file tree rooted at root in lexical order, calling walkFn
// for each file or directory, including root. Paths handed to walkFn are
// root joined with the entry names, so they stay in the caller's form.
// A symlink at root is resolved; links below root are reported as links.
func (b *FS) Walk(root string, walkFn fs.WalkDirFunc) error {
	root = filepath.Clean(root)
	info, err := b.bfs.Stat(b.normalize(root))
	if err != nil {
		err = walkFn(root, nil, err)
	} else {
		err = b.walk(root, &dirEntry{info: info}, walkFn)
	}
	if errors.Is(err, fs.SkipDir) || errors.Is(err, fs.SkipAll) {
		return nil
	}
	return err
}

func (b *FS) walk(path string, d fs.DirEntry, walkFn fs.WalkDirFunc) error {
	if err := walkFn(path, d, nil); err != nil || !d.IsDir() {
		if errors.Is(err, fs.SkipDir) && d.IsDir() {
			err = nil
		}
		return err
	}

	entries, err := b.readDir(b.normalize(path))
	if err != nil {
		if err = walkFn(path, d, err); err != nil {
			return err
		}
	}

	for _, entry := range entries {
		child := filepath.Join(path, entry.Name())
		if err := b.walk(child, &dirEntry{info: entry}, walkFn); err != nil {
			if errors.Is(err, fs.SkipDir) {
				continue
			}
			return err
		}
	}
	return nil
}

// Compile-time interface check.
var _ core.FS = (*FS)(nil)
