package fstest

import (
	"errors"
	"io"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/jmgilman/go/fdir/fs/core"
)

// TestReadFS tests Open, Stat, ReadDir, ReadFile and Exists.
func TestReadFS(t *testing.T, filesystem core.FS, root string) {
	file := filepath.Join(root, "dir", "file.txt")
	mustWrite(t, filesystem, file, "test file content")

	t.Run("Open", func(t *testing.T) {
		f, err := filesystem.Open(file)
		if err != nil {
			t.Fatalf("Open(%q): got error %v, want nil", file, err)
		}
		defer func() { _ = f.Close() }()

		data, err := io.ReadAll(f)
		if err != nil {
			t.Fatalf("ReadAll: got error %v", err)
		}
		if string(data) != "test file content" {
			t.Errorf("Open(%q) content = %q", file, data)
		}
	})

	t.Run("Stat", func(t *testing.T) {
		info, err := filesystem.Stat(file)
		if err != nil {
			t.Fatalf("Stat(%q): got error %v", file, err)
		}
		if info.IsDir() || !info.Mode().IsRegular() {
			t.Errorf("Stat(%q): mode %v, want regular file", file, info.Mode())
		}
		if info.Size() != int64(len("test file content")) {
			t.Errorf("Stat(%q).Size() = %d", file, info.Size())
		}

		info, err = filesystem.Stat(filepath.Dir(file))
		if err != nil || !info.IsDir() {
			t.Errorf("Stat(dir): got (%v, %v), want directory", info, err)
		}
	})

	t.Run("ReadDir", func(t *testing.T) {
		entries, err := filesystem.ReadDir(filepath.Join(root, "dir"))
		if err != nil {
			t.Fatalf("ReadDir: got error %v", err)
		}
		if len(entries) != 1 || entries[0].Name() != "file.txt" {
			t.Errorf("ReadDir: got %v, want [file.txt]", entries)
		}
	})

	t.Run("NotExist", func(t *testing.T) {
		missing := filepath.Join(root, "missing.txt")
		if _, err := filesystem.Open(missing); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Open(%q): got %v, want fs.ErrNotExist", missing, err)
		}
		if _, err := filesystem.ReadFile(missing); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("ReadFile(%q): got %v, want fs.ErrNotExist", missing, err)
		}
	})

	t.Run("Exists", func(t *testing.T) {
		for name, want := range map[string]bool{
			file:                             true,
			filepath.Dir(file):               true,
			filepath.Join(root, "nope.txt"): false,
		} {
			got, err := filesystem.Exists(name)
			if err != nil {
				t.Errorf("Exists(%q): got error %v", name, err)
			}
			if got != want {
				t.Errorf("Exists(%q) = %v, want %v", name, got, want)
			}
		}
	})
}
