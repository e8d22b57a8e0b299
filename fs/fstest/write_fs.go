package fstest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jmgilman/go/fdir/fs/core"
)

// TestWriteFS tests Create, OpenFile, WriteFile and MkdirAll.
func TestWriteFS(t *testing.T, filesystem core.FS, root string) {
	if err := filesystem.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("MkdirAll(%q): setup failed: %v", root, err)
	}

	t.Run("Create", func(t *testing.T) {
		name := filepath.Join(root, "created.txt")
		f, err := filesystem.Create(name)
		if err != nil {
			t.Fatalf("Create(%q): got error %v", name, err)
		}
		if _, err := f.Write([]byte("created")); err != nil {
			t.Errorf("Write: got error %v", err)
		}
		if err := f.Close(); err != nil {
			t.Errorf("Close: got error %v", err)
		}
		expectContent(t, filesystem, name, "created")
	})

	t.Run("WriteFileOverwrites", func(t *testing.T) {
		name := filepath.Join(root, "over.txt")
		mustWrite(t, filesystem, name, "a much longer first version")
		mustWrite(t, filesystem, name, "short")
		expectContent(t, filesystem, name, "short")
	})

	t.Run("OpenFileAppend", func(t *testing.T) {
		name := filepath.Join(root, "append.log")
		for _, chunk := range []string{"one", "two", "three"} {
			f, err := filesystem.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
			if err != nil {
				t.Fatalf("OpenFile(%q, O_APPEND): got error %v", name, err)
			}
			if _, err := f.Write([]byte(chunk)); err != nil {
				t.Errorf("Write: got error %v", err)
			}
			if err := f.Close(); err != nil {
				t.Errorf("Close: got error %v", err)
			}
		}
		expectContent(t, filesystem, name, "onetwothree")
	})

	t.Run("MkdirAll", func(t *testing.T) {
		dir := filepath.Join(root, "a", "b", "c")
		if err := filesystem.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("MkdirAll(%q): got error %v", dir, err)
		}
		if err := filesystem.MkdirAll(dir, 0o755); err != nil {
			t.Errorf("MkdirAll(%q) on existing dir: got error %v", dir, err)
		}
		info, err := filesystem.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Errorf("Stat(%q): got (%v, %v), want directory", dir, info, err)
		}
	})
}

func expectContent(t *testing.T, filesystem core.FS, name, want string) {
	t.Helper()
	got, err := filesystem.ReadFile(name)
	if err != nil {
		t.Fatalf("ReadFile(%q): got error %v", name, err)
	}
	if string(got) != want {
		t.Errorf("ReadFile(%q) = %q, want %q", name, got, want)
	}
}
