package fstest

import (
	"path/filepath"
	"testing"

	"github.com/jmgilman/go/fdir/fs/core"
)

// TestManageFS tests Remove and RemoveAll.
func TestManageFS(t *testing.T, filesystem core.FS, root string) {
	t.Run("Remove", func(t *testing.T) {
		name := filepath.Join(root, "gone.txt")
		mustWrite(t, filesystem, name, "x")
		if err := filesystem.Remove(name); err != nil {
			t.Fatalf("Remove(%q): got error %v", name, err)
		}
		if ok, _ := filesystem.Exists(name); ok {
			t.Errorf("Exists(%q) after Remove = true", name)
		}
	})

	t.Run("RemoveAll", func(t *testing.T) {
		tree := filepath.Join(root, "tree")
		mustWrite(t, filesystem, filepath.Join(tree, "a", "b.txt"), "b")
		mustWrite(t, filesystem, filepath.Join(tree, "c.txt"), "c")
		if err := filesystem.RemoveAll(tree); err != nil {
			t.Fatalf("RemoveAll(%q): got error %v", tree, err)
		}
		if ok, _ := filesystem.Exists(tree); ok {
			t.Errorf("Exists(%q) after RemoveAll = true", tree)
		}
	})

	t.Run("RemoveAllNotExist", func(t *testing.T) {
		if err := filesystem.RemoveAll(filepath.Join(root, "never")); err != nil {
			t.Errorf("RemoveAll on missing path: got error %v, want nil", err)
		}
	})
}
