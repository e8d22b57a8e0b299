package fstest

import (
	"io/fs"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/jmgilman/go/fdir/fs/core"
)

// TestWalkFS tests that Walk visits every entry depth-first in lexical
// order and honors SkipDir.
func TestWalkFS(t *testing.T, filesystem core.FS, root string) {
	// Written out of order on purpose.
	for _, name := range []string{"z.txt", "b/2.txt", "a.txt", "b/1.txt", "c/d/e.txt"} {
		mustWrite(t, filesystem, filepath.Join(root, filepath.FromSlash(name)), name)
	}

	collect := func(skip string) ([]string, error) {
		var visited []string
		err := filesystem.Walk(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			if d.IsDir() && d.Name() == skip {
				return fs.SkipDir
			}
			visited = append(visited, filepath.ToSlash(rel))
			return nil
		})
		return visited, err
	}

	t.Run("LexicalOrder", func(t *testing.T) {
		got, err := collect("")
		if err != nil {
			t.Fatalf("Walk(%q): got error %v", root, err)
		}
		want := []string{".", "a.txt", "b", "b/1.txt", "b/2.txt", "c", "c/d", "c/d/e.txt", "z.txt"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Walk order = %v, want %v", got, want)
		}
	})

	t.Run("SkipDir", func(t *testing.T) {
		got, err := collect("c")
		if err != nil {
			t.Fatalf("Walk(%q): got error %v", root, err)
		}
		want := []string{".", "a.txt", "b", "b/1.txt", "b/2.txt", "z.txt"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Walk with SkipDir = %v, want %v", got, want)
		}
	})
}
