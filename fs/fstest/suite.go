// Package fstest provides a conformance suite for core.FS providers.
//
// Providers run it from their own tests against a fresh, empty location:
//
//	func TestMemory(t *testing.T) {
//	    fstest.TestSuite(t, func() core.FS { return billy.NewMemory() }, "suite")
//	}
//
// Every path the suite touches lives under root, so a local provider can be
// pointed at t.TempDir(). Beyond the basic contract the suite checks the
// behavior the archiver depends on: appending with O_APPEND, overwriting with
// WriteFile, and a Walk that visits entries in lexical order.
package fstest

import (
	"path/filepath"
	"testing"

	"github.com/jmgilman/go/fdir/fs/core"
)

// TestSuite runs every conformance group. newFS is called once per group.
func TestSuite(t *testing.T, newFS func() core.FS, root string) {
	t.Run("ReadFS", func(t *testing.T) {
		TestReadFS(t, newFS(), filepath.Join(root, "read"))
	})
	t.Run("WriteFS", func(t *testing.T) {
		TestWriteFS(t, newFS(), filepath.Join(root, "write"))
	})
	t.Run("ManageFS", func(t *testing.T) {
		TestManageFS(t, newFS(), filepath.Join(root, "manage"))
	})
	t.Run("WalkFS", func(t *testing.T) {
		TestWalkFS(t, newFS(), filepath.Join(root, "walk"))
	})
}

// mustWrite creates name with data, failing the test on error.
func mustWrite(t *testing.T, filesystem core.FS, name string, data string) {
	t.Helper()
	if err := filesystem.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		t.Fatalf("MkdirAll(%q): setup failed: %v", filepath.Dir(name), err)
	}
	if err := filesystem.WriteFile(name, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile(%q): setup failed: %v", name, err)
	}
}
