package fdir

import (
	"io/fs"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/fdir/fs/billy"
	"github.com/jmgilman/go/fdir/fs/core"
	"github.com/jmgilman/go/fdir/internal/logging"
)

// newMemArchiver returns a silent archiver over a fresh in-memory filesystem.
func newMemArchiver(t *testing.T) (*Archiver, *billy.FS) {
	t.Helper()
	mem := billy.NewMemory()
	return New(WithFS(mem), WithLogger(logging.NewNopLogger())), mem
}

// seed writes files (relative path to content) under root.
func seed(t *testing.T, fsys core.FS, root string, files map[string]string) {
	t.Helper()
	src := fstest.MapFS{}
	for p, content := range files {
		src[p] = &fstest.MapFile{Data: []byte(content), Mode: 0o644}
	}
	require.NoError(t, core.CopyFrom(src, fsys, ".", root))
}

// readTree returns every regular file under root keyed by slash path
// relative to root.
func readTree(t *testing.T, fsys core.FS, root string) map[string]string {
	t.Helper()
	out := map[string]string{}
	err := fsys.Walk(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		data, err := fsys.ReadFile(p)
		if err != nil {
			return err
		}
		out[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	require.NoError(t, err)
	return out
}

func entryPaths(entries []Entry) []string {
	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		paths = append(paths, e.Path)
	}
	return paths
}
