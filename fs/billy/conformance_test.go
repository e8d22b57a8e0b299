package billy

import (
	"testing"

	"github.com/jmgilman/go/fdir/fs/core"
	"github.com/jmgilman/go/fdir/fs/fstest"
)

func TestMemoryFS_Conformance(t *testing.T) {
	fstest.TestSuite(t, func() core.FS { return NewMemory() }, "suite")
}

func TestLocalFS_Conformance(t *testing.T) {
	root := t.TempDir()
	fstest.TestSuite(t, func() core.FS { return NewLocal() }, root)
}
