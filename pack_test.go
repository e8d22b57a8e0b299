package fdir

import (
	"bytes"
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/fdir/errors"
	"github.com/jmgilman/go/fdir/format"
	"github.com/jmgilman/go/fdir/fs/billy"
	"github.com/jmgilman/go/fdir/internal/logging"
)

func TestPack_Directory(t *testing.T) {
	a, mem := newMemArchiver(t)
	seed(t, mem, "src", map[string]string{
		"b.txt":         "bravo",
		"a.txt":         "alpha",
		"nested/c.json": `{"c":1}`,
		".hidden":       "dot",
	})

	res, err := a.Pack(context.Background(), "src", "out/archive")
	require.NoError(t, err)

	assert.Equal(t, "out/archive.fdir", res.Container)
	assert.Equal(t, []string{".hidden", "a.txt", "b.txt", "nested/c.json"}, entryPaths(res.Records))
	assert.Empty(t, res.Skipped)

	data, err := mem.ReadFile("out/archive.fdir")
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), res.Bytes)
	assert.True(t, bytes.HasPrefix(data, []byte("[FILE][NAME].hidden[/NAME][EXT][/EXT][CON]dot[/CON][/FILE]")))
}

func TestPack_SingleFile(t *testing.T) {
	a, mem := newMemArchiver(t)
	seed(t, mem, "in", map[string]string{"deep/report.tar.gz": "gz"})

	res, err := a.Pack(context.Background(), "in/deep/report.tar.gz", "single.fdir")
	require.NoError(t, err)

	assert.Equal(t, "single.fdir", res.Container)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "report.tar", res.Records[0].Name)
	assert.Equal(t, "gz", res.Records[0].Extension)
}

func TestPack_EmptyDirectory(t *testing.T) {
	a, mem := newMemArchiver(t)
	require.NoError(t, mem.MkdirAll("empty", 0o755))

	res, err := a.Pack(context.Background(), "empty", "out")
	require.NoError(t, err)
	assert.Empty(t, res.Records)
	assert.Zero(t, res.Bytes)

	data, err := mem.ReadFile("out.fdir")
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestPack_Cumulative(t *testing.T) {
	a, mem := newMemArchiver(t)
	seed(t, mem, "one", map[string]string{"a.txt": "A"})
	seed(t, mem, "two", map[string]string{"b.txt": "B"})
	ctx := context.Background()

	_, err := a.Pack(ctx, "one/a.txt", "box")
	require.NoError(t, err)
	_, err = a.Pack(ctx, "two/b.txt", "box")
	require.NoError(t, err)

	entries, err := a.List(ctx, "box.fdir")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.txt"}, entryPaths(entries))

	_, err = a.Unpack(ctx, "box.fdir", "restored")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a.txt": "A", "b.txt": "B"}, readTree(t, mem, "restored"))
}

func TestPack_SkipsNestedContainers(t *testing.T) {
	a, mem := newMemArchiver(t)
	seed(t, mem, "src", map[string]string{
		"keep.txt":       "k",
		"old.fdir":       "[FILE]",
		"sub/inner.FDIR": "",
	})
	ctx := context.Background()

	res, err := a.Pack(ctx, "src", "src/self")
	require.NoError(t, err)
	assert.Equal(t, []string{"keep.txt"}, entryPaths(res.Records))
	assert.Equal(t, []string{"old.fdir", "sub/inner.FDIR"}, res.Skipped)

	// The container now lives inside the input and must not swallow itself.
	res, err = a.Pack(ctx, "src", "src/self")
	require.NoError(t, err)
	assert.Equal(t, []string{"keep.txt"}, entryPaths(res.Records))
	assert.Contains(t, res.Skipped, "self.fdir")

	res, err = a.Pack(ctx, "src/old.fdir", "other")
	require.NoError(t, err)
	assert.Empty(t, res.Records)
	assert.Equal(t, []string{"old.fdir"}, res.Skipped)
}

func TestPack_Filters(t *testing.T) {
	a, mem := newMemArchiver(t)
	seed(t, mem, "src", map[string]string{
		"a.go":         "",
		"a_test.go":    "",
		"docs/x.md":    "",
		"docs/y.txt":   "",
		"vendor/z.go":  "",
		"vendor/z.txt": "",
	})

	res, err := a.Pack(context.Background(), "src", "out",
		WithInclude("**.go", "docs/*"),
		WithExclude("vendor/**", "*_test.go"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a.go", "docs/x.md", "docs/y.txt"}, entryPaths(res.Records))
}

func TestPack_InvalidPattern(t *testing.T) {
	a, mem := newMemArchiver(t)
	seed(t, mem, "src", map[string]string{"a.txt": "a"})

	_, err := a.Pack(context.Background(), "src", "out", WithInclude("[unclosed"))
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))

	ok, _ := mem.Exists("out.fdir")
	assert.False(t, ok)
}

func TestPack_Progress(t *testing.T) {
	a, mem := newMemArchiver(t)
	seed(t, mem, "src", map[string]string{"a": "12345", "b": "678"})

	var calls [][2]int64
	_, err := a.Pack(context.Background(), "src", "out", WithProgress(func(current, total int64) {
		calls = append(calls, [2]int64{current, total})
	}))
	require.NoError(t, err)
	assert.Equal(t, [][2]int64{{5, 8}, {8, 8}}, calls)
}

func TestPack_InputErrors(t *testing.T) {
	a, mem := newMemArchiver(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		input  string
		output string
		code   errors.ErrorCode
	}{
		{"missing input", "nope", "out", errors.CodeNotFound},
		{"empty input", "", "out", errors.CodeInvalidInput},
		{"empty output", "nope", "", errors.CodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.Pack(ctx, tt.input, tt.output)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetCode(err))
			assert.True(t, errors.IsInputError(err))
		})
	}

	ok, err := mem.Exists("out.fdir")
	require.NoError(t, err)
	assert.False(t, ok, "no container may be created for bad input")
}

// deviceFS reports one path as a device node.
type deviceFS struct {
	*billy.FS
	device string
}

type deviceInfo struct{ name string }

func (d deviceInfo) Name() string       { return d.name }
func (d deviceInfo) Size() int64        { return 0 }
func (d deviceInfo) Mode() fs.FileMode  { return fs.ModeDevice | 0o600 }
func (d deviceInfo) ModTime() time.Time { return time.Time{} }
func (d deviceInfo) IsDir() bool        { return false }
func (d deviceInfo) Sys() any           { return nil }

func (d *deviceFS) Stat(name string) (fs.FileInfo, error) {
	if name == d.device {
		return deviceInfo{name: filepath.Base(name)}, nil
	}
	return d.FS.Stat(name)
}

func TestPack_WrongKind(t *testing.T) {
	fsys := &deviceFS{FS: billy.NewMemory(), device: "dev/null"}
	a := New(WithFS(fsys), WithLogger(logging.NewNopLogger()))

	_, err := a.Pack(context.Background(), "dev/null", "out")
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))

	ok, _ := fsys.Exists("out.fdir")
	assert.False(t, ok)
}

func TestPack_RejectsUnencodableName(t *testing.T) {
	a, mem := newMemArchiver(t)
	seed(t, mem, "src", map[string]string{"weird[/NAME].txt": "x"})

	_, err := a.Pack(context.Background(), "src", "out")
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}

func TestPack_Canceled(t *testing.T) {
	a, mem := newMemArchiver(t)
	seed(t, mem, "src", map[string]string{"a.txt": "a"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Pack(ctx, "src", "out")
	require.Error(t, err)
	assert.Equal(t, errors.CodeCanceled, errors.GetCode(err))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPack_LogsRecordsAndSummary(t *testing.T) {
	mem := billy.NewMemory()
	var buf bytes.Buffer
	a := New(WithFS(mem), WithLogger(logging.NewLogger(logging.LogConfig{
		Level:  logging.LogLevelInfo,
		Output: &buf,
	})))
	seed(t, mem, "src", map[string]string{"a.txt": "a", "b.bin": "x[/CON]y"})

	_, err := a.Pack(context.Background(), "src", "out")
	require.NoError(t, err)

	out := buf.String()
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("record written")))
	assert.Contains(t, out, "path=a.txt")
	assert.Contains(t, out, "path=b.bin")
	assert.Contains(t, out, "pack completed")
	assert.Contains(t, out, "records=2")
	assert.Contains(t, out, "content terminator")
}

func TestPack_LocalFilesystem(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	require.NoError(t, os.MkdirAll(filepath.Join(src, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "a.txt"), []byte("alpha"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "sub", "b"), []byte{0, 1, 2}, 0o644))

	a := New(WithLogger(logging.NewNopLogger()))
	ctx := context.Background()

	res, err := a.Pack(ctx, src, filepath.Join(dir, "out"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "out.fdir"), res.Container)

	raw, err := os.ReadFile(res.Container)
	require.NoError(t, err)

	r := format.NewReader(bytes.NewReader(raw))
	rec, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "a", rec.Name)
	assert.Equal(t, "txt", rec.Extension)

	_, err = a.Unpack(ctx, res.Container, filepath.Join(dir, "restored"))
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(dir, "restored", "sub", "b"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 1, 2}, got)
}

func TestPack_SymlinkedDirectory(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "real")
	require.NoError(t, os.MkdirAll(target, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "a.txt"), []byte("alpha"), 0o644))
	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink(target, link))

	a := New(WithLogger(logging.NewNopLogger()))
	res, err := a.Pack(context.Background(), link, filepath.Join(dir, "out"))
	require.NoError(t, err)

	assert.Empty(t, res.Skipped)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "a.txt", res.Records[0].Path)

	entries, err := a.List(context.Background(), res.Container)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt"}, entryPaths(entries))
}
