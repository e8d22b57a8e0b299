package fdir

import (
	"strings"

	"github.com/opencontainers/go-digest"

	"github.com/jmgilman/go/fdir/format"
	"github.com/jmgilman/go/fdir/fs/billy"
	"github.com/jmgilman/go/fdir/fs/core"
	"github.com/jmgilman/go/fdir/internal/logging"
)

// Archiver packs and unpacks FDIR containers on a filesystem.
// It holds no per-call state and is safe for concurrent use.
type Archiver struct {
	fs     core.FS
	logger *logging.Logger
}

// Options configures an Archiver.
type Options struct {
	// FS is the filesystem all paths resolve against.
	// If nil, the local filesystem is used.
	FS core.FS

	// Logger receives one line per record and a summary per call.
	// If nil, info-level text logs go to stderr.
	Logger *logging.Logger
}

// Option configures an Archiver.
type Option func(*Options)

// WithFS sets the filesystem.
func WithFS(fsys core.FS) Option {
	return func(o *Options) {
		o.FS = fsys
	}
}

// WithLogger sets the logger. Use logging.NewNopLogger to silence output.
func WithLogger(logger *logging.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// New creates an Archiver.
func New(opts ...Option) *Archiver {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}

	if o.FS == nil {
		o.FS = billy.NewLocal()
	}
	if o.Logger == nil {
		o.Logger = logging.NewLogger(logging.DefaultLogConfig())
	}

	return &Archiver{fs: o.FS, logger: o.Logger}
}

// Entry describes one record of a container.
type Entry struct {
	// Path is the relative slash path the record unpacks to.
	Path string `json:"path" yaml:"path"`
	// Name is the stored name field.
	Name string `json:"name" yaml:"name"`
	// Extension is the stored extension field.
	Extension string `json:"extension" yaml:"extension"`
	// Size is the content length in bytes.
	Size int64 `json:"size" yaml:"size"`
	// Digest is the sha256 digest of the content.
	Digest digest.Digest `json:"digest" yaml:"digest"`
}

func newEntry(rec format.Record) Entry {
	return Entry{
		Path:      rec.Path(),
		Name:      rec.Name,
		Extension: rec.Extension,
		Size:      int64(len(rec.Content)),
		Digest:    digest.FromBytes(rec.Content),
	}
}

// ContainerPath returns the container file name for an output base name.
// The container extension is appended unless base already carries it.
func ContainerPath(base string) string {
	if isContainer(base) {
		return base
	}
	return base + "." + format.Extension
}

// isContainer reports whether name has the container extension.
func isContainer(name string) bool {
	suffix := "." + format.Extension
	return len(name) > len(suffix) && strings.EqualFold(name[len(name)-len(suffix):], suffix)
}
