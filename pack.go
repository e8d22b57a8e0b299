package fdir

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/jmgilman/go/fdir/errors"
	"github.com/jmgilman/go/fdir/format"
	"github.com/jmgilman/go/fdir/internal/logging"
)

// PackResult summarizes a Pack call.
type PackResult struct {
	// Container is the path of the container written to.
	Container string
	// Records lists the records appended by this call, in order.
	Records []Entry
	// Skipped lists relative paths that were not packed: nested containers
	// and entries that are not regular files.
	Skipped []string
	// Bytes is the number of container bytes appended.
	Bytes int64
}

// packEntry is a file selected for packing.
type packEntry struct {
	path string
	rel  string
	size int64
}

// Pack encodes input, a regular file or a directory, into the container
// named by outputBase (see ContainerPath). Records are appended to an
// existing container.
//
// Input problems are reported before the container is opened, so a missing
// or unusable input writes nothing. Once writing starts, any failure aborts
// the call and leaves already appended records in place.
func (a *Archiver) Pack(ctx context.Context, input, outputBase string, opts ...PackOption) (*PackResult, error) {
	o := &PackOptions{}
	for _, opt := range opts {
		opt(o)
	}

	start := time.Now()
	log := a.logger.WithOperation(logging.OpPack)
	res := &PackResult{Container: ContainerPath(outputBase)}

	err := a.pack(ctx, log, input, outputBase, o, res)
	logging.LogOperation(ctx, log.With("container", res.Container),
		logging.OpPack, time.Since(start), len(res.Records), res.Bytes, err)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (a *Archiver) pack(
	ctx context.Context,
	log *logging.Logger,
	input, outputBase string,
	o *PackOptions,
	res *PackResult,
) (err error) {
	if err := requireArg("input path", input); err != nil {
		return err
	}
	if err := requireArg("output base name", outputBase); err != nil {
		return err
	}

	include, err := compilePatterns(o.Include)
	if err != nil {
		return err
	}
	exclude, err := compilePatterns(o.Exclude)
	if err != nil {
		return err
	}

	entries, err := a.collectPackEntries(ctx, log, input, include, exclude, res)
	if err != nil {
		return err
	}

	var total int64
	for _, e := range entries {
		total += e.size
	}

	if err := ensureParentDir(a.fs, res.Container); err != nil {
		return err
	}

	f, err := a.fs.OpenFile(res.Container, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return ioError(err, "failed to open container", res.Container)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = ioError(cerr, "failed to close container", res.Container)
		}
	}()

	w := format.NewWriter(f)
	var current int64
	for _, e := range entries {
		if err := isDone(ctx, "pack"); err != nil {
			return err
		}

		data, err := a.fs.ReadFile(e.path)
		if err != nil {
			return ioError(err, "failed to read file", e.path)
		}

		recLog := log.WithPath(e.rel)
		if format.ContentCollides(data) {
			recLog.Warn(ctx, "content contains the content terminator and will not unpack intact")
		}

		rec := format.NewRecord(e.rel, data)
		n, err := w.WriteRecord(rec)
		res.Bytes += n
		if err != nil {
			return errors.WithContext(err, "path", e.rel)
		}

		res.Records = append(res.Records, newEntry(rec))
		current += int64(len(data))
		if o.Progress != nil {
			o.Progress(current, total)
		}
		recLog.Info(ctx, "record written", "size", len(data))
	}

	return nil
}

// collectPackEntries resolves input into the ordered list of files to
// encode, recording skipped paths on res.
func (a *Archiver) collectPackEntries(
	ctx context.Context,
	log *logging.Logger,
	input string,
	include, exclude matcher,
	res *PackResult,
) ([]packEntry, error) {
	info, err := a.fs.Stat(input)
	if err != nil {
		return nil, statError(err, input)
	}

	var entries []packEntry
	accept := func(path, rel string, info fs.FileInfo) {
		switch {
		case !info.Mode().IsRegular():
			log.Debug(ctx, "skipping non-regular file", "path", rel, "mode", info.Mode().String())
			res.Skipped = append(res.Skipped, rel)
		case isContainer(rel):
			log.Warn(ctx, "skipping nested container", "path", rel)
			res.Skipped = append(res.Skipped, rel)
		case !include.allows(rel) || exclude.matchAny(rel):
			log.Debug(ctx, "skipping filtered file", "path", rel)
		default:
			entries = append(entries, packEntry{path: path, rel: rel, size: info.Size()})
		}
	}

	switch {
	case info.Mode().IsRegular():
		accept(input, filepath.Base(input), info)
		return entries, nil
	case !info.IsDir():
		return nil, wrongKind(input, "a regular file or directory", info.Mode())
	}

	walkErr := a.fs.Walk(input, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(input, path)
		if err != nil {
			return err
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		accept(path, filepath.ToSlash(rel), info)
		return nil
	})
	if walkErr != nil {
		return nil, ioError(walkErr, "failed to walk input directory", input)
	}
	return entries, nil
}
