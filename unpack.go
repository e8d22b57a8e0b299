package fdir

import (
	"context"
	"io"
	"path/filepath"
	"time"

	"github.com/jmgilman/go/fdir/errors"
	"github.com/jmgilman/go/fdir/format"
	"github.com/jmgilman/go/fdir/fs/core"
	"github.com/jmgilman/go/fdir/internal/logging"
)

// UnpackResult summarizes an Unpack call.
type UnpackResult struct {
	// Records lists the records written, in container order.
	Records []Entry
	// Skipped lists record paths decoded but not selected for extraction.
	Skipped []string
}

// Unpack decodes container and writes every record to outputDir, creating
// it and any parent directories as needed. Existing files are overwritten.
//
// A record is only written after it has been decoded in full and its path
// has passed validation. Records written before a failure are left on disk.
func (a *Archiver) Unpack(ctx context.Context, container, outputDir string, opts ...UnpackOption) (*UnpackResult, error) {
	o := DefaultUnpackOptions
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()
	log := a.logger.WithOperation(logging.OpUnpack).With("container", container)
	res := &UnpackResult{}

	var bytes int64
	err := a.unpack(ctx, log, container, outputDir, o, res, &bytes)
	logging.LogOperation(ctx, log, logging.OpUnpack, time.Since(start), len(res.Records), bytes, err)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (a *Archiver) unpack(
	ctx context.Context,
	log *logging.Logger,
	container, outputDir string,
	o UnpackOptions,
	res *UnpackResult,
	totalSize *int64,
) error {
	if err := requireArg("container path", container); err != nil {
		return err
	}
	if err := requireArg("output directory", outputDir); err != nil {
		return err
	}

	selected, err := compilePatterns(o.FilesToExtract)
	if err != nil {
		return err
	}

	if info, err := a.fs.Stat(outputDir); err == nil {
		if !info.IsDir() {
			return wrongKind(outputDir, "a directory", info.Mode())
		}
	} else if !errors.Is(err, core.ErrNotExist) {
		return ioError(err, "failed to stat output directory", outputDir)
	}

	r, closeFn, err := a.openContainer(container)
	if err != nil {
		return err
	}
	defer closeFn()

	if err := a.fs.MkdirAll(outputDir, 0o755); err != nil {
		return ioError(err, "failed to create output directory", outputDir)
	}

	validators := NewValidatorChain(NewPathValidator())
	if o.MaxFileSize > 0 || o.MaxTotalSize > 0 {
		validators.AddValidator(NewSizeValidator(o.MaxFileSize, o.MaxTotalSize))
	}
	if o.MaxFiles > 0 {
		validators.AddValidator(NewFileCountValidator(o.MaxFiles))
	}

	fileCount := 0
	for {
		if err := isDone(ctx, "unpack"); err != nil {
			return err
		}

		rec, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.WithContext(err, "container", container)
		}

		p := rec.Path()
		if !selected.allows(p) {
			log.Debug(ctx, "skipping unselected record", "path", p)
			res.Skipped = append(res.Skipped, p)
			continue
		}

		fileCount++
		*totalSize += int64(len(rec.Content))
		if err := validateRecord(validators, p, int64(len(rec.Content)), fileCount, *totalSize); err != nil {
			return err
		}

		if err := a.writeRecord(outputDir, p, rec.Content); err != nil {
			return err
		}

		res.Records = append(res.Records, newEntry(*rec))
		log.WithPath(p).Info(ctx, "record extracted", "size", len(rec.Content))
	}
}

// validateRecord runs the path, file and running-total checks for a record.
func validateRecord(v Validator, path string, size int64, files int, total int64) error {
	if err := v.ValidatePath(path); err != nil {
		return err
	}
	if err := v.ValidateFile(FileInfo{Name: path, Size: size}); err != nil {
		return err
	}
	return v.ValidateArchive(ArchiveStats{TotalFiles: files, TotalSize: total})
}

// writeRecord writes content to outputDir/path, replacing any existing file.
func (a *Archiver) writeRecord(outputDir, path string, content []byte) error {
	fullPath, err := safeJoin(outputDir, path)
	if err != nil {
		return err
	}
	if err := ensureParentDir(a.fs, fullPath); err != nil {
		return err
	}
	if err := a.fs.WriteFile(fullPath, content, 0o644); err != nil {
		return ioError(err, "failed to write file", fullPath)
	}
	return nil
}

// openContainer opens a container for decoding. The returned func closes it.
func (a *Archiver) openContainer(container string) (*format.Reader, func(), error) {
	info, err := a.fs.Stat(container)
	if err != nil {
		return nil, nil, statError(err, container)
	}
	if info.IsDir() {
		return nil, nil, wrongKind(container, "a container file", info.Mode())
	}

	f, err := a.fs.Open(container)
	if err != nil {
		return nil, nil, ioError(err, "failed to open container", container)
	}
	return format.NewReader(f), func() { _ = f.Close() }, nil
}

// ensureParentDir creates the parent directory for a path.
func ensureParentDir(fsys core.FS, fullPath string) error {
	dir := filepath.Dir(fullPath)
	if dir == "." {
		return nil
	}
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return ioError(err, "failed to create directory", dir)
	}
	return nil
}
