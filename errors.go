package fdir

import (
	"context"
	"io/fs"

	"github.com/jmgilman/go/fdir/errors"
	"github.com/jmgilman/go/fdir/fs/core"
)

// requireArg returns an input error when value is empty.
func requireArg(name, value string) error {
	if value == "" {
		return errors.Newf(errors.CodeInvalidInput, "%s cannot be empty", name)
	}
	return nil
}

// statError classifies a Stat failure on a caller-supplied path.
func statError(err error, path string) error {
	if errors.Is(err, core.ErrNotExist) {
		return errors.WithContext(errors.Wrap(err, errors.CodeNotFound, "path does not exist"), "path", path)
	}
	return ioError(err, "failed to stat path", path)
}

// ioError wraps a filesystem failure with the path involved.
func ioError(err error, msg, path string) error {
	return errors.WithContext(errors.Wrap(err, errors.CodeIO, msg), "path", path)
}

// wrongKind reports a path that exists but is the wrong kind of file.
func wrongKind(path, want string, mode fs.FileMode) error {
	return errors.WithContextMap(
		errors.Newf(errors.CodeInvalidInput, "%s is not %s", path, want),
		map[string]interface{}{"path": path, "mode": mode.String()},
	)
}

// isDone returns a CodeCanceled error if ctx is done.
func isDone(ctx context.Context, action string) error {
	select {
	case <-ctx.Done():
		return errors.Wrapf(ctx.Err(), errors.CodeCanceled, "%s canceled", action)
	default:
		return nil
	}
}
