package fdir

import (
	"context"
	"io"
	"time"

	"github.com/jmgilman/go/fdir/errors"
	"github.com/jmgilman/go/fdir/internal/logging"
)

// List decodes every record in container without writing anything and
// returns them in container order. Any format error fails the whole listing,
// so List doubles as an integrity check.
func (a *Archiver) List(ctx context.Context, container string) ([]Entry, error) {
	start := time.Now()
	log := a.logger.WithOperation(logging.OpList).With("container", container)

	entries, size, err := a.list(ctx, container)
	logging.LogOperation(ctx, log, logging.OpList, time.Since(start), len(entries), size, err)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (a *Archiver) list(ctx context.Context, container string) ([]Entry, int64, error) {
	if err := requireArg("container path", container); err != nil {
		return nil, 0, err
	}

	r, closeFn, err := a.openContainer(container)
	if err != nil {
		return nil, 0, err
	}
	defer closeFn()

	var entries []Entry
	var size int64
	for {
		if err := isDone(ctx, "list"); err != nil {
			return entries, size, err
		}

		rec, err := r.Next()
		if err == io.EOF {
			return entries, size, nil
		}
		if err != nil {
			return entries, size, errors.WithContext(err, "container", container)
		}

		entries = append(entries, newEntry(*rec))
		size += int64(len(rec.Content))
	}
}
