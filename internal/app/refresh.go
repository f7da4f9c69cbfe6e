package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/five82/bookgrid/internal/books"
	"github.com/five82/bookgrid/internal/state"
)

// Refresh performs one fetch from src, records the outcome in store and
// returns the resulting snapshot. Failures are logged at error level; there
// is no retry.
func Refresh(ctx context.Context, store *state.Store, src books.Fetcher, logger *slog.Logger) state.Snapshot {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	start := time.Now()
	items, err := src.FetchBooks(ctx)
	store.Update(items, err)

	if err != nil {
		logger.Error("fetch books failed",
			slog.String("source", describeSource(src)),
			slog.Duration("elapsed", time.Since(start)),
			slog.Any("error", err),
		)
	} else {
		logger.Info("fetched books",
			slog.String("source", describeSource(src)),
			slog.Int("count", len(items)),
			slog.Duration("elapsed", time.Since(start)),
		)
	}
	return store.Snapshot()
}

func describeSource(src books.Fetcher) string {
	switch s := src.(type) {
	case *books.Client:
		return s.Endpoint()
	case *books.FileSource:
		return s.Path
	default:
		return fmt.Sprintf("%T", src)
	}
}
