// Package paginate walks cursor-paged APIs one page at a time.
package paginate

import (
	"context"
	"iter"
	"log/slog"
)

// Page is one batch of records. An empty Cursor means there are no further pages.
type Page[T any] struct {
	Items  []T
	Cursor string
}

type FetchFunc[T any] func(ctx context.Context, cursor string) (Page[T], error)

type Options struct {
	// Cursor to resume from, empty starts from the first page
	Cursor string
	// MaxPages caps the number of fetches, zero means no cap
	MaxPages int
}

// Pages yields the items of each page in order.
//
// A failed fetch ends the sequence without reporting the error to the caller:
// whatever was yielded before stays valid and iteration simply stops.
// The returned sequence is single-use.
func Pages[T any](ctx context.Context, fetch FetchFunc[T], opts Options) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		cursor := opts.Cursor

		for fetched := 0; opts.MaxPages <= 0 || fetched < opts.MaxPages; fetched++ {
			if ctx.Err() != nil {
				return
			}

			page, err := fetch(ctx, cursor)
			if err != nil {
				slog.WarnContext(ctx, "Page fetch failed, stopping",
					slog.Int("page", fetched+1),
					slog.String("cursor", cursor),
					slog.Any("error", err),
				)
				return
			}

			if !yield(page.Items) {
				return
			}

			if page.Cursor == "" {
				return
			}
			cursor = page.Cursor
		}
	}
}

// Collect drains Pages into a single slice.
func Collect[T any](ctx context.Context, fetch FetchFunc[T], opts Options) []T {
	result := make([]T, 0)
	for items := range Pages(ctx, fetch, opts) {
		result = append(result, items...)
	}
	return result
}
