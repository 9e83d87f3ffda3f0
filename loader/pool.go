package loader

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"iptv-toolkit/playlist"
)

// ErrWorkerFailure reports a parse worker that terminated abnormally. A
// worker failure fails the whole load: dropping a chunk silently would
// drop its channels.
var ErrWorkerFailure = errors.New("parse worker failure")

type chunkResult struct {
	channels []*playlist.Channel
	diags    []Diagnostic
}

// runChunks parses every chunk concurrently and returns the per-chunk
// results indexed by chunk sequence. Workers share nothing but read-only
// access to their own rows; each writes its result into its own slot, so
// completion order is irrelevant and no locking is needed.
func runChunks(ctx context.Context, chunks []chunk, opts *loadOptions) ([]chunkResult, error) {
	results := make([]chunkResult, len(chunks))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers)
	for _, c := range chunks {
		c := c
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("%w: chunk %d: %v", ErrWorkerFailure, c.seq, r)
				}
			}()
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			channels, diags := scanRows(c.rows, opts.strictness)
			results[c.seq] = chunkResult{channels: channels, diags: diags}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
