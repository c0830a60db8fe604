package engine

import (
	"errors"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/ironsheep/ocr-batch-mcp/internal/imaging"
	"github.com/ironsheep/ocr-batch-mcp/internal/ocr"
)

// ErrEmptyBatch is returned when a batch call is issued with no items.
var ErrEmptyBatch = errors.New("no images provided")

// RecognizeBatch runs the recognition pipeline for every item, at most
// MaxConcurrency passes at a time, and returns one result slot per item.
//
// The returned error is non-nil only for batch-level failures detected
// before any work is dispatched (an empty item list). Per-item failures --
// resolve errors, recognition errors -- stay confined to that item's slot
// and never abort the rest of the batch.
//
// Results[i] always derives from items[i]: the slot index is fixed at
// dispatch time, so completion order is irrelevant to output order. The
// call returns only after every slot has been filled.
func (e *Engine) RecognizeBatch(items []imaging.Source, opts ocr.BatchOptions) (*ocr.BatchResult, error) {
	if len(items) == 0 {
		return nil, ErrEmptyBatch
	}

	limit := opts.MaxConcurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	results := make([]*ocr.Result, len(items))
	var failed atomic.Int64

	// SetLimit is the admission gate: at most limit passes in flight, the
	// rest queued until a slot frees. Workers write only their own slot and
	// the atomic counter, so no further synchronization is needed.
	var group errgroup.Group
	group.SetLimit(limit)
	for i, src := range items {
		i, src := i, src
		group.Go(func() error {
			res := e.Recognize(src, opts.Options)
			results[i] = res
			if res.Err != nil {
				failed.Add(1)
			}
			return nil
		})
	}
	// Workers never return errors; Wait is purely the join barrier.
	_ = group.Wait()

	return &ocr.BatchResult{
		Results:     results,
		Count:       len(results),
		FailedCount: int(failed.Load()),
	}, nil
}
