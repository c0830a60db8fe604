package engine

import (
	"github.com/ironsheep/ocr-batch-mcp/internal/imaging"
	"github.com/ironsheep/ocr-batch-mcp/internal/ocr"
)

// Future delivers the outcome of a background call exactly once: either a
// value or an error, never both, never neither. There is no cancellation;
// once dispatched, the work runs to completion even if every caller
// abandons the future. Recognition passes are short-lived and
// non-resumable, so tearing one down mid-flight buys nothing.
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Go runs fn on its own goroutine and returns a future for its outcome,
// leaving the calling goroutine free immediately.
func Go[T any](fn func() (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.val, f.err = fn()
	}()
	return f
}

// Done returns a channel that is closed once the outcome is available.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the outcome is available. It is safe to call from any
// number of goroutines; every caller observes the same outcome.
func (f *Future[T]) Wait() (T, error) {
	<-f.done
	return f.val, f.err
}

// RecognizeAsync dispatches a single-image recognition pass to a worker
// goroutine and returns immediately. The future's error is always nil;
// per-item failures are inside the Result.
func (e *Engine) RecognizeAsync(src imaging.Source, opts ocr.Options) *Future[*ocr.Result] {
	return Go(func() (*ocr.Result, error) {
		return e.Recognize(src, opts), nil
	})
}

// RecognizeBatchAsync dispatches a batch call to a worker goroutine and
// returns immediately. The future rejects with the batch-level error, if
// any.
func (e *Engine) RecognizeBatchAsync(items []imaging.Source, opts ocr.BatchOptions) *Future[*ocr.BatchResult] {
	return Go(func() (*ocr.BatchResult, error) {
		return e.RecognizeBatch(items, opts)
	})
}
