package engine

import (
	"github.com/ironsheep/ocr-batch-mcp/internal/imaging"
	"github.com/ironsheep/ocr-batch-mcp/internal/ocr"
)

// Engine ties the image source resolver and a recognition capability
// together and exposes the single-image and batch entry points.
type Engine struct {
	recognizer ocr.Recognizer
}

// New creates an engine backed by the given recognition capability.
func New(rec ocr.Recognizer) *Engine {
	return &Engine{recognizer: rec}
}

// Recognize runs the full resolve, preprocess, recognize pipeline for one
// source. It never returns an error: resolve and recognition failures are
// reported through Result.Err so per-item outcomes compose inside a batch.
//
// The decoded image is owned by this call end to end; it is dropped before
// the call returns and never retained or shared.
func (e *Engine) Recognize(src imaging.Source, opts ocr.Options) *ocr.Result {
	img, err := imaging.Resolve(src)
	if err != nil {
		return &ocr.Result{Err: err}
	}
	img = imaging.Preprocess(img, opts.Level == ocr.LevelFast)
	return ocr.Recognize(e.recognizer, img, opts)
}
