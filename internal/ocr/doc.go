// Package ocr defines the text-recognition capability and builds aggregated
// results from its raw output.
//
// The capability is modeled as the single-method Recognizer interface:
// given a decoded image and Options, it returns a list of Regions, each
// carrying up to MaxCandidates ranked text Candidates and a bounding box
// normalized to image dimensions with a bottom-left origin. The production
// implementation, Tesseract, delegates to the Tesseract engine via
// gosseract; tests substitute deterministic RecognizerFunc stubs.
//
// # Result assembly
//
// Recognize is the recognition invoker. For each region it selects the
// first ranked candidate whose confidence meets the MinConfidence floor;
// regions with no qualifying candidate are skipped entirely. Selected texts
// are concatenated in the capability's traversal order, separated by a
// space, or by a newline when a region's bottom edge drops markedly below
// the previous accepted region's. The result confidence is the arithmetic
// mean over accepted candidates, 0.0 when none qualified.
//
// Recognize never returns an error: failures of the pass itself are
// recorded in Result.Err, which keeps the call composable inside concurrent
// batch execution where a raised error from one item must not disturb the
// others.
package ocr
