package ocr

import (
	"errors"
	"fmt"
	"image"
	"strings"
)

// lineBreakThreshold is how far, in normalized bottom-left coordinates, a
// region's bottom edge must drop below the previous accepted region's
// before the assembled text switches from a space to a newline separator.
// The value is tuned to the region ordering produced by the recognition
// capability; its behavior under right-to-left scripts or multi-column
// layouts is untested.
const lineBreakThreshold = 0.1

// Recognize performs one recognition pass over a decoded image and builds
// the aggregated result.
//
// The call is infallible at the type level: a nil image, a missing
// recognizer, or a capability failure is reported through Result.Err, never
// returned, so the call composes safely inside concurrent batch execution.
// The image is only read; the caller retains ownership and is expected to
// drop it once this returns.
func Recognize(rec Recognizer, img image.Image, opts Options) *Result {
	if img == nil {
		return &Result{Err: errors.New("no decoded image")}
	}
	if rec == nil {
		return &Result{Err: errors.New("no recognizer configured")}
	}

	opts = opts.normalized()
	regions, err := rec.Recognize(img, opts)
	if err != nil {
		return &Result{Err: fmt.Errorf("recognition failed: %w", err)}
	}
	return assemble(regions, opts)
}

// assemble converts raw regions into the ordered result: per-region
// candidate selection, deterministic text assembly, and the confidence
// rollup over accepted candidates.
func assemble(regions []Region, opts Options) *Result {
	var (
		text  strings.Builder
		sum   float64
		obs   []Observation
		prevY float64
		first = true
	)

	for _, region := range regions {
		cand, ok := selectCandidate(region, opts.MinConfidence)
		if !ok {
			continue
		}

		if !first {
			if prevY-region.Box.Y > lineBreakThreshold {
				text.WriteByte('\n')
			} else {
				text.WriteByte(' ')
			}
		}
		text.WriteString(cand.Text)

		obs = append(obs, Observation{
			Text:       cand.Text,
			Confidence: cand.Confidence,
			X:          region.Box.X,
			Y:          region.Box.Y,
			Width:      region.Box.Width,
			Height:     region.Box.Height,
		})
		sum += cand.Confidence
		prevY = region.Box.Y
		first = false
	}

	res := &Result{
		Text:         text.String(),
		Observations: obs,
	}
	if len(obs) > 0 {
		res.Confidence = sum / float64(len(obs))
	}
	return res
}

// selectCandidate walks a region's candidates in ranked order and returns
// the first one meeting the confidence floor. A region with no qualifying
// candidate is skipped entirely: it contributes neither an observation nor
// a term in the confidence rollup.
func selectCandidate(region Region, minConfidence float64) (Candidate, bool) {
	candidates := region.Candidates
	if len(candidates) > MaxCandidates {
		candidates = candidates[:MaxCandidates]
	}
	for _, c := range candidates {
		if c.Text == "" {
			continue
		}
		if c.Confidence >= minConfidence {
			return c, true
		}
	}
	return Candidate{}, false
}
