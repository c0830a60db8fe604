package ocr

// Box is an axis-aligned bounding box normalized to image dimensions, with
// the origin at the bottom-left corner. Each component lies in [0, 1];
// X+Width and Y+Height may exceed 1 by floating-point slack only.
type Box struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Candidate is one ranked text hypothesis for a recognized region.
type Candidate struct {
	Text       string
	Confidence float64
}

// Region is one recognized text area as returned by a Recognizer: its
// bounding box plus up to MaxCandidates candidates, best-ranked first.
type Region struct {
	Candidates []Candidate
	Box        Box
}

// Observation is one accepted text region in a Result. It carries the
// selected candidate's text and confidence along with the region's box.
type Observation struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
}

// Result is the outcome of one recognition pass over one image.
//
// Err is set when the pass itself failed (no decoded image, capability
// failure) and is mutually exclusive with a populated Text. An empty Text
// with a nil Err means no region met the confidence floor. Observations
// preserve the traversal order produced by the recognition capability,
// which is not necessarily top-to-bottom.
type Result struct {
	Err          error
	Text         string
	Confidence   float64
	Observations []Observation
}

// Failed reports whether the pass terminated with an error.
func (r *Result) Failed() bool {
	return r.Err != nil
}

// BatchResult holds one Result per input item. Results is index-aligned
// with the submitted items: slot i always derives from item i, regardless
// of completion order, and no slot is ever left nil.
type BatchResult struct {
	Results     []*Result
	Count       int
	FailedCount int
}
