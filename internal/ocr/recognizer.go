package ocr

import "image"

// MaxCandidates is the number of ranked hypotheses requested per region.
// Recognizers may return fewer; extra candidates beyond this count are
// ignored during selection.
const MaxCandidates = 5

// Recognizer is the text-recognition capability: given a decoded image and
// options, it returns the recognized regions with their ranked candidates.
// Implementations must be safe for concurrent calls; each call is otherwise
// independent.
type Recognizer interface {
	Recognize(img image.Image, opts Options) ([]Region, error)
}

// RecognizerFunc adapts a plain function to the Recognizer interface.
type RecognizerFunc func(img image.Image, opts Options) ([]Region, error)

// Recognize calls f.
func (f RecognizerFunc) Recognize(img image.Image, opts Options) ([]Region, error) {
	return f(img, opts)
}
