package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Tesseract is the production Recognizer, backed by the Tesseract engine
// through gosseract. Each Recognize call uses its own short-lived client:
// gosseract clients are not safe for concurrent use, and a fresh client per
// pass keeps concurrent batch workers independent.
type Tesseract struct{}

// NewTesseract returns a Tesseract-backed recognizer. The Tesseract runtime
// and language data must be installed on the system.
func NewTesseract() *Tesseract {
	return &Tesseract{}
}

// languageCodes maps common BCP-47 language tags to Tesseract traineddata
// codes. Tags without a mapping are passed through unchanged so callers can
// address traineddata files directly.
var languageCodes = map[string]string{
	"en":      "eng",
	"en-us":   "eng",
	"en-gb":   "eng",
	"de":      "deu",
	"de-de":   "deu",
	"fr":      "fra",
	"fr-fr":   "fra",
	"es":      "spa",
	"es-es":   "spa",
	"it":      "ita",
	"pt":      "por",
	"nl":      "nld",
	"ru":      "rus",
	"ja":      "jpn",
	"ja-jp":   "jpn",
	"ko":      "kor",
	"zh-hans": "chi_sim",
	"zh-cn":   "chi_sim",
	"zh-hant": "chi_tra",
	"zh-tw":   "chi_tra",
}

// Recognize runs one Tesseract pass. Regions are returned at text-line
// granularity with a single candidate each; Tesseract does not expose
// alternative hypotheses per line.
func (t *Tesseract) Recognize(img image.Image, opts Options) ([]Region, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	if langs := mapLanguages(opts.Languages); len(langs) > 0 {
		if err := client.SetLanguage(langs...); err != nil {
			return nil, fmt.Errorf("failed to set languages: %w", err)
		}
	}

	// Fast mode skips full page layout analysis.
	mode := gosseract.PSM_AUTO
	if opts.Level == LevelFast {
		mode = gosseract.PSM_SINGLE_BLOCK
	}
	if err := client.SetPageSegMode(mode); err != nil {
		return nil, fmt.Errorf("failed to set segmentation mode: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_TEXTLINE)
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	bounds := img.Bounds()
	regions := make([]Region, 0, len(boxes))
	for _, box := range boxes {
		text := strings.TrimSpace(box.Word)
		if text == "" {
			continue
		}
		regions = append(regions, Region{
			Candidates: []Candidate{{
				Text:       text,
				Confidence: box.Confidence / 100.0,
			}},
			Box: normalizeBox(box.Box, bounds),
		})
	}
	return regions, nil
}

// normalizeBox converts a pixel rectangle (top-left origin, y down) into
// the 0-1 bottom-left coordinate space used by observations.
func normalizeBox(r image.Rectangle, bounds image.Rectangle) Box {
	w := float64(bounds.Dx())
	h := float64(bounds.Dy())
	if w == 0 || h == 0 {
		return Box{}
	}
	return Box{
		X:      float64(r.Min.X-bounds.Min.X) / w,
		Y:      float64(bounds.Max.Y-r.Max.Y) / h,
		Width:  float64(r.Dx()) / w,
		Height: float64(r.Dy()) / h,
	}
}

// mapLanguages translates language tags to Tesseract codes, dropping
// duplicates while preserving order.
func mapLanguages(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		code, ok := languageCodes[strings.ToLower(tag)]
		if !ok {
			code = tag
		}
		if seen[code] {
			continue
		}
		seen[code] = true
		out = append(out, code)
	}
	return out
}

// EngineInfo describes the availability of the recognition backend.
type EngineInfo struct {
	Available bool   `json:"available"`
	Version   string `json:"version,omitempty"`
	Backend   string `json:"backend"`
}

// Info probes the Tesseract runtime and reports its availability.
func (t *Tesseract) Info() EngineInfo {
	client := gosseract.NewClient()
	defer client.Close()

	version := client.Version()
	return EngineInfo{
		Available: version != "",
		Version:   version,
		Backend:   "tesseract",
	}
}
