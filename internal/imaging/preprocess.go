package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	// fastMaxEdge bounds the longest edge in fast mode. Tesseract's runtime
	// grows with pixel count; 1600px keeps short-latency passes cheap while
	// leaving typical screenshot text legible.
	fastMaxEdge = 1600

	// darkCutoff is the mean perceptual lightness below which an image is
	// treated as light-on-dark and inverted before recognition.
	darkCutoff = 0.35

	// lightnessGrid caps the per-axis sample count for the lightness probe.
	lightnessGrid = 64
)

// Preprocess prepares a decoded image for a recognition pass. The image is
// converted to grayscale, and inverted when the background is dark, since
// the recognition backend expects dark glyphs on a light background. Fast
// mode additionally downscales oversized images to bound latency.
//
// The input image is never mutated; a new image is returned.
func Preprocess(img image.Image, fast bool) image.Image {
	if fast {
		bounds := img.Bounds()
		if bounds.Dx() > fastMaxEdge || bounds.Dy() > fastMaxEdge {
			img = imaging.Fit(img, fastMaxEdge, fastMaxEdge, imaging.Linear)
		}
	}

	gray := effect.Grayscale(img)
	if meanLightness(gray) < darkCutoff {
		return effect.Invert(gray)
	}
	return gray
}

// meanLightness samples the image on a coarse grid and returns the mean
// CIE-Lab lightness (0 = black, 1 = white).
func meanLightness(img image.Image) float64 {
	bounds := img.Bounds()
	if bounds.Empty() {
		return 1.0
	}

	stepX := bounds.Dx() / lightnessGrid
	if stepX < 1 {
		stepX = 1
	}
	stepY := bounds.Dy() / lightnessGrid
	if stepY < 1 {
		stepY = 1
	}

	var sum float64
	var n int
	for y := bounds.Min.Y; y < bounds.Max.Y; y += stepY {
		for x := bounds.Min.X; x < bounds.Max.X; x += stepX {
			c, ok := colorful.MakeColor(img.At(x, y))
			if !ok {
				continue
			}
			l, _, _ := c.Lab()
			sum += l
			n++
		}
	}
	if n == 0 {
		return 1.0
	}
	return sum / float64(n)
}
