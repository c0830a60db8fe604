package ocr

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"reflect"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

func TestMapLanguages(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"default tag", []string{"en-US"}, []string{"eng"}},
		{"bare tag", []string{"de"}, []string{"deu"}},
		{"case insensitive", []string{"ZH-Hans"}, []string{"chi_sim"}},
		{"passthrough unknown", []string{"osd"}, []string{"osd"}},
		{"dedupe after mapping", []string{"en", "en-US", "en-GB"}, []string{"eng"}},
		{"order preserved", []string{"ja", "en-US"}, []string{"jpn", "eng"}},
		{"blank entries dropped", []string{"", "  ", "fr"}, []string{"fra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapLanguages(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("mapLanguages(%v): got %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeBox(t *testing.T) {
	bounds := image.Rect(0, 0, 100, 200)

	tests := []struct {
		name string
		rect image.Rectangle
		want Box
	}{
		{
			"interior rect",
			image.Rect(10, 20, 60, 50),
			Box{X: 0.1, Y: 0.75, Width: 0.5, Height: 0.15},
		},
		{
			"full image",
			image.Rect(0, 0, 100, 200),
			Box{X: 0, Y: 0, Width: 1, Height: 1},
		},
		{
			"bottom edge",
			image.Rect(0, 180, 100, 200),
			Box{X: 0, Y: 0, Width: 1, Height: 0.1},
		},
	}

	const eps = 1e-9
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeBox(tt.rect, bounds)
			if math.Abs(got.X-tt.want.X) > eps || math.Abs(got.Y-tt.want.Y) > eps ||
				math.Abs(got.Width-tt.want.Width) > eps || math.Abs(got.Height-tt.want.Height) > eps {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNormalizeBox_DegenerateBounds(t *testing.T) {
	got := normalizeBox(image.Rect(0, 0, 5, 5), image.Rect(0, 0, 0, 0))
	if got != (Box{}) {
		t.Errorf("degenerate bounds: got %+v, want zero box", got)
	}
}

// createImageWithText renders text for end-to-end recognition tests.
func createImageWithText(t *testing.T, text string) image.Image {
	t.Helper()

	// basicfont.Face7x13 is 7 pixels wide, 13 pixels tall per character;
	// render small then scale up 4x for legibility to the OCR engine.
	scale := 4
	width := len(text)*7 + 40
	height := 40

	small := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(small, small.Bounds(), image.White, image.Point{}, draw.Src)
	d := &font.Drawer{
		Dst:  small,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(20), Y: fixed.I(25)},
	}
	d.DrawString(text)

	img := image.NewRGBA(image.Rect(0, 0, width*scale, height*scale))
	for y := 0; y < height*scale; y++ {
		for x := 0; x < width*scale; x++ {
			img.Set(x, y, small.At(x/scale, y/scale))
		}
	}
	return img
}

func TestTesseract_Recognize(t *testing.T) {
	rec := NewTesseract()
	if !rec.Info().Available {
		t.Skip("tesseract not available")
	}

	img := createImageWithText(t, "HELLO WORLD")
	regions, err := rec.Recognize(img, DefaultOptions())
	if err != nil {
		t.Skipf("recognition unavailable: %v", err)
	}
	if len(regions) == 0 {
		t.Fatal("expected at least one region")
	}

	const eps = 0.01
	for _, r := range regions {
		if len(r.Candidates) == 0 {
			t.Error("region without candidates")
		}
		b := r.Box
		if b.X < 0 || b.Y < 0 || b.Width < 0 || b.Height < 0 {
			t.Errorf("negative box component: %+v", b)
		}
		if b.X+b.Width > 1+eps || b.Y+b.Height > 1+eps {
			t.Errorf("box exceeds normalized bounds: %+v", b)
		}
	}
}

func TestTesseract_Info(t *testing.T) {
	info := NewTesseract().Info()
	if info.Backend != "tesseract" {
		t.Errorf("backend: got %s, want tesseract", info.Backend)
	}
	if info.Available && info.Version == "" {
		t.Error("available backend must report a version")
	}
}
