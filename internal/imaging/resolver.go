package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// Resolver error taxonomy. Callers distinguish the failure class with
// errors.Is; the wrapped message carries the offending path or decode detail.
var (
	ErrNotFound          = errors.New("image not found")
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrDecodeFailure     = errors.New("image decode failed")
)

// supportedExtensions is the allow-list applied to path inputs before any
// bytes are read. Buffer inputs are sniffed from content instead.
var supportedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".tiff": true,
	".tif":  true,
	".gif":  true,
	".bmp":  true,
}

// Source identifies one image input: either a filesystem path or an
// in-memory encoded buffer. Exactly one of the two is set.
type Source struct {
	Path   string
	Buffer []byte
}

// FromPath builds a Source referring to an image file on disk.
func FromPath(path string) Source {
	return Source{Path: path}
}

// FromBuffer builds a Source around encoded image bytes already in memory.
func FromBuffer(data []byte) Source {
	return Source{Buffer: data}
}

// IsBuffer reports whether the source carries in-memory bytes rather than a path.
func (s Source) IsBuffer() bool {
	return s.Buffer != nil
}

// Resolve decodes a source into an image. The returned image is owned by the
// caller; the resolver keeps no reference to it and never mutates the input
// bytes. Multi-frame containers (e.g. GIF) decode to their first frame.
//
// Path inputs fail with ErrNotFound when the file does not exist and with
// ErrUnsupportedFormat when the extension is outside the allow-list. Both
// input flavors fail with ErrUnsupportedFormat when the bytes are not a
// recognized container, and with ErrDecodeFailure when a recognized
// container cannot be decoded.
func Resolve(src Source) (image.Image, error) {
	if src.IsBuffer() {
		return decodeBytes(src.Buffer)
	}
	return resolvePath(src.Path)
}

func resolvePath(path string) (image.Image, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !supportedExtensions[ext] {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	return decodeBytes(data)
}

func decodeBytes(data []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailure, err)
	}
	return img, nil
}

// Info contains metadata about an image file on disk.
type Info struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is derived from the file extension: "png", "jpeg", "gif",
	// "tiff", "bmp", or "unknown".
	Format string `json:"format"`

	// ColorDepth indicates the bit depth per channel: "8-bit" or "16-bit".
	ColorDepth string `json:"color_depth"`

	// HasAlpha indicates whether the image has an alpha channel.
	HasAlpha bool `json:"has_alpha"`

	// FileSizeBytes is the size of the image file on disk.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadInfo resolves an image file and returns its metadata. The decoded
// pixels are discarded before returning; only the metadata is kept.
func LoadInfo(path string) (*Info, error) {
	img, err := Resolve(FromPath(path))
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	format := "unknown"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		format = "png"
	case ".jpg", ".jpeg":
		format = "jpeg"
	case ".gif":
		format = "gif"
	case ".tiff", ".tif":
		format = "tiff"
	case ".bmp":
		format = "bmp"
	}

	hasAlpha := false
	colorDepth := "8-bit"
	switch img.(type) {
	case *image.RGBA, *image.NRGBA:
		hasAlpha = true
	case *image.RGBA64, *image.NRGBA64:
		hasAlpha = true
		colorDepth = "16-bit"
	case *image.Gray16:
		colorDepth = "16-bit"
	}

	bounds := img.Bounds()
	return &Info{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        format,
		ColorDepth:    colorDepth,
		HasAlpha:      hasAlpha,
		FileSizeBytes: stat.Size(),
	}, nil
}
