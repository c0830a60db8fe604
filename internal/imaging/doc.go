// Package imaging resolves heterogeneous image inputs into decoded images
// and prepares them for text recognition.
//
// A Source is either a filesystem path or an in-memory encoded buffer.
// Resolve validates and decodes it into a standard image.Image; path inputs
// are checked against a fixed extension allow-list (jpg, jpeg, png, tiff,
// tif, gif, bmp) before any bytes are read. Failures are classified with
// the sentinel errors ErrNotFound, ErrUnsupportedFormat, and
// ErrDecodeFailure, matched via errors.Is.
//
// # Ownership
//
// A decoded image belongs to the recognition pass that requested it. The
// resolver keeps no cache and no references: once Resolve returns, the only
// copy is the caller's, and it is expected to be dropped when the pass
// completes. Decoding is pure; input bytes are never mutated.
//
// # Preprocessing
//
// Preprocess applies the transformations the recognition backend benefits
// from: grayscale conversion, inversion of light-on-dark images (detected
// by mean perceptual lightness), and, in fast mode, downscaling of
// oversized images.
package imaging
