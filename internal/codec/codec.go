// Package codec implements the minimal PNG codec behind the icon pipeline.
//
// The decoder accepts 8-bit Grayscale, RGB, GrayscaleAlpha and RGBA images
// and reconstructs all five scanline filters.  Palette images, interlacing
// and bit depths other than 8 are rejected with UnsupportedError rather than
// misdecoded.  The encoder emits the minimal valid PNG the macOS template
// icons need: IHDR, a single IDAT of unfiltered RGBA scanlines, IEND.
//
// Chunk CRCs are verified on decode and always recomputed on encode.
package codec

const pngHeader = "\x89PNG\r\n\x1a\n"

// Color types, as per the PNG spec.
const (
	ctGrayscale      = 0
	ctTrueColor      = 2
	ctPalette        = 3
	ctGrayscaleAlpha = 4
	ctTrueColorAlpha = 6
)

// Filter types, as per the PNG spec.
const (
	ftNone    = 0
	ftSub     = 1
	ftUp      = 2
	ftAverage = 3
	ftPaeth   = 4
)

// A FormatError reports that the input is not a valid PNG.
type FormatError string

func (e FormatError) Error() string { return "codec: invalid PNG: " + string(e) }

// An UnsupportedError reports that the input uses a valid but
// unimplemented PNG feature.
type UnsupportedError string

func (e UnsupportedError) Error() string { return "codec: unsupported PNG feature: " + string(e) }

// A DecompressionError wraps a failure inflating the image data stream.
type DecompressionError struct {
	Err error
}

func (e *DecompressionError) Error() string { return "codec: inflate image data: " + e.Err.Error() }
func (e *DecompressionError) Unwrap() error { return e.Err }

// ColorTypeName returns a readable name for a PNG color type byte.
func ColorTypeName(ct byte) string {
	switch ct {
	case ctGrayscale:
		return "grayscale"
	case ctTrueColor:
		return "rgb"
	case ctPalette:
		return "palette"
	case ctGrayscaleAlpha:
		return "grayscale+alpha"
	case ctTrueColorAlpha:
		return "rgba"
	}
	return "unknown"
}
