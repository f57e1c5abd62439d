package codec

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"image"
	"io"

	"github.com/klauspost/compress/zlib"
)

// header holds the fields of the IHDR chunk this codec cares about.
type header struct {
	width, height int
	bitDepth      byte
	colorType     byte
	interlace     byte
}

// chunk is one raw chunk of a PNG stream.
type chunk struct {
	typ     string
	payload []byte
	crcOK   bool
}

// nextChunk reads the chunk starting at pos.  It returns the chunk and the
// offset of the following one.  The CRC is computed but not enforced here so
// that Info can report per-chunk status; Decode fails on the first mismatch.
func nextChunk(data []byte, pos int) (chunk, int, error) {
	if pos+8 > len(data) {
		return chunk{}, 0, FormatError("truncated chunk header")
	}
	length := int(binary.BigEndian.Uint32(data[pos:]))
	typ := string(data[pos+4 : pos+8])
	if length < 0 || pos+12+length > len(data) {
		return chunk{}, 0, FormatError("truncated " + typ + " chunk")
	}
	sum := binary.BigEndian.Uint32(data[pos+8+length:])
	c := chunk{
		typ:     typ,
		payload: data[pos+8 : pos+8+length],
		crcOK:   crc32.ChecksumIEEE(data[pos+4:pos+8+length]) == sum,
	}
	return c, pos + 12 + length, nil
}

func parseIHDR(payload []byte) (header, error) {
	if len(payload) != 13 {
		return header{}, FormatError("bad IHDR length")
	}
	h := header{
		width:     int(int32(binary.BigEndian.Uint32(payload[0:4]))),
		height:    int(int32(binary.BigEndian.Uint32(payload[4:8]))),
		bitDepth:  payload[8],
		colorType: payload[9],
		interlace: payload[12],
	}
	if h.width <= 0 || h.height <= 0 {
		return header{}, FormatError("non-positive dimension")
	}
	if payload[10] != 0 {
		return header{}, UnsupportedError("compression method")
	}
	if payload[11] != 0 {
		return header{}, UnsupportedError("filter method")
	}
	return h, nil
}

// bytesPerPixel maps a color type to its bytes per pixel at depth 8.
func bytesPerPixel(colorType byte) (int, error) {
	switch colorType {
	case ctGrayscale:
		return 1, nil
	case ctTrueColor:
		return 3, nil
	case ctGrayscaleAlpha:
		return 2, nil
	case ctTrueColorAlpha:
		return 4, nil
	}
	return 0, UnsupportedError(fmt.Sprintf("color type %d (%s)", colorType, ColorTypeName(colorType)))
}

// Decode parses a PNG byte stream into a non-premultiplied RGBA image.
//
// It fails with FormatError on a bad signature, malformed chunk framing or a
// chunk CRC mismatch, with UnsupportedError on palette images, interlacing or
// bit depths other than 8, and with DecompressionError when the concatenated
// IDAT stream does not inflate.
func Decode(data []byte) (*image.NRGBA, error) {
	if len(data) < len(pngHeader) || string(data[:len(pngHeader)]) != pngHeader {
		return nil, FormatError("bad signature")
	}

	var (
		h        header
		seenIHDR bool
		idat     []byte
	)
	pos := len(pngHeader)
	for {
		c, next, err := nextChunk(data, pos)
		if err != nil {
			return nil, err
		}
		if !c.crcOK {
			return nil, FormatError("crc mismatch in " + c.typ + " chunk")
		}
		pos = next

		switch c.typ {
		case "IHDR":
			if seenIHDR {
				return nil, FormatError("duplicate IHDR")
			}
			if h, err = parseIHDR(c.payload); err != nil {
				return nil, err
			}
			seenIHDR = true
		case "IDAT":
			if !seenIHDR {
				return nil, FormatError("IDAT before IHDR")
			}
			idat = append(idat, c.payload...)
		case "IEND":
			if !seenIHDR {
				return nil, FormatError("missing IHDR")
			}
			return expand(h, idat)
		default:
			// Ancillary chunk; framing and CRC verified above, content ignored.
		}
		if pos >= len(data) {
			return nil, FormatError("missing IEND")
		}
	}
}

// expand inflates the image data stream, reverses the per-row filters and
// widens every pixel to RGBA.
func expand(h header, idat []byte) (*image.NRGBA, error) {
	if h.bitDepth != 8 {
		return nil, UnsupportedError(fmt.Sprintf("bit depth %d", h.bitDepth))
	}
	if h.interlace != 0 {
		return nil, UnsupportedError("interlaced image")
	}
	bpp, err := bytesPerPixel(h.colorType)
	if err != nil {
		return nil, err
	}

	zr, err := zlib.NewReader(bytes.NewReader(idat))
	if err != nil {
		return nil, &DecompressionError{Err: err}
	}
	raw, err := io.ReadAll(zr)
	if err != nil {
		return nil, &DecompressionError{Err: err}
	}
	zr.Close()

	stride := h.width * bpp
	if len(raw) < h.height*(1+stride) {
		return nil, FormatError("not enough pixel data")
	}

	img := image.NewNRGBA(image.Rect(0, 0, h.width, h.height))
	widen := rowExpander(h.colorType, h.width)

	// The first row reconstructs against an implicit all-zero previous row.
	prev := make([]byte, stride)
	for y := 0; y < h.height; y++ {
		off := y * (1 + stride)
		row := raw[off+1 : off+1+stride]
		if err := reconstruct(raw[off], row, prev, bpp); err != nil {
			return nil, err
		}
		widen(img.Pix[y*img.Stride:(y+1)*img.Stride], row)
		prev = row
	}
	return img, nil
}

// reconstruct reverses one scanline filter in place.  cur and prev are the
// filtered current row and the already-reconstructed previous row.
func reconstruct(filter byte, cur, prev []byte, bpp int) error {
	switch filter {
	case ftNone:
	case ftSub:
		for i := bpp; i < len(cur); i++ {
			cur[i] += cur[i-bpp]
		}
	case ftUp:
		for i, p := range prev {
			cur[i] += p
		}
	case ftAverage:
		for i := 0; i < bpp && i < len(cur); i++ {
			cur[i] += prev[i] / 2
		}
		for i := bpp; i < len(cur); i++ {
			cur[i] += uint8((int(cur[i-bpp]) + int(prev[i])) / 2)
		}
	case ftPaeth:
		for i := range cur {
			var a, c int
			if i >= bpp {
				a, c = int(cur[i-bpp]), int(prev[i-bpp])
			}
			cur[i] += uint8(paeth(a, int(prev[i]), c))
		}
	default:
		return FormatError(fmt.Sprintf("bad filter type %d", filter))
	}
	return nil
}

// paeth picks whichever of a (left), b (above), c (above-left) is closest to
// a+b-c, preferring a, then b, on ties.
func paeth(a, b, c int) int {
	p := a + b - c
	pa, pb, pc := iabs(p-a), iabs(p-b), iabs(p-c)
	switch {
	case pa <= pb && pa <= pc:
		return a
	case pb <= pc:
		return b
	default:
		return c
	}
}

// rowExpander returns the channel-expansion function for one color type,
// keeping the per-type dispatch out of the pixel loop.
func rowExpander(colorType byte, width int) func(dst, row []byte) {
	switch colorType {
	case ctTrueColorAlpha:
		return func(dst, row []byte) {
			copy(dst, row[:width*4])
		}
	case ctTrueColor:
		return func(dst, row []byte) {
			for x := 0; x < width; x++ {
				dst[x*4+0] = row[x*3+0]
				dst[x*4+1] = row[x*3+1]
				dst[x*4+2] = row[x*3+2]
				dst[x*4+3] = 0xff
			}
		}
	case ctGrayscaleAlpha:
		return func(dst, row []byte) {
			for x := 0; x < width; x++ {
				g := row[x*2]
				dst[x*4+0] = g
				dst[x*4+1] = g
				dst[x*4+2] = g
				dst[x*4+3] = row[x*2+1]
			}
		}
	default: // ctGrayscale; bytesPerPixel already rejected the rest
		return func(dst, row []byte) {
			for x := 0; x < width; x++ {
				g := row[x]
				dst[x*4+0] = g
				dst[x*4+1] = g
				dst[x*4+2] = g
				dst[x*4+3] = 0xff
			}
		}
	}
}

func iabs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
