package codec

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"

	"github.com/klauspost/compress/zlib"
)

// Encode serializes img as a minimal RGBA PNG: IHDR, a single IDAT holding
// unfiltered scanlines deflated at maximum compression, and IEND.  Scanlines
// stay unfiltered because the payloads are small icons; simplicity wins over
// the few bytes filtering would save.
func Encode(img *image.NRGBA) []byte {
	w, h := img.Rect.Dx(), img.Rect.Dy()

	raw := make([]byte, 0, h*(1+w*4))
	for y := 0; y < h; y++ {
		off := img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y+y)
		raw = append(raw, ftNone)
		raw = append(raw, img.Pix[off:off+w*4]...)
	}

	var z bytes.Buffer
	zw, _ := zlib.NewWriterLevel(&z, zlib.BestCompression)
	zw.Write(raw)
	zw.Close()

	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], uint32(w))
	binary.BigEndian.PutUint32(ihdr[4:8], uint32(h))
	ihdr[8] = 8
	ihdr[9] = ctTrueColorAlpha
	// Compression, filter and interlace fields stay 0.

	var out bytes.Buffer
	out.Grow(len(pngHeader) + 3*12 + len(ihdr) + z.Len())
	out.WriteString(pngHeader)
	writeChunk(&out, "IHDR", ihdr)
	writeChunk(&out, "IDAT", z.Bytes())
	writeChunk(&out, "IEND", nil)
	return out.Bytes()
}

// writeChunk frames one chunk: length, type, payload, then a CRC32 computed
// over type and payload.  The CRC is always recomputed, never copied.
func writeChunk(buf *bytes.Buffer, typ string, payload []byte) {
	var hdr [8]byte
	binary.BigEndian.PutUint32(hdr[:4], uint32(len(payload)))
	copy(hdr[4:], typ)
	buf.Write(hdr[:])
	buf.Write(payload)

	crc := crc32.NewIEEE()
	crc.Write(hdr[4:])
	crc.Write(payload)
	var sum [4]byte
	binary.BigEndian.PutUint32(sum[:], crc.Sum32())
	buf.Write(sum[:])
}
