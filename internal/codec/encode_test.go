package codec

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/png"
	"testing"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	// Deterministic noise exercises every byte value in every channel.
	img := image.NewNRGBA(image.Rect(0, 0, 31, 13))
	seed := uint32(0x2545f491)
	for i := range img.Pix {
		seed = seed*1664525 + 1013904223
		img.Pix[i] = uint8(seed >> 24)
	}

	got, err := Decode(Encode(img))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Rect != img.Rect {
		t.Fatalf("bounds: got %v, want %v", got.Rect, img.Rect)
	}
	if !bytes.Equal(got.Pix, img.Pix) {
		t.Fatal("round-trip changed pixel data")
	}
}

func TestEncode_ChunkIntegrity(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 5, 3))
	for i := range img.Pix {
		img.Pix[i] = uint8(i * 7)
	}
	data := Encode(img)

	if string(data[:8]) != pngHeader {
		t.Fatal("missing PNG signature")
	}

	var types []string
	pos := 8
	for pos < len(data) {
		length := int(binary.BigEndian.Uint32(data[pos:]))
		typ := string(data[pos+4 : pos+8])
		sum := binary.BigEndian.Uint32(data[pos+8+length:])
		if want := crc32.ChecksumIEEE(data[pos+4 : pos+8+length]); sum != want {
			t.Errorf("%s chunk: crc %08x, want %08x", typ, sum, want)
		}
		types = append(types, typ)
		pos += 12 + length
	}

	want := []string{"IHDR", "IDAT", "IEND"}
	if len(types) != len(want) {
		t.Fatalf("chunk sequence %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Fatalf("chunk sequence %v, want %v", types, want)
		}
	}

	// IHDR: 8-bit RGBA, remaining fields zero.
	ihdr := data[16 : 16+13]
	if w := binary.BigEndian.Uint32(ihdr[0:4]); w != 5 {
		t.Errorf("width %d, want 5", w)
	}
	if h := binary.BigEndian.Uint32(ihdr[4:8]); h != 3 {
		t.Errorf("height %d, want 3", h)
	}
	if ihdr[8] != 8 || ihdr[9] != ctTrueColorAlpha {
		t.Errorf("depth/color = %d/%d, want 8/%d", ihdr[8], ihdr[9], ctTrueColorAlpha)
	}
	if ihdr[10] != 0 || ihdr[11] != 0 || ihdr[12] != 0 {
		t.Error("compression/filter/interlace fields must be zero")
	}
}

// TestEncode_StdlibDecodes checks the emitted stream against an independent
// implementation.
func TestEncode_StdlibDecodes(t *testing.T) {
	img := gradientNRGBA(20, 11, true)

	decoded, err := png.Decode(bytes.NewReader(Encode(img)))
	if err != nil {
		t.Fatalf("stdlib rejected encoder output: %v", err)
	}
	got, ok := decoded.(*image.NRGBA)
	if !ok {
		t.Fatalf("stdlib decoded to %T, want *image.NRGBA", decoded)
	}
	if !bytes.Equal(got.Pix, img.Pix) {
		t.Fatal("stdlib decode disagrees with encoder input")
	}
}

func TestEncode_SubimageOffset(t *testing.T) {
	base := gradientNRGBA(16, 16, true)
	sub := base.SubImage(image.Rect(4, 4, 12, 12)).(*image.NRGBA)

	got, err := Decode(Encode(sub))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Rect.Dx() != 8 || got.Rect.Dy() != 8 {
		t.Fatalf("bounds %v, want 8x8", got.Rect)
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if got.NRGBAAt(x, y) != base.NRGBAAt(x+4, y+4) {
				t.Fatalf("pixel (%d,%d) differs", x, y)
			}
		}
	}
}

func TestInfo(t *testing.T) {
	img := gradientNRGBA(9, 4, false)
	data := Encode(img)

	hdr, chunks, err := Info(data)
	if err != nil {
		t.Fatalf("info: %v", err)
	}
	if hdr.Width != 9 || hdr.Height != 4 || hdr.BitDepth != 8 || hdr.ColorType != ctTrueColorAlpha {
		t.Errorf("header %+v", hdr)
	}
	if hdr.String() != "9x4 8-bit rgba" {
		t.Errorf("header string %q", hdr.String())
	}
	if len(chunks) != 3 {
		t.Fatalf("chunks %v", chunks)
	}
	for _, c := range chunks {
		if !c.CRCOK {
			t.Errorf("%s chunk reported bad CRC", c.Type)
		}
	}
}

func TestInfo_ReportsBadCRC(t *testing.T) {
	data := Encode(gradientNRGBA(6, 6, false))
	data[len(data)-1] ^= 0xff // corrupt IEND CRC

	_, chunks, err := Info(data)
	if err != nil {
		t.Fatalf("info should tolerate CRC damage: %v", err)
	}
	last := chunks[len(chunks)-1]
	if last.Type != "IEND" || last.CRCOK {
		t.Errorf("expected IEND with bad CRC, got %+v", last)
	}

	// Decode, by contrast, must refuse it.
	if _, err := Decode(data); err == nil {
		t.Error("decode accepted a corrupted chunk")
	}
}
