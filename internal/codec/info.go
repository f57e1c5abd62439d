package codec

import "fmt"

// Header summarizes the IHDR fields of a PNG stream.
type Header struct {
	Width     int
	Height    int
	BitDepth  byte
	ColorType byte
}

// ChunkInfo describes one chunk of a PNG stream for diagnostics.
type ChunkInfo struct {
	Type   string
	Length int
	CRCOK  bool
}

// Info parses the chunk framing of a PNG stream without decoding pixels.
// Unlike Decode it tolerates CRC mismatches and reports them per chunk, so
// damaged files can still be inspected.
func Info(data []byte) (Header, []ChunkInfo, error) {
	if len(data) < len(pngHeader) || string(data[:len(pngHeader)]) != pngHeader {
		return Header{}, nil, FormatError("bad signature")
	}

	var (
		hdr    Header
		chunks []ChunkInfo
	)
	pos := len(pngHeader)
	for {
		c, next, err := nextChunk(data, pos)
		if err != nil {
			return Header{}, chunks, err
		}
		pos = next
		chunks = append(chunks, ChunkInfo{Type: c.typ, Length: len(c.payload), CRCOK: c.crcOK})

		switch c.typ {
		case "IHDR":
			h, err := parseIHDR(c.payload)
			if err != nil {
				return Header{}, chunks, err
			}
			hdr = Header{Width: h.width, Height: h.height, BitDepth: h.bitDepth, ColorType: h.colorType}
		case "IEND":
			if hdr.Width == 0 {
				return Header{}, chunks, FormatError("missing IHDR")
			}
			return hdr, chunks, nil
		}
		if pos >= len(data) {
			return Header{}, chunks, FormatError("missing IEND")
		}
	}
}

// String renders the header the way the inspect command prints it.
func (h Header) String() string {
	return fmt.Sprintf("%dx%d %d-bit %s", h.Width, h.Height, h.BitDepth, ColorTypeName(h.ColorType))
}
