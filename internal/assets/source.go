package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/htz/claude-watch/internal/codec"
)

// LoadSource reads the sparkle source image and normalizes it to NRGBA.
// PNG files go through the in-tree codec; other formats fall back to the
// registered stdlib/x-image decoders.  When maxDim > 0, sources larger than
// maxDim on either axis are downscaled first so per-pixel sampling stays
// cheap at render time.
func LoadSource(path string, maxDim int) (*image.NRGBA, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}

	var img image.Image
	if strings.EqualFold(filepath.Ext(path), ".png") {
		img, err = codec.Decode(data)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
		}
	} else {
		img, _, err = image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
		}
	}

	out := imaging.Clone(img)
	b := out.Bounds()
	if maxDim > 0 && (b.Dx() > maxDim || b.Dy() > maxDim) {
		out = imaging.Fit(out, maxDim, maxDim, imaging.Lanczos)
	}
	return out, nil
}
