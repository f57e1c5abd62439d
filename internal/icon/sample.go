package icon

import (
	"image"
	"math"
)

// sampleAlpha bilinearly samples the alpha channel of src at (x, y) in
// source pixel coordinates, interpolating first along x and then along y.
// Points outside the image are fully transparent; samples on the last row or
// column clamp to the edge pixel instead of reading past it.
func sampleAlpha(src *image.NRGBA, x, y float64) float64 {
	w := src.Rect.Dx()
	h := src.Rect.Dy()
	if x < 0 || y < 0 || x >= float64(w) || y >= float64(h) {
		return 0
	}

	x0 := int(x)
	y0 := int(y)
	x1 := x0 + 1
	if x1 > w-1 {
		x1 = w - 1
	}
	y1 := y0 + 1
	if y1 > h-1 {
		y1 = h - 1
	}
	fx := x - float64(x0)
	fy := y - float64(y0)

	a00 := alphaAt(src, x0, y0)
	a10 := alphaAt(src, x1, y0)
	a01 := alphaAt(src, x0, y1)
	a11 := alphaAt(src, x1, y1)

	top := a00 + (a10-a00)*fx
	bot := a01 + (a11-a01)*fx
	return math.Trunc(top + (bot-top)*fy)
}

func alphaAt(src *image.NRGBA, x, y int) float64 {
	return float64(src.Pix[src.PixOffset(src.Rect.Min.X+x, src.Rect.Min.Y+y)+3])
}
