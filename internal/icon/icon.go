// Package icon rasterizes the claude-watch menu bar icon: a rounded eye with
// the sparkle mark as its pupil.  Output is black-on-transparent so macOS
// treats it as a template image and applies theme tinting itself.
//
// Geometry is authored in a 32-unit design space and scaled by size/32 at
// render time.  Rendering is a pure function of (size, source): no I/O, no
// randomness, no shared state between calls.
package icon

import (
	"image"
	"math"
)

// Eye geometry in design-space units.
const (
	designSize = 32.0

	eyeCX = 16.0
	eyeCY = 16.0

	eyeHalfWidth  = 14.0
	eyeHalfHeight = 10.0 // tall, rounded eye so the pupil stays visible

	sparkleRadius = 7.0
	sparkleInk    = 0.9 // pupil alpha relative to the outline's full black

	strokeWidth = 2.0
	outerStroke = 1.2
	outerMargin = 2.0
)

// eye carries the two-arc lens geometry precomputed for one render size.
// The outline is the intersection of two circular arcs whose radius is
// chosen so each arc passes through the eye corners and its apex.
type eye struct {
	scale   float64
	arcR    float64
	upperCY float64
	lowerCY float64
	stroke  float64
	outer   float64
}

func newEye(size int) eye {
	s := float64(size) / designSize
	r := (eyeHalfWidth*eyeHalfWidth + eyeHalfHeight*eyeHalfHeight) / (2 * eyeHalfHeight)
	return eye{
		scale:   s,
		arcR:    r,
		upperCY: eyeCY + (r - eyeHalfHeight),
		lowerCY: eyeCY - (r - eyeHalfHeight),
		stroke:  strokeWidth * s,
		outer:   outerStroke * s,
	}
}

// Render rasterizes the icon at size×size pixels, sampling the pupil from
// the alpha channel of src.  Per-pixel alpha is the maximum of the
// independent ink contributions (outline, pupil, outer edge); color is
// always pure black.
func Render(size int, src *image.NRGBA) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, size, size))
	e := newEye(size)

	for py := 0; py < size; py++ {
		for px := 0; px < size; px++ {
			dx := float64(px) / e.scale
			dy := float64(py) / e.scale

			// Signed margins to the two arc boundaries; positive means
			// inside that arc's radius.
			edgeUpper := e.arcR - dist(dx, dy, eyeCX, e.upperCY)
			edgeLower := e.arcR - dist(dx, dy, eyeCX, e.lowerCY)

			var alpha float64
			if edgeUpper > 0 && edgeLower > 0 {
				alpha = math.Max(
					e.outlineInk(edgeUpper, edgeLower),
					e.pupilInk(src, dx, dy),
				)
			} else {
				alpha = e.edgeInk(dx, edgeUpper, edgeLower)
			}

			if alpha > 0 {
				i := out.PixOffset(px, py)
				out.Pix[i+3] = clampByte(alpha)
			}
		}
	}
	return out
}

// outlineInk is the inner stroke: full black on the lens boundary, fading
// linearly to transparent strokeWidth pixels inward.
func (e eye) outlineInk(edgeUpper, edgeLower float64) float64 {
	edgeDist := math.Min(edgeUpper, edgeLower) * e.scale
	if edgeDist >= e.stroke {
		return 0
	}
	return (1 - edgeDist/e.stroke) * 255
}

// pupilInk samples the sparkle source image, logically centered and scaled
// to fill a square of side sparkleRadius around the eye center.
func (e eye) pupilInk(src *image.NRGBA, dx, dy float64) float64 {
	relX := dx - eyeCX
	relY := dy - eyeCY
	if dist(dx, dy, eyeCX, eyeCY) >= sparkleRadius+0.5 {
		return 0
	}
	srcW := src.Rect.Dx()
	srcH := src.Rect.Dy()
	srcX := (relX/sparkleRadius*0.5 + 0.5) * float64(srcW)
	srcY := (relY/sparkleRadius*0.5 + 0.5) * float64(srcH)
	sampled := sampleAlpha(src, srcX, srcY)
	if sampled <= 0 {
		return 0
	}
	return sampled * sparkleInk
}

// edgeInk is the thin anti-aliasing stroke just outside the lens.
func (e eye) edgeInk(dx, edgeUpper, edgeLower float64) float64 {
	if math.Abs(dx-eyeCX) >= eyeHalfWidth+outerMargin {
		return 0
	}
	var outUpper, outLower float64
	if edgeUpper <= 0 {
		outUpper = -edgeUpper
	}
	if edgeLower <= 0 {
		outLower = -edgeLower
	}
	outDist := math.Max(outUpper, outLower)
	if outDist >= e.outer {
		return 0
	}
	return (1 - outDist/e.outer) * 255
}

func dist(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x1-x2, y1-y2)
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
