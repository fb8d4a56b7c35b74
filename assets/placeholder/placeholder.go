// Package placeholder draws the artwork shown while a poster or backdrop is
// missing, loading or broken.
package placeholder

import (
	"image"
	"image/color"

	"github.com/depeter/cinematv/assets/raster"
)

// Scheme is the pair of colors a placeholder is drawn in.
type Scheme struct {
	Top, Bottom color.RGBA // background gradient
	Mark        color.RGBA // film frame and play mark
}

var (
	Light = Scheme{
		Top:    color.RGBA{R: 0xE5, G: 0xE7, B: 0xEB, A: 0xFF},
		Bottom: color.RGBA{R: 0xCB, G: 0xD5, B: 0xE1, A: 0xFF},
		Mark:   color.RGBA{R: 0x64, G: 0x74, B: 0x8B, A: 0xFF},
	}
	Dark = Scheme{
		Top:    color.RGBA{R: 0x1E, G: 0x29, B: 0x3B, A: 0xFF},
		Bottom: color.RGBA{R: 0x0F, G: 0x17, B: 0x2A, A: 0xFF},
		Mark:   color.RGBA{R: 0x64, G: 0x74, B: 0x8B, A: 0xFF},
	}
)

// Poster draws a w by h portrait placeholder: a gradient with a film strip
// along both edges and a play mark in the middle.
func Poster(w, h int, sc Scheme) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	raster.VerticalGradient(img, sc.Top, sc.Bottom)

	fw, fh := float64(w), float64(h)
	strip := fw * 0.08
	hole := strip * 0.5
	for y := hole; y+hole < fh; y += hole * 2.2 {
		raster.FillRoundedRect(img, strip*0.25, y, hole, hole, hole*0.25, sc.Mark)
		raster.FillRoundedRect(img, fw-strip*0.25-hole, y, hole, hole, hole*0.25, sc.Mark)
	}
	drawMark(img, fw/2, fh/2, min(fw, fh)*0.14, sc)
	return img
}

// Backdrop draws a w by h landscape placeholder.
func Backdrop(w, h int, sc Scheme) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	raster.VerticalGradient(img, sc.Top, sc.Bottom)
	drawMark(img, float64(w)*0.75, float64(h)*0.45, float64(h)*0.12, sc)
	return img
}

func drawMark(img *image.RGBA, cx, cy, r float64, sc Scheme) {
	ring := sc.Mark
	ring.A = 0x60
	ring.R, ring.G, ring.B = premul(ring)
	raster.FillCircle(img, cx, cy, r, ring)
	raster.FillTriangleRight(img, cx-r*0.45, cx+r*0.65, cy, r*0.6, sc.Mark)
}

func premul(c color.RGBA) (r, g, b uint8) {
	a := uint32(c.A)
	return uint8(uint32(c.R) * a / 0xFF), uint8(uint32(c.G) * a / 0xFF), uint8(uint32(c.B) * a / 0xFF)
}
