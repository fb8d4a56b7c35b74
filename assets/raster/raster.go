// Package raster has the small software rasterizer used to draw the window
// icon and the placeholder artwork without bundling image files.
package raster

import (
	"image"
	"image/color"
)

// FillRect blends c over the rectangle (x0, y0, w, h), clipped to img.
func FillRect(img *image.RGBA, x0, y0, w, h int, c color.Color) {
	bounds := img.Bounds()
	for y := max(y0, bounds.Min.Y); y < y0+h && y < bounds.Max.Y; y++ {
		for x := max(x0, bounds.Min.X); x < x0+w && x < bounds.Max.X; x++ {
			BlendPixel(img, x, y, c)
		}
	}
}

// FillRoundedRect blends c over a rectangle with corner radius r.
func FillRoundedRect(img *image.RGBA, xf, yf, wf, hf, r float64, c color.Color) {
	bounds := img.Bounds()
	for y := int(yf); y <= int(yf+hf) && y < bounds.Max.Y; y++ {
		for x := int(xf); x <= int(xf+wf) && x < bounds.Max.X; x++ {
			if x < bounds.Min.X || y < bounds.Min.Y {
				continue
			}
			if insideRounded(float64(x), float64(y), xf, yf, wf, hf, r) {
				BlendPixel(img, x, y, c)
			}
		}
	}
}

func insideRounded(fx, fy, xf, yf, wf, hf, r float64) bool {
	var dx, dy float64
	switch {
	case fx < xf+r && fy < yf+r:
		dx, dy = xf+r-fx, yf+r-fy
	case fx > xf+wf-r && fy < yf+r:
		dx, dy = fx-(xf+wf-r), yf+r-fy
	case fx < xf+r && fy > yf+hf-r:
		dx, dy = xf+r-fx, fy-(yf+hf-r)
	case fx > xf+wf-r && fy > yf+hf-r:
		dx, dy = fx-(xf+wf-r), fy-(yf+hf-r)
	default:
		return true
	}
	return dx*dx+dy*dy <= r*r
}

// FillCircle blends c over the disc centered at (cx, cy).
func FillCircle(img *image.RGBA, cx, cy, r float64, c color.Color) {
	bounds := img.Bounds()
	r2 := r * r
	for y := int(cy - r); y <= int(cy+r+1) && y < bounds.Max.Y; y++ {
		for x := int(cx - r); x <= int(cx+r+1) && x < bounds.Max.X; x++ {
			if x < bounds.Min.X || y < bounds.Min.Y {
				continue
			}
			dx := float64(x) - cx
			dy := float64(y) - cy
			if dx*dx+dy*dy <= r2 {
				BlendPixel(img, x, y, c)
			}
		}
	}
}

// FillTriangleRight blends c over an isosceles triangle pointing right, with
// its left edge at x0 and its tip at x1, centered on cy.
func FillTriangleRight(img *image.RGBA, x0, x1, cy, halfH float64, c color.Color) {
	bounds := img.Bounds()
	for y := int(cy - halfH); y <= int(cy+halfH) && y < bounds.Max.Y; y++ {
		if y < bounds.Min.Y {
			continue
		}
		dy := float64(y) - cy
		if dy < 0 {
			dy = -dy
		}
		right := x1 - (x1-x0)*dy/halfH
		for x := int(x0); float64(x) <= right && x < bounds.Max.X; x++ {
			if x >= bounds.Min.X {
				BlendPixel(img, x, y, c)
			}
		}
	}
}

// VerticalGradient fills img from top to bottom, blending from top to bottom
// colors.
func VerticalGradient(img *image.RGBA, top, bottom color.RGBA) {
	b := img.Bounds()
	h := b.Dy()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		t := 0.0
		if h > 1 {
			t = float64(y-b.Min.Y) / float64(h-1)
		}
		c := Mix(top, bottom, t)
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

// Mix interpolates between a and b.
func Mix(a, b color.RGBA, t float64) color.RGBA {
	lerp := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5) }
	return color.RGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: lerp(a.A, b.A)}
}

// BlendPixel alpha-blends color c onto the existing pixel at (x, y).
func BlendPixel(img *image.RGBA, x, y int, c color.Color) {
	r0, g0, b0, a0 := c.RGBA()
	if a0 == 0 {
		return
	}
	if a0 == 0xFFFF {
		img.Set(x, y, c)
		return
	}

	existing := img.RGBAAt(x, y)
	er := uint32(existing.R) * 257
	eg := uint32(existing.G) * 257
	eb := uint32(existing.B) * 257

	// c is premultiplied
	inv := 0xFFFF - a0
	nr := r0 + er*inv/0xFFFF
	ng := g0 + eg*inv/0xFFFF
	nb := b0 + eb*inv/0xFFFF

	img.SetRGBA(x, y, color.RGBA{
		R: uint8(nr >> 8),
		G: uint8(ng >> 8),
		B: uint8(nb >> 8),
		A: 0xFF,
	})
}
