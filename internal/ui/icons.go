package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawHomeIcon draws a house outline at (cx, cy) with given radius.
func drawHomeIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	// Roof
	vector.StrokeLine(dst, cx-r, cy-r*0.1, cx, cy-r, 1.8, clr, false)
	vector.StrokeLine(dst, cx, cy-r, cx+r, cy-r*0.1, 1.8, clr, false)
	// Walls
	vector.StrokeRect(dst, cx-r*0.7, cy-r*0.2, r*1.4, r*1.1, 1.5, clr, false)
	// Door
	vector.DrawFilledRect(dst, cx-r*0.2, cy+r*0.3, r*0.4, r*0.6, clr, false)
}

// drawGearIcon draws a gear/settings icon at (cx, cy) with given radius.
func drawGearIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	// Inner hub
	vector.DrawFilledCircle(dst, cx, cy, r*0.35, clr, false)
	// Teeth around the perimeter
	teeth := 8
	for i := 0; i < teeth; i++ {
		angle := float64(i) * 2 * math.Pi / float64(teeth)
		tx := cx + r*0.75*float32(math.Cos(angle))
		ty := cy + r*0.75*float32(math.Sin(angle))
		vector.DrawFilledCircle(dst, tx, ty, r*0.25, clr, false)
	}
	vector.StrokeCircle(dst, cx, cy, r*0.55, 1.5, clr, false)
}

// drawSearchIcon draws a magnifying glass icon at (cx, cy) with given radius.
func drawSearchIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	// Lens offset up-left so the handle extends down-right
	lensR := r * 0.6
	lensCX := cx - r*0.15
	lensCY := cy - r*0.15
	vector.StrokeCircle(dst, lensCX, lensCY, lensR, 1.8, clr, false)
	hx := lensCX + lensR*0.7
	hy := lensCY + lensR*0.7
	vector.StrokeLine(dst, hx, hy, hx+r*0.45, hy+r*0.45, 2, clr, false)
}

// drawPlayIcon draws a right-pointing triangle at (cx, cy) with given radius.
func drawPlayIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	// Filled with horizontal strokes from the left edge to the sloped sides.
	left := cx - r*0.6
	for dy := -r; dy <= r; dy++ {
		t := 1 - float32(math.Abs(float64(dy)))/r
		vector.StrokeLine(dst, left, cy+dy, left+(cx+r-left)*t, cy+dy, 1.2, clr, false)
	}
}

// drawNavButton draws a styled nav bar button.
func drawNavButton(dst *ebiten.Image, label string, x, y, w, h float32, focused, selected bool, iconFn func(*ebiten.Image, float32, float32, float32, color.Color)) {
	switch {
	case focused:
		vector.DrawFilledRect(dst, x, y, w, h, ColorPrimary, false)
		DrawTextCentered(dst, label, float64(x+w/2+8), float64(y+h/2), FontSizeBody, ColorBackground)
		if iconFn != nil {
			iconFn(dst, x+20, y+h/2, 7, ColorBackground)
		}
	case selected:
		vector.DrawFilledRect(dst, x, y, w, h, ColorSurfaceHover, false)
		vector.StrokeRect(dst, x, y, w, h, 2, ColorPrimary, false)
		DrawTextCentered(dst, label, float64(x+w/2+8), float64(y+h/2), FontSizeBody, ColorText)
		if iconFn != nil {
			iconFn(dst, x+20, y+h/2, 7, ColorPrimary)
		}
	default:
		vector.DrawFilledRect(dst, x, y, w, h, ColorSurfaceHover, false)
		vector.StrokeRect(dst, x, y, w, h, 1, ColorSecondary, false)
		DrawTextCentered(dst, label, float64(x+w/2+8), float64(y+h/2), FontSizeBody, ColorText)
		if iconFn != nil {
			iconFn(dst, x+20, y+h/2, 7, ColorSecondary)
		}
	}
}

// drawXMark draws a small cross centered at (cx, cy).
func drawXMark(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	vector.StrokeLine(dst, cx-r, cy-r, cx+r, cy+r, 2, clr, true)
	vector.StrokeLine(dst, cx-r, cy+r, cx+r, cy-r, 2, clr, true)
}
