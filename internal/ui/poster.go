package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/cinematv/internal/browse"
)

const (
	posterCaptionGap = 14.0
	posterGlowRings  = 5
	posterGlowSpread = 3.0
)

// drawPoster draws a poster whose unscaled box has its top-left at (x, y).
// scale multiplies the poster's own focus scale; the box grows from its
// center.
func drawPoster(dst *ebiten.Image, v browse.PosterView, x, y, alpha, scale float64, images *ImageResolver) {
	if alpha <= 0 {
		return
	}
	s := v.Scale * scale
	w, h := browse.PosterWidth*s, browse.PosterHeight*s
	px := x + (browse.PosterWidth-w)/2
	py := y + (browse.PosterHeight-h)/2

	// Glow: concentric outlines fading outward.
	if v.Glow > 0 {
		for i := 1; i <= posterGlowRings; i++ {
			d := float32(float64(i) * posterGlowSpread)
			a := v.Glow * alpha * (1 - float64(i)/float64(posterGlowRings+1))
			vector.StrokeRect(dst, float32(px)-d, float32(py)-d, float32(w)+2*d, float32(h)+2*d,
				float32(posterGlowSpread), withAlpha(ColorPrimary, a), true)
		}
	}

	img := images.Image(v.Image, int(browse.PosterWidth), int(browse.PosterHeight))
	drawImageFit(dst, img, px, py, w, h, alpha)

	if v.Border > 0 {
		vector.StrokeRect(dst, float32(px), float32(py), float32(w), float32(h),
			float32(v.Border), withAlpha(ColorFocusBorder, alpha), true)
	}

	clr := ColorTextSecondary
	if v.Focused {
		clr = ColorText
	}
	title := EllipsizeText(v.Title, FontSizeSmall, browse.PosterWidth)
	DrawText(dst, title, x, y+browse.PosterHeight+posterCaptionGap, FontSizeSmall, withAlpha(clr, alpha))
}
