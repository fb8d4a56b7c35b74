package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/cinematv/internal/browse"
)

// rowTitleH is the space above a row's posters taken by its title.
const rowTitleH = 48.0

// drawRow draws a row whose top-left is (x, y). Only realized posters are in
// v, so the cost does not grow with the row length.
func drawRow(dst *ebiten.Image, v browse.RowView, x, y float64, images *ImageResolver) {
	if v.TitleAlpha > 0 {
		DrawText(dst, v.Title, x, y+8, FontSizeHeading, withAlpha(ColorText, v.TitleAlpha))
	}
	// The focused poster is drawn last so its glow overlaps its neighbours.
	focused := -1
	for i, it := range v.Items {
		if it.Poster.Focused {
			focused = i
			continue
		}
		drawRowItem(dst, v, it, x, y, images)
	}
	if focused >= 0 {
		drawRowItem(dst, v, v.Items[focused], x, y, images)
	}
}

func drawRowItem(dst *ebiten.Image, v browse.RowView, it browse.RowItemView, x, y float64, images *ImageResolver) {
	ix := x + it.X
	if ix > ScreenWidth || ix+browse.PosterWidth < 0 {
		return
	}
	drawPoster(dst, it.Poster, ix, y+rowTitleH, v.ItemsAlpha*it.Alpha, it.Scale, images)
}

// rowItemAt returns the index of the poster under (mx, my) for a row drawn
// at (x, y).
func rowItemAt(v browse.RowView, x, y float64, mx, my int) (int, bool) {
	for _, it := range v.Items {
		if PointInRect(mx, my, x+it.X, y+rowTitleH, browse.PosterWidth, browse.PosterHeight) {
			return it.Index, true
		}
	}
	return 0, false
}
