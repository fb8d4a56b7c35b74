package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/cinematv/internal/browse"
	"github.com/depeter/cinematv/internal/catalog"
	"github.com/depeter/cinematv/internal/focus"
)

const (
	detailBackdropH = 480.0
	detailPosterW   = 240.0
	detailPosterH   = 360.0
	detailTextX     = SectionPadding + detailPosterW + 48
	detailTextW     = 1000.0
	detailBackW     = 120.0
	detailBackH     = 40.0
	detailLineStep  = 80.0
)

// DetailScreen shows one record: backdrop, poster, metadata and synopsis.
type DetailScreen struct {
	details *browse.Details
	images  *ImageResolver
	scroll  ScrollState

	backFocused   bool
	contentHeight float64
}

func NewDetailScreen(cat *catalog.Catalog, id string, images *ImageResolver) *DetailScreen {
	return &DetailScreen{
		details: browse.NewDetails(cat, id),
		images:  images,
	}
}

func (ds *DetailScreen) Name() string { return "Details" }

// Model returns the page state.
func (ds *DetailScreen) Model() *browse.Details { return ds.details }

func (ds *DetailScreen) OnEnter()        { ds.backFocused = true }
func (ds *DetailScreen) OnExit()         { ds.backFocused = false }
func (ds *DetailScreen) FocusFromAbove() { ds.backFocused = true }

func backButtonRect() (x, y, w, h float64) {
	return SectionPadding, ContentTop, detailBackW, detailBackH
}

func (ds *DetailScreen) Update() (*ScreenTransition, error) {
	ds.scroll.Animate()
	ds.scroll.HandleMouseWheel()

	if mx, my, clicked := MouseJustClicked(); clicked {
		bx, by, bw, bh := backButtonRect()
		if PointInRect(mx, my, bx, by, bw, bh) {
			return &ScreenTransition{Type: TransitionBack}, nil
		}
		return nil, nil
	}

	dir, enter, back := InputState()
	switch {
	case back, enter && ds.backFocused:
		return &ScreenTransition{Type: TransitionBack}, nil
	case dir == focus.DirUp:
		if ds.scroll.TargetScrollY > 0 {
			ds.scroll.ScrollBy(-detailLineStep)
			return nil, nil
		}
		ds.backFocused = false
		return &ScreenTransition{Type: TransitionFocusNavBar}, nil
	case dir == focus.DirDown:
		ds.scroll.ScrollBy(detailLineStep)
	}
	return nil, nil
}

// notFoundText is the centered text of a details page for an unknown id.
// The Back button is drawn separately.
func notFoundText(v browse.DetailsView) []string {
	return []string{v.Message}
}

func (ds *DetailScreen) Draw(dst *ebiten.Image) {
	v := ds.details.View()
	if v.NotFound {
		for i, line := range notFoundText(v) {
			DrawTextCentered(dst, line, float64(ScreenWidth)/2, float64(ScreenHeight)/2+float64(i)*48,
				FontSizeTitle, ColorTextSecondary)
		}
		ds.drawBack(dst)
		return
	}

	top := ContentTop - ds.scroll.ScrollY
	backdrop := ds.images.Image(v.Backdrop, backdropW, backdropH)
	drawImageFit(dst, backdrop, 0, top, ScreenWidth, detailBackdropH, 1)
	vector.DrawFilledRect(dst, 0, float32(top+detailBackdropH-140), ScreenWidth, 140, ColorOverlay, false)

	posterY := top + detailBackdropH - detailPosterH/2
	poster := ds.images.Image(v.Poster, int(browse.PosterWidth), int(browse.PosterHeight))
	drawImageFit(dst, poster, SectionPadding, posterY, detailPosterW, detailPosterH, 1)
	vector.StrokeRect(dst, SectionPadding, float32(posterY), detailPosterW, detailPosterH, 1, ColorSurfaceHover, false)

	y := top + detailBackdropH + 24
	DrawText(dst, v.Title, detailTextX, y, FontSizeTitle+8, ColorText)
	y += FontSizeTitle + 24
	DrawText(dst, v.Meta, detailTextX, y, FontSizeBody+2, ColorRatingGold)
	y += FontSizeBody + 32
	DrawText(dst, v.Heading, detailTextX, y, FontSizeHeading, ColorText)
	y += FontSizeHeading + 16
	y += DrawTextWrapped(dst, v.Synopsis, detailTextX, y, detailTextW, FontSizeBody+2, 0, ColorTextSecondary)

	content := y + ds.scroll.ScrollY - ContentTop + SectionGap
	if content != ds.contentHeight {
		ds.contentHeight = content
		ds.scroll.SetContentHeight(content, ScreenHeight-ContentTop)
	}
	ds.drawBack(dst)
}

func (ds *DetailScreen) drawBack(dst *ebiten.Image) {
	x, y, w, h := backButtonRect()
	if ds.backFocused {
		vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), ColorPrimary, false)
		DrawTextCentered(dst, "‹ Back", x+w/2, y+h/2, FontSizeBody, ColorBackground)
		return
	}
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), ColorSurfaceHover, false)
	vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), 1, ColorSecondary, false)
	DrawTextCentered(dst, "‹ Back", x+w/2, y+h/2, FontSizeBody, ColorText)
}
