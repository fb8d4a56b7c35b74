package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/cinematv/internal/browse"
)

const (
	backdropW = 1280
	backdropH = 540

	bannerTextW     = 760.0
	bannerScrimW    = 1100.0
	bannerScrimStep = 20.0
	bannerPlayW     = 160.0
	bannerPlayH     = 52.0
)

// bannerPlayRect returns the Play button box for a banner drawn at top.
func bannerPlayRect(top float64) (x, y, w, h float64) {
	return SectionPadding, top + browse.BannerHeight - bannerPlayH - 36, bannerPlayW, bannerPlayH
}

// drawBanner draws the featured banner across the screen with its top at top.
func drawBanner(dst *ebiten.Image, v browse.BannerView, top float64, images *ImageResolver) {
	area := image.Rect(0, int(top), ScreenWidth, int(top+browse.BannerHeight)).Intersect(dst.Bounds())
	if area.Empty() {
		return
	}
	clip := dst.SubImage(area).(*ebiten.Image)

	// Parallax shifts the background only; the box stays put.
	bgY := top + v.Parallax
	bgH := browse.BannerHeight + browse.BannerParallax
	if v.Crossfade < 1 {
		prev := images.Image(v.Previous, backdropW, backdropH)
		drawImageFit(clip, prev, 0, bgY, ScreenWidth, bgH, 1-v.Crossfade)
	}
	bg := images.Image(v.Background, backdropW, backdropH)
	drawImageFit(clip, bg, 0, bgY, ScreenWidth, bgH, v.Crossfade)

	// Scrim behind the text, fading out to the right.
	for x := 0.0; x < bannerScrimW; x += bannerScrimStep {
		a := 1 - x/bannerScrimW
		vector.DrawFilledRect(clip, float32(x), float32(top), bannerScrimStep, browse.BannerHeight,
			withAlpha(ColorOverlay, a), false)
	}

	ca := v.ContentAlpha
	if ca <= 0 {
		return
	}
	DrawText(clip, v.Title, SectionPadding, top+60, FontSizeBannerTitle, withAlpha(ColorText, ca))
	DrawTextWrapped(clip, v.Synopsis, SectionPadding, top+130, bannerTextW, FontSizeBody+2, 4,
		withAlpha(ColorTextSecondary, ca))

	px, py, pw, ph := bannerPlayRect(top)
	if v.PlayFocused {
		vector.DrawFilledRect(clip, float32(px), float32(py), float32(pw), float32(ph), withAlpha(ColorPrimary, ca), false)
		vector.StrokeRect(clip, float32(px)-3, float32(py)-3, float32(pw)+6, float32(ph)+6, 2, withAlpha(ColorTertiary, ca), false)
		drawPlayIcon(clip, float32(px+30), float32(py+ph/2), 9, withAlpha(ColorBackground, ca))
		DrawTextCentered(clip, "Play", px+pw/2+14, py+ph/2, FontSizeHeading, withAlpha(ColorBackground, ca))
	} else {
		vector.DrawFilledRect(clip, float32(px), float32(py), float32(pw), float32(ph), withAlpha(ColorSurfaceHover, ca), false)
		vector.StrokeRect(clip, float32(px), float32(py), float32(pw), float32(ph), 1, withAlpha(ColorSecondary, ca), false)
		drawPlayIcon(clip, float32(px+30), float32(py+ph/2), 9, withAlpha(ColorText, ca))
		DrawTextCentered(clip, "Play", px+pw/2+14, py+ph/2, FontSizeHeading, withAlpha(ColorText, ca))
	}
}
