package ui

import (
	"image/color"
	"time"

	"github.com/sirupsen/logrus"
)

// Palette is one color scheme. Drawing code reads the Color* variables,
// which SetDarkTheme points at the light or dark palette.
type Palette struct {
	Background    color.RGBA
	Surface       color.RGBA
	SurfaceHover  color.RGBA
	Text          color.RGBA
	TextSecondary color.RGBA
	TextMuted     color.RGBA
	Primary       color.RGBA
	Secondary     color.RGBA
	Tertiary      color.RGBA
	Error         color.RGBA
	Overlay       color.RGBA
	Rating        color.RGBA
}

var (
	LightPalette = Palette{
		Background:    color.RGBA{R: 0xF9, G: 0xFA, B: 0xFB, A: 0xFF},
		Surface:       color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		SurfaceHover:  color.RGBA{R: 0xE5, G: 0xE7, B: 0xEB, A: 0xFF},
		Text:          color.RGBA{R: 0x11, G: 0x18, B: 0x27, A: 0xFF},
		TextSecondary: color.RGBA{R: 0x4B, G: 0x55, B: 0x63, A: 0xFF},
		TextMuted:     color.RGBA{R: 0x9C, G: 0xA3, B: 0xAF, A: 0xFF},
		Primary:       color.RGBA{R: 0x3B, G: 0x82, B: 0xF6, A: 0xFF},
		Secondary:     color.RGBA{R: 0x64, G: 0x74, B: 0x8B, A: 0xFF},
		Tertiary:      color.RGBA{R: 0x06, G: 0xB6, B: 0xD4, A: 0xFF},
		Error:         color.RGBA{R: 0xEF, G: 0x44, B: 0x44, A: 0xFF},
		Overlay:       color.RGBA{R: 0xC0, G: 0xC0, B: 0xC0, A: 0xC0},
		Rating:        color.RGBA{R: 0xD9, G: 0x77, B: 0x06, A: 0xFF},
	}

	DarkPalette = Palette{
		Background:    color.RGBA{R: 0x0B, G: 0x10, B: 0x20, A: 0xFF},
		Surface:       color.RGBA{R: 0x0F, G: 0x17, B: 0x2A, A: 0xFF},
		SurfaceHover:  color.RGBA{R: 0x1E, G: 0x29, B: 0x3B, A: 0xFF},
		Text:          color.RGBA{R: 0xE5, G: 0xE7, B: 0xEB, A: 0xFF},
		TextSecondary: color.RGBA{R: 0x9C, G: 0xA3, B: 0xAF, A: 0xFF},
		TextMuted:     color.RGBA{R: 0x6B, G: 0x72, B: 0x80, A: 0xFF},
		Primary:       color.RGBA{R: 0x3B, G: 0x82, B: 0xF6, A: 0xFF},
		Secondary:     color.RGBA{R: 0x64, G: 0x74, B: 0x8B, A: 0xFF},
		Tertiary:      color.RGBA{R: 0x06, G: 0xB6, B: 0xD4, A: 0xFF},
		Error:         color.RGBA{R: 0xEF, G: 0x44, B: 0x44, A: 0xFF},
		Overlay:       color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xC0},
		Rating:        color.RGBA{R: 0xFF, G: 0xD7, B: 0x00, A: 0xFF},
	}
)

// Colors of the active palette.
var (
	ColorBackground    color.RGBA
	ColorSurface       color.RGBA
	ColorSurfaceHover  color.RGBA
	ColorPrimary       color.RGBA
	ColorSecondary     color.RGBA
	ColorTertiary      color.RGBA
	ColorText          color.RGBA
	ColorTextSecondary color.RGBA
	ColorTextMuted     color.RGBA
	ColorFocusBorder   color.RGBA
	ColorOverlay       color.RGBA
	ColorError         color.RGBA
	ColorRatingGold    color.RGBA

	darkTheme bool
)

func init() {
	applyPalette(LightPalette)
}

// SetDarkTheme switches every Color* variable to the dark or light palette.
func SetDarkTheme(dark bool) {
	darkTheme = dark
	if dark {
		applyPalette(DarkPalette)
	} else {
		applyPalette(LightPalette)
	}
	logrus.WithField("dark", dark).Debug("ui: theme changed")
}

// DarkTheme reports whether the dark palette is active.
func DarkTheme() bool { return darkTheme }

func applyPalette(p Palette) {
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSurfaceHover = p.SurfaceHover
	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorTertiary = p.Tertiary
	ColorText = p.Text
	ColorTextSecondary = p.TextSecondary
	ColorTextMuted = p.TextMuted
	ColorFocusBorder = p.Primary
	ColorOverlay = p.Overlay
	ColorError = p.Error
	ColorRatingGold = p.Rating
}

// withAlpha scales c, which is premultiplied, by a in [0,1].
func withAlpha(c color.RGBA, a float64) color.RGBA {
	if a >= 1 {
		return c
	}
	if a <= 0 {
		return color.RGBA{}
	}
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

// Layout constants
const (
	SectionPadding = 40
	SectionGap     = 30
	SectionTitleH  = 36

	NavBarHeight  = 60
	NavBarPadding = 20

	FontSizeTitle   = 28
	FontSizeHeading = 22
	FontSizeBody    = 16
	FontSizeSmall   = 13
	FontSizeCaption = 11

	FontSizeBannerTitle = 44

	ScreenWidth  = 1920
	ScreenHeight = 1080

	// ContentTop is where screen content starts below the nav bar.
	ContentTop = NavBarHeight + 20

	// ScrollWheelSpeed is pixels per mouse wheel scroll unit.
	ScrollWheelSpeed = 60
	ScrollAnimSpeed  = 0.12

	// FrameDuration is one ebiten tick at the default 60 TPS.
	FrameDuration = time.Second / 60
)
