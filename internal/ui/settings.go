package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/cinematv/internal/browse"
	"github.com/depeter/cinematv/internal/focus"
)

const (
	settingsRowY   = ContentTop + 110
	settingsRowW   = 900.0
	settingsRowH   = 64.0
	settingsTrackW = 64.0
	settingsTrackH = 32.0
	settingsInfoY  = settingsRowY + settingsRowH + 120
	settingsInfoH  = 34.0
)

// SettingInfo is a read-only line in the settings screen's About section.
type SettingInfo struct {
	Label string
	Value string
}

// SettingsScreen shows the dark theme switch and the effective configuration.
type SettingsScreen struct {
	settings *browse.Settings
	info     []SettingInfo
}

// NewSettingsScreen creates the screen. onToggle receives every theme change.
func NewSettingsScreen(dark bool, onToggle func(dark bool), info []SettingInfo) *SettingsScreen {
	return &SettingsScreen{
		settings: browse.NewSettings(dark, onToggle),
		info:     info,
	}
}

func (ss *SettingsScreen) Name() string { return "Settings" }

// Model returns the page state.
func (ss *SettingsScreen) Model() *browse.Settings { return ss.settings }

func (ss *SettingsScreen) OnEnter()        { ss.settings.Mount() }
func (ss *SettingsScreen) OnExit()         { ss.settings.Unmount() }
func (ss *SettingsScreen) FocusFromAbove() { ss.settings.Mount() }

func (ss *SettingsScreen) Update() (*ScreenTransition, error) {
	if mx, my, clicked := MouseJustClicked(); clicked {
		if PointInRect(mx, my, SectionPadding, settingsRowY, settingsRowW, settingsRowH) {
			ss.settings.Mount()
			ss.settings.Toggle()
		}
		return nil, nil
	}

	dir, enter, back := InputState()
	switch {
	case back:
		return &ScreenTransition{Type: TransitionBack}, nil
	case dir == focus.DirUp:
		ss.settings.Unmount()
		return &ScreenTransition{Type: TransitionFocusNavBar}, nil
	case enter:
		ss.settings.Activate()
	case dir == focus.DirLeft || dir == focus.DirRight:
		// Left is off, right is on, like the switch's knob.
		ss.settings.SetDark(dir == focus.DirRight)
	}
	return nil, nil
}

func (ss *SettingsScreen) Draw(dst *ebiten.Image) {
	v := ss.settings.View()
	DrawText(dst, v.Title, SectionPadding, ContentTop, FontSizeTitle, ColorText)
	DrawText(dst, "Appearance", SectionPadding, settingsRowY-40, FontSizeHeading, ColorPrimary)

	x, y := float32(SectionPadding), float32(settingsRowY)
	if v.SwitchFocused {
		vector.DrawFilledRect(dst, x, y, settingsRowW, settingsRowH, ColorSurfaceHover, false)
		vector.StrokeRect(dst, x, y, settingsRowW, settingsRowH, 2, ColorFocusBorder, false)
	} else {
		vector.DrawFilledRect(dst, x, y, settingsRowW, settingsRowH, ColorSurface, false)
	}
	DrawText(dst, v.Label, SectionPadding+24, settingsRowY+22, FontSizeBody+2, ColorText)
	drawSwitch(dst, x+settingsRowW-settingsTrackW-24, y+(settingsRowH-settingsTrackH)/2, v.Dark)

	DrawText(dst, v.Note, SectionPadding, settingsRowY+settingsRowH+16, FontSizeSmall, ColorTextMuted)

	if len(ss.info) == 0 {
		return
	}
	DrawText(dst, "About", SectionPadding, settingsInfoY-40, FontSizeHeading, ColorPrimary)
	for i, it := range ss.info {
		iy := settingsInfoY + float64(i)*settingsInfoH
		DrawText(dst, it.Label, SectionPadding+24, iy, FontSizeBody, ColorTextSecondary)
		DrawText(dst, EllipsizeText(it.Value, FontSizeBody, settingsRowW-320), SectionPadding+300, iy, FontSizeBody, ColorText)
	}
}

func drawSwitch(dst *ebiten.Image, x, y float32, on bool) {
	r := float32(settingsTrackH / 2)
	track := ColorSecondary
	knobX := x + r
	if on {
		track = ColorPrimary
		knobX = x + settingsTrackW - r
	}
	vector.DrawFilledCircle(dst, x+r, y+r, r, track, true)
	vector.DrawFilledCircle(dst, x+settingsTrackW-r, y+r, r, track, true)
	vector.DrawFilledRect(dst, x+r, y, settingsTrackW-2*r, settingsTrackH, track, false)
	vector.DrawFilledCircle(dst, knobX, y+r, r-4, ColorSurface, true)
}
