package ui

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var debugOverlayVisible bool

// ToggleDebugOverlay toggles the debug overlay on F12.
func ToggleDebugOverlay() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		debugOverlayVisible = !debugOverlayVisible
	}
}

// DebugOverlayVisible reports whether the overlay is shown.
func DebugOverlayVisible() bool { return debugOverlayVisible }

type debugLine struct {
	text string
	kind int // debugBody, debugHeader or debugNone
}

const (
	debugBody = iota
	debugHeader
	debugNone
)

// debugOverlayLines lays out the overlay: app state first, then raw input.
func debugOverlayLines(state []string, events []EvdevEvent, keys []ebiten.Key, now time.Time) []debugLine {
	lines := make([]debugLine, 0, len(state)+len(events)+len(keys)+4)
	for _, s := range state {
		lines = append(lines, debugLine{s, debugBody})
	}

	lines = append(lines, debugLine{"evdev key presses", debugHeader})
	if len(events) == 0 {
		lines = append(lines, debugLine{"(none)", debugNone})
	}
	for _, ev := range events {
		lines = append(lines, debugLine{ev.Describe(now), debugBody})
	}

	lines = append(lines, debugLine{"keys held", debugHeader})
	if len(keys) == 0 {
		lines = append(lines, debugLine{"(none)", debugNone})
	}
	for _, k := range keys {
		lines = append(lines, debugLine{fmt.Sprintf("  %s (%d)", k, int(k)), debugBody})
	}
	return lines
}

// DrawDebugOverlay draws the overlay in the top right corner when visible.
// state holds app lines such as the route stack and pending tasks.
func DrawDebugOverlay(screen *ebiten.Image, state []string) {
	if !debugOverlayVisible {
		return
	}

	const (
		padX   = 16.0
		padY   = 12.0
		lineH  = 18.0
		panelW = 520.0
		margin = 20.0
	)

	var held []ebiten.Key
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if ebiten.IsKeyPressed(k) {
			held = append(held, k)
		}
	}
	lines := debugOverlayLines(state, EvdevRecentEvents(), held, time.Now())

	panelH := float64(len(lines)+1)*lineH + padY*2
	px := float64(ScreenWidth) - panelW - margin
	vector.DrawFilledRect(screen, float32(px), margin, panelW, float32(panelH), ColorOverlay, false)

	x, y := px+padX, margin+padY
	DrawText(screen, "Debug (F12 to close)", x, y, FontSizeSmall, ColorPrimary)
	for _, l := range lines {
		y += lineH
		switch l.kind {
		case debugHeader:
			DrawText(screen, "--- "+l.text+" ---", x, y, FontSizeSmall, ColorTextMuted)
		case debugNone:
			DrawText(screen, l.text, x, y, FontSizeSmall, ColorTextSecondary)
		default:
			DrawText(screen, l.text, x, y, FontSizeSmall, ColorText)
		}
	}
}
