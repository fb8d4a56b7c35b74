package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/cinematv/internal/focus"
	"github.com/depeter/cinematv/internal/nav"
)

// NavBarAction represents the result of a navbar Update cycle.
type NavBarAction int

const (
	NavBarActionNone     NavBarAction = iota
	NavBarActionDefocus               // return focus to screen below
	NavBarActionNavigate              // go to the returned route
)

type navChip struct {
	label string
	route nav.Route
	icon  func(dst *ebiten.Image, cx, cy, r float32, clr color.Color)
}

var navChips = []navChip{
	{"Home", nav.Home(), drawHomeIcon},
	{"Search", nav.Search(), drawSearchIcon},
	{"Settings", nav.Settings(), drawGearIcon},
}

const (
	navChipW   = 150.0
	navChipH   = 38.0
	navChipGap = 12.0
	navChipY   = 12.0
)

// NavBar is a persistent navigation bar drawn at the top of every screen.
type NavBar struct {
	Active bool
	index  int

	AppName     string
	ActiveRoute nav.Route // for visual highlight of current section
}

// NewNavBar creates a new NavBar.
func NewNavBar(appName string) *NavBar {
	return &NavBar{AppName: appName}
}

// FocusFromBelow activates keyboard focus on the navbar, starting at the chip
// of the current section.
func (nb *NavBar) FocusFromBelow() {
	nb.Active = true
	nb.index = 0
	for i, c := range navChips {
		if c.route.Kind == nb.ActiveRoute.Kind {
			nb.index = i
		}
	}
}

// Focused returns the index of the chip holding keyboard focus, or -1.
func (nb *NavBar) Focused() int {
	if !nb.Active {
		return -1
	}
	return nb.index
}

// Update processes keyboard input when the navbar is active.
func (nb *NavBar) Update() (NavBarAction, nav.Route) {
	if !nb.Active {
		return NavBarActionNone, nav.Route{}
	}
	dir, enter, back := InputState()
	return nb.handle(dir, enter, back)
}

func (nb *NavBar) handle(dir focus.Direction, enter, back bool) (NavBarAction, nav.Route) {
	if dir == focus.DirDown || back {
		nb.Active = false
		return NavBarActionDefocus, nav.Route{}
	}
	if enter {
		nb.Active = false
		return NavBarActionNavigate, navChips[nb.index].route
	}
	switch dir {
	case focus.DirLeft:
		if nb.index > 0 {
			nb.index--
		}
	case focus.DirRight:
		if nb.index < len(navChips)-1 {
			nb.index++
		}
	}
	return NavBarActionNone, nav.Route{}
}

func chipX(i int) float64 {
	total := float64(len(navChips))*navChipW + float64(len(navChips)-1)*navChipGap
	return float64(ScreenWidth) - SectionPadding - total + float64(i)*(navChipW+navChipGap)
}

// HandleClick checks if (mx, my) hits a chip and returns its route.
func (nb *NavBar) HandleClick(mx, my int) (nav.Route, bool) {
	if float64(my) >= NavBarHeight {
		return nav.Route{}, false
	}
	// App title goes home
	if PointInRect(mx, my, SectionPadding, navChipY, 220, navChipH) {
		return nav.Home(), true
	}
	for i, c := range navChips {
		if PointInRect(mx, my, chipX(i), navChipY, navChipW, navChipH) {
			return c.route, true
		}
	}
	return nav.Route{}, false
}

// Draw renders the navbar overlay.
func (nb *NavBar) Draw(dst *ebiten.Image) {
	vector.DrawFilledRect(dst, 0, 0, float32(ScreenWidth), float32(NavBarHeight), ColorBackground, false)
	vector.DrawFilledRect(dst, 0, float32(NavBarHeight-1), float32(ScreenWidth), 1, ColorSurfaceHover, false)

	DrawText(dst, nb.AppName, SectionPadding, 16, FontSizeTitle, ColorPrimary)

	for i, c := range navChips {
		focused := nb.Active && i == nb.index
		selected := c.route.Kind == nb.ActiveRoute.Kind
		drawNavButton(dst, c.label, float32(chipX(i)), navChipY, navChipW, navChipH, focused, selected, c.icon)
	}
}
