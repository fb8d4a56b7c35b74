package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/cinematv/internal/anim"
	"github.com/depeter/cinematv/internal/browse"
	"github.com/depeter/cinematv/internal/catalog"
	"github.com/depeter/cinematv/internal/focus"
)

// HomeScreen shows the featured banner over one poster row per category.
type HomeScreen struct {
	pendingNav
	home   *browse.Home
	images *ImageResolver
}

func NewHomeScreen(cat *catalog.Catalog, scope *anim.Scope, images *ImageResolver, opts browse.HomeOptions) *HomeScreen {
	hs := &HomeScreen{images: images}
	hs.home = browse.NewHome(cat, scope, hs.navigate, opts)
	return hs
}

func (hs *HomeScreen) Name() string { return "Home" }

// Model returns the page state.
func (hs *HomeScreen) Model() *browse.Home { return hs.home }

func (hs *HomeScreen) OnEnter() {
	hs.home.SetViewport(ScreenWidth-2*SectionPadding, ScreenHeight-ContentTop)
	hs.home.Mount()
}

func (hs *HomeScreen) OnExit() { hs.home.Unmount() }

func (hs *HomeScreen) Close() { hs.home.Close() }

func (hs *HomeScreen) FocusFromAbove() {
	f := hs.home.Focus()
	if f.Restore() || f.RequestFocus(hs.home.BannerFocus()) {
		return
	}
	f.RequestFocus(hs.home.FirstRowFocus())
}

func (hs *HomeScreen) Update() (*ScreenTransition, error) {
	hs.home.Tick(FrameDuration)

	if mx, my, clicked := MouseJustClicked(); clicked {
		hs.handleClick(mx, my)
		return hs.take(), nil
	}

	dir, enter, back := InputState()
	if back {
		return &ScreenTransition{Type: TransitionBack}, nil
	}
	if dir != focus.DirNone && !hs.home.Move(dir) && dir == focus.DirUp {
		hs.home.Focus().Clear()
		return &ScreenTransition{Type: TransitionFocusNavBar}, nil
	}
	if enter {
		hs.home.Activate()
	}
	return hs.take(), nil
}

func (hs *HomeScreen) handleClick(mx, my int) {
	v := hs.home.View()
	top := ContentTop - v.ScrollY
	if v.Banner != nil {
		px, py, pw, ph := bannerPlayRect(top)
		if PointInRect(mx, my, px, py, pw, ph) {
			hs.home.ClickPlay()
			return
		}
	}
	for i, rv := range v.Rows {
		if item, ok := rowItemAt(rv, SectionPadding, top+v.RowY[i], mx, my); ok {
			hs.home.ClickPoster(i, item)
			return
		}
	}
}

func (hs *HomeScreen) Draw(dst *ebiten.Image) {
	v := hs.home.View()
	if v.Banner == nil && len(v.Rows) == 0 {
		DrawTextCentered(dst, "Nothing to show", float64(ScreenWidth)/2, float64(ScreenHeight)/2,
			FontSizeHeading, ColorTextSecondary)
		return
	}

	top := ContentTop - v.ScrollY
	if v.Banner != nil {
		drawBanner(dst, *v.Banner, top, hs.images)
	}
	for i, rv := range v.Rows {
		y := top + v.RowY[i]
		if y > ScreenHeight || y+browse.HomeRowHeight < NavBarHeight {
			continue
		}
		drawRow(dst, rv, SectionPadding, y, hs.images)
	}
}
