package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/cinematv/internal/anim"
	"github.com/depeter/cinematv/internal/browse"
	"github.com/depeter/cinematv/internal/catalog"
	"github.com/depeter/cinematv/internal/focus"
)

const (
	searchBarY      = ContentTop + 56
	searchBarW      = 900.0
	searchBarH      = 52.0
	searchResultsY  = searchBarY + searchBarH + 40
	searchClearSize = 40.0
	searchMaxRunes  = 80
)

// SearchScreen filters the catalog as the user types and shows the matches
// in a single poster row.
type SearchScreen struct {
	pendingNav
	search *browse.Search
	input  TextInput
	images *ImageResolver
}

func NewSearchScreen(cat *catalog.Catalog, scope *anim.Scope, images *ImageResolver) *SearchScreen {
	ss := &SearchScreen{images: images, input: TextInput{MaxRunes: searchMaxRunes}}
	ss.search = browse.NewSearch(cat, scope, ss.navigate)
	return ss
}

func (ss *SearchScreen) Name() string { return "Search" }

// Model returns the page state.
func (ss *SearchScreen) Model() *browse.Search { return ss.search }

func (ss *SearchScreen) OnEnter() {
	ss.search.SetViewport(ScreenWidth - 2*SectionPadding)
	ss.search.Mount()
}

func (ss *SearchScreen) OnExit() { ss.search.Unmount() }

func (ss *SearchScreen) Close() { ss.search.Close() }

func (ss *SearchScreen) CapturingText() bool { return ss.search.InputFocused() }

func (ss *SearchScreen) FocusFromAbove() {
	ss.search.Focus().RequestFocus(ss.search.InputFocus())
}

// SetQuery replaces the typed text, as if the user had typed q.
func (ss *SearchScreen) SetQuery(q string) {
	ss.input.SetText(q)
	ss.search.SetQuery(q)
	ss.search.SetViewport(ScreenWidth - 2*SectionPadding)
}

func (ss *SearchScreen) Update() (*ScreenTransition, error) {
	ss.search.Tick(FrameDuration)

	if mx, my, clicked := MouseJustClicked(); clicked {
		ss.handleClick(mx, my)
		return ss.take(), nil
	}

	if ss.search.InputFocused() {
		return ss.updateInput()
	}

	dir, enter, back := InputState()
	switch {
	case back:
		ss.search.Focus().RequestFocus(ss.search.InputFocus())
	case dir != focus.DirNone:
		ss.search.Move(dir)
	case enter:
		ss.search.Activate()
	}
	return ss.take(), nil
}

func (ss *SearchScreen) updateInput() (*ScreenTransition, error) {
	// Backspace edits the query; only on an empty query does it mean back.
	escape := inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButton3) ||
		EvdevBackJustPressed()
	emptyBackspace := inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && ss.input.Text == ""
	if escape || emptyBackspace {
		if ss.input.Text != "" {
			ss.SetQuery("")
			return nil, nil
		}
		return &ScreenTransition{Type: TransitionBack}, nil
	}

	if inputRepeating(ebiten.KeyArrowUp) {
		ss.search.Focus().Clear()
		return &ScreenTransition{Type: TransitionFocusNavBar}, nil
	}
	if inputRepeating(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		ss.search.Move(focus.DirDown)
		return nil, nil
	}
	if ss.input.Update() {
		ss.SetQuery(ss.input.Text)
	}
	return nil, nil
}

func (ss *SearchScreen) handleClick(mx, my int) {
	if PointInRect(mx, my, SectionPadding, searchBarY, searchBarW, searchBarH) {
		if ss.input.Text != "" && PointInRect(mx, my, SectionPadding+searchBarW-searchClearSize, searchBarY, searchClearSize, searchBarH) {
			ss.SetQuery("")
		}
		ss.search.Focus().RequestFocus(ss.search.InputFocus())
		return
	}
	v := ss.search.View()
	if v.Results == nil {
		return
	}
	if i, ok := rowItemAt(*v.Results, SectionPadding, searchResultsY, mx, my); ok {
		ss.search.ClickResult(i)
	}
}

func (ss *SearchScreen) Draw(dst *ebiten.Image) {
	v := ss.search.View()

	DrawText(dst, "Search", SectionPadding, ContentTop, FontSizeTitle, ColorText)

	barX, barY := float32(SectionPadding), float32(searchBarY)
	if v.InputFocused {
		vector.DrawFilledRect(dst, barX, barY, searchBarW, searchBarH, ColorSurfaceHover, false)
		vector.StrokeRect(dst, barX, barY, searchBarW, searchBarH, 2, ColorFocusBorder, false)
	} else {
		vector.DrawFilledRect(dst, barX, barY, searchBarW, searchBarH, ColorSurface, false)
		vector.StrokeRect(dst, barX, barY, searchBarW, searchBarH, 1, ColorTextMuted, false)
	}
	drawSearchIcon(dst, barX+26, barY+searchBarH/2, 9, ColorTextSecondary)

	textX, textY := float64(barX)+48, float64(barY)+16
	switch {
	case ss.input.Text == "":
		DrawText(dst, "Search titles and descriptions", textX, textY, FontSizeBody+2, ColorTextMuted)
		if v.InputFocused {
			DrawText(dst, ss.input.DisplayText(), textX, textY, FontSizeBody+2, ColorText)
		}
	case v.InputFocused:
		DrawText(dst, ss.input.DisplayText(), textX, textY, FontSizeBody+2, ColorText)
	default:
		DrawText(dst, ss.input.Text, textX, textY, FontSizeBody+2, ColorText)
	}
	if ss.input.Text != "" {
		drawXMark(dst, barX+searchBarW-searchClearSize/2, barY+searchBarH/2, 6, ColorTextMuted)
	}

	switch v.State {
	case browse.SearchEmpty:
		DrawText(dst, "Type to search the catalog.", SectionPadding, searchResultsY, FontSizeBody, ColorTextSecondary)
	case browse.SearchNoResults:
		DrawText(dst, v.Message, SectionPadding, searchResultsY, FontSizeHeading, ColorTextSecondary)
	case browse.SearchResults:
		count := fmt.Sprintf("%d results", len(ss.search.Results()))
		if len(ss.search.Results()) == 1 {
			count = "1 result"
		}
		DrawText(dst, count, SectionPadding+searchBarW+24, float64(barY)+18, FontSizeSmall, ColorTextMuted)
		drawRow(dst, *v.Results, SectionPadding, searchResultsY, ss.images)
	}
}
