package browse

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/depeter/cinematv/internal/anim"
	"github.com/depeter/cinematv/internal/catalog"
	"github.com/depeter/cinematv/internal/focus"
	"github.com/depeter/cinematv/internal/nav"
)

// SearchState is what the results area shows.
type SearchState int

const (
	// SearchEmpty is a blank query: no results section at all.
	SearchEmpty SearchState = iota
	SearchNoResults
	SearchResults
)

func (s SearchState) String() string {
	switch s {
	case SearchNoResults:
		return "no-results"
	case SearchResults:
		return "results"
	default:
		return "empty"
	}
}

const searchResultsTitle = "Results"

// SearchView describes the search page.
type SearchView struct {
	Query        string
	InputFocused bool
	State        SearchState
	Message      string   // set for SearchNoResults
	Results      *RowView // set for SearchResults
}

// Search is a live search page: every query change reruns the catalog
// search.
type Search struct {
	cat      *catalog.Catalog
	navigate func(nav.Route)
	scope    *anim.Scope
	ctrl     *focus.Manager

	inputFocus   *focus.Requester
	inputFocused bool

	query   string
	results []catalog.MediaRecord
	row     *Row
	mounted bool
}

// NewSearch creates an empty search page.
func NewSearch(cat *catalog.Catalog, parent *anim.Scope, navigate func(nav.Route)) *Search {
	s := &Search{
		cat:        cat,
		navigate:   navigate,
		scope:      parent.Child(),
		ctrl:       focus.NewManager(),
		inputFocus: focus.NewRequester("search.input"),
	}
	s.inputFocus.Attach(searchInput{s})
	return s
}

type searchInput struct{ s *Search }

func (in searchInput) SetFocused(f bool) { in.s.inputFocused = f }

func (s *Search) Focus() *focus.Manager          { return s.ctrl }
func (s *Search) InputFocus() *focus.Requester   { return s.inputFocus }
func (s *Search) InputFocused() bool             { return s.inputFocused }
func (s *Search) Query() string                  { return s.query }
func (s *Search) Results() []catalog.MediaRecord { return s.results }

// ResultsRow returns the results row, or nil when there are no results.
func (s *Search) ResultsRow() *Row { return s.row }

// Mount puts focus on the query input.
func (s *Search) Mount() {
	s.mounted = true
	if !s.inputFocus.Attached() {
		s.inputFocus.Attach(searchInput{s})
	}
	if s.row != nil {
		s.row.Mount()
	}
	s.ctrl.RequestFocus(s.inputFocus)
}

// Unmount drops focus and stops the results animation.
func (s *Search) Unmount() {
	s.mounted = false
	s.ctrl.Clear()
	if s.row != nil {
		s.row.Unmount()
	}
}

// Close unmounts the page for good.
func (s *Search) Close() {
	s.Unmount()
	s.scope.Cancel()
}

// SetQuery replaces the query and recomputes the results.
func (s *Search) SetQuery(q string) {
	if q == s.query {
		return
	}
	s.query = q
	s.results = s.cat.Search(q)
	logrus.WithFields(logrus.Fields{"query": q, "results": len(s.results)}).Debug("browse: search")

	hadFocus := s.row != nil && s.row.HasFocus()
	if s.row != nil {
		s.row.Close()
		s.row = nil
	}
	if len(s.results) > 0 {
		s.row = NewRow(RowConfig{
			Title:   searchResultsTitle,
			Records: s.results,
			Navigate: func(id string) {
				if s.navigate != nil {
					s.navigate(nav.Details(id))
				}
			},
			Scope: s.scope,
		})
		if s.mounted {
			s.row.Mount()
		}
	}
	if hadFocus {
		s.ctrl.RequestFocus(s.inputFocus)
	}
}

// State classifies the current query.
func (s *Search) State() SearchState {
	switch {
	case strings.TrimSpace(s.query) == "":
		return SearchEmpty
	case len(s.results) == 0:
		return SearchNoResults
	default:
		return SearchResults
	}
}

// Move handles a D-pad press: Down from the input enters the results, Up
// from the results returns to the input.
func (s *Search) Move(dir focus.Direction) bool {
	if s.inputFocused {
		if dir == focus.DirDown && s.row != nil {
			return s.row.FocusItem(0, s.ctrl)
		}
		return false
	}
	if s.row == nil || !s.row.HasFocus() {
		return s.ctrl.RequestFocus(s.inputFocus)
	}
	if dir == focus.DirUp {
		return s.ctrl.RequestFocus(s.inputFocus)
	}
	return s.row.Move(dir, s.ctrl)
}

// Activate confirms the focused result.
func (s *Search) Activate() bool {
	if s.row != nil && s.row.HasFocus() {
		return s.row.ActivateFocused()
	}
	return false
}

// ClickResult is a pointer press on result i.
func (s *Search) ClickResult(i int) bool {
	if s.row == nil {
		return false
	}
	return s.row.Click(i)
}

func (s *Search) SetViewport(w float64) {
	if s.row != nil {
		s.row.SetViewport(w)
	}
}

func (s *Search) Tick(dt time.Duration) {
	if s.row != nil {
		s.row.Tick(dt)
	}
}

func (s *Search) View() SearchView {
	v := SearchView{
		Query:        s.query,
		InputFocused: s.inputFocused,
		State:        s.State(),
	}
	switch v.State {
	case SearchNoResults:
		v.Message = fmt.Sprintf("No results for \"%s\"", s.query)
	case SearchResults:
		rv := s.row.View()
		v.Results = &rv
	}
	return v
}
