package browse

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/depeter/cinematv/internal/anim"
	"github.com/depeter/cinematv/internal/catalog"
	"github.com/depeter/cinematv/internal/focus"
	"github.com/depeter/cinematv/internal/nav"
)

func TestSearchPage(t *testing.T) {
	Convey("Search page", t, func() {
		sched := anim.NewScheduler()
		var routes []nav.Route
		s := NewSearch(catalog.Sample(), sched.Root(), func(r nav.Route) { routes = append(routes, r) })
		s.Mount()

		Convey("focus starts on the query input", func() {
			So(s.InputFocused(), ShouldBeTrue)
			So(s.Focus().Has(s.InputFocus()), ShouldBeTrue)
		})

		Convey("a blank query shows no results section", func() {
			for _, q := range []string{"", "   "} {
				s.SetQuery(q)
				v := s.View()
				So(v.State, ShouldEqual, SearchEmpty)
				So(v.Results, ShouldBeNil)
				So(v.Message, ShouldBeEmpty)
			}
		})

		Convey("a query with no matches says so", func() {
			s.SetQuery("zz")
			v := s.View()
			So(v.State, ShouldEqual, SearchNoResults)
			So(v.Message, ShouldEqual, `No results for "zz"`)
			So(v.Results, ShouldBeNil)
			So(s.Move(focus.DirDown), ShouldBeFalse)
		})

		Convey("matching is case-insensitive and live", func() {
			s.SetQuery("QUIET")
			v := s.View()
			So(v.State, ShouldEqual, SearchResults)
			So(v.Results, ShouldNotBeNil)
			So(v.Results.Title, ShouldEqual, "Results")
			So(s.Results(), ShouldHaveLength, 1)
			So(s.Results()[0].ID, ShouldEqual, "d1")

			s.SetQuery("quiet")
			So(s.Results()[0].ID, ShouldEqual, "d1")
		})

		Convey("down enters the results and confirming opens details", func() {
			s.SetQuery("quiet")
			So(s.Move(focus.DirDown), ShouldBeTrue)
			So(s.InputFocused(), ShouldBeFalse)
			So(s.Activate(), ShouldBeTrue)
			So(routes, ShouldResemble, []nav.Route{nav.Details("d1")})

			Convey("and up returns to the input", func() {
				So(s.Move(focus.DirUp), ShouldBeTrue)
				So(s.InputFocused(), ShouldBeTrue)
			})
		})

		Convey("clicking a result opens details", func() {
			s.SetQuery("quiet")
			So(s.ClickResult(0), ShouldBeTrue)
			So(routes, ShouldHaveLength, 1)
			So(routes[0].Kind, ShouldEqual, nav.KindDetails)
		})

		Convey("a new query while results are focused returns focus to the input", func() {
			s.SetQuery("a")
			s.Move(focus.DirDown)
			s.SetQuery("quiet")
			So(s.InputFocused(), ShouldBeTrue)
		})

		Convey("closing cancels the results animation", func() {
			s.SetQuery("a")
			So(sched.Pending(), ShouldBeGreaterThan, 0)
			s.Close()
			So(sched.Pending(), ShouldEqual, 0)
		})

		Convey("replaced result rows release their scopes", func() {
			for i := 0; i < 100; i++ {
				s.SetQuery("a")
				s.SetQuery("quiet")
			}
			So(s.scope.Children(), ShouldEqual, 1)
			s.SetQuery("zz")
			So(s.scope.Children(), ShouldEqual, 0)
		})
	})
}

func TestDetailsPage(t *testing.T) {
	Convey("Details page", t, func() {
		cat := catalog.Sample()

		Convey("a known id shows the record", func() {
			d := NewDetails(cat, "a1")
			v := d.View()
			So(d.Found(), ShouldBeTrue)
			So(v.NotFound, ShouldBeFalse)
			So(v.Title, ShouldEqual, "Eclipse Protocol")
			So(v.Meta, ShouldEqual, "2023 • Action • 4.2★")
			So(v.Heading, ShouldEqual, "Overview")
			So(v.Synopsis, ShouldNotBeEmpty)
			So(v.Backdrop.Placeholder, ShouldEqual, catalog.PlaceholderBackdrop)
		})

		Convey("an unknown id shows only the not-found message", func() {
			for _, id := range []string{"nope", "", "A1"} {
				v := NewDetails(cat, id).View()
				So(v.NotFound, ShouldBeTrue)
				So(v.Message, ShouldEqual, "Item not found")
				So(v.Title, ShouldBeEmpty)
				So(v.Meta, ShouldBeEmpty)
			}
		})
	})
}

func TestSettingsPage(t *testing.T) {
	Convey("Settings page", t, func() {
		var changes []bool
		s := NewSettings(false, func(dark bool) { changes = append(changes, dark) })

		Convey("shows the session-only note", func() {
			v := s.View()
			So(v.Note, ShouldEqual, "Theme preference is kept in memory only for this session.")
			So(v.Dark, ShouldBeFalse)
		})

		Convey("toggling reports each change", func() {
			s.Toggle()
			So(s.Dark(), ShouldBeTrue)
			s.Toggle()
			So(s.Dark(), ShouldBeFalse)
			So(changes, ShouldResemble, []bool{true, false})
		})

		Convey("confirm toggles only while the switch is focused", func() {
			So(s.Activate(), ShouldBeFalse)
			s.Mount()
			So(s.View().SwitchFocused, ShouldBeTrue)
			So(s.Activate(), ShouldBeTrue)
			So(changes, ShouldResemble, []bool{true})
			s.Unmount()
			So(s.View().SwitchFocused, ShouldBeFalse)
		})

		Convey("setting the current value is not a change", func() {
			s.SetDark(false)
			So(changes, ShouldBeEmpty)
		})
	})
}
