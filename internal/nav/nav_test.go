package nav

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRouteRoundTrip(t *testing.T) {
	ids := []string{
		"a1", "d1", "s2-extra", "with space", "slash/inside", "q?x=1&y=2",
		"hash#frag", "percent%20", "ünïcødé", "..", "details/a1", "%", "+",
	}
	for _, id := range ids {
		t.Run(id, func(t *testing.T) {
			path := Details(id).String()
			got, err := Parse(path)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", path, err)
			}
			if got.Kind != KindDetails || got.ID != id {
				t.Errorf("Parse(%q) = %+v, want details %q", path, got, id)
			}
		})
	}
}

func TestRouteStrings(t *testing.T) {
	tests := []struct {
		route Route
		want  string
	}{
		{Home(), "home"},
		{Search(), "search"},
		{Settings(), "settings"},
		{Details("a1"), "details/a1"},
		{Details("s2-x"), "details/s2-x"},
		{Details("a/b"), "details/a%2Fb"},
	}
	for _, tc := range tests {
		if got := tc.route.String(); got != tc.want {
			t.Errorf("%+v.String() = %q, want %q", tc.route, got, tc.want)
		}
		back, err := Parse(tc.want)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", tc.want, err)
			continue
		}
		if back != tc.route {
			t.Errorf("Parse(%q) = %+v, want %+v", tc.want, back, tc.route)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		path string
		want error
	}{
		{"", ErrUnknownRoute},
		{"nowhere", ErrUnknownRoute},
		{"details", ErrMissingID},
		{"details/", ErrMissingID},
		{"details/a/b", ErrUnknownRoute},
		{"HOME", ErrUnknownRoute},
	}
	for _, tc := range tests {
		_, err := Parse(tc.path)
		if !errors.Is(err, tc.want) {
			t.Errorf("Parse(%q) error = %v, want %v", tc.path, err, tc.want)
		}
	}
}

func routes(stack []Entry) []Route {
	out := make([]Route, len(stack))
	for i, e := range stack {
		out[i] = e.Route
	}
	return out
}

func TestRouter(t *testing.T) {
	Convey("Router", t, func() {
		r := NewRouter()
		changes := 0
		r.OnChange(func([]Entry) { changes++ })

		Convey("starts at home", func() {
			So(r.Depth(), ShouldEqual, 1)
			So(r.Current().Route, ShouldResemble, Home())
		})

		Convey("navigating home twice never stacks two home entries", func() {
			r.Navigate(Home())
			r.Navigate(Home())
			So(r.Depth(), ShouldEqual, 1)
			So(changes, ShouldEqual, 0)
		})

		Convey("home pops back to the existing home entry", func() {
			home := r.Current()
			r.Navigate(Search())
			r.Navigate(Details("a1"))
			r.Navigate(Home())
			So(r.Depth(), ShouldEqual, 1)
			So(r.Current(), ShouldResemble, home)

			r.Navigate(Home())
			count := 0
			for _, rt := range routes(r.Stack()) {
				if rt.Kind == KindHome {
					count++
				}
			}
			So(count, ShouldEqual, 1)
		})

		Convey("search and settings push so back returns to the previous screen", func() {
			r.Navigate(Details("d1"))
			r.Navigate(Search())
			So(routes(r.Stack()), ShouldResemble, []Route{Home(), Details("d1"), Search()})
			So(r.Back(), ShouldBeTrue)
			So(r.Current().Route, ShouldResemble, Details("d1"))

			r.Navigate(Settings())
			So(r.Current().Route, ShouldResemble, Settings())
			So(r.Back(), ShouldBeTrue)
			So(r.Current().Route, ShouldResemble, Details("d1"))
		})

		Convey("search already on top is not pushed again", func() {
			r.Navigate(Search())
			r.Navigate(Search())
			So(r.Depth(), ShouldEqual, 2)
			r.Navigate(Settings())
			r.Navigate(Search())
			So(routes(r.Stack()), ShouldResemble, []Route{Home(), Search(), Settings(), Search()})
		})

		Convey("details always pushes a distinct entry", func() {
			r.Navigate(Details("a1"))
			r.Navigate(Details("a1"))
			stack := r.Stack()
			So(stack, ShouldHaveLength, 3)
			So(stack[1].ID, ShouldNotEqual, stack[2].ID)
		})

		Convey("unknown ids are still valid destinations", func() {
			r.Navigate(Details("nope"))
			So(r.Current().Route.ID, ShouldEqual, "nope")
		})

		Convey("back stops at home", func() {
			So(r.Back(), ShouldBeFalse)
			r.Navigate(Settings())
			So(r.Back(), ShouldBeTrue)
			So(r.Back(), ShouldBeFalse)
			So(r.Depth(), ShouldEqual, 1)
		})

		Convey("listeners see every change", func() {
			var last []Entry
			r.OnChange(func(s []Entry) { last = s })
			r.Navigate(Details("a1"))
			So(routes(last), ShouldResemble, []Route{Home(), Details("a1")})
			r.Back()
			So(routes(last), ShouldResemble, []Route{Home()})
			So(changes, ShouldEqual, 2)
		})
	})
}
