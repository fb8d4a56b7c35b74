package browse

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/depeter/cinematv/internal/anim"
	"github.com/depeter/cinematv/internal/catalog"
)

func TestPosterCard(t *testing.T) {
	Convey("PosterCard", t, func() {
		sched := anim.NewScheduler()
		clicks := 0
		p := NewPosterCard("Quiet Roads", catalog.ImageRef{}, func() { clicks++ })

		Convey("starts unfocused and at rest", func() {
			v := p.View()
			So(p.State(), ShouldEqual, Unfocused)
			So(v.Scale, ShouldEqual, 1.0)
			So(v.Glow, ShouldEqual, 0.0)
			So(v.Border, ShouldEqual, 0.0)
			So(p.Animating(), ShouldBeFalse)
		})

		Convey("focus gain then loss before a frame leaves it at rest", func() {
			p.SetFocused(true)
			p.SetFocused(false)
			v := p.View()
			So(p.State(), ShouldEqual, Unfocused)
			So(v.Scale, ShouldEqual, 1.0)
			So(v.Glow, ShouldEqual, 0.0)
			So(p.Animating(), ShouldBeFalse)
		})

		Convey("gaining focus overshoots then settles", func() {
			p.SetFocused(true)
			So(p.State(), ShouldEqual, Focused)
			So(p.View().Border, ShouldEqual, float64(PosterBorderWidth))

			advance(sched, PosterPeakAt, p)
			So(approx(p.View().Scale, PosterPeakScale), ShouldBeTrue)

			advance(sched, PosterSettleAt-PosterPeakAt, p)
			v := p.View()
			So(approx(v.Scale, PosterFocusScale), ShouldBeTrue)
			So(approx(v.Glow, PosterGlowAlpha), ShouldBeTrue)
			So(p.Animating(), ShouldBeFalse)

			Convey("and losing it springs back without overshoot", func() {
				p.SetFocused(false)
				for i := 0; i < 60 && p.Animating(); i++ {
					advance(sched, frame, p)
					So(p.View().Scale, ShouldBeGreaterThanOrEqualTo, 1.0)
				}
				So(p.Animating(), ShouldBeFalse)
				So(p.View().Scale, ShouldEqual, 1.0)
				So(p.View().Glow, ShouldEqual, 0.0)
			})
		})

		Convey("reversing mid-animation continues from the current value", func() {
			p.SetFocused(true)
			advance(sched, 70*time.Millisecond, p)
			mid := p.View().Scale
			p.SetFocused(false)
			advance(sched, frame, p)
			So(p.View().Scale, ShouldBeLessThanOrEqualTo, mid)
			So(p.View().Scale, ShouldBeGreaterThan, 1.0)
		})

		Convey("activation calls back exactly once per press", func() {
			p.SetFocused(true)
			p.Activate()
			So(clicks, ShouldEqual, 1)
			p.Click()
			So(clicks, ShouldEqual, 2)
		})

		Convey("focus changes never call back", func() {
			for i := 0; i < 5; i++ {
				p.SetFocused(true)
				advance(sched, 30*time.Millisecond, p)
				p.SetFocused(false)
			}
			So(clicks, ShouldEqual, 0)
		})

		Convey("the callback does not wait for the focus animation", func() {
			p.SetFocused(true)
			So(p.Animating(), ShouldBeTrue)
			p.Activate()
			So(clicks, ShouldEqual, 1)
		})

		Convey("an empty title is replaced", func() {
			So(NewPosterCard("", catalog.ImageRef{}, nil).Title(), ShouldEqual, "Untitled")
			So(func() { NewPosterCard("x", catalog.ImageRef{}, nil).Activate() }, ShouldNotPanic)
		})
	})
}
