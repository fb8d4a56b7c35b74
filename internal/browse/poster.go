// Package browse holds the screen models: focus, selection and animation
// state for every screen, with no drawing code. Each model exposes a View
// method returning a plain description that internal/ui renders.
package browse

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/depeter/cinematv/internal/anim"
	"github.com/depeter/cinematv/internal/catalog"
)

// Poster focus animation.
const (
	PosterPeakScale   = 1.12
	PosterFocusScale  = 1.10
	PosterPeakAt      = 140 * time.Millisecond
	PosterSettleAt    = 220 * time.Millisecond
	PosterGlowAlpha   = 0.45
	PosterGlowTween   = 200 * time.Millisecond
	PosterBorderWidth = 3
)

// PosterState is Unfocused or Focused.
type PosterState int

const (
	Unfocused PosterState = iota
	Focused
)

func (s PosterState) String() string {
	if s == Focused {
		return "focused"
	}
	return "unfocused"
}

// PosterView describes one poster frame.
type PosterView struct {
	Title   string
	Image   catalog.ImageRef
	Focused bool
	Scale   float64
	Glow    float64 // glow alpha, 0..PosterGlowAlpha
	Border  float64 // focus border width, 0 when unfocused
}

// PosterCard is a focusable, clickable poster with an animated focus
// response. It implements focus.Target.
type PosterCard struct {
	title   string
	image   catalog.ImageRef
	onClick func()

	state PosterState
	scale anim.Value
	glow  anim.Value
}

// NewPosterCard creates an unfocused card. An empty title is replaced.
func NewPosterCard(title string, image catalog.ImageRef, onClick func()) *PosterCard {
	if title == "" {
		logrus.Warn("browse: poster created without a title")
		title = "Untitled"
	}
	return &PosterCard{
		title:   title,
		image:   image,
		onClick: onClick,
		scale:   anim.NewValue(1),
		glow:    anim.NewValue(0),
	}
}

// SetFocused is the focus change notification.
func (p *PosterCard) SetFocused(focused bool) {
	if focused == (p.state == Focused) {
		return
	}
	if focused {
		p.state = Focused
		p.scale.KeyframesTo(
			anim.Keyframe{At: PosterPeakAt, Value: PosterPeakScale, Ease: anim.EaseOutCubic},
			anim.Keyframe{At: PosterSettleAt, Value: PosterFocusScale},
		)
		p.glow.TweenTo(PosterGlowAlpha, PosterGlowTween, anim.EaseOutCubic)
		return
	}
	p.state = Unfocused
	p.scale.SpringTo(1, anim.NoBounce)
	p.glow.TweenTo(0, PosterGlowTween, anim.EaseOutCubic)
}

// Activate is the confirm key while focused.
func (p *PosterCard) Activate() { p.fire() }

// Click is a pointer press.
func (p *PosterCard) Click() { p.fire() }

func (p *PosterCard) fire() {
	if p.onClick != nil {
		p.onClick()
	}
}

func (p *PosterCard) State() PosterState { return p.state }
func (p *PosterCard) Title() string      { return p.title }

// Animating reports whether the focus response is still running.
func (p *PosterCard) Animating() bool {
	return p.scale.Active() || p.glow.Active()
}

// Tick advances the focus animation.
func (p *PosterCard) Tick(dt time.Duration) {
	p.scale.Tick(dt)
	p.glow.Tick(dt)
}

func (p *PosterCard) View() PosterView {
	v := PosterView{
		Title:   p.title,
		Image:   p.image,
		Focused: p.state == Focused,
		Scale:   p.scale.Get(),
		Glow:    p.glow.Get(),
	}
	if v.Focused {
		v.Border = PosterBorderWidth
	}
	return v
}
