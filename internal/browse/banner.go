package browse

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/depeter/cinematv/internal/anim"
	"github.com/depeter/cinematv/internal/catalog"
	"github.com/depeter/cinematv/internal/focus"
)

const (
	BannerRotateEvery  = 4 * time.Second
	BannerCrossfade    = 600 * time.Millisecond
	BannerContentFade  = 260 * time.Millisecond
	BannerParallax     = 16.0  // max upward shift in pixels
	BannerParallaxSpan = 200.0 // scroll distance over which the shift applies
	BannerHeight       = 420.0
)

// BannerConfig builds a Banner.
type BannerConfig struct {
	Record catalog.MediaRecord
	// Backgrounds are rotated behind the content. When empty the record's
	// own backdrop is used.
	Backgrounds []string
	Play        func(id string)
	PlayFocus   *focus.Requester
	Scope       *anim.Scope
	// RotateEvery defaults to BannerRotateEvery.
	RotateEvery time.Duration
}

// BannerView describes the banner frame. During a crossfade Previous is
// drawn under Background with alpha 1-Crossfade.
type BannerView struct {
	RecordID     string
	Title        string
	Synopsis     string
	Background   catalog.ImageRef
	Previous     catalog.ImageRef
	Crossfade    float64
	ContentAlpha float64
	PlayFocused  bool
	Parallax     float64 // vertical offset, <= 0
}

// Banner is the featured item at the top of Home with a rotating background
// and a Play action.
type Banner struct {
	rec         catalog.MediaRecord
	backgrounds []catalog.ImageRef
	play        func(id string)
	playFocus   *focus.Requester
	parent      *anim.Scope
	scope       *anim.Scope
	every       time.Duration

	index, prev int
	crossfade   anim.Value
	content     anim.Value
	focused     bool
	scrollY     float64
	rotation    *anim.Task
}

// NewBanner creates a banner. Call Mount to start rotating.
func NewBanner(cfg BannerConfig) *Banner {
	b := &Banner{
		rec:       cfg.Record,
		play:      cfg.Play,
		playFocus: cfg.PlayFocus,
		parent:    cfg.Scope,
		scope:     cfg.Scope.Child(),
		every:     cfg.RotateEvery,
		crossfade: anim.NewValue(1),
	}
	if b.every <= 0 {
		b.every = BannerRotateEvery
	}
	for _, u := range cfg.Backgrounds {
		b.backgrounds = append(b.backgrounds, catalog.ImageRef{URL: u, Placeholder: catalog.PlaceholderBackdrop})
	}
	if len(b.backgrounds) == 0 {
		b.backgrounds = []catalog.ImageRef{cfg.Record.Backdrop}
	}
	if b.playFocus == nil {
		b.playFocus = focus.NewRequester("banner.play")
	}
	b.playFocus.Attach(b)
	return b
}

// SetFocused is the Play action's focus notification.
func (b *Banner) SetFocused(f bool) { b.focused = f }

// PlayFocused reports whether the Play action holds focus.
func (b *Banner) PlayFocused() bool { return b.focused }

// PlayFocus returns the requester the Play action is attached to.
func (b *Banner) PlayFocus() *focus.Requester { return b.playFocus }

// Mount fades the content in and starts background rotation.
func (b *Banner) Mount() {
	if !b.playFocus.Attached() {
		b.playFocus.Attach(b)
	}
	b.content.TweenTo(1, BannerContentFade, anim.Linear)
	if b.rotation.Active() || len(b.backgrounds) < 2 {
		return
	}
	b.rotation = b.scope.Every(b.every, b.advance)
}

// Unmount stops rotation and releases the Play requester.
func (b *Banner) Unmount() {
	b.rotation.Cancel()
	b.scope.Cancel()
	b.scope = b.parent.Child()
	if b.playFocus.Target() == focus.Target(b) {
		b.playFocus.Detach()
	}
	b.focused = false
	b.content.Snap(0)
}

// Rotating reports whether the rotation task is live.
func (b *Banner) Rotating() bool { return b.rotation.Active() }

// BackgroundIndex returns the index of the background being shown.
func (b *Banner) BackgroundIndex() int { return b.index }

func (b *Banner) advance() {
	b.prev = b.index
	b.index = (b.index + 1) % len(b.backgrounds)
	b.crossfade.Snap(0)
	b.crossfade.TweenTo(1, BannerCrossfade, anim.EaseInOutCubic)
	logrus.WithField("index", b.index).Debug("browse: banner background rotated")
}

// Activate triggers Play.
func (b *Banner) Activate() {
	if b.play != nil {
		b.play(b.rec.ID)
	}
}

// SetScroll feeds the page's vertical scroll offset for the parallax shift.
func (b *Banner) SetScroll(y float64) { b.scrollY = y }

func (b *Banner) Tick(dt time.Duration) {
	b.crossfade.Tick(dt)
	b.content.Tick(dt)
}

func (b *Banner) View() BannerView {
	p := b.scrollY / BannerParallaxSpan
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	return BannerView{
		RecordID:     b.rec.ID,
		Title:        b.rec.Title,
		Synopsis:     b.rec.Synopsis,
		Background:   b.backgrounds[b.index],
		Previous:     b.backgrounds[b.prev],
		Crossfade:    b.crossfade.Get(),
		ContentAlpha: b.content.Get(),
		PlayFocused:  b.focused,
		Parallax:     -BannerParallax * p,
	}
}
