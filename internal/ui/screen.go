package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/depeter/cinematv/internal/nav"
)

// Screen is the interface for all UI screens (Home, Details, Search, Settings).
type Screen interface {
	// Update handles input and logic. Return a non-nil ScreenTransition to change screens.
	Update() (*ScreenTransition, error)
	// Draw renders the screen.
	Draw(dst *ebiten.Image)
	// OnEnter is called when the screen becomes the top of the stack.
	OnEnter()
	// OnExit is called when the screen stops being the top of the stack.
	OnExit()
	// Name returns the screen name for debugging.
	Name() string
}

// Closer is implemented by screens that hold resources beyond OnExit. Close
// is called once, when the screen's entry leaves the back stack.
type Closer interface {
	Close()
}

// TextCapturer is implemented by screens that may be reading typed text,
// during which single-key shortcuts must not fire.
type TextCapturer interface {
	CapturingText() bool
}

// Focuser is implemented by screens that can hand focus back after the nav
// bar releases it.
type Focuser interface {
	FocusFromAbove()
}

type TransitionType int

const (
	TransitionNavigate TransitionType = iota
	TransitionBack
	TransitionFocusNavBar // request navbar keyboard focus
)

type ScreenTransition struct {
	Type  TransitionType
	Route nav.Route // TransitionNavigate only
}

// NavigateTo is a transition to route.
func NavigateTo(r nav.Route) *ScreenTransition {
	return &ScreenTransition{Type: TransitionNavigate, Route: r}
}

// ScreenFactory builds the screen for a back stack entry.
type ScreenFactory func(e nav.Entry) Screen

type stackScreen struct {
	entry  nav.Entry
	screen Screen
}

// ScreenManager mirrors the router's back stack as a stack of screens. Every
// entry gets its own screen, built once by the factory and kept until the
// entry is popped, so returning to an entry returns to the same state.
type ScreenManager struct {
	router  *nav.Router
	factory ScreenFactory

	stack        []stackScreen
	NavBar       *NavBar
	navBarActive bool
}

// NewScreenManager builds the screens for the router's current stack and
// follows every later change.
func NewScreenManager(router *nav.Router, factory ScreenFactory) *ScreenManager {
	sm := &ScreenManager{router: router, factory: factory}
	router.OnChange(sm.sync)
	sm.sync(router.Stack())
	return sm
}

// Navigate asks the router for route. The screen stack follows through the
// router's change notification.
func (sm *ScreenManager) Navigate(r nav.Route) {
	sm.router.Navigate(r)
}

// Back pops the router. At the root it does nothing.
func (sm *ScreenManager) Back() bool {
	return sm.router.Back()
}

func (sm *ScreenManager) sync(entries []nav.Entry) {
	oldTop := sm.Current()

	keep := make(map[uint64]Screen, len(sm.stack))
	for _, s := range sm.stack {
		keep[s.entry.ID] = s.screen
	}

	next := make([]stackScreen, 0, len(entries))
	for _, e := range entries {
		s, ok := keep[e.ID]
		if ok {
			delete(keep, e.ID)
		} else {
			s = sm.factory(e)
			logrus.WithFields(logrus.Fields{"route": e.Route.String(), "entry": e.ID}).Debug("ui: screen created")
		}
		next = append(next, stackScreen{entry: e, screen: s})
	}
	sm.stack = next

	newTop := sm.Current()
	if oldTop != newTop {
		if oldTop != nil {
			oldTop.OnExit()
		}
		if newTop != nil {
			newTop.OnEnter()
		}
	}
	// Whatever is left was popped.
	for _, s := range keep {
		if c, ok := s.(Closer); ok {
			c.Close()
		}
	}
	sm.navBarActive = false
	if sm.NavBar != nil {
		sm.NavBar.Active = false
	}
	sm.updateNavBarHighlight()
}

func (sm *ScreenManager) Current() Screen {
	if len(sm.stack) == 0 {
		return nil
	}
	return sm.stack[len(sm.stack)-1].screen
}

// CurrentRoute returns the route of the top screen.
func (sm *ScreenManager) CurrentRoute() nav.Route {
	return sm.router.Current().Route
}

// CapturingText reports whether typed text goes to the top screen or the nav bar.
func (sm *ScreenManager) CapturingText() bool {
	if sm.navBarActive {
		return false
	}
	c, ok := sm.Current().(TextCapturer)
	return ok && c.CapturingText()
}

// NavBarActive reports whether the nav bar holds keyboard focus.
func (sm *ScreenManager) NavBarActive() bool { return sm.navBarActive }

func (sm *ScreenManager) Update() error {
	s := sm.Current()
	if s == nil {
		return nil
	}

	// Mouse clicks in navbar area are intercepted before the screen gets them
	if sm.NavBar != nil {
		mx, my, clicked := MouseJustClicked()
		if clicked && float64(my) < NavBarHeight {
			if r, ok := sm.NavBar.HandleClick(mx, my); ok {
				sm.navBarActive = false
				sm.NavBar.Active = false
				sm.Navigate(r)
			}
			return nil
		}
	}

	// When navbar has keyboard focus, route input to it instead of the screen
	if sm.navBarActive && sm.NavBar != nil {
		action, r := sm.NavBar.Update()
		switch action {
		case NavBarActionDefocus:
			sm.releaseNavBar()
		case NavBarActionNavigate:
			sm.releaseNavBar()
			sm.Navigate(r)
		}
		return nil
	}

	tr, err := s.Update()
	if err != nil {
		return err
	}
	if tr != nil {
		switch tr.Type {
		case TransitionNavigate:
			sm.Navigate(tr.Route)
		case TransitionBack:
			sm.Back()
		case TransitionFocusNavBar:
			if sm.NavBar != nil {
				sm.navBarActive = true
				sm.NavBar.FocusFromBelow()
			}
		}
	}
	return nil
}

func (sm *ScreenManager) releaseNavBar() {
	sm.navBarActive = false
	if f, ok := sm.Current().(Focuser); ok {
		f.FocusFromAbove()
	}
}

func (sm *ScreenManager) updateNavBarHighlight() {
	if sm.NavBar == nil {
		return
	}
	sm.NavBar.ActiveRoute = sm.router.Current().Route
}

func (sm *ScreenManager) Draw(dst *ebiten.Image) {
	if s := sm.Current(); s != nil {
		s.Draw(dst)
	}
	if sm.NavBar != nil {
		sm.NavBar.Draw(dst)
	}
}

func (sm *ScreenManager) StackSize() int {
	return len(sm.stack)
}

// pendingNav holds a route requested by a model during a screen's Update, so
// the screen can hand it to the manager as a transition once Update returns.
type pendingNav struct {
	next *nav.Route
}

func (p *pendingNav) navigate(r nav.Route) { p.next = &r }

func (p *pendingNav) take() *ScreenTransition {
	if p.next == nil {
		return nil
	}
	r := *p.next
	p.next = nil
	return NavigateTo(r)
}
