// Package focus routes remote-control input focus between on-screen controls.
//
// A control that can take focus implements Target. Callers that need to send
// focus somewhere specific hold a Requester, an opaque handle the control
// attaches itself to, and ask a Controller to move focus there. Exactly one
// target holds focus at a time.
package focus

import (
	"github.com/sirupsen/logrus"
)

// Direction is a D-pad direction.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Target is a control that can hold input focus. SetFocused is the focus
// change notification.
type Target interface {
	SetFocused(focused bool)
}

// Requester is a handle to the control that should receive focus next.
type Requester struct {
	label  string
	target Target
}

// NewRequester returns an unattached requester. The label only shows up in logs.
func NewRequester(label string) *Requester {
	return &Requester{label: label}
}

// Attach binds t to the requester, replacing any previous target.
func (r *Requester) Attach(t Target) { r.target = t }

// Detach unbinds the current target.
func (r *Requester) Detach() { r.target = nil }

// Attached reports whether a target is bound.
func (r *Requester) Attached() bool { return r.target != nil }

// Target returns the bound target, or nil.
func (r *Requester) Target() Target { return r.target }

func (r *Requester) String() string {
	if r == nil {
		return "<nil>"
	}
	return r.label
}

// Controller moves input focus.
type Controller interface {
	// RequestFocus moves focus to the requester's target. It returns false
	// and leaves focus unchanged when nothing is attached.
	RequestFocus(r *Requester) bool
}

// Manager is the Controller for one screen.
type Manager struct {
	focused *Requester
	last    *Requester // focus before the last Clear
}

// NewManager returns a manager with nothing focused.
func NewManager() *Manager {
	return &Manager{}
}

// RequestFocus implements Controller. The old target is told it lost focus
// before the new one is told it gained it.
func (m *Manager) RequestFocus(r *Requester) bool {
	if r == nil || !r.Attached() {
		logrus.WithField("target", r.String()).Debug("focus: request on detached target ignored")
		return false
	}
	if m.focused == r && r.target != nil {
		return true
	}
	if m.focused != nil && m.focused.target != nil {
		m.focused.target.SetFocused(false)
	}
	m.focused = r
	r.target.SetFocused(true)
	logrus.WithField("target", r.String()).Debug("focus: moved")
	return true
}

// Focused returns the requester holding focus, or nil.
func (m *Manager) Focused() *Requester {
	if m.focused != nil && !m.focused.Attached() {
		return nil
	}
	return m.focused
}

// Has reports whether r currently holds focus.
func (m *Manager) Has(r *Requester) bool {
	return r != nil && m.Focused() == r
}

// Clear drops focus, notifying the focused target.
func (m *Manager) Clear() {
	if m.focused != nil && m.focused.target != nil {
		m.focused.target.SetFocused(false)
	}
	if m.focused != nil {
		m.last = m.focused
	}
	m.focused = nil
}

// Restore gives focus back to whatever held it before Clear. It returns
// false when focus is already held or the old target has gone away.
func (m *Manager) Restore() bool {
	if m.Focused() != nil || m.last == nil {
		return false
	}
	return m.RequestFocus(m.last)
}
