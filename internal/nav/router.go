package nav

import (
	"github.com/sirupsen/logrus"
)

// Entry is one back stack record. IDs are unique for the router's lifetime,
// so two visits to the same route are distinct entries.
type Entry struct {
	ID    uint64
	Route Route
}

// Router owns the back stack. The bottom entry is always Home.
type Router struct {
	stack  []Entry
	nextID uint64

	listeners []func(stack []Entry)
}

// NewRouter creates a router whose stack holds a single Home entry.
func NewRouter() *Router {
	r := &Router{}
	r.stack = []Entry{r.newEntry(Home())}
	return r
}

func (r *Router) newEntry(route Route) Entry {
	r.nextID++
	return Entry{ID: r.nextID, Route: route}
}

// OnChange registers fn to be called with the new stack after every change.
func (r *Router) OnChange(fn func(stack []Entry)) {
	r.listeners = append(r.listeners, fn)
}

// Current returns the top entry.
func (r *Router) Current() Entry {
	return r.stack[len(r.stack)-1]
}

// Stack returns a copy of the back stack, bottom first.
func (r *Router) Stack() []Entry {
	return append([]Entry(nil), r.stack...)
}

// Depth returns the number of entries on the stack.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Navigate moves to route.
//
// Home pops back to the existing Home entry and never adds a second one.
// Search and Settings are pushed unless already on top. Details is always
// pushed.
func (r *Router) Navigate(route Route) {
	log := logrus.WithField("route", route.String())

	switch route.Kind {
	case KindHome:
		if len(r.stack) == 1 {
			log.Debug("nav: already home")
			return
		}
		r.stack = r.stack[:1]
	case KindSearch, KindSettings:
		if r.Current().Route == route {
			log.Debug("nav: single-top, not pushing")
			return
		}
		r.stack = append(r.stack, r.newEntry(route))
	default:
		r.stack = append(r.stack, r.newEntry(route))
	}

	log.WithField("depth", len(r.stack)).Debug("nav: navigate")
	r.notify()
}

// Back pops the top entry. It returns false when only Home remains.
func (r *Router) Back() bool {
	if len(r.stack) <= 1 {
		return false
	}
	r.stack = r.stack[:len(r.stack)-1]
	logrus.WithField("route", r.Current().Route.String()).Debug("nav: back")
	r.notify()
	return true
}

func (r *Router) notify() {
	stack := r.Stack()
	for _, fn := range r.listeners {
		fn(stack)
	}
}
