package anim

import (
	"time"
)

// Scheduler runs delayed and repeating tasks against a virtual clock that
// only moves when Tick is called. It is meant to be driven from the UI
// update loop and is not safe for concurrent use.
type Scheduler struct {
	now   time.Duration
	seq   uint64
	tasks []*Task
	root  *Scope
}

// NewScheduler returns a scheduler at time zero.
func NewScheduler() *Scheduler {
	s := &Scheduler{}
	s.root = &Scope{sched: s}
	return s
}

// Now returns the virtual time.
func (s *Scheduler) Now() time.Duration { return s.now }

// Root returns the scope that owns tasks scheduled directly on s.
func (s *Scheduler) Root() *Scope { return s.root }

// NewScope returns a top-level scope.
func (s *Scheduler) NewScope() *Scope { return s.root.Child() }

func (s *Scheduler) After(d time.Duration, fn func()) *Task { return s.root.After(d, fn) }
func (s *Scheduler) Every(d time.Duration, fn func()) *Task { return s.root.Every(d, fn) }

// Pending returns the number of live tasks.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// Tick advances the clock by dt and runs every task that falls due, in
// due-time order with ties broken by creation order. A repeating task that
// falls due several times within dt runs once per period.
func (s *Scheduler) Tick(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	s.now += dt
	for {
		t := s.next()
		if t == nil {
			break
		}
		if t.every > 0 {
			t.due += t.every
		} else {
			t.cancelled = true
		}
		t.fn()
	}
	s.compact()
}

func (s *Scheduler) next() *Task {
	var best *Task
	for _, t := range s.tasks {
		if t.cancelled || t.due > s.now {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (s *Scheduler) compact() {
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = live
}

func (s *Scheduler) add(sc *Scope, d, every time.Duration, fn func()) *Task {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &Task{sched: s, scope: sc, due: s.now + d, every: every, seq: s.seq, fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// Task is a scheduled callback.
type Task struct {
	sched     *Scheduler
	scope     *Scope
	due       time.Duration
	every     time.Duration
	seq       uint64
	fn        func()
	cancelled bool
}

// Cancel stops the task. Cancelling twice is harmless.
func (t *Task) Cancel() {
	if t == nil {
		return
	}
	t.cancelled = true
}

// Active reports whether the task will still run.
func (t *Task) Active() bool { return t != nil && !t.cancelled }

// Due returns the virtual time the task runs next.
func (t *Task) Due() time.Duration { return t.due }

// Scope groups tasks that share a lifetime, such as everything a screen
// started. Cancelling a scope cancels its tasks and child scopes and makes
// it refuse new work.
type Scope struct {
	sched     *Scheduler
	parent    *Scope
	tasks     []*Task
	children  []*Scope
	cancelled bool
}

// Child returns a scope cancelled together with sc.
func (sc *Scope) Child() *Scope {
	c := &Scope{sched: sc.sched, parent: sc, cancelled: sc.cancelled}
	if !sc.cancelled {
		sc.children = append(sc.children, c)
	}
	return c
}

// Now returns the scheduler's virtual time.
func (sc *Scope) Now() time.Duration { return sc.sched.now }

// After runs fn once, d from now. On a cancelled scope it returns an
// already-cancelled task.
func (sc *Scope) After(d time.Duration, fn func()) *Task {
	return sc.schedule(d, 0, fn)
}

// Every runs fn every d, first d from now. d must be positive.
func (sc *Scope) Every(d time.Duration, fn func()) *Task {
	if d <= 0 {
		panic("anim: Every needs a positive period")
	}
	return sc.schedule(d, d, fn)
}

func (sc *Scope) schedule(d, every time.Duration, fn func()) *Task {
	if sc.cancelled {
		return &Task{sched: sc.sched, scope: sc, fn: fn, cancelled: true}
	}
	t := sc.sched.add(sc, d, every, fn)
	live := sc.tasks[:0]
	for _, old := range sc.tasks {
		if !old.cancelled {
			live = append(live, old)
		}
	}
	sc.tasks = append(live, t)
	return t
}

// Cancel cancels every task in the scope and its children.
func (sc *Scope) Cancel() {
	if sc.cancelled {
		return
	}
	sc.cancelled = true
	for _, t := range sc.tasks {
		t.Cancel()
	}
	sc.tasks = nil
	children := sc.children
	sc.children = nil
	for _, c := range children {
		c.Cancel()
	}
	if p := sc.parent; p != nil && !p.cancelled {
		for i, c := range p.children {
			if c == sc {
				p.children = append(p.children[:i], p.children[i+1:]...)
				break
			}
		}
	}
}

// Cancelled reports whether Cancel was called on the scope or an ancestor.
func (sc *Scope) Cancelled() bool { return sc.cancelled }

// Children returns the number of live child scopes.
func (sc *Scope) Children() int { return len(sc.children) }

// Pending returns the number of live tasks owned directly by the scope.
func (sc *Scope) Pending() int {
	n := 0
	for _, t := range sc.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}
