package focus

import (
	"testing"
)

type recorder struct {
	name   string
	events *[]string
	state  bool
}

func (r *recorder) SetFocused(f bool) {
	r.state = f
	suffix := "-"
	if f {
		suffix = "+"
	}
	*r.events = append(*r.events, r.name+suffix)
}

func TestManagerRequestFocus(t *testing.T) {
	var events []string
	a := &recorder{name: "a", events: &events}
	b := &recorder{name: "b", events: &events}
	ra, rb := NewRequester("a"), NewRequester("b")
	ra.Attach(a)
	rb.Attach(b)

	m := NewManager()
	if m.Focused() != nil {
		t.Fatal("new manager should have nothing focused")
	}

	steps := []struct {
		name   string
		req    *Requester
		wantOK bool
		want   []string
	}{
		{"first focus", ra, true, []string{"a+"}},
		{"same target again is a no-op", ra, true, []string{"a+"}},
		{"loss is reported before gain", rb, true, []string{"a+", "a-", "b+"}},
		{"nil requester", nil, false, []string{"a+", "a-", "b+"}},
	}
	for _, s := range steps {
		t.Run(s.name, func(t *testing.T) {
			if got := m.RequestFocus(s.req); got != s.wantOK {
				t.Fatalf("RequestFocus = %v, want %v", got, s.wantOK)
			}
			if len(events) != len(s.want) {
				t.Fatalf("events = %v, want %v", events, s.want)
			}
			for i := range events {
				if events[i] != s.want[i] {
					t.Fatalf("events = %v, want %v", events, s.want)
				}
			}
		})
	}
	if !m.Has(rb) || m.Has(ra) || a.state || !b.state {
		t.Errorf("focus ended on the wrong target: a=%v b=%v", a.state, b.state)
	}
}

func TestDetachedRequester(t *testing.T) {
	var events []string
	a := &recorder{name: "a", events: &events}
	ra, empty := NewRequester("a"), NewRequester("empty")
	ra.Attach(a)

	m := NewManager()
	m.RequestFocus(ra)
	if m.RequestFocus(empty) {
		t.Fatal("detached requester should not take focus")
	}
	if !a.state || !m.Has(ra) {
		t.Fatal("focus should stay where it was")
	}

	ra.Detach()
	if ra.Attached() || ra.Target() != nil {
		t.Fatal("Detach should clear the target")
	}
	if m.Focused() != nil {
		t.Error("a detached focused requester is not reported as focused")
	}
}

func TestManagerClear(t *testing.T) {
	var events []string
	a := &recorder{name: "a", events: &events}
	ra := NewRequester("a")
	ra.Attach(a)

	m := NewManager()
	m.RequestFocus(ra)
	m.Clear()
	if a.state || m.Focused() != nil {
		t.Errorf("Clear left focus behind: state=%v focused=%v", a.state, m.Focused())
	}
	m.Clear()
	if len(events) != 2 {
		t.Errorf("events = %v, want one gain and one loss", events)
	}

	if !m.Restore() || !a.state || !m.Has(ra) {
		t.Fatal("Restore should refocus the target held before Clear")
	}
	if m.Restore() {
		t.Error("Restore while focused should do nothing")
	}
	m.Clear()
	ra.Detach()
	if m.Restore() {
		t.Error("Restore onto a detached requester should fail")
	}
}

func TestDirectionString(t *testing.T) {
	tests := map[Direction]string{
		DirNone: "none", DirUp: "up", DirDown: "down", DirLeft: "left", DirRight: "right",
	}
	for d, want := range tests {
		if d.String() != want {
			t.Errorf("%d.String() = %q, want %q", int(d), d.String(), want)
		}
	}
}
