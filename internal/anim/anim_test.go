package anim

import (
	"math"
	"testing"
	"time"
)

const ms = time.Millisecond

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestEasing(t *testing.T) {
	for name, fn := range map[string]Easing{
		"linear":      Linear,
		"out-cubic":   EaseOutCubic,
		"inout-cubic": EaseInOutCubic,
	} {
		if !near(fn(0), 0) || !near(fn(1), 1) {
			t.Errorf("%s: endpoints %v %v", name, fn(0), fn(1))
		}
	}
	if EaseOutCubic(0.5) <= 0.5 {
		t.Error("ease-out should be ahead of linear at the midpoint")
	}
}

func TestTween(t *testing.T) {
	v := NewValue(0)
	v.TweenTo(0.45, 200*ms, EaseOutCubic)
	if !v.Active() || v.Target() != 0.45 {
		t.Fatal("tween did not start")
	}
	v.Tick(100 * ms)
	want := 0.45 * EaseOutCubic(0.5)
	if !near(v.Get(), want) {
		t.Errorf("midpoint = %v, want %v", v.Get(), want)
	}
	v.Tick(100 * ms)
	if v.Active() || v.Get() != 0.45 {
		t.Errorf("after full duration: active=%v value=%v", v.Active(), v.Get())
	}
}

func TestTweenRestartsFromCurrent(t *testing.T) {
	v := NewValue(0)
	v.TweenTo(1, 100*ms, Linear)
	v.Tick(50 * ms)
	v.TweenTo(0, 100*ms, Linear)
	v.Tick(50 * ms)
	if !near(v.Get(), 0.25) {
		t.Errorf("value = %v, want 0.25 (half way back from 0.5)", v.Get())
	}
}

func TestEqualTargetStartsNothing(t *testing.T) {
	v := NewValue(1)
	v.TweenTo(1, 100*ms, Linear)
	if v.Active() {
		t.Error("tween to the resting value should not start")
	}

	v.KeyframesTo(Keyframe{At: 140 * ms, Value: 1.12}, Keyframe{At: 220 * ms, Value: 1.10})
	if !v.Active() {
		t.Fatal("keyframes should start")
	}
	// Reversed before any tick: the value never moved, so nothing runs.
	v.SpringTo(1, NoBounce)
	if v.Active() || v.Get() != 1 {
		t.Errorf("active=%v value=%v, want resting at 1", v.Active(), v.Get())
	}
}

func TestKeyframes(t *testing.T) {
	v := NewValue(1)
	v.KeyframesTo(
		Keyframe{At: 140 * ms, Value: 1.12, Ease: EaseOutCubic},
		Keyframe{At: 220 * ms, Value: 1.10},
	)
	tests := []struct {
		step time.Duration
		want float64
	}{
		{70 * ms, 1 + 0.12*EaseOutCubic(0.5)},
		{70 * ms, 1.12},
		{40 * ms, 1.11},
		{40 * ms, 1.10},
	}
	for i, tc := range tests {
		v.Tick(tc.step)
		if !near(v.Get(), tc.want) {
			t.Errorf("step %d: value = %v, want %v", i, v.Get(), tc.want)
		}
	}
	if v.Active() {
		t.Error("keyframes should be finished")
	}
}

func TestSpring(t *testing.T) {
	for _, s := range []Spring{
		NoBounce,
		{Stiffness: 200, DampingRatio: 0.5, Max: time.Second},
		{Stiffness: 200, DampingRatio: 2, Max: time.Second},
	} {
		v := NewValue(1.1)
		v.SpringTo(1, s)
		prev := v.Get()
		for i := 0; i < 5; i++ {
			v.Tick(16 * ms)
		}
		if v.Get() >= prev && s.DampingRatio >= 1 {
			t.Errorf("ratio %v: spring did not move toward target (%v)", s.DampingRatio, v.Get())
		}
		for i := 0; i < 100 && v.Active(); i++ {
			v.Tick(16 * ms)
		}
		if v.Active() || v.Get() != 1 {
			t.Errorf("ratio %v: spring should settle at 1, got %v (active=%v)", s.DampingRatio, v.Get(), v.Active())
		}
	}
}

func TestNoBounceNeverOvershoots(t *testing.T) {
	v := NewValue(1.1)
	v.SpringTo(1, NoBounce)
	for v.Active() {
		v.Tick(5 * ms)
		if v.Get() < 1 {
			t.Fatalf("overshot to %v", v.Get())
		}
	}
}

func TestSchedulerOrder(t *testing.T) {
	s := NewScheduler()
	var got []string
	log := func(name string) func() { return func() { got = append(got, name) } }

	s.After(30*ms, log("c"))
	s.After(10*ms, log("a"))
	s.After(20*ms, log("b1"))
	s.After(20*ms, log("b2"))
	s.After(0, log("now"))

	s.Tick(5 * ms)
	s.Tick(100 * ms)

	want := []string{"now", "a", "b1", "b2", "c"}
	if len(got) != len(want) {
		t.Fatalf("ran %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ran %v, want %v", got, want)
		}
	}
	if s.Pending() != 0 {
		t.Errorf("pending = %d, want 0", s.Pending())
	}
}

func TestEveryAndCancel(t *testing.T) {
	s := NewScheduler()
	n := 0
	task := s.Every(4*time.Second, func() { n++ })

	s.Tick(3 * time.Second)
	if n != 0 {
		t.Fatalf("ran early: %d", n)
	}
	s.Tick(time.Second)
	if n != 1 {
		t.Fatalf("runs = %d, want 1", n)
	}
	s.Tick(8 * time.Second)
	if n != 3 {
		t.Fatalf("runs = %d, want 3", n)
	}
	task.Cancel()
	s.Tick(time.Minute)
	if n != 3 || task.Active() || s.Pending() != 0 {
		t.Errorf("cancelled task still live: runs=%d active=%v pending=%d", n, task.Active(), s.Pending())
	}
}

func TestTaskCancelledBeforeDue(t *testing.T) {
	s := NewScheduler()
	ran := false
	task := s.After(10*ms, func() { ran = true })
	task.Cancel()
	task.Cancel()
	s.Tick(time.Second)
	if ran {
		t.Error("cancelled task ran")
	}
}

func TestScopeCancel(t *testing.T) {
	s := NewScheduler()
	page := s.NewScope()
	row := page.Child()
	other := s.NewScope()

	runs := map[string]int{}
	page.Every(100*ms, func() { runs["page"]++ })
	row.After(50*ms, func() { runs["row"]++ })
	other.After(50*ms, func() { runs["other"]++ })

	page.Cancel()
	if !row.Cancelled() {
		t.Error("child scope should be cancelled with its parent")
	}
	if task := page.After(ms, func() { runs["late"]++ }); task.Active() {
		t.Error("cancelled scope accepted new work")
	}
	if c := page.Child(); !c.Cancelled() {
		t.Error("child of a cancelled scope should start cancelled")
	}

	s.Tick(time.Second)
	if runs["page"] != 0 || runs["row"] != 0 || runs["late"] != 0 {
		t.Errorf("cancelled work ran: %v", runs)
	}
	if runs["other"] != 1 {
		t.Errorf("unrelated scope should run: %v", runs)
	}
	if s.Pending() != 0 {
		t.Errorf("pending = %d, want 0", s.Pending())
	}
}

func TestCancelledChildLeavesParent(t *testing.T) {
	s := NewScheduler()
	page := s.NewScope()
	for i := 0; i < 50; i++ {
		page.Child().Cancel()
	}
	keep := page.Child()
	if n := page.Children(); n != 1 {
		t.Errorf("children = %d, want 1", n)
	}
	keep.Cancel()
	if n := page.Children(); n != 0 {
		t.Errorf("children = %d, want 0", n)
	}
}

func TestTaskScheduledFromTask(t *testing.T) {
	s := NewScheduler()
	var at []time.Duration
	s.After(10*ms, func() {
		at = append(at, s.Now())
		s.After(0, func() { at = append(at, s.Now()) })
	})
	s.Tick(20 * ms)
	if len(at) != 2 {
		t.Fatalf("runs = %v, want 2", at)
	}
}
