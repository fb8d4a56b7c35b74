package anim

import (
	"math"
	"time"
)

// Keyframe is one stop of a keyframe animation. At is measured from the
// start of the animation.
type Keyframe struct {
	At    time.Duration
	Value float64
	Ease  Easing // easing into this frame; nil means linear
}

// Spring describes a mass-1 spring. Max bounds the run time; the value snaps
// to the target when it is reached.
type Spring struct {
	Stiffness    float64
	DampingRatio float64
	Max          time.Duration
}

// NoBounce is a critically damped spring.
var NoBounce = Spring{Stiffness: 200, DampingRatio: 1, Max: 600 * time.Millisecond}

const restThreshold = 1e-4

type motion interface {
	// at returns the value after elapsed and whether the motion is over.
	at(elapsed time.Duration) (float64, bool)
}

type tween struct {
	from, to float64
	dur      time.Duration
	ease     Easing
}

func (tw tween) at(elapsed time.Duration) (float64, bool) {
	if tw.dur <= 0 || elapsed >= tw.dur {
		return tw.to, true
	}
	p := float64(elapsed) / float64(tw.dur)
	return Lerp(tw.from, tw.to, tw.ease(clamp01(p))), false
}

type keyframes struct {
	from   float64
	frames []Keyframe
}

func (k keyframes) at(elapsed time.Duration) (float64, bool) {
	prevAt, prevV := time.Duration(0), k.from
	for _, f := range k.frames {
		if elapsed < f.At {
			span := f.At - prevAt
			p := 1.0
			if span > 0 {
				p = float64(elapsed-prevAt) / float64(span)
			}
			ease := f.Ease
			if ease == nil {
				ease = Linear
			}
			return Lerp(prevV, f.Value, ease(clamp01(p))), false
		}
		prevAt, prevV = f.At, f.Value
	}
	return prevV, true
}

type spring struct {
	from, to float64
	cfg      Spring
}

func (s spring) at(elapsed time.Duration) (float64, bool) {
	if s.cfg.Max > 0 && elapsed >= s.cfg.Max {
		return s.to, true
	}
	t := elapsed.Seconds()
	x0 := s.from - s.to
	w0 := math.Sqrt(s.cfg.Stiffness)
	z := s.cfg.DampingRatio

	var x float64
	switch {
	case z < 1:
		wd := w0 * math.Sqrt(1-z*z)
		x = math.Exp(-z*w0*t) * (x0*math.Cos(wd*t) + (z*w0*x0/wd)*math.Sin(wd*t))
	case z == 1:
		x = (x0 + w0*x0*t) * math.Exp(-w0*t)
	default:
		d := math.Sqrt(z*z - 1)
		r1, r2 := -w0*(z-d), -w0*(z+d)
		c2 := -r1 * x0 / (r2 - r1)
		c1 := x0 - c2
		x = c1*math.Exp(r1*t) + c2*math.Exp(r2*t)
	}
	if math.Abs(x) < restThreshold && t > 0 {
		return s.to, true
	}
	return s.to + x, false
}

// Value is an animated float. The zero Value rests at 0.
//
// Starting an animation always begins at the current value, so an animation
// interrupted halfway continues from where it was rather than jumping.
type Value struct {
	cur     float64
	target  float64
	motion  motion
	elapsed time.Duration
}

// NewValue returns a value resting at v.
func NewValue(v float64) Value {
	return Value{cur: v, target: v}
}

// Get returns the current value.
func (v *Value) Get() float64 { return v.cur }

// Target returns the value the current animation ends at.
func (v *Value) Target() float64 { return v.target }

// Active reports whether an animation is running.
func (v *Value) Active() bool { return v.motion != nil }

// Snap stops any animation and jumps to x.
func (v *Value) Snap(x float64) {
	v.cur, v.target, v.motion, v.elapsed = x, x, nil, 0
}

// start installs m unless the value already sits at to, in which case any
// running animation is dropped and nothing new starts.
func (v *Value) start(to float64, m motion) {
	if v.cur == to {
		v.Snap(to)
		return
	}
	v.target, v.motion, v.elapsed = to, m, 0
}

// TweenTo animates to `to` over d.
func (v *Value) TweenTo(to float64, d time.Duration, ease Easing) {
	if ease == nil {
		ease = Linear
	}
	v.start(to, tween{from: v.cur, to: to, dur: d, ease: ease})
}

// KeyframesTo plays frames in order, starting from the current value. The
// last frame's value is the target.
func (v *Value) KeyframesTo(frames ...Keyframe) {
	if len(frames) == 0 {
		return
	}
	to := frames[len(frames)-1].Value
	v.start(to, keyframes{from: v.cur, frames: append([]Keyframe(nil), frames...)})
}

// SpringTo animates to `to` with spring physics, starting at rest.
func (v *Value) SpringTo(to float64, s Spring) {
	v.start(to, spring{from: v.cur, to: to, cfg: s})
}

// Tick advances the running animation by dt.
func (v *Value) Tick(dt time.Duration) {
	if v.motion == nil {
		return
	}
	v.elapsed += dt
	x, done := v.motion.at(v.elapsed)
	if done {
		v.Snap(v.target)
		return
	}
	v.cur = x
}
