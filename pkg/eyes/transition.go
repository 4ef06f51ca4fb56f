package eyes

import (
	"math"
	"time"
)

// Transition holds the state of one in-flight eye move: captured start
// offset, target offset, start time, duration, and easing. The easing
// primitive itself is stateless; all per-transition state lives here,
// owned by whoever drives the animation.
//
// Retriggering before the previous transition completes replaces it
// outright and restarts progress from zero. Nothing is queued.
type Transition struct {
	from     Offset
	to       Offset
	start    time.Time
	duration time.Duration
	ease     EaseKind
	active   bool
}

// Begin starts a transition from the given current offset.
func (t *Transition) Begin(now time.Time, from, to Offset, duration time.Duration, ease EaseKind) {
	t.from = from
	t.to = to
	t.start = now
	t.duration = duration
	t.ease = ease
	t.active = true
}

// Active reports whether a transition is still running as of now.
func (t *Transition) Active(now time.Time) bool {
	return t.active && now.Sub(t.start) < t.duration
}

// At returns the eased offset at the given time. Before the start it
// returns the captured start offset; at or after completion it holds at
// the target.
func (t *Transition) At(now time.Time) Offset {
	if !t.active {
		return t.to
	}
	elapsed := now.Sub(t.start)
	if elapsed <= 0 {
		return t.from
	}
	if elapsed >= t.duration {
		t.active = false
		return t.to
	}

	p := t.ease.Apply(float64(elapsed) / float64(t.duration))
	return Offset{
		H: int(math.Round(lerp(float64(t.from.H), float64(t.to.H), p))),
		V: int(math.Round(lerp(float64(t.from.V), float64(t.to.V), p))),
	}
}

// Target returns the transition's end offset.
func (t *Transition) Target() Offset {
	return t.to
}
