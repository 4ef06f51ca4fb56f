package eyes

import "time"

// TransitionCall records one StartTransition invocation on a Sim.
type TransitionCall struct {
	To       Offset
	Duration time.Duration
	Ease     EaseKind
}

// Sim is an Animator that tracks eye state in memory instead of driving
// a display. It evaluates the active transition on demand, which makes
// it both the headless eye implementation for dry runs and the test
// double for the animation engine.
type Sim struct {
	now        func() time.Time
	transition Transition
	current    Offset

	// Recorded calls, for assertions in tests.
	Calls  []TransitionCall
	Blinks int
}

// NewSim returns a Sim reading time from the given clock. A nil clock
// falls back to time.Now.
func NewSim(now func() time.Time) *Sim {
	if now == nil {
		now = time.Now
	}
	return &Sim{now: now}
}

// StartTransition begins or replaces the eye move. The current
// (possibly mid-transition) offset becomes the new start point.
func (s *Sim) StartTransition(h, v int, duration time.Duration, ease EaseKind) {
	now := s.now()
	s.current = s.transition.At(now)
	s.transition.Begin(now, s.current, Offset{H: h, V: v}, duration, ease)
	s.Calls = append(s.Calls, TransitionCall{
		To:       Offset{H: h, V: v},
		Duration: duration,
		Ease:     ease,
	})
}

// TriggerBlink counts the blink; a headless eye has no lids to draw.
func (s *Sim) TriggerBlink() {
	s.Blinks++
}

// Position returns the eye offset as of the sim's clock.
func (s *Sim) Position() Offset {
	return s.transition.At(s.now())
}

// LastCall returns the most recent transition call, or false if none.
func (s *Sim) LastCall() (TransitionCall, bool) {
	if len(s.Calls) == 0 {
		return TransitionCall{}, false
	}
	return s.Calls[len(s.Calls)-1], true
}
