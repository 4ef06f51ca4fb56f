package eyes

import "time"

// Eye position offset constants, in display pixels from center.
const (
	HLeft   = -40
	HCenter = 0
	HRight  = 40
	VUp     = -30
	VCenter = 0
	VDown   = 30
)

// Validation bounds. Offsets beyond these would put the pupil off the
// display regardless of per-sequence content.
const (
	MaxHOffset = 60
	MaxVOffset = 30
)

// Transition duration bounds. Guards against zero-length jumps and
// runaway transitions.
const (
	MinDuration = 10 * time.Millisecond
	MaxDuration = 30 * time.Second

	// DefaultDuration is used when a sequence gives no better answer,
	// e.g. for the final keyframe of a scripted loop.
	DefaultDuration = 500 * time.Millisecond
)

// Offset is an eye position relative to center.
type Offset struct {
	H int
	V int
}

// ValidateOffset reports whether the offset is within the fixed display
// bounds.
func ValidateOffset(h, v int) bool {
	return h >= -MaxHOffset && h <= MaxHOffset &&
		v >= -MaxVOffset && v <= MaxVOffset
}

// ValidateDuration reports whether a transition duration is reasonable.
func ValidateDuration(d time.Duration) bool {
	return d >= MinDuration && d <= MaxDuration
}

// Animator is the abstract eye surface the animation engine talks to.
// Both operations are non-blocking and fire-and-forget.
type Animator interface {
	// StartTransition begins or replaces an animation of the eye toward
	// the given offset over the given duration.
	StartTransition(h, v int, duration time.Duration, ease EaseKind)

	// TriggerBlink begins a fixed-shape blink animation.
	TriggerBlink()
}
