// Package eyes provides the eye-animation abstraction for the skull:
// eased position transitions, offset validation, and blink scheduling.
// Rendering the eye itself is the display pipeline's job; this package
// only decides where the pupil should be and when the lids should close.
package eyes

// EaseKind selects the interpolation curve for a transition.
type EaseKind int

const (
	// Linear maps progress straight through.
	Linear EaseKind = iota

	// EaseIn starts slow and accelerates.
	EaseIn

	// EaseOut starts fast and decelerates.
	EaseOut

	// EaseInOut accelerates then decelerates, the default for eye moves.
	EaseInOut
)

// String returns the easing name for logging.
func (e EaseKind) String() string {
	switch e {
	case Linear:
		return "linear"
	case EaseIn:
		return "ease-in"
	case EaseOut:
		return "ease-out"
	case EaseInOut:
		return "ease-in-out"
	default:
		return "unknown"
	}
}

// Apply maps a progress fraction p in [0, 1] to an eased fraction in
// [0, 1]. Values outside the domain are clamped first, so Apply is total.
func (e EaseKind) Apply(p float64) float64 {
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		return 1
	}
	switch e {
	case EaseIn:
		return p * p
	case EaseOut:
		return p * (2 - p)
	case EaseInOut:
		if p < 0.5 {
			return 2 * p * p
		}
		return -1 + (4-2*p)*p
	default:
		return p
	}
}

// lerp performs linear interpolation between two values.
func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
