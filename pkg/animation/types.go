// Package animation is the keyframe sequencing and interpolation engine
// for the skull. It advances a logical animation clock, decides which
// servo and eye targets are due, and arbitrates between three mutually
// exclusive generation strategies: scripted keyframe replay, procedural
// dynamic motion, and sine-driven talking motion.
//
// The engine is single-threaded and tick-driven. Every target passes
// validation before it is forwarded to the servo controller or the eye
// animator; a rejected target is skipped with a warning, never a halt.
package animation

import (
	"time"

	"github.com/grimworks/go-skull/pkg/eyes"
	"github.com/grimworks/go-skull/pkg/servo"
)

// Mode selects which engine generates motion.
type Mode int

const (
	// ModeScripted replays an authored keyframe sequence in a loop.
	ModeScripted Mode = iota

	// ModeDynamic generates randomized procedural motion.
	ModeDynamic

	// ModeTalking drives the jaw with a sine waveform.
	ModeTalking
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeScripted:
		return "scripted"
	case ModeDynamic:
		return "dynamic"
	case ModeTalking:
		return "talking"
	default:
		return "unknown"
	}
}

// Code returns the single-letter mode code used by the status command.
func (m Mode) Code() string {
	switch m {
	case ModeScripted:
		return "S"
	case ModeDynamic:
		return "D"
	case ModeTalking:
		return "T"
	default:
		return "?"
	}
}

// Target is one servo position inside a keyframe. Targets are applied
// in table order, so a keyframe is a slice rather than a map.
type Target struct {
	Channel  servo.Channel
	Position uint16
}

// Keyframe is one scripted pose: servo targets plus an eye offset, due
// at a fixed offset from the start of the sequence.
type Keyframe struct {
	Offset  time.Duration
	Targets []Target
	Eye     eyes.Offset
}

// Sequence is an ordered, time-monotonic list of keyframes. Sequences
// are built at startup and read-only afterwards.
type Sequence struct {
	Name      string
	Keyframes []Keyframe
}

// TotalDuration returns the offset of the last keyframe, or zero for an
// empty sequence.
func (s *Sequence) TotalDuration() time.Duration {
	if len(s.Keyframes) == 0 {
		return 0
	}
	return s.Keyframes[len(s.Keyframes)-1].Offset
}

// Validate checks the sequence invariants: at least one keyframe and
// non-decreasing offsets.
func (s *Sequence) Validate() error {
	if len(s.Keyframes) == 0 {
		return ErrEmptySequence
	}
	for i := 1; i < len(s.Keyframes); i++ {
		if s.Keyframes[i].Offset < s.Keyframes[i-1].Offset {
			return ErrUnorderedSequence
		}
	}
	return nil
}

// DynamicParams describes the random-motion envelope for dynamic mode:
// how often to move, how far from home, and how long to hold.
type DynamicParams struct {
	MinInterval time.Duration
	MaxInterval time.Duration
	Intensity   float64 // 0.0 to 1.0, fraction of each channel's full range
	MinHold     time.Duration
	MaxHold     time.Duration
}

// DefaultDynamicParams is the stock envelope for idle dynamic motion.
var DefaultDynamicParams = DynamicParams{
	MinInterval: 1000 * time.Millisecond,
	MaxInterval: 4000 * time.Millisecond,
	Intensity:   0.7,
	MinHold:     500 * time.Millisecond,
	MaxHold:     2000 * time.Millisecond,
}

// TalkingIdleParams is the calmer envelope driving pan and nod while
// talking mode owns the jaw.
var TalkingIdleParams = DynamicParams{
	MinInterval: 1500 * time.Millisecond,
	MaxInterval: 5000 * time.Millisecond,
	Intensity:   0.3,
	MinHold:     800 * time.Millisecond,
	MaxHold:     2500 * time.Millisecond,
}
