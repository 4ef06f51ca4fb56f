// Package servo defines the skull's servo channels, their safe position
// ranges, and the driver used to reach the Pololu Maestro controller.
//
// Positions are in Maestro quarter-microsecond units. The range tables are
// fixed at startup and never mutated; every position sent to hardware must
// first pass Validate.
package servo

// Channel identifies one servo on the Maestro controller.
type Channel uint8

// Skull servo channel assignments.
const (
	Pan Channel = 0
	Nod Channel = 1
	Jaw Channel = 2
)

// String returns the channel name for logging.
func (c Channel) String() string {
	switch c {
	case Pan:
		return "pan"
	case Nod:
		return "nod"
	case Jaw:
		return "jaw"
	default:
		return "unknown"
	}
}

// Servo position constants (quarter-microsecond units).
const (
	PanLeft   = 4416
	PanCenter = 6000
	PanRight  = 7232

	NodDown   = 4992
	NodCenter = 4600
	NodUp     = 4224

	JawClosed = 5888
	JawOpen   = 6528
)

// Range holds the safe position extent and home position for one channel.
// Invariant: Min <= Home <= Max.
type Range struct {
	Channel Channel
	Min     uint16
	Max     uint16
	Home    uint16
}

// MotionConfig holds the speed and acceleration caps forwarded to the
// Maestro once at startup. Zero means unlimited.
type MotionConfig struct {
	Channel Channel
	Speed   uint16 // 0.25 us / 10 ms per unit
	Accel   uint16 // 0.25 us / 10 ms / 80 ms per unit
}

// Ranges is the per-channel position table. Nod is mechanically inverted:
// Down is the larger pulse width, so Min holds NodUp.
var Ranges = []Range{
	{Channel: Pan, Min: PanLeft, Max: PanRight, Home: PanCenter},
	{Channel: Nod, Min: NodUp, Max: NodDown, Home: NodCenter},
	{Channel: Jaw, Min: JawClosed, Max: JawOpen, Home: JawClosed},
}

// MotionConfigs is the per-channel motion limit table.
var MotionConfigs = []MotionConfig{
	{Channel: Pan, Speed: 60, Accel: 30},
	{Channel: Nod, Speed: 50, Accel: 25},
	{Channel: Jaw, Speed: 0, Accel: 100},
}

// RangeFor returns the range for a channel, or false if the channel is
// not configured.
func RangeFor(c Channel) (Range, bool) {
	for _, r := range Ranges {
		if r.Channel == c {
			return r, true
		}
	}
	return Range{}, false
}

// MotionConfigFor returns the motion config for a channel, or false if
// the channel has none.
func MotionConfigFor(c Channel) (MotionConfig, bool) {
	for _, m := range MotionConfigs {
		if m.Channel == c {
			return m, true
		}
	}
	return MotionConfig{}, false
}

// Validate reports whether position is within the configured range for
// the channel. An unconfigured channel is always invalid.
func Validate(c Channel, position uint16) bool {
	r, ok := RangeFor(c)
	if !ok {
		return false
	}
	return position >= r.Min && position <= r.Max
}

// Clamp restricts position into the channel's configured range. For an
// unconfigured channel the position is returned unchanged.
func Clamp(c Channel, position uint16) uint16 {
	r, ok := RangeFor(c)
	if !ok {
		return position
	}
	if position < r.Min {
		return r.Min
	}
	if position > r.Max {
		return r.Max
	}
	return position
}

// Controller is the fire-and-forget command surface the animation engine
// depends on. Implementations must not block waiting for hardware
// acknowledgement.
type Controller interface {
	// SetTarget commands the channel to the given position.
	SetTarget(c Channel, position uint16) error

	// ConfigureMotion forwards speed and acceleration caps for the
	// channel. Called once per channel at startup.
	ConfigureMotion(c Channel, speed, accel uint16) error
}
