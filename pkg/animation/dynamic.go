package animation

import (
	"math/rand"
	"time"

	"github.com/grimworks/go-skull/internal/log"
	"github.com/grimworks/go-skull/pkg/eyes"
	"github.com/grimworks/go-skull/pkg/servo"
)

// dynamicEngine generates procedural motion: at random intervals it
// draws a new pose inside an intensity-scaled window around each
// channel's home position. Interval, intensity, and hold duration are
// independently tunable axes of the envelope.
type dynamicEngine struct {
	params   DynamicParams
	channels []servo.Channel
	out      *outputs
	rng      *rand.Rand

	initialized bool
	lastMove    time.Time
	nextMove    time.Time
}

// newDynamicEngine drives the given channels. With nil channels it
// drives every configured channel.
func newDynamicEngine(params DynamicParams, channels []servo.Channel, out *outputs, rng *rand.Rand) *dynamicEngine {
	if channels == nil {
		for _, r := range servo.Ranges {
			channels = append(channels, r.Channel)
		}
	}
	return &dynamicEngine{params: params, channels: channels, out: out, rng: rng}
}

// reset clears the movement timers so the next tick re-arms them.
func (e *dynamicEngine) reset() {
	e.initialized = false
	e.lastMove = time.Time{}
	e.nextMove = time.Time{}
}

func (e *dynamicEngine) tick(now time.Time) {
	if !e.initialized {
		e.lastMove = now
		e.nextMove = now.Add(e.randDuration(e.params.MinInterval, e.params.MaxInterval))
		e.initialized = true
		return
	}
	if now.Before(e.nextMove) {
		return
	}

	e.move()

	e.lastMove = now
	e.nextMove = now.Add(e.randDuration(e.params.MinInterval, e.params.MaxInterval))
}

// move draws and forwards one new pose.
func (e *dynamicEngine) move() {
	for _, c := range e.channels {
		r, ok := servo.RangeFor(c)
		if !ok {
			log.Warn("dynamic move skipped unknown channel", "channel", c.String())
			continue
		}
		target := e.drawTarget(r)
		if !servo.Validate(c, target) {
			log.Warn("dynamic target rejected", "channel", c.String(), "position", target)
			continue
		}
		e.out.setServo(c, target)
	}

	h := e.randAround(int(e.params.Intensity * eyes.HRight))
	v := e.randAround(int(e.params.Intensity * eyes.VDown))
	hold := e.randDuration(e.params.MinHold, e.params.MaxHold)
	if !eyes.ValidateOffset(h, v) || !eyes.ValidateDuration(hold) {
		log.Warn("dynamic eye target rejected", "h", h, "v", v, "hold", hold)
		return
	}
	e.out.animator.StartTransition(h, v, hold, eyes.EaseInOut)
}

// drawTarget picks a uniform-random position inside the intensity-scaled
// window centered on home, clamped to the channel's absolute range.
func (e *dynamicEngine) drawTarget(r servo.Range) uint16 {
	span := e.params.Intensity * float64(r.Max-r.Min)
	half := int32(span / 2)

	lo := int32(r.Home) - half
	hi := int32(r.Home) + half
	if lo < int32(r.Min) {
		lo = int32(r.Min)
	}
	if hi > int32(r.Max) {
		hi = int32(r.Max)
	}
	if hi <= lo {
		return r.Home
	}
	return uint16(lo + e.rng.Int31n(hi-lo+1))
}

// randAround returns a uniform draw in [-extent, extent].
func (e *dynamicEngine) randAround(extent int) int {
	if extent <= 0 {
		return 0
	}
	return e.rng.Intn(2*extent+1) - extent
}

// randDuration returns a uniform draw in [min, max].
func (e *dynamicEngine) randDuration(min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	return min + time.Duration(e.rng.Int63n(int64(max-min)+1))
}
