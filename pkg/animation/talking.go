package animation

import (
	"math"
	"math/rand"
	"time"

	"github.com/grimworks/go-skull/internal/log"
	"github.com/grimworks/go-skull/pkg/servo"
)

// Talking waveform tuning. Speed and amplitude are redrawn every
// redraw period so the cadence varies like real speech.
const (
	talkRedrawPeriod = 500 * time.Millisecond

	jawSpeedMinHz = 2.0
	jawSpeedMaxHz = 5.0

	jawAmplitudeMin = 0.3
	jawAmplitudeMax = 1.0
)

// talkingEngine drives the jaw with a sine of elapsed time while a
// calmer dynamic engine idles the head. A zero start time means the
// engine is inactive.
type talkingEngine struct {
	out *outputs
	rng *rand.Rand

	armed      bool
	startTime  time.Time
	lastRedraw time.Time
	speed      float64 // Hz
	amplitude  float64 // fraction of the jaw range

	idle *dynamicEngine
}

func newTalkingEngine(out *outputs, rng *rand.Rand) *talkingEngine {
	idle := newDynamicEngine(TalkingIdleParams, []servo.Channel{servo.Pan, servo.Nod}, out, rng)
	return &talkingEngine{out: out, rng: rng, idle: idle}
}

func (e *talkingEngine) active() bool {
	return e.armed
}

// activate arms the engine; the first tick captures the start time.
func (e *talkingEngine) activate() {
	e.startTime = time.Time{}
	e.lastRedraw = time.Time{}
	e.armed = true
	e.idle.reset()
}

// deactivate stops the waveform and snaps the jaw closed, bypassing it.
func (e *talkingEngine) deactivate() {
	e.armed = false
	e.startTime = time.Time{}
	e.out.setServo(servo.Jaw, servo.JawClosed)
}

func (e *talkingEngine) reset() {
	e.armed = false
	e.startTime = time.Time{}
}

func (e *talkingEngine) tick(now time.Time) {
	if !e.armed {
		return
	}
	if e.startTime.IsZero() {
		e.startTime = now
		e.lastRedraw = now
		e.redraw()
	}

	if now.Sub(e.lastRedraw) >= talkRedrawPeriod {
		e.redraw()
		e.lastRedraw = now
	}

	elapsed := now.Sub(e.startTime).Seconds()
	wave := math.Sin(2 * math.Pi * e.speed * elapsed) // [-1, 1]
	openFrac := (wave + 1) / 2 * e.amplitude

	position := servo.Clamp(servo.Jaw,
		servo.JawClosed+uint16(openFrac*float64(servo.JawOpen-servo.JawClosed)))
	if !servo.Validate(servo.Jaw, position) {
		log.Warn("talking jaw target rejected", "position", position)
	} else {
		e.out.setServo(servo.Jaw, position)
	}

	e.idle.tick(now)
}

// redraw picks a new cadence for the next segment.
func (e *talkingEngine) redraw() {
	e.speed = jawSpeedMinHz + e.rng.Float64()*(jawSpeedMaxHz-jawSpeedMinHz)
	e.amplitude = jawAmplitudeMin + e.rng.Float64()*(jawAmplitudeMax-jawAmplitudeMin)
}
