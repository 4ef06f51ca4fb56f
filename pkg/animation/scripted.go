package animation

import (
	"time"

	"github.com/grimworks/go-skull/internal/log"
	"github.com/grimworks/go-skull/pkg/eyes"
	"github.com/grimworks/go-skull/pkg/servo"
)

// scriptedEngine replays a keyframe sequence against the wall clock,
// looping when the last keyframe has been applied. A zero start time
// means "restart from the top on the next tick".
type scriptedEngine struct {
	seq *Sequence
	out *outputs

	startTime time.Time
	next      int
}

func newScriptedEngine(seq *Sequence, out *outputs) *scriptedEngine {
	return &scriptedEngine{seq: seq, out: out}
}

// reset forces the sequence to start from keyframe zero on the next tick.
func (e *scriptedEngine) reset() {
	e.startTime = time.Time{}
	e.next = 0
}

func (e *scriptedEngine) tick(now time.Time) {
	if e.startTime.IsZero() {
		e.startTime = now
		e.next = 0
	}

	elapsed := now.Sub(e.startTime)

	// Apply every keyframe that has come due, in order. A coarse tick
	// never silently drops a frame.
	for e.next < len(e.seq.Keyframes) && elapsed >= e.seq.Keyframes[e.next].Offset {
		kf := e.seq.Keyframes[e.next]
		e.apply(kf, e.eyeDuration(e.next))
		e.next++
	}

	if e.next >= len(e.seq.Keyframes) {
		// Loop: restart from the top on the next tick.
		e.startTime = time.Time{}
	}
}

// eyeDuration is the gap to the following keyframe, or the fixed default
// for the final keyframe.
func (e *scriptedEngine) eyeDuration(i int) time.Duration {
	if i+1 < len(e.seq.Keyframes) {
		return e.seq.Keyframes[i+1].Offset - e.seq.Keyframes[i].Offset
	}
	return eyes.DefaultDuration
}

func (e *scriptedEngine) apply(kf Keyframe, eyeDur time.Duration) {
	for _, t := range kf.Targets {
		if !servo.Validate(t.Channel, t.Position) {
			log.Warn("scripted keyframe target rejected",
				"sequence", e.seq.Name, "channel", t.Channel.String(), "position", t.Position)
			continue
		}
		e.out.setServo(t.Channel, t.Position)
	}

	if !eyes.ValidateOffset(kf.Eye.H, kf.Eye.V) || !eyes.ValidateDuration(eyeDur) {
		log.Warn("scripted eye target rejected",
			"sequence", e.seq.Name, "h", kf.Eye.H, "v", kf.Eye.V, "duration", eyeDur)
		return
	}
	e.out.animator.StartTransition(kf.Eye.H, kf.Eye.V, eyeDur, eyes.EaseInOut)
}
