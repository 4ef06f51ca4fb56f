package animation

import (
	"math/rand"
	"testing"
	"time"

	"github.com/grimworks/go-skull/pkg/servo"
)

func TestTalkingJawClamped(t *testing.T) {
	out, rec, _ := testOutputs()
	e := newTalkingEngine(out, rand.New(rand.NewSource(13)))
	e.activate()

	now := time.Unix(100, 0)
	for i := 0; i < 2000; i++ {
		e.tick(now)
		now = now.Add(5 * time.Millisecond)
	}

	if len(rec.Targets) == 0 {
		t.Fatal("expected jaw commands while talking")
	}
	for _, cmd := range rec.Targets {
		if cmd.Channel != servo.Jaw {
			continue // talking-idle head motion is allowed
		}
		if cmd.Position < servo.JawClosed || cmd.Position > servo.JawOpen {
			t.Fatalf("jaw position %d outside [%d, %d]", cmd.Position, servo.JawClosed, servo.JawOpen)
		}
	}
}

func TestTalkingInactiveNoOp(t *testing.T) {
	out, rec, _ := testOutputs()
	e := newTalkingEngine(out, rand.New(rand.NewSource(13)))

	now := time.Unix(100, 0)
	for i := 0; i < 100; i++ {
		e.tick(now)
		now = now.Add(5 * time.Millisecond)
	}
	if len(rec.Targets) != 0 {
		t.Errorf("inactive talking engine issued %d commands", len(rec.Targets))
	}
}

func TestTalkingDeactivateClosesJaw(t *testing.T) {
	out, rec, _ := testOutputs()
	e := newTalkingEngine(out, rand.New(rand.NewSource(17)))
	e.activate()

	now := time.Unix(100, 0)
	for i := 0; i < 50; i++ {
		e.tick(now)
		now = now.Add(5 * time.Millisecond)
	}

	e.deactivate()
	last, ok := rec.Last()
	if !ok || last.Channel != servo.Jaw || last.Position != servo.JawClosed {
		t.Fatalf("last command after deactivate = %+v, want jaw closed", last)
	}
	if e.active() {
		t.Error("engine still active after deactivate")
	}

	// And it stays quiet afterwards.
	n := len(rec.Targets)
	e.tick(now.Add(time.Second))
	if len(rec.Targets) != n {
		t.Error("deactivated engine issued commands")
	}
}

func TestTalkingRedrawsCadence(t *testing.T) {
	out, _, _ := testOutputs()
	e := newTalkingEngine(out, rand.New(rand.NewSource(19)))
	e.activate()

	now := time.Unix(100, 0)
	e.tick(now)
	speed0, amp0 := e.speed, e.amplitude
	if speed0 < jawSpeedMinHz || speed0 > jawSpeedMaxHz {
		t.Errorf("speed %f outside [%f, %f]", speed0, jawSpeedMinHz, jawSpeedMaxHz)
	}
	if amp0 < jawAmplitudeMin || amp0 > jawAmplitudeMax {
		t.Errorf("amplitude %f outside [%f, %f]", amp0, jawAmplitudeMin, jawAmplitudeMax)
	}

	// Past the redraw period the cadence is redrawn (and stays bounded).
	e.tick(now.Add(talkRedrawPeriod + time.Millisecond))
	if e.speed < jawSpeedMinHz || e.speed > jawSpeedMaxHz {
		t.Errorf("redrawn speed %f out of bounds", e.speed)
	}
	if e.speed == speed0 && e.amplitude == amp0 {
		t.Error("cadence unchanged after redraw period")
	}
}
