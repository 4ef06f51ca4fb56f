package animation

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/grimworks/go-skull/internal/log"
	"github.com/grimworks/go-skull/pkg/eyes"
	"github.com/grimworks/go-skull/pkg/servo"
)

// outputs bundles the external collaborators a mode engine writes to.
// All calls are fire-and-forget; a failed servo write is logged and the
// tick carries on.
type outputs struct {
	servos   servo.Controller
	animator eyes.Animator
}

func (o *outputs) setServo(c servo.Channel, position uint16) {
	if err := o.servos.SetTarget(c, position); err != nil {
		log.Warn("servo command failed", "channel", c.String(), "error", err)
	}
}

// Options tunes sequencer policy.
type Options struct {
	// SnapOnModeSwitch re-homes the servos and centers the eyes before
	// handing off to a newly selected mode engine. Off by default for a
	// smooth handoff; the jaw is always closed when leaving talking mode
	// regardless.
	SnapOnModeSwitch bool
}

// Sequencer owns the playback state: current mode, pause flag, and the
// three mode engines. Exactly one engine runs per tick. The Sequencer is
// not safe for concurrent use; every method must be called from the
// control loop goroutine.
type Sequencer struct {
	out  outputs
	rng  *rand.Rand
	opts Options

	mode   Mode
	paused bool

	scripted *scriptedEngine
	dynamic  *dynamicEngine
	talking  *talkingEngine

	blink *eyes.BlinkScheduler
}

// NewSequencer builds a sequencer playing the given scripted sequence.
// It starts in scripted mode, unpaused.
func NewSequencer(servos servo.Controller, animator eyes.Animator, seq *Sequence, rng *rand.Rand, opts Options) (*Sequencer, error) {
	if err := seq.Validate(); err != nil {
		return nil, fmt.Errorf("sequence %q: %w", seq.Name, err)
	}

	s := &Sequencer{
		out:  outputs{servos: servos, animator: animator},
		rng:  rng,
		opts: opts,
		mode: ModeScripted,
	}
	s.scripted = newScriptedEngine(seq, &s.out)
	s.dynamic = newDynamicEngine(DefaultDynamicParams, nil, &s.out, rng)
	s.talking = newTalkingEngine(&s.out, rng)
	s.blink = eyes.NewBlinkScheduler(animator, rng)
	return s, nil
}

// ConfigureMotion forwards the per-channel speed and acceleration caps
// to the servo controller. Called once at startup.
func (s *Sequencer) ConfigureMotion() error {
	for _, m := range servo.MotionConfigs {
		if err := s.out.servos.ConfigureMotion(m.Channel, m.Speed, m.Accel); err != nil {
			return fmt.Errorf("configure %s motion: %w", m.Channel, err)
		}
	}
	return nil
}

// Tick runs one control cycle: the automatic blink check, then exactly
// one mode engine unless playback is paused.
func (s *Sequencer) Tick(now time.Time) {
	s.blink.Tick(now)

	if s.paused {
		return
	}

	switch s.mode {
	case ModeScripted:
		s.scripted.tick(now)
	case ModeDynamic:
		s.dynamic.tick(now)
	case ModeTalking:
		s.talking.tick(now)
	}
}

// Mode returns the current mode.
func (s *Sequencer) Mode() Mode {
	return s.mode
}

// Paused reports whether dispatch is suspended.
func (s *Sequencer) Paused() bool {
	return s.paused
}

// Start begins or restarts scripted playback.
func (s *Sequencer) Start() {
	s.SetMode(ModeScripted)
	s.scripted.reset()
	s.paused = false
}

// Stop halts dispatch and resets the playback position.
func (s *Sequencer) Stop() {
	s.paused = true
	s.scripted.reset()
	s.dynamic.reset()
	if s.talking.active() {
		s.talking.deactivate()
	}
}

// Pause suspends dispatch. Servos hold their last commanded position.
// Pausing an already paused sequencer is a no-op.
func (s *Sequencer) Pause() {
	s.paused = true
}

// Resume continues dispatch.
func (s *Sequencer) Resume() {
	s.paused = false
}

// SetMode switches the active engine. The target engine's state is
// reset so it never resumes mid-cycle with timers from a previous
// activation. Leaving talking mode closes the jaw.
func (s *Sequencer) SetMode(mode Mode) {
	if mode == s.mode {
		// Re-selecting the current mode still resets it, matching the
		// "restart from a clean state" contract.
		s.resetEngine(mode)
		return
	}

	if s.mode == ModeTalking && s.talking.active() {
		s.talking.deactivate()
	}
	s.mode = mode
	s.resetEngine(mode)

	if s.opts.SnapOnModeSwitch {
		s.Home()
	}
	log.Info("mode switched", "mode", mode.String())
}

func (s *Sequencer) resetEngine(mode Mode) {
	switch mode {
	case ModeScripted:
		s.scripted.reset()
	case ModeDynamic:
		s.dynamic.reset()
	case ModeTalking:
		s.talking.activate()
	}
}

// TalkStart enters talking mode.
func (s *Sequencer) TalkStart() {
	s.SetMode(ModeTalking)
}

// TalkStop exits talking mode back to scripted playback. The jaw snaps
// closed immediately, bypassing the waveform.
func (s *Sequencer) TalkStop() {
	if s.mode != ModeTalking {
		// Close the jaw anyway; stop must always leave the mouth shut.
		s.out.setServo(servo.Jaw, servo.JawClosed)
		return
	}
	s.SetMode(ModeScripted)
}

// SetServo validates and forwards a direct servo command. Returns false
// and issues nothing when the target is rejected.
func (s *Sequencer) SetServo(c servo.Channel, position uint16) bool {
	if !servo.Validate(c, position) {
		log.Warn("direct servo command rejected", "channel", c.String(), "position", position)
		return false
	}
	s.out.setServo(c, position)
	return true
}

// SetEye validates and forwards a direct eye command using the default
// transition duration.
func (s *Sequencer) SetEye(h, v int) bool {
	if !eyes.ValidateOffset(h, v) {
		log.Warn("direct eye command rejected", "h", h, "v", v)
		return false
	}
	s.out.animator.StartTransition(h, v, eyes.DefaultDuration, eyes.EaseInOut)
	return true
}

// Blink fires a blink immediately.
func (s *Sequencer) Blink() {
	s.out.animator.TriggerBlink()
}

// Home moves every servo to its home position and centers the eyes.
// Returns false if any sub-command failed validation.
func (s *Sequencer) Home() bool {
	ok := true
	for _, r := range servo.Ranges {
		if !s.SetServo(r.Channel, r.Home) {
			ok = false
		}
	}
	if !s.SetEye(eyes.HCenter, eyes.VCenter) {
		ok = false
	}
	return ok
}
