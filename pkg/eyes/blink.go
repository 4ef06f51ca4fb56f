package eyes

import (
	"math/rand"
	"time"
)

// Automatic blink timing.
const (
	BlinkIntervalMin = 1000 * time.Millisecond
	BlinkIntervalMax = 5000 * time.Millisecond

	BlinkCloseDuration = 150 * time.Millisecond
	BlinkPauseDuration = 100 * time.Millisecond
	BlinkOpenDuration  = 150 * time.Millisecond
)

// BlinkScheduler fires automatic blinks at random intervals. It is
// level-triggered: a late tick fires an overdue blink rather than
// losing it.
type BlinkScheduler struct {
	animator Animator
	rng      *rand.Rand
	next     time.Time
}

// NewBlinkScheduler returns a scheduler driving the given animator.
func NewBlinkScheduler(animator Animator, rng *rand.Rand) *BlinkScheduler {
	return &BlinkScheduler{animator: animator, rng: rng}
}

// Tick fires a blink if one is due and schedules the next. The first
// tick only arms the timer.
func (b *BlinkScheduler) Tick(now time.Time) {
	if b.next.IsZero() {
		b.next = now.Add(b.interval())
		return
	}
	if now.Before(b.next) {
		return
	}
	b.animator.TriggerBlink()
	b.next = now.Add(b.interval())
}

func (b *BlinkScheduler) interval() time.Duration {
	span := BlinkIntervalMax - BlinkIntervalMin
	return BlinkIntervalMin + time.Duration(b.rng.Int63n(int64(span)+1))
}
