package animation

import (
	"context"
	"time"

	"github.com/grimworks/go-skull/internal/log"
)

// DefaultTickRate is the nominal control loop period.
const DefaultTickRate = 5 * time.Millisecond

// request carries one command line into the loop goroutine and its
// response back out.
type request struct {
	line  string
	reply chan string
}

// Loop is the single control thread: it drains pending commands, then
// runs one sequencer tick, every tick period. All sequencer access —
// command processing included — happens on the loop goroutine, so no
// locking is needed anywhere in the engine.
type Loop struct {
	seq      *Sequencer
	exec     func(line string) string
	rate     time.Duration
	requests chan request
}

// NewLoop wraps a sequencer and a command executor. A zero rate uses
// DefaultTickRate.
func NewLoop(seq *Sequencer, exec func(line string) string, rate time.Duration) *Loop {
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return &Loop{
		seq:      seq,
		exec:     exec,
		rate:     rate,
		requests: make(chan request, 16),
	}
}

// Run drives the loop until the context is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.rate)
	defer ticker.Stop()

	log.Info("control loop started", "rate", l.rate.String())

	for {
		select {
		case <-ctx.Done():
			log.Info("control loop stopped")
			return ctx.Err()

		case req := <-l.requests:
			req.reply <- l.exec(req.line)

		case now := <-ticker.C:
			l.drain()
			l.seq.Tick(now)
		}
	}
}

// drain processes all commands already queued before the tick runs.
func (l *Loop) drain() {
	for {
		select {
		case req := <-l.requests:
			req.reply <- l.exec(req.line)
		default:
			return
		}
	}
}

// Submit hands a complete command line to the loop goroutine and waits
// for its one-line response.
func (l *Loop) Submit(ctx context.Context, line string) (string, error) {
	req := request{line: line, reply: make(chan string, 1)}
	select {
	case l.requests <- req:
	case <-ctx.Done():
		return "", ctx.Err()
	}
	select {
	case resp := <-req.reply:
		return resp, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
