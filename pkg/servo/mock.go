package servo

// Command records one call made to the Recorder.
type Command struct {
	Channel  Channel
	Position uint16
}

// Recorder is a Controller that records every command for assertions in
// tests. It is also handy as a dry-run driver when no hardware is wired.
type Recorder struct {
	Targets []Command
	Motion  []MotionConfig

	// Err, when set, is returned from every call.
	Err error
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// SetTarget records the commanded position.
func (r *Recorder) SetTarget(c Channel, position uint16) error {
	if r.Err != nil {
		return r.Err
	}
	r.Targets = append(r.Targets, Command{Channel: c, Position: position})
	return nil
}

// ConfigureMotion records the motion limits.
func (r *Recorder) ConfigureMotion(c Channel, speed, accel uint16) error {
	if r.Err != nil {
		return r.Err
	}
	r.Motion = append(r.Motion, MotionConfig{Channel: c, Speed: speed, Accel: accel})
	return nil
}

// Last returns the most recent target command, or false if none.
func (r *Recorder) Last() (Command, bool) {
	if len(r.Targets) == 0 {
		return Command{}, false
	}
	return r.Targets[len(r.Targets)-1], true
}

// Reset clears all recorded commands.
func (r *Recorder) Reset() {
	r.Targets = nil
	r.Motion = nil
}
