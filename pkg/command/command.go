// Package command implements the skull's line-based command protocol:
// newline-delimited, case-insensitive text commands, exactly one
// response line per command. A bad command never does more than return
// ERR; nothing here can halt the control loop.
package command

import (
	"strconv"
	"strings"

	"github.com/grimworks/go-skull/internal/log"
	"github.com/grimworks/go-skull/pkg/animation"
	"github.com/grimworks/go-skull/pkg/servo"
)

// Protocol response tokens.
const (
	RespOK  = "OK"
	RespErr = "ERR"
)

// HelpText is the one-line command summary returned by help.
const HelpText = "commands: start stop pause resume | mode scripted|dynamic | talk start|stop | servo <ch> <pos> | eye <h> <v> | blink home status help"

// Handler executes parsed command lines against a sequencer. It must
// only be called from the control loop goroutine; the sequencer is not
// concurrency-safe and does not need to be.
type Handler struct {
	seq *animation.Sequencer
}

// NewHandler returns a handler driving the given sequencer.
func NewHandler(seq *animation.Sequencer) *Handler {
	return &Handler{seq: seq}
}

// Execute runs one command line and returns its single response line.
// Unrecognized or malformed commands return ERR with no side effect.
func (h *Handler) Execute(line string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(line)))
	if len(fields) == 0 {
		return RespErr
	}

	log.Debug("command received", "command", fields[0], "args", len(fields)-1)

	switch fields[0] {
	case "start":
		if len(fields) != 1 {
			return RespErr
		}
		h.seq.Start()
		return RespOK

	case "stop":
		if len(fields) != 1 {
			return RespErr
		}
		h.seq.Stop()
		return RespOK

	case "pause":
		if len(fields) != 1 {
			return RespErr
		}
		h.seq.Pause()
		return RespOK

	case "resume":
		if len(fields) != 1 {
			return RespErr
		}
		h.seq.Resume()
		return RespOK

	case "mode":
		if len(fields) != 2 {
			return RespErr
		}
		switch fields[1] {
		case "scripted":
			h.seq.SetMode(animation.ModeScripted)
			return RespOK
		case "dynamic":
			h.seq.SetMode(animation.ModeDynamic)
			return RespOK
		default:
			return RespErr
		}

	case "talk":
		if len(fields) != 2 {
			return RespErr
		}
		switch fields[1] {
		case "start":
			h.seq.TalkStart()
			return RespOK
		case "stop":
			h.seq.TalkStop()
			return RespOK
		default:
			return RespErr
		}

	case "servo":
		if len(fields) != 3 {
			return RespErr
		}
		ch, err := strconv.ParseUint(fields[1], 10, 8)
		if err != nil {
			return RespErr
		}
		pos, err := strconv.ParseUint(fields[2], 10, 16)
		if err != nil {
			return RespErr
		}
		if !h.seq.SetServo(servo.Channel(ch), uint16(pos)) {
			return RespErr
		}
		return RespOK

	case "eye":
		if len(fields) != 3 {
			return RespErr
		}
		hOff, err := strconv.Atoi(fields[1])
		if err != nil {
			return RespErr
		}
		vOff, err := strconv.Atoi(fields[2])
		if err != nil {
			return RespErr
		}
		if !h.seq.SetEye(hOff, vOff) {
			return RespErr
		}
		return RespOK

	case "blink":
		if len(fields) != 1 {
			return RespErr
		}
		h.seq.Blink()
		return RespOK

	case "home":
		if len(fields) != 1 {
			return RespErr
		}
		if !h.seq.Home() {
			return RespErr
		}
		return RespOK

	case "status":
		if len(fields) != 1 {
			return RespErr
		}
		return h.seq.Mode().Code()

	case "help":
		if len(fields) != 1 {
			return RespErr
		}
		return HelpText

	default:
		return RespErr
	}
}
