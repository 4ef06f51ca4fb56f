package command

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/grimworks/go-skull/pkg/animation"
	"github.com/grimworks/go-skull/pkg/eyes"
	"github.com/grimworks/go-skull/pkg/servo"
)

func testHandler(t *testing.T) (*Handler, *servo.Recorder, *eyes.Sim) {
	t.Helper()
	rec := servo.NewRecorder()
	sim := eyes.NewSim(nil)
	seq, err := animation.NewSequencer(rec, sim, &animation.IdleSequence, rand.New(rand.NewSource(1)), animation.Options{})
	if err != nil {
		t.Fatalf("NewSequencer failed: %v", err)
	}
	return NewHandler(seq), rec, sim
}

func TestExecuteBasicCommands(t *testing.T) {
	h, _, _ := testHandler(t)

	tests := []struct {
		line string
		want string
	}{
		{"start", RespOK},
		{"pause", RespOK},
		{"pause", RespOK}, // idempotent
		{"resume", RespOK},
		{"stop", RespOK},
		{"mode dynamic", RespOK},
		{"status", "D"},
		{"mode scripted", RespOK},
		{"status", "S"},
		{"talk start", RespOK},
		{"status", "T"},
		{"talk stop", RespOK},
		{"status", "S"},
		{"blink", RespOK},
		{"home", RespOK},
		{"help", HelpText},
	}

	for _, tt := range tests {
		if got := h.Execute(tt.line); got != tt.want {
			t.Errorf("Execute(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestExecuteCaseInsensitive(t *testing.T) {
	h, _, _ := testHandler(t)

	if got := h.Execute("START"); got != RespOK {
		t.Errorf("Execute(START) = %q, want OK", got)
	}
	if got := h.Execute("Mode Dynamic"); got != RespOK {
		t.Errorf("Execute(Mode Dynamic) = %q, want OK", got)
	}
	if got := h.Execute("  status  "); got != "D" {
		t.Errorf("whitespace-padded status = %q, want D", got)
	}
}

func TestExecuteDirectServo(t *testing.T) {
	h, rec, _ := testHandler(t)

	if got := h.Execute(fmt.Sprintf("servo 0 %d", servo.PanLeft)); got != RespOK {
		t.Fatalf("valid servo command = %q, want OK", got)
	}
	last, ok := rec.Last()
	if !ok || last.Channel != servo.Pan || last.Position != servo.PanLeft {
		t.Errorf("command = %+v, want pan left", last)
	}

	// Unconfigured channel: ERR, no actuator call.
	n := len(rec.Targets)
	if got := h.Execute("servo 9 6000"); got != RespErr {
		t.Errorf("servo 9 6000 = %q, want ERR", got)
	}
	if len(rec.Targets) != n {
		t.Error("rejected command still reached the actuator")
	}
}

func TestExecuteDirectEye(t *testing.T) {
	h, _, sim := testHandler(t)

	if got := h.Execute("eye -40 30"); got != RespOK {
		t.Fatalf("valid eye command = %q, want OK", got)
	}
	call, ok := sim.LastCall()
	if !ok || call.To.H != -40 || call.To.V != 30 {
		t.Errorf("eye call = %+v, want {-40 30}", call)
	}

	if got := h.Execute("eye 999 0"); got != RespErr {
		t.Errorf("out-of-range eye = %q, want ERR", got)
	}
	if got := h.Execute("eye a b"); got != RespErr {
		t.Errorf("non-numeric eye = %q, want ERR", got)
	}
}

func TestExecuteMalformed(t *testing.T) {
	h, rec, _ := testHandler(t)

	bad := []string{
		"",
		"foo",
		"mode",
		"mode sideways",
		"talk",
		"talk loud",
		"servo",
		"servo 0",
		"servo x y",
		"servo 0 notanumber",
		"servo -1 6000",
		"servo 0 99999", // overflows uint16
		"eye 1",
		"start now",
		"status please",
	}
	for _, line := range bad {
		if got := h.Execute(line); got != RespErr {
			t.Errorf("Execute(%q) = %q, want ERR", line, got)
		}
	}
	if len(rec.Targets) != 0 {
		t.Errorf("malformed commands reached the actuator: %d calls", len(rec.Targets))
	}
}

func TestParserLineAssembly(t *testing.T) {
	h, _, _ := testHandler(t)
	p := NewParser(h.Execute)

	// Bytes dribble in across feeds; responses only come on newlines.
	if resp := p.Feed([]byte("sta")); len(resp) != 0 {
		t.Fatalf("partial line produced responses: %v", resp)
	}
	resp := p.Feed([]byte("rt\nstatus\n"))
	if len(resp) != 2 || resp[0] != RespOK || resp[1] != "S" {
		t.Fatalf("responses = %v, want [OK S]", resp)
	}
}

func TestParserCRLF(t *testing.T) {
	h, _, _ := testHandler(t)
	p := NewParser(h.Execute)

	resp := p.Feed([]byte("status\r\n"))
	if len(resp) != 1 || resp[0] != "S" {
		t.Errorf("responses = %v, want [S]", resp)
	}
}

func TestParserOverflow(t *testing.T) {
	h, _, _ := testHandler(t)
	p := NewParser(h.Execute)

	long := strings.Repeat("x", MaxLineLength*3) + "\n"
	resp := p.Feed([]byte(long))
	if len(resp) != 1 || resp[0] != RespErr {
		t.Fatalf("overflow responses = %v, want single ERR", resp)
	}

	// Buffer is clear: the next line parses normally.
	resp = p.Feed([]byte("status\n"))
	if len(resp) != 1 || resp[0] != "S" {
		t.Errorf("post-overflow responses = %v, want [S]", resp)
	}
}
