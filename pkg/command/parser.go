package command

import "github.com/grimworks/go-skull/internal/log"

// MaxLineLength bounds one command line, newline excluded. Anything
// longer overflows: the partial line is discarded and the eventual
// newline answers ERR.
const MaxLineLength = 64

// Parser accumulates raw bytes into complete command lines. Each
// connection owns one Parser; the buffer never survives across lines.
type Parser struct {
	exec func(line string) string

	buf      []byte
	overflow bool
}

// NewParser returns a parser feeding complete lines to exec.
func NewParser(exec func(line string) string) *Parser {
	return &Parser{exec: exec, buf: make([]byte, 0, MaxLineLength)}
}

// Feed consumes raw input bytes and returns one response per completed
// line, in order. Carriage returns are tolerated before the newline.
func (p *Parser) Feed(data []byte) []string {
	var responses []string

	for _, b := range data {
		if b == '\n' {
			responses = append(responses, p.finishLine())
			continue
		}
		if b == '\r' {
			continue
		}
		if p.overflow {
			continue // keep discarding until the newline
		}
		if len(p.buf) >= MaxLineLength {
			log.Warn("command line overflow, discarding", "limit", MaxLineLength)
			p.buf = p.buf[:0]
			p.overflow = true
			continue
		}
		p.buf = append(p.buf, b)
	}

	return responses
}

// finishLine executes the buffered line, or reports the overflow, and
// leaves the parser ready for the next line.
func (p *Parser) finishLine() string {
	if p.overflow {
		p.overflow = false
		p.buf = p.buf[:0]
		return RespErr
	}
	line := string(p.buf)
	p.buf = p.buf[:0]
	return p.exec(line)
}
