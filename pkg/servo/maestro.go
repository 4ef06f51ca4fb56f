package servo

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/tarm/serial"
)

// Pololu Maestro compact protocol command bytes.
const (
	cmdSetTarget       = 0x84
	cmdSetSpeed        = 0x87
	cmdSetAcceleration = 0x89
)

// Maestro drives a Pololu Maestro servo controller over a serial link
// using the compact protocol. Writes are fire-and-forget; the animation
// engine never waits on the controller.
type Maestro struct {
	mu   sync.Mutex
	port io.ReadWriteCloser
}

// NewMaestro wraps an already-open port. Tests pass an in-memory buffer.
func NewMaestro(port io.ReadWriteCloser) *Maestro {
	return &Maestro{port: port}
}

// OpenMaestro opens the serial device and returns a driver for it.
func OpenMaestro(device string, baud int) (*Maestro, error) {
	port, err := serial.OpenPort(&serial.Config{
		Name:        device,
		Baud:        baud,
		ReadTimeout: 100 * time.Millisecond,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", device, err)
	}
	return &Maestro{port: port}, nil
}

// SetTarget commands the channel to a position in quarter-microseconds.
func (m *Maestro) SetTarget(c Channel, position uint16) error {
	return m.send(cmdSetTarget, c, position)
}

// ConfigureMotion sets the channel's speed and acceleration caps.
func (m *Maestro) ConfigureMotion(c Channel, speed, accel uint16) error {
	if err := m.send(cmdSetSpeed, c, speed); err != nil {
		return err
	}
	return m.send(cmdSetAcceleration, c, accel)
}

// Close releases the serial port.
func (m *Maestro) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.port.Close()
}

// send writes one compact-protocol frame: command byte, channel, and the
// value split into two 7-bit bytes, low bits first.
func (m *Maestro) send(cmd byte, c Channel, value uint16) error {
	frame := [4]byte{cmd, byte(c), byte(value & 0x7F), byte((value >> 7) & 0x7F)}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, err := m.port.Write(frame[:]); err != nil {
		return fmt.Errorf("maestro write failed: %w", err)
	}
	return nil
}
