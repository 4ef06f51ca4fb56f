package servo

import (
	"bytes"
	"testing"
)

// fakePort captures frames written by the driver.
type fakePort struct {
	bytes.Buffer
	closed bool
}

func (f *fakePort) Close() error {
	f.closed = true
	return nil
}

func TestMaestroSetTargetEncoding(t *testing.T) {
	port := &fakePort{}
	m := NewMaestro(port)

	// 6000 = 0x1770: low 7 bits 0x70, high 7 bits 0x2E
	if err := m.SetTarget(Pan, 6000); err != nil {
		t.Fatalf("SetTarget failed: %v", err)
	}

	want := []byte{cmdSetTarget, 0x00, 0x70, 0x2E}
	if got := port.Bytes(); !bytes.Equal(got, want) {
		t.Errorf("frame = % X, want % X", got, want)
	}
}

func TestMaestroConfigureMotion(t *testing.T) {
	port := &fakePort{}
	m := NewMaestro(port)

	if err := m.ConfigureMotion(Nod, 50, 25); err != nil {
		t.Fatalf("ConfigureMotion failed: %v", err)
	}

	want := []byte{
		cmdSetSpeed, 0x01, 50, 0x00,
		cmdSetAcceleration, 0x01, 25, 0x00,
	}
	if got := port.Bytes(); !bytes.Equal(got, want) {
		t.Errorf("frames = % X, want % X", got, want)
	}
}

func TestMaestroSevenBitSplit(t *testing.T) {
	port := &fakePort{}
	m := NewMaestro(port)

	// Max jaw position exercises both payload bytes.
	if err := m.SetTarget(Jaw, JawOpen); err != nil {
		t.Fatalf("SetTarget failed: %v", err)
	}

	got := port.Bytes()
	if len(got) != 4 {
		t.Fatalf("frame length = %d, want 4", len(got))
	}
	decoded := uint16(got[2]) | uint16(got[3])<<7
	if decoded != JawOpen {
		t.Errorf("decoded position = %d, want %d", decoded, JawOpen)
	}
}

func TestMaestroClose(t *testing.T) {
	port := &fakePort{}
	m := NewMaestro(port)

	if err := m.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if !port.closed {
		t.Error("expected underlying port to be closed")
	}
}
