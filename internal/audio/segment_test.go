package audio

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-audio/wav"
)

// pcmFrame builds a 16kHz mono PCM-16 frame covering the given duration.
func pcmFrame(t *testing.T, d time.Duration) Frame {
	t.Helper()
	n := int(d.Seconds() * 16000 * 2)
	return Frame{
		Data:        make([]byte, n),
		SampleWidth: 2,
		SampleRate:  16000,
		Channels:    1,
	}
}

func TestFrameDuration(t *testing.T) {
	f := pcmFrame(t, 250*time.Millisecond)
	if got := f.Duration(); got != 250*time.Millisecond {
		t.Errorf("Duration() = %v, want 250ms", got)
	}

	var empty Frame
	if got := empty.Duration(); got != 0 {
		t.Errorf("empty frame Duration() = %v, want 0", got)
	}
}

func TestSegmentAppendDuration(t *testing.T) {
	s := NewSegment()
	if got := s.Duration(); got != 0 {
		t.Fatalf("new segment Duration() = %v, want 0", got)
	}

	for i := 0; i < 4; i++ {
		if err := s.Append(pcmFrame(t, 500*time.Millisecond)); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}
	if got := s.Duration(); got != 2*time.Second {
		t.Errorf("Duration() = %v, want 2s", got)
	}
}

func TestSegmentAppendEmptyFrame(t *testing.T) {
	s := NewSegment()
	if err := s.Append(Frame{SampleWidth: 2, SampleRate: 16000, Channels: 1}); err != nil {
		t.Fatalf("Append empty frame: %v", err)
	}
	if got := s.Duration(); got != 0 {
		t.Errorf("Duration() = %v, want 0", got)
	}
}

func TestSegmentAppendFormatMismatch(t *testing.T) {
	s := NewSegment()
	if err := s.Append(pcmFrame(t, 100*time.Millisecond)); err != nil {
		t.Fatalf("Append: %v", err)
	}

	mismatched := Frame{Data: make([]byte, 160), SampleWidth: 2, SampleRate: 8000, Channels: 1}
	if err := s.Append(mismatched); err == nil {
		t.Error("Append with mismatched sample rate should fail")
	}
}

func TestSegmentExportEmpty(t *testing.T) {
	s := NewSegment()
	if err := s.Export(filepath.Join(t.TempDir(), "out.wav")); err == nil {
		t.Error("Export of empty segment should fail")
	}
}

func TestSegmentExportRoundTrip(t *testing.T) {
	s := NewSegment()
	if err := s.Append(pcmFrame(t, time.Second)); err != nil {
		t.Fatalf("Append: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out.wav")
	if err := s.Export(path); err != nil {
		t.Fatalf("Export: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening exported file: %v", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatalf("decoding exported WAV: %v", err)
	}
	if dec.SampleRate != 16000 {
		t.Errorf("exported sample rate = %d, want 16000", dec.SampleRate)
	}
	if got := len(buf.Data); got != 16000 {
		t.Errorf("exported sample count = %d, want 16000", got)
	}
}

func TestSegmentExportOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")

	long := NewSegment()
	if err := long.Append(pcmFrame(t, time.Second)); err != nil {
		t.Fatal(err)
	}
	if err := long.Export(path); err != nil {
		t.Fatalf("first Export: %v", err)
	}

	short := NewSegment()
	if err := short.Append(pcmFrame(t, 100*time.Millisecond)); err != nil {
		t.Fatal(err)
	}
	if err := short.Export(path); err != nil {
		t.Fatalf("second Export: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	// 100ms of 16kHz PCM-16 plus WAV header is well under the 1s file.
	if info.Size() >= 32044 {
		t.Errorf("second export did not overwrite: size = %d", info.Size())
	}
}
