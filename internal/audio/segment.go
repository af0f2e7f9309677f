package audio

import (
	"encoding/binary"
	"fmt"
	"os"
	"time"

	gaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Segment accumulates PCM audio of a single format. The format is adopted
// from the first appended frame; later frames must match it.
type Segment struct {
	data        []byte
	sampleWidth int
	sampleRate  int
	channels    int
}

func NewSegment() *Segment {
	return &Segment{}
}

// Append merges a frame's samples onto the end of the segment.
func (s *Segment) Append(f Frame) error {
	if len(f.Data) == 0 {
		return nil
	}
	if s.sampleRate == 0 {
		s.sampleWidth = f.SampleWidth
		s.sampleRate = f.SampleRate
		s.channels = f.Channels
	} else if f.SampleWidth != s.sampleWidth || f.SampleRate != s.sampleRate || f.Channels != s.channels {
		return fmt.Errorf("frame format %dB/%dHz/%dch does not match segment format %dB/%dHz/%dch",
			f.SampleWidth, f.SampleRate, f.Channels, s.sampleWidth, s.sampleRate, s.channels)
	}
	s.data = append(s.data, f.Data...)
	return nil
}

// Duration returns the playback time covered by the accumulated samples.
func (s *Segment) Duration() time.Duration {
	bytesPerSecond := s.sampleRate * s.sampleWidth * s.channels
	if bytesPerSecond <= 0 {
		return 0
	}
	return time.Duration(len(s.data)) * time.Second / time.Duration(bytesPerSecond)
}

// Export writes the segment to path as a PCM WAV file, overwriting any
// existing file. Only 16-bit samples are supported.
func (s *Segment) Export(path string) error {
	if len(s.data) == 0 {
		return fmt.Errorf("cannot export empty audio segment")
	}
	if s.sampleWidth != 2 {
		return fmt.Errorf("unsupported sample width: %d bytes (only 16-bit PCM is supported)", s.sampleWidth)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating audio file: %w", err)
	}
	defer f.Close()

	samples := make([]int, len(s.data)/2)
	for i := range samples {
		samples[i] = int(int16(binary.LittleEndian.Uint16(s.data[i*2:])))
	}

	enc := wav.NewEncoder(f, s.sampleRate, 16, s.channels, 1)
	buf := &gaudio.IntBuffer{
		Format:         &gaudio.Format{NumChannels: s.channels, SampleRate: s.sampleRate},
		Data:           samples,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing audio data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing audio file: %w", err)
	}
	return nil
}
