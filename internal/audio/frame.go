package audio

import "time"

// Frame is one batch of raw PCM samples as delivered by a Source.
type Frame struct {
	Data        []byte // interleaved little-endian PCM
	SampleWidth int    // bytes per sample
	SampleRate  int    // samples per second
	Channels    int    // interleaved channel count
}

// Duration returns the playback time covered by the frame.
func (f Frame) Duration() time.Duration {
	bytesPerSecond := f.SampleRate * f.SampleWidth * f.Channels
	if bytesPerSecond <= 0 {
		return 0
	}
	return time.Duration(len(f.Data)) * time.Second / time.Duration(bytesPerSecond)
}
