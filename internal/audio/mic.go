package audio

import (
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	"github.com/gordonklaus/portaudio"
)

const (
	micSampleRate   = 16000
	micChannels     = 1
	micSampleWidth  = 2
	framesPerBuffer = 1024
)

// Mic captures 16kHz mono PCM-16 from the default input device via
// PortAudio. A single pump goroutine reads the device and hands frames to
// ReadFrames over a channel.
type Mic struct {
	stream *portaudio.Stream
	frames chan Frame
	done   chan struct{}

	mu     sync.Mutex
	closed bool
}

// OpenMic initializes PortAudio and starts capturing from the default
// input device.
func OpenMic() (*Mic, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("initializing portaudio: %w", err)
	}

	buf := make([]int16, framesPerBuffer)
	stream, err := portaudio.OpenDefaultStream(micChannels, 0, micSampleRate, len(buf), buf)
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("opening default input device: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return nil, fmt.Errorf("starting audio stream: %w", err)
	}

	m := &Mic{
		stream: stream,
		frames: make(chan Frame, 64),
		done:   make(chan struct{}),
	}
	go m.pump(buf)
	return m, nil
}

func (m *Mic) pump(buf []int16) {
	for {
		select {
		case <-m.done:
			return
		default:
		}

		if err := m.stream.Read(); err != nil {
			// Device gone or stream stopped underneath us; end the session.
			m.Close()
			return
		}

		data := make([]byte, len(buf)*micSampleWidth)
		for i, s := range buf {
			binary.LittleEndian.PutUint16(data[i*micSampleWidth:], uint16(s))
		}
		frame := Frame{
			Data:        data,
			SampleWidth: micSampleWidth,
			SampleRate:  micSampleRate,
			Channels:    micChannels,
		}

		select {
		case m.frames <- frame:
		case <-m.done:
			return
		}
	}
}

// Playing reports whether the microphone is still capturing.
func (m *Mic) Playing() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return !m.closed
}

// ReadFrames returns all frames buffered so far, blocking up to timeout
// for the first one.
func (m *Mic) ReadFrames(timeout time.Duration) ([]Frame, error) {
	var frames []Frame
	select {
	case f := <-m.frames:
		frames = append(frames, f)
	case <-time.After(timeout):
		return nil, ErrNoFrames
	case <-m.done:
		return nil, ErrNoFrames
	}

	// Drain whatever else accumulated while we waited.
	for {
		select {
		case f := <-m.frames:
			frames = append(frames, f)
		default:
			return frames, nil
		}
	}
}

// Close stops capturing and releases the device.
func (m *Mic) Close() error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil
	}
	m.closed = true
	close(m.done)
	m.mu.Unlock()

	_ = m.stream.Stop()
	err := m.stream.Close()
	portaudio.Terminate()
	return err
}
