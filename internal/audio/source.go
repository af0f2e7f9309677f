package audio

import (
	"errors"
	"time"
)

// ErrNoFrames is returned by a Source when no frames arrived within the
// read timeout. It signals a normal idle tick, not a failure.
var ErrNoFrames = errors.New("no audio frames available")

// Source supplies live audio frames to a recording session.
type Source interface {
	// Playing reports whether the source is still delivering audio.
	// Once it returns false the session is over.
	Playing() bool

	// ReadFrames blocks up to timeout waiting for the next batch of
	// frames. It returns ErrNoFrames when the timeout elapses.
	ReadFrames(timeout time.Duration) ([]Frame, error)

	// Close stops the source. After Close, Playing reports false.
	Close() error
}
