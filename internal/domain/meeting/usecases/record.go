package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mateusdtakayama/meet-transcript/internal/audio"
	"github.com/mateusdtakayama/meet-transcript/internal/domain/meeting"
	"github.com/mateusdtakayama/meet-transcript/internal/store"
)

// Transcriber converts an audio artifact into plain transcript text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath, language string) (string, error)
}

// Default timings of the transcription cycle.
const (
	DefaultInterval    = 5 * time.Second
	DefaultPollTimeout = 1 * time.Second
	DefaultIdleSleep   = 100 * time.Millisecond
)

// RecordMeeting drives one recording session: it polls the audio source,
// accumulates frames, and runs a transcription cycle whenever pending
// audio exists and the cycle interval has elapsed.
type RecordMeeting struct {
	Store       *store.Store
	Transcriber Transcriber
	Language    string

	// Interval is the minimum time between transcription cycles.
	Interval time.Duration
	// PollTimeout bounds the blocking wait for new frames each tick.
	PollTimeout time.Duration
	// IdleSleep is the pause before re-polling after an empty tick.
	IdleSleep time.Duration

	// Now and Sleep are injectable for deterministic tests.
	Now   func() time.Time
	Sleep func(time.Duration)

	// OnStart, if set, is called once with the new record identifier when
	// the session begins.
	OnStart func(id string)
	// OnTranscript, if set, is called with each transcribed segment as it
	// is appended.
	OnTranscript func(text string)
}

type sessionState int

const (
	waitingForStream sessionState = iota
	recording
	stopped
)

func (u *RecordMeeting) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now()
}

func (u *RecordMeeting) sleep(d time.Duration) {
	if u.Sleep != nil {
		u.Sleep(d)
		return
	}
	time.Sleep(d)
}

func (u *RecordMeeting) interval() time.Duration {
	if u.Interval > 0 {
		return u.Interval
	}
	return DefaultInterval
}

func (u *RecordMeeting) pollTimeout() time.Duration {
	if u.PollTimeout > 0 {
		return u.PollTimeout
	}
	return DefaultPollTimeout
}

func (u *RecordMeeting) idleSleep() time.Duration {
	if u.IdleSleep > 0 {
		return u.IdleSleep
	}
	return DefaultIdleSleep
}

// shouldTranscribe is the cycle-trigger decision: a cycle runs only when
// pending audio exists and the interval has elapsed since the last cycle.
func shouldTranscribe(pending time.Duration, elapsed, interval time.Duration) bool {
	return pending > 0 && elapsed >= interval
}

// Execute runs the session until the source stops playing. The record
// identifier is assigned once, when the source first reports an active
// stream, and returned even if a later cycle fails.
func (u *RecordMeeting) Execute(ctx context.Context, src audio.Source) (string, error) {
	state := waitingForStream

	for state == waitingForStream {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if src.Playing() {
			state = recording
			break
		}
		u.sleep(u.idleSleep())
	}

	id := meeting.NewID(u.now())
	if err := u.Store.Create(id); err != nil {
		return "", err
	}
	if u.OnStart != nil {
		u.OnStart(id)
	}

	acc := audio.NewAccumulator()
	var transcript strings.Builder
	lastCycle := u.now()

	for state == recording {
		if !src.Playing() {
			state = stopped
			break
		}

		frames, err := src.ReadFrames(u.pollTimeout())
		if err == audio.ErrNoFrames {
			u.sleep(u.idleSleep())
			continue
		}
		if err != nil {
			return id, fmt.Errorf("reading audio frames: %w", err)
		}

		if err := acc.Add(frames); err != nil {
			return id, fmt.Errorf("accumulating audio: %w", err)
		}
		if acc.Pending().Duration() == 0 {
			continue
		}

		// The session audio is rewritten on every tick with pending audio,
		// even when no transcription cycle runs.
		if err := acc.Session().Export(u.Store.ArtifactPath(id, store.ArtifactAudio)); err != nil {
			return id, fmt.Errorf("exporting session audio: %w", err)
		}

		now := u.now()
		if !shouldTranscribe(acc.Pending().Duration(), now.Sub(lastCycle), u.interval()) {
			continue
		}
		lastCycle = now

		chunk := acc.Flush()
		chunkPath := u.Store.ArtifactPath(id, store.ArtifactAudioTemp)
		if err := chunk.Export(chunkPath); err != nil {
			return id, fmt.Errorf("exporting audio chunk: %w", err)
		}

		text, err := u.Transcriber.Transcribe(ctx, chunkPath, u.Language)
		if err != nil {
			return id, fmt.Errorf("transcribing chunk: %w", err)
		}

		transcript.WriteString(text)
		if err := u.Store.WriteArtifact(id, store.ArtifactTranscript, transcript.String()); err != nil {
			return id, err
		}
		if u.OnTranscript != nil {
			u.OnTranscript(text)
		}
	}

	return id, nil
}
