package audio

// Accumulator feeds the same frame stream into two buffers: the full
// session audio and the pending audio awaiting the next transcription
// cycle. The session buffer is never reset while recording; the pending
// buffer is swapped out on each Flush.
type Accumulator struct {
	session *Segment
	pending *Segment
}

func NewAccumulator() *Accumulator {
	return &Accumulator{
		session: NewSegment(),
		pending: NewSegment(),
	}
}

// Add merges a batch of frames into both buffers. An empty batch leaves
// both unchanged.
func (a *Accumulator) Add(frames []Frame) error {
	for _, f := range frames {
		if err := a.session.Append(f); err != nil {
			return err
		}
		if err := a.pending.Append(f); err != nil {
			return err
		}
	}
	return nil
}

// Session returns the full-session buffer.
func (a *Accumulator) Session() *Segment {
	return a.session
}

// Pending returns the buffer accumulated since the last Flush.
func (a *Accumulator) Pending() *Segment {
	return a.pending
}

// Flush returns the pending buffer and replaces it with an empty one.
// The session buffer is untouched.
func (a *Accumulator) Flush() *Segment {
	flushed := a.pending
	a.pending = NewSegment()
	return flushed
}
