package output

import (
	"fmt"
	"io"
	"strings"
	"time"
)

type Formatter struct {
	w io.Writer
}

func NewFormatter(w io.Writer) *Formatter {
	return &Formatter{w: w}
}

func (f *Formatter) WaitingForStream() {
	fmt.Fprintf(f.w, "🎙️  Waiting for microphone...\n")
}

func (f *Formatter) RecordingStarted(id string) {
	fmt.Fprintf(f.w, "🔴 Recording meeting %s — start speaking (Ctrl+C to stop)\n", id)
}

func (f *Formatter) TranscriptSegment(text string) {
	fmt.Fprintf(f.w, "%s\n", strings.TrimSpace(text))
}

func (f *Formatter) RecordingStopped(duration time.Duration) {
	fmt.Fprintf(f.w, "⏹️  Recording stopped (%s)\n", formatDuration(duration))
}

func (f *Formatter) MeetingComplete(dir string) {
	fmt.Fprintf(f.w, "\n📁 Meeting saved: %s\n", dir)
}

func (f *Formatter) Summarizing() {
	fmt.Fprintf(f.w, "🤖 Generating summary...\n")
}

func (f *Formatter) Error(msg string) {
	fmt.Fprintf(f.w, "❌ %s\n", msg)
}

func (f *Formatter) Info(msg string) {
	fmt.Fprintf(f.w, "ℹ️  %s\n", msg)
}

func (f *Formatter) Success(msg string) {
	fmt.Fprintf(f.w, "✅ %s\n", msg)
}

func (f *Formatter) Warning(msg string) {
	fmt.Fprintf(f.w, "⚠️  %s\n", msg)
}

func (f *Formatter) MeetingListHeader() {
	fmt.Fprintf(f.w, "📁 Meetings:\n\n")
}

func (f *Formatter) MeetingListItem(id, label string, hasTranscript, hasSummary bool) {
	status := ""
	if hasTranscript && hasSummary {
		status = " ✅"
	} else if hasTranscript {
		status = " 📝"
	}
	fmt.Fprintf(f.w, "  %s  %s%s\n", id, label, status)
}

func (f *Formatter) MeetingHeader(label string) {
	fmt.Fprintf(f.w, "## %s\n\n", label)
}

func (f *Formatter) Summary(text string) {
	fmt.Fprintf(f.w, "%s\n\n", strings.TrimSpace(text))
}

func (f *Formatter) Transcript(text string) {
	fmt.Fprintf(f.w, "Transcription: %s\n", strings.TrimSpace(text))
}

func (f *Formatter) SetupCheck(name string, ok bool, detail string) {
	if ok {
		fmt.Fprintf(f.w, "  ✅ %s: %s\n", name, detail)
	} else {
		fmt.Fprintf(f.w, "  ❌ %s: %s\n", name, detail)
	}
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	}
	if m > 0 {
		return fmt.Sprintf("%dm%02ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}
