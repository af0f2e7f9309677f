package usecases

import (
	"context"
	"fmt"

	"github.com/mateusdtakayama/meet-transcript/internal/llm"
	"github.com/mateusdtakayama/meet-transcript/internal/store"
)

// Summarize produces a meeting summary from its transcript. A summary is
// computed at most once per record: once written it is served from the
// store and the collaborator is never called again.
type Summarize struct {
	Store     *store.Store
	Completer llm.Completer
	// Prompt is the instruction template; the transcript is substituted
	// for its single %s verb.
	Prompt string
}

// Execute returns the record's summary, generating and persisting it on
// first request.
func (u *Summarize) Execute(ctx context.Context, id string) (string, error) {
	if _, err := u.Store.Get(id); err != nil {
		return "", err
	}

	summary, err := u.Store.ReadArtifact(id, store.ArtifactSummary)
	if err != nil {
		return "", err
	}
	if summary != "" {
		return summary, nil
	}

	transcript, err := u.Store.ReadArtifact(id, store.ArtifactTranscript)
	if err != nil {
		return "", err
	}
	if transcript == "" {
		return "", fmt.Errorf("meeting %s has no transcript to summarize", id)
	}

	summary, err = u.Completer.Complete(ctx, fmt.Sprintf(u.Prompt, transcript))
	if err != nil {
		return "", fmt.Errorf("generating summary: %w", err)
	}

	if err := u.Store.WriteArtifact(id, store.ArtifactSummary, summary); err != nil {
		return "", err
	}
	return summary, nil
}
