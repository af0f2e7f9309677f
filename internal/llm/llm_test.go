package llm

import (
	"context"
	"testing"
)

type stubCompleter struct{}

func (stubCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	return "ok", nil
}

func TestNewSelectsBackend(t *testing.T) {
	openaiClient := stubCompleter{}

	tests := []struct {
		backend string
		wantErr bool
		gemini  bool
	}{
		{backend: "", wantErr: false},
		{backend: "openai", wantErr: false},
		{backend: "gemini", wantErr: false, gemini: true},
		{backend: "claude", wantErr: true},
	}
	for _, tt := range tests {
		t.Run("backend="+tt.backend, func(t *testing.T) {
			c, err := New(tt.backend, openaiClient, "key", "gemini-2.5-flash")
			if tt.wantErr {
				if err == nil {
					t.Fatal("New should fail for unknown backend")
				}
				return
			}
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if _, isGemini := c.(*Gemini); isGemini != tt.gemini {
				t.Errorf("backend %q selected Gemini = %v, want %v", tt.backend, isGemini, tt.gemini)
			}
		})
	}
}

func TestGeminiRequiresAPIKey(t *testing.T) {
	g := NewGemini("", "gemini-2.5-flash")
	if _, err := g.Complete(context.Background(), "prompt"); err == nil {
		t.Error("Complete without an API key should fail")
	}
}
