package app

import (
	"github.com/mateusdtakayama/meet-transcript/config"
	"github.com/mateusdtakayama/meet-transcript/internal/domain/meeting/usecases"
	"github.com/mateusdtakayama/meet-transcript/internal/llm"
	"github.com/mateusdtakayama/meet-transcript/internal/openai"
	"github.com/mateusdtakayama/meet-transcript/internal/store"
)

type App struct {
	Store     *store.Store
	Record    *usecases.RecordMeeting
	Summarize *usecases.Summarize
}

func New(cfg *config.Config) (*App, error) {
	st, err := store.New(cfg.MeetingsDir)
	if err != nil {
		return nil, err
	}

	openaiClient := openai.New(cfg.OpenAIAPIKey)

	completer, err := llm.New(cfg.LLMBackend, openaiClient, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		return nil, err
	}

	record := &usecases.RecordMeeting{
		Store:       st,
		Transcriber: openaiClient,
		Language:    cfg.Language,
		Interval:    cfg.TranscribeInterval,
	}

	summarize := &usecases.Summarize{
		Store:     st,
		Completer: completer,
		Prompt:    cfg.SummaryPrompt,
	}

	return &App{
		Store:     st,
		Record:    record,
		Summarize: summarize,
	}, nil
}
