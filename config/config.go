package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// DefaultSummaryPrompt is used when no custom prompt is configured. The
// meeting transcript is substituted for the %s verb.
const DefaultSummaryPrompt = `Summarize the text delimited by ####.
The text is a transcription of a meeting.
The summary should include the main topics discussed.
The summary should have a maximum of 300 characters.
The summary should be in running text.
At the end, all agreements and arrangements made in the meeting should be presented in bullet point format.

The final format I want is:

Meeting Summary:
- write the summary here.

text: ####%s####`

// DefaultLanguage is the transcription language code.
const DefaultLanguage = "pt"

// DefaultGeminiModel is used when the gemini backend is selected without
// an explicit model.
const DefaultGeminiModel = "gemini-2.5-flash"

type Config struct {
	MeetingsDir        string
	OpenAIAPIKey       string
	GeminiAPIKey       string
	LLMBackend         string // "openai" (default) or "gemini"
	GeminiModel        string
	Language           string        // transcription language code
	SummaryPrompt      string        // prompt template with a single %s
	TranscribeInterval time.Duration // minimum time between transcription cycles
}

type fileConfig struct {
	MeetingsDir            string `toml:"meetings_dir"`
	OpenAIAPIKey           string `toml:"openai_api_key"`
	GeminiAPIKey           string `toml:"gemini_api_key"`
	LLMBackend             string `toml:"llm_backend"`
	GeminiModel            string `toml:"gemini_model"`
	Language               string `toml:"language"`
	SummaryPrompt          string `toml:"summary_prompt"`
	TranscribeIntervalSecs int    `toml:"transcribe_interval_seconds"`
}

func Load() (*Config, error) {
	// Credentials may live in a local .env file; a missing file is fine.
	_ = godotenv.Load()

	cfg := &Config{
		MeetingsDir:        defaultMeetingsDir(),
		LLMBackend:         "openai",
		GeminiModel:        DefaultGeminiModel,
		Language:           DefaultLanguage,
		SummaryPrompt:      DefaultSummaryPrompt,
		TranscribeInterval: 5 * time.Second,
	}

	if configPath := configFilePath(); configPath != "" {
		var fc fileConfig
		if _, err := toml.DecodeFile(configPath, &fc); err == nil {
			if fc.MeetingsDir != "" {
				cfg.MeetingsDir = expandTilde(fc.MeetingsDir)
			}
			cfg.OpenAIAPIKey = fc.OpenAIAPIKey
			cfg.GeminiAPIKey = fc.GeminiAPIKey
			if fc.LLMBackend != "" {
				cfg.LLMBackend = fc.LLMBackend
			}
			if fc.GeminiModel != "" {
				cfg.GeminiModel = fc.GeminiModel
			}
			if fc.Language != "" {
				cfg.Language = fc.Language
			}
			if fc.SummaryPrompt != "" {
				cfg.SummaryPrompt = fc.SummaryPrompt
			}
			if fc.TranscribeIntervalSecs > 0 {
				cfg.TranscribeInterval = time.Duration(fc.TranscribeIntervalSecs) * time.Second
			}
		}
	}

	applyEnvOverrides(cfg)

	// Ensure the meetings directory exists
	if err := os.MkdirAll(cfg.MeetingsDir, 0o755); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("MEETTRANSCRIPT_OPENAI_API_KEY"); v != "" {
		cfg.OpenAIAPIKey = v
	} else if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.OpenAIAPIKey = v
	}
	if v := os.Getenv("MEETTRANSCRIPT_GEMINI_API_KEY"); v != "" {
		cfg.GeminiAPIKey = v
	}
	if v := os.Getenv("MEETTRANSCRIPT_LLM_BACKEND"); v != "" {
		cfg.LLMBackend = v
	}
	if v := os.Getenv("MEETTRANSCRIPT_MEETINGS_DIR"); v != "" {
		cfg.MeetingsDir = expandTilde(v)
	}
	if v := os.Getenv("MEETTRANSCRIPT_LANGUAGE"); v != "" {
		cfg.Language = v
	}
	if v := os.Getenv("MEETTRANSCRIPT_TRANSCRIBE_INTERVAL_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.TranscribeInterval = time.Duration(secs) * time.Second
		}
	}
}

func configFilePath() string {
	var configDir string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		configDir = filepath.Join(xdg, "meet-transcript")
	} else if home, err := os.UserHomeDir(); err == nil {
		configDir = filepath.Join(home, ".config", "meet-transcript")
	} else {
		return ""
	}

	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

func defaultMeetingsDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, "meetings")
	}
	return filepath.Join(".", "meetings")
}

func expandTilde(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
