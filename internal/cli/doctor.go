package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mateusdtakayama/meet-transcript/internal/output"
)

func NewDoctorCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check prerequisites",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := output.NewFormatter(os.Stdout)
			ok := true

			if deps.Config.OpenAIAPIKey != "" {
				f.SetupCheck("OpenAI API key", true, "configured")
			} else {
				f.SetupCheck("OpenAI API key", false, "not set. Set MEETTRANSCRIPT_OPENAI_API_KEY or add to config")
				ok = false
			}

			if deps.Config.LLMBackend == "gemini" {
				if deps.Config.GeminiAPIKey != "" {
					f.SetupCheck("Gemini API key", true, "configured")
				} else {
					f.SetupCheck("Gemini API key", false, "not set. Set MEETTRANSCRIPT_GEMINI_API_KEY or add to config")
					ok = false
				}
			}

			f.SetupCheck("Summary backend", true, deps.Config.LLMBackend)
			f.SetupCheck("Transcription language", true, deps.Config.Language)
			f.SetupCheck("Meetings directory", true, deps.Config.MeetingsDir)
			f.SetupCheck("Microphone", true, "PortAudio default input device is used; permission may be requested on first recording")

			if ok {
				f.Success("\nAll prerequisites met. Ready to record!")
			} else {
				f.Warning("\nSome prerequisites are missing.")
			}
			return nil
		},
	}
}
