package cli

import (
	"github.com/spf13/cobra"

	"github.com/mateusdtakayama/meet-transcript/config"
	"github.com/mateusdtakayama/meet-transcript/internal/app"
	"github.com/mateusdtakayama/meet-transcript/internal/version"
)

type Dependencies struct {
	App    *app.App
	Config *config.Config
}

func NewRootCmd(deps *Dependencies) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "meet-transcript",
		Short: "Record meetings, transcribe, and summarize",
		Long:  "A CLI tool that records meetings from the microphone, transcribes them periodically using OpenAI Whisper, and generates AI summaries on demand.",
	}

	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(version.Full() + "\n")

	rootCmd.AddCommand(NewRecordCmd(deps))
	rootCmd.AddCommand(NewListCmd(deps))
	rootCmd.AddCommand(NewShowCmd(deps))
	rootCmd.AddCommand(NewTitleCmd(deps))
	rootCmd.AddCommand(NewDoctorCmd(deps))

	return rootCmd
}
