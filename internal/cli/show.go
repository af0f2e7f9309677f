package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/mateusdtakayama/meet-transcript/internal/output"
	"github.com/mateusdtakayama/meet-transcript/internal/store"
)

func NewShowCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <meeting-id>",
		Short: "Show a meeting's summary and transcript",
		Long:  "Display a stored meeting. The first time a titled meeting is shown, a summary is generated and cached; later views reuse it without calling the AI service again.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(os.Stdout)
			id := args[0]

			rec, err := deps.App.Store.Get(id)
			if err != nil {
				return err
			}

			if rec.Title == "" {
				formatter.Warning("Add a title first: meet-transcript title " + id + " \"My meeting\"")
				return nil
			}

			hadSummary := deps.App.Store.HasArtifact(id, store.ArtifactSummary)
			if !hadSummary {
				formatter.Summarizing()
			}
			summary, err := deps.App.Summarize.Execute(context.Background(), id)
			if err != nil {
				return err
			}

			transcript, err := deps.App.Store.ReadArtifact(id, store.ArtifactTranscript)
			if err != nil {
				return err
			}

			formatter.MeetingHeader(rec.Label())
			formatter.Summary(summary)
			formatter.Transcript(transcript)
			return nil
		},
	}

	return cmd
}
