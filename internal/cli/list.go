package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mateusdtakayama/meet-transcript/internal/output"
	"github.com/mateusdtakayama/meet-transcript/internal/store"
)

func NewListCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded meetings",
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(os.Stdout)

			records, err := deps.App.Store.List()
			if err != nil {
				return err
			}

			if len(records) == 0 {
				formatter.Info("No meetings found")
				return nil
			}

			formatter.MeetingListHeader()
			for _, rec := range records {
				hasTranscript := deps.App.Store.HasArtifact(rec.ID, store.ArtifactTranscript)
				hasSummary := deps.App.Store.HasArtifact(rec.ID, store.ArtifactSummary)
				formatter.MeetingListItem(rec.ID, rec.Label(), hasTranscript, hasSummary)
			}

			return nil
		},
	}

	return cmd
}
