package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mateusdtakayama/meet-transcript/internal/output"
)

func NewTitleCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "title <meeting-id> <title>",
		Short: "Set a meeting's title",
		Long:  "Set the title of a stored meeting. A title can be set only once and is required before a summary can be shown.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(os.Stdout)

			if err := deps.App.Store.SetTitle(args[0], args[1]); err != nil {
				return err
			}

			formatter.Success("Title saved")
			return nil
		},
	}

	return cmd
}
