package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mateusdtakayama/meet-transcript/internal/audio"
	"github.com/mateusdtakayama/meet-transcript/internal/output"
)

func NewRecordCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record a new meeting",
		Long:  "Record audio from the default microphone, transcribing it every few seconds. Press Ctrl+C to stop; the in-flight transcription cycle completes before the session ends.",
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(os.Stdout)

			mic, err := audio.OpenMic()
			if err != nil {
				return err
			}
			defer mic.Close()

			// Ctrl+C closes the source; the recording loop observes the
			// ended stream at the top of its next poll.
			sigs := make(chan os.Signal, 1)
			signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigs)
			go func() {
				<-sigs
				formatter.Info("Stopping after current cycle...")
				mic.Close()
			}()

			deps.App.Record.OnStart = formatter.RecordingStarted
			deps.App.Record.OnTranscript = formatter.TranscriptSegment

			formatter.WaitingForStream()
			startedAt := time.Now()
			id, err := deps.App.Record.Execute(context.Background(), mic)
			if err != nil {
				return err
			}

			formatter.RecordingStopped(time.Since(startedAt))
			formatter.MeetingComplete(deps.App.Store.Dir(id))
			return nil
		},
	}

	return cmd
}
