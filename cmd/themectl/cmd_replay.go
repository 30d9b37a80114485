package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Rajchodisetti/theme-engine/internal/audit"
)

func newReplayCmd() *cobra.Command {
	var runID string
	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Display a persisted run record",
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := audit.NewStore(flagRunsDir).Load(runID)
			if err != nil {
				return err
			}
			fmt.Printf("%s %s (%s)\n", record.Product, record.Date, record.RunID)
			printDecisions(record.Results)
			return nil
		},
	}
	cmd.Flags().StringVar(&runID, "run-id", "", "run ID to replay")
	cmd.MarkFlagRequired("run-id")
	return cmd
}
