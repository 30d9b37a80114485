package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Rajchodisetti/theme-engine/internal/data"
)

func newSeedCmd() *cobra.Command {
	var startStr, endStr string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate deterministic demo price/macro/news tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseDay(startStr)
			if err != nil {
				return err
			}
			end, err := parseDay(endStr)
			if err != nil {
				return err
			}
			if err := data.WriteDemoData(flagDataDir, start, end); err != nil {
				return err
			}
			fmt.Printf("demo data written to %s\n", flagDataDir)
			return nil
		},
	}
	cmd.Flags().StringVar(&startStr, "start", "2025-09-01", "start date YYYY-MM-DD")
	cmd.Flags().StringVar(&endStr, "end", "2026-01-19", "end date YYYY-MM-DD")
	return cmd
}
