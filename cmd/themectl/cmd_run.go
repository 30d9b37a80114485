package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Rajchodisetti/theme-engine/internal/audit"
	"github.com/Rajchodisetti/theme-engine/internal/data"
	"github.com/Rajchodisetti/theme-engine/internal/pipeline"
)

func newRunCmd() *cobra.Command {
	var productName, dateStr string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the decision pipeline for one product and date",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDay(dateStr)
			if err != nil {
				return err
			}
			w, err := loadWorld(false)
			if err != nil {
				return err
			}
			results, err := w.runner.Run(productName, date, nil)
			if err != nil {
				return err
			}
			record, err := audit.NewStore(flagRunsDir).Save(data.DayKey(date), productName, results)
			if err != nil {
				return err
			}
			printDecisions(record.Results)
			fmt.Printf("run_id: %s\n", record.RunID)
			return nil
		},
	}
	cmd.Flags().StringVar(&productName, "product", "", "product name")
	cmd.Flags().StringVar(&dateStr, "date", "", "date YYYY-MM-DD")
	cmd.MarkFlagRequired("product")
	cmd.MarkFlagRequired("date")
	return cmd
}

func printDecisions(results []pipeline.DecisionResult) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "THEME\tINTENT\tPHASE\tSCORE\tREASON")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f\t%s\n", r.Theme, r.Intent, r.Phase, r.Score, r.Reason)
	}
	tw.Flush()
}
