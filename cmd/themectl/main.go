package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Rajchodisetti/theme-engine/internal/observ"
)

var (
	flagConfigDir string
	flagDataDir   string
	flagRunsDir   string
	flagVerbose   bool
)

func main() {
	root := &cobra.Command{
		Use:          "themectl",
		Short:        "Theme-driven investment decision pipeline and backtester",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			observ.Init(flagVerbose)
		},
	}
	root.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "configs", "directory with YAML/CSV configuration")
	root.PersistentFlags().StringVar(&flagDataDir, "data-dir", "data", "directory with price/macro/news tables")
	root.PersistentFlags().StringVar(&flagRunsDir, "runs-dir", "runs", "directory for persisted run records")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newProductsCmd(),
		newPlanCmd(),
		newRunCmd(),
		newReplayCmd(),
		newBacktestCmd(),
		newSeedCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseDay(s string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	return d, nil
}
