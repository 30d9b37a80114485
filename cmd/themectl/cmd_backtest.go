package main

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Rajchodisetti/theme-engine/internal/backtest"
	"github.com/Rajchodisetti/theme-engine/internal/config"
	"github.com/Rajchodisetti/theme-engine/internal/observ"
	"github.com/Rajchodisetti/theme-engine/internal/pipeline"
)

func newBacktestCmd() *cobra.Command {
	var (
		productName   string
		startStr      string
		endStr        string
		overridesPath string
		outDir        string
		metricsAddr   string
	)
	cmd := &cobra.Command{
		Use:   "backtest",
		Short: "Replay the pipeline over a date range and report performance",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseDay(startStr)
			if err != nil {
				return err
			}
			end, err := parseDay(endStr)
			if err != nil {
				return err
			}
			if end.Before(start) {
				return fmt.Errorf("end date %s is before start date %s", endStr, startStr)
			}

			rawOverrides, err := config.LoadStageOverrides(overridesPath)
			if err != nil {
				return err
			}
			overrides, err := pipeline.ParseOverrides(rawOverrides)
			if err != nil {
				return err
			}

			w, err := loadWorld(true)
			if err != nil {
				return err
			}

			if metricsAddr != "" {
				go func() {
					if err := http.ListenAndServe(metricsAddr, observ.MetricsHandler()); err != nil {
						log.Warn().Err(err).Msg("metrics listener stopped")
					}
				}()
			}

			engine := backtest.NewEngine(w.runner, w.assets, w.prices, w.thresholds)
			result, err := engine.Run(productName, start, end, overrides)
			if err != nil {
				return err
			}

			if outDir == "" {
				outDir = filepath.Join("backtest_output", fmt.Sprintf("%s_%s_%s", productName, startStr, endStr))
			}
			if err := backtest.WriteResult(outDir, result); err != nil {
				return err
			}

			s := result.Summary
			fmt.Printf("period          %s .. %s (%d days)\n", s.Start, s.End, s.TradingDays)
			fmt.Printf("equity          %.2f -> %.2f (total %.2f%%)\n", s.InitialCash, s.FinalEquity, s.TotalReturn*100)
			fmt.Printf("annualized      return %.2f%%  volatility %.2f%%\n", s.AnnualizedReturn*100, s.AnnualizedVolatility*100)
			fmt.Printf("ratios          sharpe %.2f  sortino %.2f  calmar %.2f  profit_factor %.2f\n", s.Sharpe, s.Sortino, s.Calmar, s.ProfitFactor)
			fmt.Printf("drawdown        %.2f%%  win_rate %.2f%%  (+%d/-%d/=%d days)\n", s.MaxDrawdown*100, s.WinRate*100, s.PositiveDays, s.NegativeDays, s.FlatDays)
			fmt.Printf("trades          %d\n", s.TradeCount)
			fmt.Printf("output          %s\n", outDir)
			return nil
		},
	}
	cmd.Flags().StringVar(&productName, "product", "", "product name")
	cmd.Flags().StringVar(&startStr, "start", "", "start date YYYY-MM-DD")
	cmd.Flags().StringVar(&endStr, "end", "", "end date YYYY-MM-DD")
	cmd.Flags().StringVar(&overridesPath, "stage-overrides", "", "optional cycle-phase override YAML")
	cmd.Flags().StringVar(&outDir, "out", "", "output directory (default backtest_output/<product>_<start>_<end>)")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "optional prometheus listen address, e.g. :9090")
	cmd.MarkFlagRequired("product")
	cmd.MarkFlagRequired("start")
	cmd.MarkFlagRequired("end")
	return cmd
}
