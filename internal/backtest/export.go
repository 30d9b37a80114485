package backtest

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// WriteResult exports a backtest run as trades.csv, equity.csv, and
// summary.json under dir, creating it if needed.
func WriteResult(dir string, result *Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("write backtest result: %w", err)
	}

	tradeRows := make([][]string, 0, len(result.Trades))
	for _, t := range result.Trades {
		tradeRows = append(tradeRows, []string{
			t.Date, t.AssetID, string(t.Action),
			formatFloat(t.Price), formatFloat(t.Quantity), formatFloat(t.Cost),
			t.Reason,
		})
	}
	if err := writeCSV(
		filepath.Join(dir, "trades.csv"),
		[]string{"date", "asset_id", "action", "price", "quantity", "cost", "reason"},
		tradeRows,
	); err != nil {
		return fmt.Errorf("write trades: %w", err)
	}

	equityRows := make([][]string, 0, len(result.Curve))
	for _, p := range result.Curve {
		equityRows = append(equityRows, []string{
			p.Date, formatFloat(p.Equity), formatFloat(p.Cash), formatFloat(p.PositionsValue),
		})
	}
	if err := writeCSV(
		filepath.Join(dir, "equity.csv"),
		[]string{"date", "equity", "cash", "positions_value"},
		equityRows,
	); err != nil {
		return fmt.Errorf("write equity curve: %w", err)
	}

	b, err := json.MarshalIndent(result.Summary, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "summary.json"), b, 0o644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
