package data

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Demo universe used by the seed command. Three gold-linked assets, one per
// theme, under a single GOLD product.
var (
	demoAssets = []string{"GOLD_SPOT", "GOLD_MINER", "GOLD_ETF"}
	demoThemes = []string{"central_bank_gold", "geopolitical_conflict", "inflation_hedge"}
)

const demoProduct = "GOLD"

// WriteDemoData generates deterministic price/macro/news CSVs covering the
// given inclusive date range. The price path drifts up four days out of
// seven so backtests produce non-trivial but reproducible curves.
func WriteDemoData(dir string, start, end time.Time) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("seed demo data: %w", err)
	}

	var prices, macro, news [][]string
	basePrice := 1900.0
	idx := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		drift := -0.1
		if idx%7 < 4 {
			drift = 0.3
		}
		basePrice += drift
		for i, asset := range demoAssets {
			px := basePrice * (1 + 0.01*float64(i))
			prices = append(prices, []string{
				DayKey(d), asset,
				strconv.FormatFloat(px, 'f', 2, 64),
				strconv.Itoa(100000 + idx),
			})
		}
		macro = append(macro, []string{
			DayKey(d),
			strconv.FormatFloat(1.2+0.2*float64(idx%10)/10, 'f', 2, 64),
			strconv.FormatFloat(100+0.3*float64(idx%5), 'f', 2, 64),
			strconv.FormatFloat(2.5+0.4*float64(idx%8)/10, 'f', 2, 64),
			strconv.FormatFloat(0.6+0.1*float64(idx%6)/10, 'f', 2, 64),
			strconv.FormatFloat(0.4+0.2*float64(idx%9)/10, 'f', 2, 64),
		})
		for i, theme := range demoThemes {
			count := 4 + (idx+i)%4
			news = append(news, []string{DayKey(d), demoProduct, theme, strconv.Itoa(count)})
		}
		idx++
	}

	files := []struct {
		name   string
		header []string
		rows   [][]string
	}{
		{"prices.csv", []string{"date", "asset_id", "close", "volume"}, prices},
		{"macro.csv", []string{"date", "REAL_YIELD", "DXY", "INFLATION", "CB_BUY_INDEX", "GEO_RISK_INDEX"}, macro},
		{"news.csv", []string{"date", "product", "theme", "news_count"}, news},
	}
	for _, f := range files {
		if err := writeCSV(filepath.Join(dir, f.name), f.header, f.rows); err != nil {
			return fmt.Errorf("seed demo data: %w", err)
		}
	}
	return nil
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
