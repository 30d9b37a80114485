package data

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"
)

// readTable reads a headered CSV file and returns one column-keyed map per
// row. All tabular inputs here are small enough to hold in memory.
func readTable(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	header := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[col] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseDay(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

func parseFloat(row map[string]string, col string) (float64, error) {
	v, err := strconv.ParseFloat(row[col], 64)
	if err != nil {
		return 0, fmt.Errorf("column %s: %w", col, err)
	}
	return v, nil
}

func LoadPrices(path string) (*PriceTable, error) {
	raw, err := readTable(path)
	if err != nil {
		return nil, fmt.Errorf("load prices: %w", err)
	}
	rows := make([]PriceRow, 0, len(raw))
	for i, row := range raw {
		date, err := parseDay(row["date"])
		if err != nil {
			return nil, fmt.Errorf("load prices row %d: %w", i+1, err)
		}
		closePx, err := parseFloat(row, "close")
		if err != nil {
			return nil, fmt.Errorf("load prices row %d: %w", i+1, err)
		}
		volume, err := parseFloat(row, "volume")
		if err != nil {
			return nil, fmt.Errorf("load prices row %d: %w", i+1, err)
		}
		rows = append(rows, PriceRow{Date: date, AssetID: row["asset_id"], Close: closePx, Volume: volume})
	}
	return NewPriceTable(rows), nil
}

func LoadMacro(path string) (*MacroTable, error) {
	raw, err := readTable(path)
	if err != nil {
		return nil, fmt.Errorf("load macro: %w", err)
	}
	rows := make([]MacroRow, 0, len(raw))
	for i, row := range raw {
		date, err := parseDay(row["date"])
		if err != nil {
			return nil, fmt.Errorf("load macro row %d: %w", i+1, err)
		}
		r := MacroRow{Date: date}
		for col, dst := range map[string]*float64{
			"REAL_YIELD":     &r.RealYield,
			"DXY":            &r.DXY,
			"INFLATION":      &r.Inflation,
			"CB_BUY_INDEX":   &r.CBBuyIndex,
			"GEO_RISK_INDEX": &r.GeoRiskIndex,
		} {
			v, err := parseFloat(row, col)
			if err != nil {
				return nil, fmt.Errorf("load macro row %d: %w", i+1, err)
			}
			*dst = v
		}
		rows = append(rows, r)
	}
	return NewMacroTable(rows), nil
}

func LoadNews(path string) (*NewsTable, error) {
	raw, err := readTable(path)
	if err != nil {
		return nil, fmt.Errorf("load news: %w", err)
	}
	rows := make([]NewsRow, 0, len(raw))
	for i, row := range raw {
		date, err := parseDay(row["date"])
		if err != nil {
			return nil, fmt.Errorf("load news row %d: %w", i+1, err)
		}
		count, err := parseFloat(row, "news_count")
		if err != nil {
			return nil, fmt.Errorf("load news row %d: %w", i+1, err)
		}
		rows = append(rows, NewsRow{Date: date, Product: row["product"], Theme: row["theme"], NewsCount: count})
	}
	return NewNewsTable(rows), nil
}

func LoadAssets(path string) (*AssetTable, error) {
	raw, err := readTable(path)
	if err != nil {
		return nil, fmt.Errorf("load assets: %w", err)
	}
	rows := make([]AssetRow, 0, len(raw))
	for _, row := range raw {
		rows = append(rows, AssetRow{Product: row["product"], Theme: row["theme"], AssetID: row["asset_id"]})
	}
	return NewAssetTable(rows), nil
}
