package data

import (
	"sort"
	"time"
)

// DayKey renders a timestamp as the calendar-day key used by every table
// lookup and by the stage-override map.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

type PriceRow struct {
	Date    time.Time
	AssetID string
	Close   float64
	Volume  float64
}

// PriceTable indexes closing prices by (day, asset). A missing quote is a
// valid state: the backtest skips that asset for the day.
type PriceTable struct {
	closes map[string]map[string]float64 // day -> asset -> close
}

func NewPriceTable(rows []PriceRow) *PriceTable {
	t := &PriceTable{closes: map[string]map[string]float64{}}
	for _, r := range rows {
		day := DayKey(r.Date)
		if t.closes[day] == nil {
			t.closes[day] = map[string]float64{}
		}
		t.closes[day][r.AssetID] = r.Close
	}
	return t
}

func (t *PriceTable) Close(date time.Time, assetID string) (float64, bool) {
	close, ok := t.closes[DayKey(date)][assetID]
	return close, ok
}

type MacroRow struct {
	Date         time.Time
	RealYield    float64
	DXY          float64
	Inflation    float64
	CBBuyIndex   float64
	GeoRiskIndex float64
}

// MacroTable indexes macro indicator rows by day.
type MacroTable struct {
	rows map[string]MacroRow
}

func NewMacroTable(rows []MacroRow) *MacroTable {
	t := &MacroTable{rows: map[string]MacroRow{}}
	for _, r := range rows {
		t.rows[DayKey(r.Date)] = r
	}
	return t
}

func (t *MacroTable) Row(date time.Time) (MacroRow, bool) {
	r, ok := t.rows[DayKey(date)]
	return r, ok
}

type NewsRow struct {
	Date      time.Time
	Product   string
	Theme     string
	NewsCount float64
}

// NewsTable indexes news counts by (day, product, theme).
type NewsTable struct {
	counts map[string]float64
}

func newsKey(day, product, theme string) string {
	return day + "|" + product + "|" + theme
}

func NewNewsTable(rows []NewsRow) *NewsTable {
	t := &NewsTable{counts: map[string]float64{}}
	for _, r := range rows {
		t.counts[newsKey(DayKey(r.Date), r.Product, r.Theme)] = r.NewsCount
	}
	return t
}

func (t *NewsTable) Count(date time.Time, product, theme string) (float64, bool) {
	n, ok := t.counts[newsKey(DayKey(date), product, theme)]
	return n, ok
}

type AssetRow struct {
	Product string
	Theme   string
	AssetID string
}

// AssetTable maps (product, theme) to tradable assets.
type AssetTable struct {
	rows []AssetRow
}

func NewAssetTable(rows []AssetRow) *AssetTable {
	return &AssetTable{rows: rows}
}

// AssetFor returns the primary (first configured) asset for a theme.
func (t *AssetTable) AssetFor(product, theme string) (string, bool) {
	for _, r := range t.rows {
		if r.Product == product && r.Theme == theme {
			return r.AssetID, true
		}
	}
	return "", false
}

// AssetsFor returns every asset configured for a theme.
func (t *AssetTable) AssetsFor(product, theme string) []string {
	var assets []string
	for _, r := range t.rows {
		if r.Product == product && r.Theme == theme {
			assets = append(assets, r.AssetID)
		}
	}
	return assets
}

// Themes returns the sorted, de-duplicated theme list for a product.
func (t *AssetTable) Themes(product string) []string {
	seen := map[string]bool{}
	var themes []string
	for _, r := range t.rows {
		if r.Product == product && !seen[r.Theme] {
			seen[r.Theme] = true
			themes = append(themes, r.Theme)
		}
	}
	sort.Strings(themes)
	return themes
}
