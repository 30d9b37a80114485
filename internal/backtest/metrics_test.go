package backtest

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func curve(equities ...float64) []EquityPoint {
	points := make([]EquityPoint, len(equities))
	for i, eq := range equities {
		points[i] = EquityPoint{Date: "2025-10-06", Equity: eq}
	}
	return points
}

func TestEquityStats_FewerThanTwoPointsIsAllZero(t *testing.T) {
	for _, points := range [][]EquityPoint{nil, curve(1_000_000)} {
		s := EquityStats(points)
		assert.Zero(t, s.AvgDailyReturn)
		assert.Zero(t, s.AnnualizedVolatility)
		assert.Zero(t, s.Sharpe)
		assert.Zero(t, s.Sortino)
		assert.Zero(t, s.ProfitFactor)
		assert.Zero(t, s.WinRate)
	}
}

func TestEquityStats_SingleReturn(t *testing.T) {
	// One 5% up-day: the sample deviation of a single return is undefined,
	// so volatility-derived ratios report zero instead of blowing up.
	s := EquityStats(curve(1_000_000, 1_050_000))
	assert.InDelta(t, 0.05, s.AvgDailyReturn, 1e-12)
	assert.Zero(t, s.Sharpe)
	assert.Zero(t, s.Sortino)
	assert.Zero(t, s.AnnualizedVolatility)
	assert.Equal(t, 1, s.PositiveDays)
	assert.Equal(t, 1.0, s.WinRate)
	assert.InDelta(t, math.Pow(1.05, 252)-1, s.AnnualizedReturn, 1e-6)
}

func TestEquityStats_MonotonicRiseHasNoProfitFactor(t *testing.T) {
	points := curve(100, 101, 102, 103, 104)
	assert.Zero(t, MaxDrawdown(points))
	s := EquityStats(points)
	// No negative returns: the denominator is empty and the factor is
	// reported as zero, not infinity.
	assert.Zero(t, s.ProfitFactor)
	assert.Equal(t, 0, s.NegativeDays)
	assert.Equal(t, 4, s.PositiveDays)
}

func TestMaxDrawdown_PeakToTrough(t *testing.T) {
	dd := MaxDrawdown(curve(100, 120, 90, 110))
	assert.InDelta(t, 0.25, dd, 1e-12)
}

func TestEquityStats_ZeroPriorEquityIsFlatReturn(t *testing.T) {
	s := EquityStats(curve(0, 100, 100))
	assert.Equal(t, 2, s.FlatDays)
	assert.Equal(t, 0, s.PositiveDays)
	assert.Zero(t, s.AnnualizedReturn) // starting equity is not positive
}

func TestEquityStats_MixedReturns(t *testing.T) {
	s := EquityStats(curve(100, 110, 99, 99))
	require.Equal(t, 1, s.PositiveDays)
	require.Equal(t, 1, s.NegativeDays)
	require.Equal(t, 1, s.FlatDays)
	assert.InDelta(t, 0.1/0.1, s.ProfitFactor, 1e-9)
	assert.InDelta(t, 1.0/3.0, s.WinRate, 1e-12)
	assert.InDelta(t, 0.1, s.BestDay, 1e-12)
	assert.InDelta(t, -0.1, s.WorstDay, 1e-12)
}

func TestEquityStats_Idempotent(t *testing.T) {
	points := curve(100, 105, 95, 102, 98, 110)
	assert.Equal(t, EquityStats(points), EquityStats(points))
	assert.Equal(t, MaxDrawdown(points), MaxDrawdown(points))
}
