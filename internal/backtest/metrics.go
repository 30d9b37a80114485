package backtest

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

const annualTradingDays = 252

// Stats are the return-series statistics derived from an equity curve.
type Stats struct {
	TradingDays          int
	AvgDailyReturn       float64
	AnnualizedReturn     float64
	AnnualizedVolatility float64
	Sharpe               float64
	Sortino              float64
	WinRate              float64
	PositiveDays         int
	NegativeDays         int
	FlatDays             int
	BestDay              float64
	WorstDay             float64
	ProfitFactor         float64
}

// MaxDrawdown reports the largest peak-to-trough decline of the curve as a
// fraction of the peak. A zero peak contributes a zero drawdown.
func MaxDrawdown(points []EquityPoint) float64 {
	if len(points) == 0 {
		return 0
	}
	peak := points[0].Equity
	maxDD := 0.0
	for _, p := range points {
		if p.Equity > peak {
			peak = p.Equity
		}
		if peak == 0 {
			continue
		}
		if dd := (peak - p.Equity) / peak; dd > maxDD {
			maxDD = dd
		}
	}
	return maxDD
}

func dailyReturns(points []EquityPoint) []float64 {
	returns := make([]float64, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		prev := points[i-1].Equity
		if prev == 0 {
			returns = append(returns, 0)
			continue
		}
		returns = append(returns, (points[i].Equity-prev)/prev)
	}
	return returns
}

// EquityStats computes the full statistic set for an equity curve. It is a
// pure function; fewer than two points yields all zeros rather than an
// error, and every ratio with an undefined denominator reports zero.
func EquityStats(points []EquityPoint) Stats {
	s := Stats{TradingDays: len(points)}
	if len(points) < 2 {
		return s
	}

	returns := dailyReturns(points)
	mean := stat.Mean(returns, nil)
	s.AvgDailyReturn = mean

	// Sample standard deviation; undefined for a single observation.
	dailyVol := 0.0
	if len(returns) > 1 {
		dailyVol = stat.StdDev(returns, nil)
	}
	s.AnnualizedVolatility = dailyVol * math.Sqrt(annualTradingDays)
	if dailyVol > 0 {
		s.Sharpe = mean / dailyVol * math.Sqrt(annualTradingDays)
	}

	var downside []float64
	for _, r := range returns {
		if r < 0 {
			downside = append(downside, r)
		}
	}
	if len(downside) > 1 {
		if downsideVol := stat.StdDev(downside, nil); downsideVol > 0 {
			s.Sortino = mean / downsideVol * math.Sqrt(annualTradingDays)
		}
	}

	starting := points[0].Equity
	ending := points[len(points)-1].Equity
	if starting > 0 {
		s.AnnualizedReturn = math.Pow(ending/starting, annualTradingDays/float64(len(returns))) - 1
	}

	positiveSum, negativeSum := 0.0, 0.0
	s.BestDay, s.WorstDay = returns[0], returns[0]
	for _, r := range returns {
		switch {
		case r > 0:
			s.PositiveDays++
			positiveSum += r
		case r < 0:
			s.NegativeDays++
			negativeSum += r
		default:
			s.FlatDays++
		}
		if r > s.BestDay {
			s.BestDay = r
		}
		if r < s.WorstDay {
			s.WorstDay = r
		}
	}
	s.WinRate = float64(s.PositiveDays) / float64(len(returns))
	if negativeSum < 0 {
		s.ProfitFactor = positiveSum / math.Abs(negativeSum)
	}
	return s
}
