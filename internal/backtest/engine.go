package backtest

import (
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/Rajchodisetti/theme-engine/internal/config"
	"github.com/Rajchodisetti/theme-engine/internal/data"
	"github.com/Rajchodisetti/theme-engine/internal/observ"
	"github.com/Rajchodisetti/theme-engine/internal/pipeline"
)

// Engine replays the decision pipeline day by day over historical prices
// and turns intents into simulated fills. The cash/position ledger mutates
// in place across the date loop; it is the only cross-day state in the
// system and is reset on every Run.
type Engine struct {
	runner   *pipeline.Runner
	assets   *data.AssetTable
	prices   *data.PriceTable
	cfg      config.Thresholds
	log      zerolog.Logger
	progress rate.Sometimes
}

func NewEngine(runner *pipeline.Runner, assets *data.AssetTable, prices *data.PriceTable, cfg config.Thresholds) *Engine {
	return &Engine{
		runner:   runner,
		assets:   assets,
		prices:   prices,
		cfg:      cfg,
		log:      observ.Logger("backtest"),
		progress: rate.Sometimes{Interval: 2 * time.Second},
	}
}

func heldCount(positions map[string]float64) int {
	n := 0
	for _, qty := range positions {
		if qty > 0 {
			n++
		}
	}
	return n
}

// Run simulates the product over every calendar day from start to end
// inclusive. Decisions whose theme has no asset mapping or whose asset has
// no quote for the day are skipped; a daily equity point is recorded
// regardless of trading activity.
func (e *Engine) Run(product string, start, end time.Time, overrides pipeline.Overrides) (*Result, error) {
	cash := e.cfg.InitialCash
	positions := map[string]float64{}
	trades := []Trade{}
	curve := []EquityPoint{}

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		decisions, err := e.runner.Run(product, day, overrides)
		if err != nil {
			return nil, err
		}

		for _, d := range decisions {
			assetID, ok := e.assets.AssetFor(product, d.Theme)
			if !ok {
				continue
			}
			price, ok := e.prices.Close(day, assetID)
			if !ok {
				continue
			}
			current := positions[assetID]

			switch {
			case d.Intent == pipeline.IntentEnter && current == 0:
				slots := e.cfg.MaxPositions - heldCount(positions)
				if slots <= 0 {
					continue
				}
				// Equal-weight the free cash across remaining slots. The
				// fill price carries slippage and fee, and the quantity is
				// sized so the debit equals the allocation exactly, keeping
				// cash non-negative.
				allocation := cash / float64(slots)
				quantity := allocation / (price * (1 + e.cfg.Slippage + e.cfg.Fee))
				cash -= allocation
				positions[assetID] = current + quantity
				trades = append(trades, e.fill(d, assetID, ActionBuy, price, quantity, allocation))

			case d.Intent == pipeline.IntentAdd && current > 0:
				allocation := cash * 0.5
				quantity := allocation / (price * (1 + e.cfg.Slippage + e.cfg.Fee))
				cash -= allocation
				positions[assetID] = current + quantity
				trades = append(trades, e.fill(d, assetID, ActionBuy, price, quantity, allocation))

			case d.Intent == pipeline.IntentReduce && current > 0:
				quantity := current * 0.5
				proceeds := quantity * price * (1 - e.cfg.Slippage - e.cfg.Fee)
				cash += proceeds
				positions[assetID] = current - quantity
				trades = append(trades, e.fill(d, assetID, ActionSell, price, quantity, proceeds))

			case d.Intent == pipeline.IntentExit && current > 0:
				quantity := current
				proceeds := quantity * price * (1 - e.cfg.Slippage - e.cfg.Fee)
				cash += proceeds
				positions[assetID] = 0
				trades = append(trades, e.fill(d, assetID, ActionSell, price, quantity, proceeds))
			}
			// Every other (intent, quantity) combination is a no-op.
		}

		positionsValue := 0.0
		for assetID, qty := range positions {
			if qty <= 0 {
				continue
			}
			if px, ok := e.prices.Close(day, assetID); ok {
				positionsValue += qty * px
			}
		}
		equity := cash + positionsValue
		curve = append(curve, EquityPoint{
			Date:           data.DayKey(day),
			Equity:         equity,
			Cash:           cash,
			PositionsValue: positionsValue,
		})
		observ.SetEquity(equity)

		e.progress.Do(func() {
			e.log.Debug().
				Str("date", data.DayKey(day)).
				Float64("equity", equity).
				Int("trades", len(trades)).
				Msg("backtest progress")
		})
	}

	summary := e.summarize(start, end, trades, curve)
	e.log.Info().
		Str("product", product).
		Int("trades", summary.TradeCount).
		Float64("final_equity", summary.FinalEquity).
		Float64("max_drawdown", summary.MaxDrawdown).
		Msg("backtest complete")
	return &Result{Trades: trades, Curve: curve, Summary: summary}, nil
}

func (e *Engine) fill(d pipeline.DecisionResult, assetID string, action Action, price, quantity, cost float64) Trade {
	observ.IncTrade(string(action))
	return Trade{
		Date:     d.Date,
		AssetID:  assetID,
		Action:   action,
		Price:    price,
		Quantity: quantity,
		Cost:     cost,
		Reason:   d.Reason,
	}
}

func (e *Engine) summarize(start, end time.Time, trades []Trade, curve []EquityPoint) Summary {
	finalEquity := e.cfg.InitialCash
	if len(curve) > 0 {
		finalEquity = curve[len(curve)-1].Equity
	}
	totalReturn := 0.0
	if e.cfg.InitialCash != 0 {
		totalReturn = (finalEquity - e.cfg.InitialCash) / e.cfg.InitialCash
	}

	maxDD := MaxDrawdown(curve)
	stats := EquityStats(curve)
	calmar := 0.0
	if maxDD > 0 {
		calmar = stats.AnnualizedReturn / maxDD
	}

	return Summary{
		Start:                data.DayKey(start),
		End:                  data.DayKey(end),
		InitialCash:          e.cfg.InitialCash,
		FinalEquity:          finalEquity,
		TotalReturn:          totalReturn,
		AnnualizedReturn:     stats.AnnualizedReturn,
		AnnualizedVolatility: stats.AnnualizedVolatility,
		Sharpe:               stats.Sharpe,
		Sortino:              stats.Sortino,
		Calmar:               calmar,
		MaxDrawdown:          maxDD,
		TradeCount:           len(trades),
		TradingDays:          stats.TradingDays,
		WinRate:              stats.WinRate,
		PositiveDays:         stats.PositiveDays,
		NegativeDays:         stats.NegativeDays,
		FlatDays:             stats.FlatDays,
		BestDay:              stats.BestDay,
		WorstDay:             stats.WorstDay,
		ProfitFactor:         stats.ProfitFactor,
		AvgDailyReturn:       stats.AvgDailyReturn,
	}
}
