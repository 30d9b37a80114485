package backtest

// Action is the closed set of simulated fill directions.
type Action string

const (
	ActionBuy  Action = "BUY"
	ActionSell Action = "SELL"
)

// Trade is one simulated fill. Cost is the cash debited on buys and the
// cash credited on sells, friction included.
type Trade struct {
	Date     string  `json:"date"`
	AssetID  string  `json:"asset_id"`
	Action   Action  `json:"action"`
	Price    float64 `json:"price"`
	Quantity float64 `json:"quantity"`
	Cost     float64 `json:"cost"`
	Reason   string  `json:"reason"`
}

// EquityPoint is the end-of-day portfolio valuation. One is appended per
// simulated day even when no trades occurred.
type EquityPoint struct {
	Date           string  `json:"date"`
	Equity         float64 `json:"equity"`
	Cash           float64 `json:"cash"`
	PositionsValue float64 `json:"positions_value"`
}

// Summary aggregates the performance of one backtest run.
type Summary struct {
	Start                string  `json:"start"`
	End                  string  `json:"end"`
	InitialCash          float64 `json:"initial_cash"`
	FinalEquity          float64 `json:"final_equity"`
	TotalReturn          float64 `json:"total_return"`
	AnnualizedReturn     float64 `json:"annualized_return"`
	AnnualizedVolatility float64 `json:"annualized_volatility"`
	Sharpe               float64 `json:"sharpe"`
	Sortino              float64 `json:"sortino"`
	Calmar               float64 `json:"calmar"`
	MaxDrawdown          float64 `json:"max_drawdown"`
	TradeCount           int     `json:"trade_count"`
	TradingDays          int     `json:"trading_days"`
	WinRate              float64 `json:"win_rate"`
	PositiveDays         int     `json:"positive_days"`
	NegativeDays         int     `json:"negative_days"`
	FlatDays             int     `json:"flat_days"`
	BestDay              float64 `json:"best_day"`
	WorstDay             float64 `json:"worst_day"`
	ProfitFactor         float64 `json:"profit_factor"`
	AvgDailyReturn       float64 `json:"avg_daily_return"`
}

// Result bundles everything one backtest run produces.
type Result struct {
	Trades  []Trade
	Curve   []EquityPoint
	Summary Summary
}
