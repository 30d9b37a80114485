package observ

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var registry = prometheus.NewRegistry()

var (
	pipelineRuns = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Name: "themeengine_pipeline_runs_total",
		Help: "Total pipeline runs, one per (product, date) evaluation",
	})

	stageApplied = promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
		Name: "themeengine_stage_applied_total",
		Help: "Pipeline stage applications by stage name",
	}, []string{"stage"})

	decisions = promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
		Name: "themeengine_decisions_total",
		Help: "Final decisions by intent",
	}, []string{"intent"})

	trades = promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
		Name: "themeengine_backtest_trades_total",
		Help: "Simulated fills by action",
	}, []string{"action"})

	equity = promauto.With(registry).NewGauge(prometheus.GaugeOpts{
		Name: "themeengine_backtest_equity",
		Help: "Mark-to-market portfolio equity of the running backtest",
	})
)

func IncPipelineRun()           { pipelineRuns.Inc() }
func IncStage(stage string)     { stageApplied.WithLabelValues(stage).Inc() }
func IncDecision(intent string) { decisions.WithLabelValues(intent).Inc() }
func IncTrade(action string)    { trades.WithLabelValues(action).Inc() }
func SetEquity(value float64)   { equity.Set(value) }

// MetricsHandler exposes the registry for the optional --metrics-addr
// listener on long backtest runs.
func MetricsHandler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
