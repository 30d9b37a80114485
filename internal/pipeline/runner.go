package pipeline

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/Rajchodisetti/theme-engine/internal/config"
	"github.com/Rajchodisetti/theme-engine/internal/data"
	"github.com/Rajchodisetti/theme-engine/internal/observ"
	"github.com/Rajchodisetti/theme-engine/internal/product"
)

// Runner applies the thirteen decision stages in their fixed order for one
// (product, date) pair. A run is a pure function of its inputs; the Runner
// itself holds no mutable state and is safe to share.
type Runner struct {
	thresholds config.Thresholds
	registry   *product.Registry
	macro      *data.MacroTable
	news       *data.NewsTable
	log        zerolog.Logger
}

func NewRunner(thresholds config.Thresholds, registry *product.Registry, macro *data.MacroTable, news *data.NewsTable) *Runner {
	return &Runner{
		thresholds: thresholds,
		registry:   registry,
		macro:      macro,
		news:       news,
		log:        observ.Logger("pipeline"),
	}
}

// Run evaluates every stage for the product on the given date and returns
// the final decision list. The only error is an unknown product.
func (r *Runner) Run(productName string, date time.Time, overrides Overrides) ([]DecisionResult, error) {
	themes, err := r.registry.ThemesFor(productName)
	if err != nil {
		return nil, err
	}

	st := &State{
		Product:    productName,
		Date:       date,
		Thresholds: r.thresholds,
		Overrides:  overrides,
		Themes:     themes,
	}

	stages := []struct {
		name  string
		apply func(*State)
	}{
		{"demand_scan", r.demandScan},
		{"demand_quality", r.demandQuality},
		{"match_constraints", r.matchConstraints},
		{"risk_gate", r.riskGate},
		{"scoring", r.scoring},
		{"break_risk", r.breakRiskAdjust},
		{"theme_rank", r.themeRank},
		{"stage_detect", r.detectPhase},
		{"entry", r.entry},
		{"stop_loss", r.stopLoss},
		{"take_profit", r.takeProfit},
		{"portfolio", r.portfolioExposure},
		{"kill_switch", r.killSwitch},
	}
	for _, s := range stages {
		s.apply(st)
		observ.IncStage(s.name)
	}

	observ.IncPipelineRun()
	for _, d := range st.Decisions {
		observ.IncDecision(string(d.Intent))
	}
	r.log.Debug().
		Str("product", productName).
		Str("date", data.DayKey(date)).
		Int("decisions", len(st.Decisions)).
		Msg("pipeline run complete")
	return st.Decisions, nil
}
