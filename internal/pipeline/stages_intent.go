package pipeline

import "github.com/Rajchodisetti/theme-engine/internal/data"

// entry (stage 9) proposes ENTER for themes that rank inside the top-N
// window with a sufficient score outside the late phase; everything else
// holds.
func (r *Runner) entry(st *State) {
	topN := st.Thresholds.TopThemeN
	minScore := st.Thresholds.MinScore
	phaseByTheme := st.phaseByTheme()

	intents := make([]DecisionIntent, 0, len(st.Ranks))
	for _, rank := range st.Ranks {
		phase := PhaseEarly
		if p, ok := phaseByTheme[rank.Theme]; ok {
			phase = p.Phase
		}
		intent, reason := IntentHold, "rank, score, or phase below entry bar"
		if rank.Rank <= topN && rank.Score >= minScore && phase != PhaseLate {
			intent, reason = IntentEnter, "top-ranked theme"
		}
		intents = append(intents, DecisionIntent{Theme: rank.Theme, Intent: intent, Reason: reason, Score: rank.Score})
	}
	st.Intents = intents
}

// stopLoss (stage 10) downgrades ENTER to REDUCE when a theme's break risk
// is at or above the stop limit. Only ENTER is downgraded.
func (r *Runner) stopLoss(st *State) {
	limit := st.Thresholds.BreakRiskStop
	constraintByTheme := st.constraintByTheme()

	adjusted := make([]DecisionIntent, 0, len(st.Intents))
	for _, in := range st.Intents {
		breakRisk := 0.0
		if c, ok := constraintByTheme[in.Theme]; ok {
			breakRisk = c.BreakRisk
		}
		if in.Intent == IntentEnter && breakRisk >= limit {
			in.Intent = IntentReduce
			in.Reason = "break risk above stop limit"
		}
		adjusted = append(adjusted, in)
	}
	st.Intents = adjusted
}

// takeProfit (stage 11) converts accumulating intents to EXIT once a theme
// reaches the late phase.
func (r *Runner) takeProfit(st *State) {
	phaseByTheme := st.phaseByTheme()

	adjusted := make([]DecisionIntent, 0, len(st.Intents))
	for _, in := range st.Intents {
		phase := PhaseEarly
		if p, ok := phaseByTheme[in.Theme]; ok {
			phase = p.Phase
		}
		if phase == PhaseLate && (in.Intent == IntentEnter || in.Intent == IntentAdd || in.Intent == IntentHold) {
			in.Intent = IntentExit
			in.Reason = "late phase take-profit"
		}
		adjusted = append(adjusted, in)
	}
	st.Intents = adjusted
}

// portfolioExposure (stage 12) counts accumulating intents per constraint
// and rewrites all of them to REDUCE when a constraint is over its cap. The
// count includes the intent under evaluation and the cap is exclusive
// (count > max triggers, not >=), so max+1 slots fit before the rewrite.
func (r *Runner) portfolioExposure(st *State) {
	maxExposure := st.Thresholds.MaxConstraintExposure
	constraintByTheme := st.constraintByTheme()

	exposure := map[string]int{}
	for _, in := range st.Intents {
		if in.Intent == IntentEnter || in.Intent == IntentAdd {
			exposure[constraintByTheme[in.Theme].ConstraintID]++
		}
	}

	adjusted := make([]DecisionIntent, 0, len(st.Intents))
	for _, in := range st.Intents {
		id := constraintByTheme[in.Theme].ConstraintID
		if exposure[id] > maxExposure && (in.Intent == IntentEnter || in.Intent == IntentAdd) {
			in.Intent = IntentReduce
			in.Reason = "constraint exposure over cap"
		}
		adjusted = append(adjusted, in)
	}
	st.Intents = adjusted
}

// killSwitch (stage 13) assembles the final decisions. When the geo-risk
// index reaches the kill-switch level every intent becomes EXIT regardless
// of earlier stages; otherwise intents pass through, with override-derived
// phases annotated in the reason.
func (r *Runner) killSwitch(st *State) {
	level := st.Thresholds.KillswitchLevel
	geoRisk := 0.0
	if row, ok := r.macro.Row(st.Date); ok {
		geoRisk = row.GeoRiskIndex
	}
	phaseByTheme := st.phaseByTheme()
	constraintByTheme := st.constraintByTheme()

	decisions := make([]DecisionResult, 0, len(st.Intents))
	for _, in := range st.Intents {
		intent := in.Intent
		reason := in.Reason

		phase := PhaseEarly
		if p, ok := phaseByTheme[in.Theme]; ok {
			phase = p.Phase
			if p.Reason == reasonOverride {
				reason += "; " + reasonOverride
			}
		}
		if geoRisk >= level {
			intent = IntentExit
			reason = "geo risk kill switch"
		}

		c := constraintByTheme[in.Theme]
		decisions = append(decisions, DecisionResult{
			Date:         data.DayKey(st.Date),
			Product:      st.Product,
			Theme:        in.Theme,
			Intent:       intent,
			Reason:       reason,
			Phase:        phase,
			Score:        in.Score,
			ConstraintID: c.ConstraintID,
			BreakRisk:    c.BreakRisk,
		})
	}
	st.Decisions = decisions
}
