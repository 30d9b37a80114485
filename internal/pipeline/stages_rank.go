package pipeline

import (
	"sort"

	"github.com/Rajchodisetti/theme-engine/internal/data"
)

// themeRank (stage 7) orders themes by descending score. The sort is
// stable: equal scores keep their scoring-order position.
func (r *Runner) themeRank(st *State) {
	ordered := make([]OpportunityScore, len(st.Scores))
	copy(ordered, st.Scores)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Score > ordered[j].Score
	})
	ranks := make([]ThemeRank, 0, len(ordered))
	for i, sc := range ordered {
		ranks = append(ranks, ThemeRank{Theme: sc.Theme, Rank: i + 1, Score: sc.Score})
	}
	st.Ranks = ranks
}

// reasonOverride marks phases forced by the override map; the kill-switch
// stage matches this exact value when annotating pass-through reasons.
const reasonOverride = "stage_override"

// detectPhase (stage 8) assigns a market-cycle phase per theme. A per-date
// override wins; otherwise elevated real yield means late, rising inflation
// means mid, anything else early. A missing macro row degrades to defaults
// that place the cycle early.
func (r *Runner) detectPhase(st *State) {
	realYield, inflation := 1.0, 2.0
	if row, ok := r.macro.Row(st.Date); ok {
		realYield, inflation = row.RealYield, row.Inflation
	}
	dayOverrides := st.Overrides[data.DayKey(st.Date)]

	phases := make([]PhaseResult, 0, len(st.Ranks))
	for _, rank := range st.Ranks {
		var phase CyclePhase
		var reason string
		switch {
		case dayOverrides[rank.Theme] != "":
			phase = dayOverrides[rank.Theme]
			reason = reasonOverride
		case realYield > 1.5:
			phase = PhaseLate
			reason = "real yield elevated"
		case inflation > 3.0:
			phase = PhaseMid
			reason = "inflation rising"
		default:
			phase = PhaseEarly
			reason = "cycle still early"
		}
		phases = append(phases, PhaseResult{Theme: rank.Theme, Phase: phase, Reason: reason})
	}
	st.Phases = phases
}
