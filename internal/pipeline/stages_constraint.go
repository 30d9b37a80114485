package pipeline

import "fmt"

// matchConstraints (stage 3) binds every theme to its risk constraint.
// Unmapped themes get an empty constraint ID and 0.5 defaults for both
// scores, which is a valid state, not an error.
func (r *Runner) matchConstraints(st *State) {
	snapshots := make([]ConstraintSnapshot, 0, len(st.Quality))
	for _, q := range st.Quality {
		id, health, breakRisk := r.registry.ConstraintFor(q.Theme)
		snapshots = append(snapshots, ConstraintSnapshot{
			Theme:        q.Theme,
			ConstraintID: id,
			HealthScore:  health,
			BreakRisk:    breakRisk,
			Reason:       fmt.Sprintf("constraint=%s health=%.2f", id, health),
		})
	}
	st.Constraints = snapshots
}

// riskGate (stage 4) drops themes whose constraint health is below the
// floor. Themes dropped here never reappear downstream.
func (r *Runner) riskGate(st *State) {
	minHealth := st.Thresholds.ConstraintMinHealth
	filtered := st.Constraints[:0]
	for _, c := range st.Constraints {
		if c.HealthScore >= minHealth {
			filtered = append(filtered, c)
		}
	}
	st.Constraints = filtered
}

// scoring (stage 5) blends demand quality and constraint health into the
// composite opportunity score.
func (r *Runner) scoring(st *State) {
	wd := st.Thresholds.DemandWeight
	wc := st.Thresholds.ConstraintWeight
	qualityByTheme := st.qualityByTheme()
	reason := fmt.Sprintf("demand_weight=%.2f constraint_weight=%.2f", wd, wc)
	scores := make([]OpportunityScore, 0, len(st.Constraints))
	for _, c := range st.Constraints {
		qualityScore := 0.0
		if q, ok := qualityByTheme[c.Theme]; ok {
			qualityScore = q.QualityScore
		}
		scores = append(scores, OpportunityScore{
			Theme:  c.Theme,
			Score:  qualityScore*wd + c.HealthScore*wc,
			Reason: reason,
		})
	}
	st.Scores = scores
}

// breakRiskAdjust (stage 6) subtracts the break-risk penalty from each
// score, flooring at zero.
func (r *Runner) breakRiskAdjust(st *State) {
	penalty := st.Thresholds.BreakRiskPenalty
	constraintByTheme := st.constraintByTheme()
	reason := fmt.Sprintf("break_risk_penalty=%.2f", penalty)
	adjusted := make([]OpportunityScore, 0, len(st.Scores))
	for _, sc := range st.Scores {
		breakRisk := 0.0
		if c, ok := constraintByTheme[sc.Theme]; ok {
			breakRisk = c.BreakRisk
		}
		score := sc.Score - breakRisk*penalty
		if score < 0 {
			score = 0
		}
		adjusted = append(adjusted, OpportunityScore{Theme: sc.Theme, Score: score, Reason: reason})
	}
	st.Scores = adjusted
}
