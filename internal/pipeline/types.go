package pipeline

import "fmt"

// Intent is the closed set of actions the pipeline can recommend.
type Intent string

const (
	IntentEnter  Intent = "ENTER"
	IntentAdd    Intent = "ADD"
	IntentReduce Intent = "REDUCE"
	IntentExit   Intent = "EXIT"
	IntentHold   Intent = "HOLD"
)

// CyclePhase is the market-cycle phase assigned per theme.
type CyclePhase string

const (
	PhaseEarly CyclePhase = "early"
	PhaseMid   CyclePhase = "mid"
	PhaseLate  CyclePhase = "late"
)

// ParseCyclePhase validates a phase string from an override file.
func ParseCyclePhase(s string) (CyclePhase, error) {
	switch CyclePhase(s) {
	case PhaseEarly, PhaseMid, PhaseLate:
		return CyclePhase(s), nil
	}
	return "", fmt.Errorf("invalid cycle phase %q", s)
}

// DemandEvent is the raw daily demand signal for one theme.
type DemandEvent struct {
	Theme          string
	SignalStrength float64 // [0,1]
	Reason         string
}

// DemandQuality records the signal's pass/fail against the demand threshold.
// Passed is audit information; it never filters themes downstream.
type DemandQuality struct {
	Theme        string
	QualityScore float64
	Passed       bool
	Reason       string
}

// ConstraintSnapshot is the risk-constraint state bound to a theme.
type ConstraintSnapshot struct {
	Theme        string
	ConstraintID string
	HealthScore  float64 // [0,1]
	BreakRisk    float64 // [0,1]
	Reason       string
}

// OpportunityScore is the composite attractiveness of a theme.
type OpportunityScore struct {
	Theme  string
	Score  float64
	Reason string
}

// ThemeRank is a theme's 1-based position in the descending score order.
type ThemeRank struct {
	Theme string
	Rank  int
	Score float64
}

// PhaseResult is the detected market-cycle phase for a theme.
type PhaseResult struct {
	Theme  string
	Phase  CyclePhase
	Reason string
}

// DecisionIntent is the provisional action before kill-switch resolution.
type DecisionIntent struct {
	Theme  string
	Intent Intent
	Reason string
	Score  float64
}

// DecisionResult is the final, audit-ready decision for one theme.
type DecisionResult struct {
	Date         string     `json:"date"`
	Product      string     `json:"product"`
	Theme        string     `json:"theme"`
	Intent       Intent     `json:"intent"`
	Reason       string     `json:"reason"`
	Phase        CyclePhase `json:"stage"`
	Score        float64    `json:"score"`
	ConstraintID string     `json:"constraint_id"`
	BreakRisk    float64    `json:"break_risk"`
}
