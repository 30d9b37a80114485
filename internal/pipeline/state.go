package pipeline

import (
	"time"

	"github.com/Rajchodisetti/theme-engine/internal/config"
)

// Overrides forces cycle phases for specific themes on specific days,
// keyed by ISO date then theme.
type Overrides map[string]map[string]CyclePhase

// ParseOverrides validates a raw override map from config into typed phases.
func ParseOverrides(raw config.StageOverrides) (Overrides, error) {
	out := make(Overrides, len(raw))
	for day, themes := range raw {
		parsed := make(map[string]CyclePhase, len(themes))
		for theme, phase := range themes {
			p, err := ParseCyclePhase(phase)
			if err != nil {
				return nil, err
			}
			parsed[theme] = p
		}
		out[day] = parsed
	}
	return out, nil
}

// State is the per-(product, date) context threaded through the stages.
// Each stage reads fields written by earlier stages and writes only the
// fields it owns; the state is discarded once decisions are extracted.
type State struct {
	Product    string
	Date       time.Time
	Thresholds config.Thresholds
	Overrides  Overrides
	Themes     []string

	Events      []DemandEvent
	Quality     []DemandQuality
	Constraints []ConstraintSnapshot
	Scores      []OpportunityScore
	Ranks       []ThemeRank
	Phases      []PhaseResult
	Intents     []DecisionIntent
	Decisions   []DecisionResult
}

func (s *State) qualityByTheme() map[string]DemandQuality {
	m := make(map[string]DemandQuality, len(s.Quality))
	for _, q := range s.Quality {
		m[q.Theme] = q
	}
	return m
}

func (s *State) constraintByTheme() map[string]ConstraintSnapshot {
	m := make(map[string]ConstraintSnapshot, len(s.Constraints))
	for _, c := range s.Constraints {
		m[c.Theme] = c
	}
	return m
}

func (s *State) phaseByTheme() map[string]PhaseResult {
	m := make(map[string]PhaseResult, len(s.Phases))
	for _, p := range s.Phases {
		m[p.Theme] = p
	}
	return m
}
