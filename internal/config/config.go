package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Thresholds holds every tunable strategy parameter in one place. Absent
// keys in the YAML fall back to the defaults below; explicit zeros stick.
type Thresholds struct {
	DemandSignalMin       float64 `yaml:"demand_signal_min"`
	ConstraintMinHealth   float64 `yaml:"constraint_min_health"`
	DemandWeight          float64 `yaml:"demand_weight"`
	ConstraintWeight      float64 `yaml:"constraint_weight"`
	BreakRiskPenalty      float64 `yaml:"break_risk_penalty"`
	TopThemeN             int     `yaml:"top_theme_n"`
	MinScore              float64 `yaml:"min_score"`
	BreakRiskStop         float64 `yaml:"break_risk_stop"`
	MaxConstraintExposure int     `yaml:"max_constraint_exposure"`
	KillswitchLevel       float64 `yaml:"killswitch_level"`

	// Backtest parameters.
	InitialCash  float64 `yaml:"initial_cash"`
	MaxPositions int     `yaml:"max_positions"`
	Slippage     float64 `yaml:"slippage"`
	Fee          float64 `yaml:"fee"`
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		DemandSignalMin:       0.3,
		ConstraintMinHealth:   0.4,
		DemandWeight:          0.6,
		ConstraintWeight:      0.4,
		BreakRiskPenalty:      0.3,
		TopThemeN:             3,
		MinScore:              0.4,
		BreakRiskStop:         0.7,
		MaxConstraintExposure: 2,
		KillswitchLevel:       0.85,
		InitialCash:           1_000_000,
		MaxPositions:          3,
		Slippage:              0.0005,
		Fee:                   0.0003,
	}
}

type thresholdsFile struct {
	Thresholds Thresholds `yaml:"thresholds"`
}

// LoadThresholds reads a thresholds YAML file. Unmarshalling happens over a
// pre-populated default struct so only keys present in the file override.
func LoadThresholds(path string) (Thresholds, error) {
	f := thresholdsFile{Thresholds: DefaultThresholds()}
	b, err := os.ReadFile(path)
	if err != nil {
		return f.Thresholds, fmt.Errorf("read thresholds: %w", err)
	}
	if err := yaml.Unmarshal(b, &f); err != nil {
		return f.Thresholds, fmt.Errorf("parse thresholds: %w", err)
	}
	return f.Thresholds, nil
}

// ProductMeta is optional display metadata per product.
type ProductMeta struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Products maps product names to their theme universe.
type Products struct {
	Products map[string][]string    `yaml:"products"`
	Meta     map[string]ProductMeta `yaml:"meta"`
}

func LoadProducts(path string) (Products, error) {
	var p Products
	if err := loadYAML(path, &p); err != nil {
		return p, fmt.Errorf("load products: %w", err)
	}
	return p, nil
}

// Themes maps theme names to their risk constraint.
type Themes struct {
	Themes map[string]ThemeInfo `yaml:"themes"`
}

type ThemeInfo struct {
	ConstraintID string `yaml:"constraint_id"`
}

// ConstraintFor returns the constraint ID for a theme. An unmapped theme is
// a valid state and yields the empty ID.
func (t Themes) ConstraintFor(theme string) string {
	return t.Themes[theme].ConstraintID
}

func LoadThemes(path string) (Themes, error) {
	var t Themes
	if err := loadYAML(path, &t); err != nil {
		return t, fmt.Errorf("load themes: %w", err)
	}
	return t, nil
}

// Constraints holds per-constraint risk metrics.
type Constraints struct {
	Constraints map[string]ConstraintInfo `yaml:"constraints"`
}

type ConstraintInfo struct {
	HealthScore *float64 `yaml:"health_score"`
	BreakRisk   *float64 `yaml:"break_risk"`
}

const defaultConstraintScore = 0.5

// Lookup returns the health and break-risk scores for a constraint ID.
// Missing entries and missing fields both degrade to 0.5.
func (c Constraints) Lookup(id string) (health, breakRisk float64) {
	health, breakRisk = defaultConstraintScore, defaultConstraintScore
	info, ok := c.Constraints[id]
	if !ok {
		return health, breakRisk
	}
	if info.HealthScore != nil {
		health = *info.HealthScore
	}
	if info.BreakRisk != nil {
		breakRisk = *info.BreakRisk
	}
	return health, breakRisk
}

func LoadConstraints(path string) (Constraints, error) {
	var c Constraints
	if err := loadYAML(path, &c); err != nil {
		return c, fmt.Errorf("load constraints: %w", err)
	}
	return c, nil
}

// StageOverrides maps ISO date strings to per-theme cycle-phase overrides.
// Phase values stay untyped here; the pipeline validates them on use.
type StageOverrides map[string]map[string]string

type overridesFile struct {
	Overrides StageOverrides `yaml:"overrides"`
}

// LoadStageOverrides reads an override file. An empty path means no
// overrides, which is the common case.
func LoadStageOverrides(path string) (StageOverrides, error) {
	if path == "" {
		return StageOverrides{}, nil
	}
	var f overridesFile
	if err := loadYAML(path, &f); err != nil {
		return nil, fmt.Errorf("load stage overrides: %w", err)
	}
	if f.Overrides == nil {
		f.Overrides = StageOverrides{}
	}
	return f.Overrides, nil
}

func loadYAML(path string, v any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, v)
}
