package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadThresholds_AbsentKeysKeepDefaults(t *testing.T) {
	path := writeFile(t, "thresholds.yaml", `
thresholds:
  demand_signal_min: 0.5
  top_theme_n: 5
`)
	th, err := LoadThresholds(path)
	require.NoError(t, err)

	assert.Equal(t, 0.5, th.DemandSignalMin)
	assert.Equal(t, 5, th.TopThemeN)

	// Everything the file does not mention stays at its default.
	def := DefaultThresholds()
	assert.Equal(t, def.MinScore, th.MinScore)
	assert.Equal(t, def.KillswitchLevel, th.KillswitchLevel)
	assert.Equal(t, def.InitialCash, th.InitialCash)
	assert.Equal(t, def.Slippage, th.Slippage)
}

func TestLoadThresholds_ExplicitZeroSticks(t *testing.T) {
	path := writeFile(t, "thresholds.yaml", `
thresholds:
  min_score: 0
  break_risk_penalty: 0.0
`)
	th, err := LoadThresholds(path)
	require.NoError(t, err)
	assert.Zero(t, th.MinScore)
	assert.Zero(t, th.BreakRiskPenalty)
}

func TestLoadThresholds_MissingFile(t *testing.T) {
	_, err := LoadThresholds(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadProducts_RoundTrip(t *testing.T) {
	path := writeFile(t, "products.yaml", `
products:
  GOLD: [central_bank_gold, inflation_hedge]
meta:
  GOLD:
    name: Gold complex
    description: Bullion, miners and ETFs
`)
	p, err := LoadProducts(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"central_bank_gold", "inflation_hedge"}, p.Products["GOLD"])
	assert.Equal(t, "Gold complex", p.Meta["GOLD"].Name)
}

func TestConstraintsLookup_Defaults(t *testing.T) {
	path := writeFile(t, "constraints.yaml", `
constraints:
  mine_supply:
    health_score: 0.8
  partial:
    break_risk: 0.0
`)
	c, err := LoadConstraints(path)
	require.NoError(t, err)

	// Full and partial entries fill in 0.5 for whatever is missing.
	health, breakRisk := c.Lookup("mine_supply")
	assert.Equal(t, 0.8, health)
	assert.Equal(t, 0.5, breakRisk)

	// An explicit zero is kept, not replaced by the default.
	health, breakRisk = c.Lookup("partial")
	assert.Equal(t, 0.5, health)
	assert.Zero(t, breakRisk)

	health, breakRisk = c.Lookup("unmapped")
	assert.Equal(t, 0.5, health)
	assert.Equal(t, 0.5, breakRisk)
}

func TestLoadStageOverrides(t *testing.T) {
	t.Run("empty path means none", func(t *testing.T) {
		o, err := LoadStageOverrides("")
		require.NoError(t, err)
		assert.Empty(t, o)
	})

	t.Run("file", func(t *testing.T) {
		path := writeFile(t, "overrides.yaml", `
overrides:
  "2025-10-01":
    central_bank_gold: late
`)
		o, err := LoadStageOverrides(path)
		require.NoError(t, err)
		assert.Equal(t, "late", o["2025-10-01"]["central_bank_gold"])
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeFile(t, "overrides.yaml", "")
		o, err := LoadStageOverrides(path)
		require.NoError(t, err)
		require.NotNil(t, o)
		assert.Empty(t, o)
	})
}
