package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rajchodisetti/theme-engine/internal/config"
	"github.com/Rajchodisetti/theme-engine/internal/data"
)

func ptr(v float64) *float64 { return &v }

func testRegistry() *Registry {
	return NewRegistry(
		config.Products{
			Products: map[string][]string{
				"GOLD":   {"central_bank_gold", "inflation_hedge"},
				"COPPER": {"grid_buildout"},
			},
			Meta: map[string]config.ProductMeta{
				"GOLD": {Name: "Gold complex"},
			},
		},
		config.Themes{Themes: map[string]config.ThemeInfo{
			"central_bank_gold": {ConstraintID: "mine_supply"},
			"inflation_hedge":   {ConstraintID: "mine_supply"},
		}},
		config.Constraints{Constraints: map[string]config.ConstraintInfo{
			"mine_supply": {HealthScore: ptr(0.8), BreakRisk: ptr(0.2)},
		}},
	)
}

func TestRegistry_ProductsSorted(t *testing.T) {
	assert.Equal(t, []string{"COPPER", "GOLD"}, testRegistry().Products())
}

func TestRegistry_ThemesFor(t *testing.T) {
	reg := testRegistry()

	themes, err := reg.ThemesFor("GOLD")
	require.NoError(t, err)
	assert.Equal(t, []string{"central_bank_gold", "inflation_hedge"}, themes)

	_, err = reg.ThemesFor("SILVER")
	require.ErrorIs(t, err, ErrUnknownProduct)
}

func TestRegistry_Meta(t *testing.T) {
	reg := testRegistry()
	assert.Equal(t, "Gold complex", reg.Meta("GOLD").Name)
	assert.Empty(t, reg.Meta("COPPER").Name)
}

func TestRegistry_ConstraintFor(t *testing.T) {
	reg := testRegistry()

	id, health, breakRisk := reg.ConstraintFor("central_bank_gold")
	assert.Equal(t, "mine_supply", id)
	assert.Equal(t, 0.8, health)
	assert.Equal(t, 0.2, breakRisk)

	// Unmapped theme: empty constraint ID and the 0.5 score defaults.
	id, health, breakRisk = reg.ConstraintFor("grid_buildout")
	assert.Empty(t, id)
	assert.Equal(t, 0.5, health)
	assert.Equal(t, 0.5, breakRisk)
}

func TestBuildMonitorPlan(t *testing.T) {
	reg := testRegistry()
	assets := data.NewAssetTable([]data.AssetRow{
		{Product: "GOLD", Theme: "central_bank_gold", AssetID: "GOLD_SPOT"},
		{Product: "GOLD", Theme: "inflation_hedge", AssetID: "GOLD_ETF"},
		{Product: "GOLD", Theme: "inflation_hedge", AssetID: "GOLD_MINER"},
	})

	plan, err := BuildMonitorPlan(reg, assets, "GOLD")
	require.NoError(t, err)
	assert.Equal(t, "GOLD", plan.Product)
	require.Len(t, plan.Items, 2)
	assert.Equal(t, MonitorItem{
		Theme:        "central_bank_gold",
		ConstraintID: "mine_supply",
		Assets:       []string{"GOLD_SPOT"},
	}, plan.Items[0])
	assert.Equal(t, []string{"GOLD_ETF", "GOLD_MINER"}, plan.Items[1].Assets)

	_, err = BuildMonitorPlan(reg, assets, "SILVER")
	require.ErrorIs(t, err, ErrUnknownProduct)
}
