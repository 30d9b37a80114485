package pipeline

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rajchodisetti/theme-engine/internal/config"
)

// Scoring and break-risk adjustment keep every score inside [0, wd+wc] for
// any weights and any valid quality/health/break-risk inputs.
func TestScoring_BoundsHoldAcrossWeightGrid(t *testing.T) {
	r := newTestRunner(runnerFixture{})
	grid := []float64{0, 0.25, 0.5, 0.75, 1}

	for _, wd := range grid {
		for _, wc := range grid {
			for _, quality := range grid {
				for _, health := range grid {
					for _, breakRisk := range grid {
						st := &State{
							Thresholds: config.Thresholds{
								DemandWeight:     wd,
								ConstraintWeight: wc,
								BreakRiskPenalty: 0.3,
							},
							Quality: []DemandQuality{{Theme: "t", QualityScore: quality}},
							Constraints: []ConstraintSnapshot{{
								Theme:       "t",
								HealthScore: health,
								BreakRisk:   breakRisk,
							}},
						}
						r.scoring(st)
						require.Len(t, st.Scores, 1)
						raw := st.Scores[0].Score
						assert.GreaterOrEqual(t, raw, 0.0)
						assert.LessOrEqual(t, raw, wd+wc+1e-12)

						r.breakRiskAdjust(st)
						adjusted := st.Scores[0].Score
						assert.GreaterOrEqual(t, adjusted, 0.0)
						assert.LessOrEqual(t, adjusted, wd+wc+1e-12)
					}
				}
			}
		}
	}
}

func TestThemeRank_ContiguousPermutation(t *testing.T) {
	r := newTestRunner(runnerFixture{})
	st := &State{Scores: []OpportunityScore{
		{Theme: "a", Score: 0.2},
		{Theme: "b", Score: 0.9},
		{Theme: "c", Score: 0.5},
		{Theme: "d", Score: 0.7},
	}}
	r.themeRank(st)

	require.Len(t, st.Ranks, 4)
	seen := map[int]string{}
	for _, rank := range st.Ranks {
		seen[rank.Rank] = rank.Theme
	}
	for i := 1; i <= 4; i++ {
		require.Contains(t, seen, i, "rank %d missing", i)
	}
	assert.Equal(t, "b", seen[1])
	assert.Equal(t, "d", seen[2])
	assert.Equal(t, "c", seen[3])
	assert.Equal(t, "a", seen[4])
}

func TestThemeRank_TiesKeepScoringOrder(t *testing.T) {
	r := newTestRunner(runnerFixture{})
	var scores []OpportunityScore
	for i := 0; i < 6; i++ {
		scores = append(scores, OpportunityScore{Theme: fmt.Sprintf("t%d", i), Score: 0.5})
	}
	st := &State{Scores: scores}
	r.themeRank(st)

	require.Len(t, st.Ranks, 6)
	for i, rank := range st.Ranks {
		assert.Equal(t, fmt.Sprintf("t%d", i), rank.Theme)
		assert.Equal(t, i+1, rank.Rank)
	}
}

func TestDemandScan_SaturatesAtTen(t *testing.T) {
	r := newTestRunner(runnerFixture{
		thresholds: config.DefaultThresholds(),
		themes:     []string{"busy"},
		news:       newsFor(map[string]float64{"busy": 25}),
	})
	st := &State{Product: "GOLD", Date: testDay, Themes: []string{"busy"}}
	r.demandScan(st)
	require.Len(t, st.Events, 1)
	assert.Equal(t, 1.0, st.Events[0].SignalStrength)
}
