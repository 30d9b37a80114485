package audit

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rajchodisetti/theme-engine/internal/pipeline"
)

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store := NewStore(t.TempDir())
	results := []pipeline.DecisionResult{{
		Date:    "2025-10-06",
		Product: "GOLD",
		Theme:   "central_bank_gold",
		Intent:  pipeline.IntentEnter,
		Reason:  "rank 1",
		Phase:   pipeline.PhaseEarly,
		Score:   0.72,
	}}

	record, err := store.Save("2025-10-06", "GOLD", results)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(record.RunID, "gold-"), "run ID %q", record.RunID)

	loaded, err := store.Load(record.RunID)
	require.NoError(t, err)
	assert.Equal(t, record, loaded)
}

func TestStore_DistinctRunIDs(t *testing.T) {
	store := NewStore(t.TempDir())
	a, err := store.Save("2025-10-06", "GOLD", nil)
	require.NoError(t, err)
	b, err := store.Save("2025-10-06", "GOLD", nil)
	require.NoError(t, err)
	assert.NotEqual(t, a.RunID, b.RunID)

	ids, err := store.List()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{a.RunID, b.RunID}, ids)
}

func TestStore_ListMissingDirIsEmpty(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "never-created"))
	ids, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestStore_LoadUnknownID(t *testing.T) {
	store := NewStore(t.TempDir())
	_, err := store.Load("gold-nope")
	require.Error(t, err)
}
