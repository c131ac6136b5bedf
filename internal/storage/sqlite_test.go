package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err)
}

func TestStoreSaveRunAssignsIDs(t *testing.T) {
	store := openTestStore(t)

	saved, err := store.SaveRun(Run{Mode: "siege", Seed: 7, Waves: 4, Kills: 31, Money: 120, SimSeconds: 95.5})
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)
	_, err = uuid.Parse(saved.RunID)
	assert.NoError(t, err, "run id should be a uuid")

	got, err := store.RunByID(saved.RunID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "siege", got.Mode)
	assert.Equal(t, int64(7), got.Seed)
	assert.Equal(t, 4, got.Waves)
	assert.Equal(t, 31, got.Kills)
	assert.Equal(t, 120, got.Money)
	assert.InDelta(t, 95.5, got.SimSeconds, 1e-9)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestStoreSaveRunKeepsGivenRunID(t *testing.T) {
	store := openTestStore(t)

	saved, err := store.SaveRun(Run{RunID: "fixed", Mode: "siege", Waves: 1})
	require.NoError(t, err)
	assert.Equal(t, "fixed", saved.RunID)

	_, err = store.SaveRun(Run{RunID: "fixed", Mode: "siege", Waves: 2})
	assert.Error(t, err, "run ids are unique")
}

func TestStoreRunByIDMissing(t *testing.T) {
	store := openTestStore(t)

	got, err := store.RunByID("nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStoreTopRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{Mode: "siege", Waves: 3, Kills: 10},
		{Mode: "siege", Waves: 5, Kills: 20},
		{Mode: "siege", Waves: 5, Kills: 40},
		{Mode: "siege", Waves: 1, Kills: 2},
		{Mode: "siege_hard", Waves: 9, Kills: 90},
	}
	for _, r := range runs {
		_, err := store.SaveRun(r)
		require.NoError(t, err)
	}

	top, err := store.TopRuns("siege", 3)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, 40, top[0].Kills, "ties on waves break on kills")
	assert.Equal(t, 20, top[1].Kills)
	assert.Equal(t, 3, top[2].Waves)

	hard, err := store.TopRuns("siege_hard", 0)
	require.NoError(t, err)
	assert.Len(t, hard, 1)
}

func TestStoreRecentAndPlayerRuns(t *testing.T) {
	store := openTestStore(t)

	for i, player := range []string{"ann", "bob", "ann"} {
		_, err := store.SaveRun(Run{Mode: "siege", Player: player, Waves: i + 1})
		require.NoError(t, err)
	}

	recent, err := store.RecentRuns(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, 3, recent[0].Waves, "newest first")
	assert.Equal(t, 2, recent[1].Waves)

	ann, err := store.PlayerRuns("ann", 10)
	require.NoError(t, err)
	require.Len(t, ann, 2)
	assert.Equal(t, 3, ann[0].Waves)
	assert.Equal(t, 1, ann[1].Waves)
}

func TestStoreBestWave(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestWave("siege")
	require.NoError(t, err)
	assert.Equal(t, 0, best)

	for _, w := range []int{2, 7, 4} {
		_, err := store.SaveRun(Run{Mode: "siege", Waves: w})
		require.NoError(t, err)
	}

	best, err = store.BestWave("siege")
	require.NoError(t, err)
	assert.Equal(t, 7, best)
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	for _, mode := range []string{"siege", "siege", "siege_easy"} {
		_, err := store.SaveRun(Run{Mode: mode, Waves: 1})
		require.NoError(t, err)
	}

	require.NoError(t, store.ClearRuns("siege"))

	siege, err := store.TopRuns("siege", 10)
	require.NoError(t, err)
	assert.Empty(t, siege)

	easy, err := store.TopRuns("siege_easy", 10)
	require.NoError(t, err)
	assert.Len(t, easy, 1, "other modes are untouched")
}

func TestStoreModeStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetModeStats("siege")
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Runs)
	assert.True(t, empty.LastPlayed.IsZero())

	for _, r := range []Run{
		{Mode: "siege", Waves: 2, Kills: 10},
		{Mode: "siege", Waves: 6, Kills: 30},
		{Mode: "siege_hard", Waves: 1, Kills: 3},
	} {
		_, err := store.SaveRun(r)
		require.NoError(t, err)
	}

	stats, err := store.GetModeStats("siege")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Runs)
	assert.Equal(t, 6, stats.BestWave)
	assert.InDelta(t, 4.0, stats.AvgWave, 1e-9)
	assert.Equal(t, int64(40), stats.TotalKills)
	assert.False(t, stats.LastPlayed.IsZero())

	all, err := store.GetAllModeStats()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, 1, all["siege_hard"].BestWave)
}
