package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshots_Empty(t *testing.T) {
	db := openTestDB(t)

	snap, err := db.GetLatestSnapshot()
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestSnapshots_RoundTripAndDiff(t *testing.T) {
	db := openTestDB(t)

	firstID, err := db.CreateSnapshot("2026-01-10", "test")
	require.NoError(t, err)
	require.NoError(t, db.InsertSnapshotStreak(&SnapshotStreak{
		SnapshotID: firstID, HabitName: "Read", Periodicity: "daily",
		Completions: 5, CurrentStreak: 5, LongestStreak: 5,
	}))

	secondID, err := db.CreateSnapshot("2026-01-14", "test")
	require.NoError(t, err)
	require.NoError(t, db.InsertSnapshotStreak(&SnapshotStreak{
		SnapshotID: secondID, HabitName: "Read", Periodicity: "daily",
		Completions: 6, CurrentStreak: 0, LongestStreak: 6,
	}))
	require.NoError(t, db.InsertSnapshotStreak(&SnapshotStreak{
		SnapshotID: secondID, HabitName: "Run", Periodicity: "weekly",
		Completions: 1, CurrentStreak: 1, LongestStreak: 1,
	}))

	latest, err := db.GetLatestSnapshot()
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, secondID, latest.ID)
	assert.Equal(t, "2026-01-14", latest.Today)

	previous, err := db.GetSnapshotN(2)
	require.NoError(t, err)
	require.NotNil(t, previous)
	assert.Equal(t, firstID, previous.ID)

	none, err := db.GetSnapshotN(3)
	require.NoError(t, err)
	assert.Nil(t, none)

	streaks, err := db.GetSnapshotStreaks(secondID)
	require.NoError(t, err)
	assert.Len(t, streaks, 2)

	diff, err := db.DiffSnapshots(previous, latest)
	require.NoError(t, err)
	require.Len(t, diff.Deltas, 2)

	assert.Equal(t, StreakDelta{
		HabitName: "Read", PreviousCurrent: 5, Current: 0, CurrentDelta: -5,
		PreviousLongest: 5, Longest: 6, LongestDelta: 1,
	}, diff.Deltas[0])
	assert.True(t, diff.Deltas[1].New)
	assert.Equal(t, 1, diff.Deltas[1].CurrentDelta)
}

func TestSaveSnapshot(t *testing.T) {
	db := openTestDB(t)

	snap, err := db.SaveSnapshot("2026-01-10", "test", []SnapshotStreak{
		{HabitName: "Read", Periodicity: "daily", Completions: 5, CurrentStreak: 5, LongestStreak: 5},
		{HabitName: "Run", Periodicity: "weekly", Completions: 2, CurrentStreak: 1, LongestStreak: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-01-10", snap.Today)
	assert.False(t, snap.TakenAt.IsZero())

	latest, err := db.GetLatestSnapshot()
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, snap.ID, latest.ID)
	assert.True(t, snap.TakenAt.Equal(latest.TakenAt))

	streaks, err := db.GetSnapshotStreaks(snap.ID)
	require.NoError(t, err)
	require.Len(t, streaks, 2)
	assert.Equal(t, snap.ID, streaks[1].SnapshotID)
	assert.Equal(t, "Run", streaks[1].HabitName)
}

func TestSaveSnapshot_RollsBackOnFailure(t *testing.T) {
	db := openTestDB(t)
	_, err := db.Conn().Exec("DROP TABLE snapshot_streaks")
	require.NoError(t, err)

	_, err = db.SaveSnapshot("2026-01-10", "test", []SnapshotStreak{
		{HabitName: "Read", Periodicity: "daily", Completions: 1, CurrentStreak: 1, LongestStreak: 1},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Read")

	snap, err := db.GetLatestSnapshot()
	require.NoError(t, err)
	assert.Nil(t, snap, "failed snapshot must not be left behind")
}

func TestGetSnapshot_CorruptTakenAt(t *testing.T) {
	db := openTestDB(t)
	_, err := db.Conn().Exec(
		"INSERT INTO snapshots (taken_at, today, version) VALUES ('not-a-time', '2026-01-10', 'test')")
	require.NoError(t, err)

	snap, err := db.GetLatestSnapshot()
	require.Error(t, err)
	assert.Nil(t, snap)
	assert.Contains(t, err.Error(), "taken_at")
}
