package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/blackwell-systems/habitual/internal/analyzer"
	"github.com/blackwell-systems/habitual/internal/habit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var seedStart = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// seedDB stores three daily and two weekly habits with a month of completions.
func seedDB(t *testing.T, db *DB) {
	t.Helper()
	seed := []struct {
		name        string
		periodicity habit.Periodicity
		count       int
	}{
		{"Skin Rutin", habit.Daily, 28},
		{"Mini Podcast", habit.Daily, 14},
		{"Kids Quality Time", habit.Daily, 14},
		{"Work Out", habit.Weekly, 4},
		{"Entertainment", habit.Weekly, 2},
	}
	for _, s := range seed {
		h, err := db.CreateHabit(s.name, s.periodicity, seedStart)
		require.NoError(t, err)
		for i := 0; i < s.count; i++ {
			day := seedStart.AddDate(0, 0, i*s.periodicity.ExpectedGap())
			_, err := db.SaveCompletion(h.ID(), day)
			require.NoError(t, err)
		}
	}
}

func TestOpen_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "habitual.db")
	db, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	var version int
	require.NoError(t, db.Conn().QueryRow("SELECT version FROM schema_version").Scan(&version))
	assert.Equal(t, currentSchemaVersion, version)

	// Migrating again is a no-op.
	assert.NoError(t, db.Migrate())
}

func TestCreateHabit(t *testing.T) {
	db := openTestDB(t)

	h, err := db.CreateHabit("Read", habit.Daily, seedStart)
	require.NoError(t, err)
	assert.NotZero(t, h.ID())
	assert.Equal(t, "Read", h.Name())

	_, err = db.CreateHabit("read", habit.Weekly, seedStart)
	assert.ErrorIs(t, err, ErrDuplicateName)

	_, err = db.CreateHabit("Swim", habit.Periodicity("monthly"), seedStart)
	assert.ErrorIs(t, err, habit.ErrInvalidPeriodicity)
}

func TestLoadHabits(t *testing.T) {
	db := openTestDB(t)
	seedDB(t, db)

	habits, err := db.LoadHabits()
	require.NoError(t, err)
	require.Len(t, habits, 5)

	names := make([]string, 0, len(habits))
	for _, h := range habits {
		names = append(names, h.Name())
	}
	assert.Equal(t, []string{"Skin Rutin", "Mini Podcast", "Kids Quality Time", "Work Out", "Entertainment"}, names)
	assert.Equal(t, 28, habits[0].CompletionCount())
	assert.Equal(t, habit.Weekly, habits[3].Periodicity())
	assert.Equal(t, seedStart, habits[3].StartDate())
}

func TestLoadHabits_Empty(t *testing.T) {
	db := openTestDB(t)
	habits, err := db.LoadHabits()
	require.NoError(t, err)
	assert.Empty(t, habits)
}

func TestLoadHabits_Analytics(t *testing.T) {
	db := openTestDB(t)
	seedDB(t, db)

	habits, err := db.LoadHabits()
	require.NoError(t, err)

	byName := make(map[string]*habit.Habit)
	for _, h := range habits {
		byName[h.Name()] = h
	}
	assert.Equal(t, 28, analyzer.LongestStreak(byName["Skin Rutin"]))
	assert.Equal(t, 14, analyzer.LongestStreak(byName["Mini Podcast"]))
	assert.Equal(t, 14, analyzer.LongestStreak(byName["Kids Quality Time"]))
	assert.Equal(t, 4, analyzer.LongestStreak(byName["Work Out"]))
	assert.Equal(t, 2, analyzer.LongestStreak(byName["Entertainment"]))

	names, streak := analyzer.LongestStreakOverall(habits)
	assert.Equal(t, []string{"Skin Rutin"}, names)
	assert.Equal(t, 28, streak)
}

func TestGetHabit_NotFound(t *testing.T) {
	db := openTestDB(t)
	_, err := db.GetHabit(42)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = db.FindHabitByName("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindHabitByName_IgnoresCase(t *testing.T) {
	db := openTestDB(t)
	seedDB(t, db)

	h, err := db.FindHabitByName("work out")
	require.NoError(t, err)
	assert.Equal(t, "Work Out", h.Name())
	assert.Equal(t, 4, h.CompletionCount())
}

func TestUpdateHabit(t *testing.T) {
	db := openTestDB(t)
	seedDB(t, db)

	h, err := db.FindHabitByName("Skin Rutin")
	require.NoError(t, err)

	require.NoError(t, db.UpdateHabit(h.ID(), HabitUpdate{Name: "Updated Habit"}))

	updated, err := db.GetHabit(h.ID())
	require.NoError(t, err)
	assert.Equal(t, "Updated Habit", updated.Name())
	assert.Equal(t, habit.Daily, updated.Periodicity())
	assert.Equal(t, 28, updated.CompletionCount())

	_, err = db.FindHabitByName("Skin Rutin")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateHabit_Errors(t *testing.T) {
	db := openTestDB(t)
	seedDB(t, db)

	h, err := db.FindHabitByName("Work Out")
	require.NoError(t, err)

	err = db.UpdateHabit(h.ID(), HabitUpdate{Name: "mini podcast"})
	assert.ErrorIs(t, err, ErrDuplicateName)

	err = db.UpdateHabit(h.ID(), HabitUpdate{Periodicity: "yearly"})
	assert.ErrorIs(t, err, habit.ErrInvalidPeriodicity)

	// Renaming to a different case of its own name is allowed.
	assert.NoError(t, db.UpdateHabit(h.ID(), HabitUpdate{Name: "work out"}))

	assert.ErrorIs(t, db.UpdateHabit(999, HabitUpdate{Name: "x"}), ErrNotFound)
}

func TestDeleteHabit(t *testing.T) {
	db := openTestDB(t)
	seedDB(t, db)

	h, err := db.FindHabitByName("Skin Rutin")
	require.NoError(t, err)
	require.NoError(t, db.DeleteHabit(h.ID()))

	habits, err := db.LoadHabits()
	require.NoError(t, err)
	assert.Len(t, habits, 4)
	for _, remaining := range habits {
		assert.NotEqual(t, "Skin Rutin", remaining.Name())
	}

	var orphans int
	require.NoError(t, db.Conn().QueryRow("SELECT COUNT(*) FROM completions WHERE habit_id = ?", h.ID()).Scan(&orphans))
	assert.Zero(t, orphans)

	assert.ErrorIs(t, db.DeleteHabit(h.ID()), ErrNotFound)
}

func TestSaveCompletion(t *testing.T) {
	db := openTestDB(t)
	h, err := db.CreateHabit("Read", habit.Daily, seedStart)
	require.NoError(t, err)

	day := seedStart.AddDate(0, 0, 2)
	got, err := db.SaveCompletion(h.ID(), day)
	require.NoError(t, err)
	assert.Equal(t, day, got)

	// Idempotent.
	_, err = db.SaveCompletion(h.ID(), day)
	require.NoError(t, err)

	loaded, err := db.GetHabit(h.ID())
	require.NoError(t, err)
	assert.Equal(t, []time.Time{day}, loaded.Completions())

	_, err = db.SaveCompletion(h.ID(), seedStart.AddDate(0, 0, -1))
	assert.ErrorIs(t, err, habit.ErrDateBeforeStart)

	_, err = db.SaveCompletion(999, day)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResetCompletions(t *testing.T) {
	db := openTestDB(t)
	seedDB(t, db)

	h, err := db.FindHabitByName("Work Out")
	require.NoError(t, err)
	require.NoError(t, db.ResetCompletions(h.ID()))

	reset, err := db.GetHabit(h.ID())
	require.NoError(t, err)
	assert.Zero(t, reset.CompletionCount())
	assert.Equal(t, 0, analyzer.LongestStreak(reset))

	assert.ErrorIs(t, db.ResetCompletions(999), ErrNotFound)
}
