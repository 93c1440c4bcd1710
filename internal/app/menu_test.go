package app

import (
	"bytes"
	"testing"
	"time"

	"github.com/blackwell-systems/habitual/internal/habit"
	"github.com/blackwell-systems/habitual/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var menuStart = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func openMenuDB(t *testing.T) *store.DB {
	t.Helper()
	db, err := store.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestValidateNewHabitName(t *testing.T) {
	db := openMenuDB(t)
	_, err := db.CreateHabit("Read", habit.Daily, menuStart)
	require.NoError(t, err)

	assert.Error(t, validateNewHabitName(db, "   "))
	assert.ErrorIs(t, validateNewHabitName(db, "read"), store.ErrDuplicateName)
	assert.NoError(t, validateNewHabitName(db, "Swim"))
}

func TestMenuAddCompleteDelete(t *testing.T) {
	db := openMenuDB(t)
	var out bytes.Buffer

	require.NoError(t, addHabit(&out, db, "  Stretch ", habit.Weekly, menuStart))
	assert.Contains(t, out.String(), "Habit 'Stretch' added successfully.")

	h, err := db.FindHabitByName("stretch")
	require.NoError(t, err)
	assert.Equal(t, habit.Weekly, h.Periodicity())

	err = addHabit(&out, db, "Stretch", habit.Daily, menuStart)
	assert.ErrorIs(t, err, store.ErrDuplicateName)

	out.Reset()
	require.NoError(t, completeHabit(&out, db, h, menuStart.AddDate(0, 0, 3)))
	assert.Contains(t, out.String(), "marked as completed on 2026-01-04")

	err = completeHabit(&out, db, h, menuStart.AddDate(0, 0, -1))
	assert.ErrorIs(t, err, habit.ErrDateBeforeStart)

	out.Reset()
	require.NoError(t, deleteHabit(&out, db, h))
	assert.Contains(t, out.String(), "Habit 'Stretch' deleted successfully.")

	habits, err := db.LoadHabits()
	require.NoError(t, err)
	assert.Empty(t, habits)

	assert.ErrorIs(t, deleteHabit(&out, db, h), store.ErrNotFound)
}
