// Package store provides SQLite persistence for habits, their completions and
// streak snapshots.
package store

import (
	"errors"
	"time"

	"github.com/blackwell-systems/habitual/internal/habit"
)

var (
	// ErrNotFound is returned when a habit or snapshot does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateName is returned when a habit name is already taken.
	// Names are compared case-insensitively.
	ErrDuplicateName = errors.New("habit already exists")
)

// HabitUpdate describes changes to an existing habit. Zero fields are left
// unchanged.
type HabitUpdate struct {
	Name        string
	Periodicity habit.Periodicity
}

// Snapshot represents a point-in-time capture of every habit's streaks.
type Snapshot struct {
	ID      int64     `json:"id"`
	TakenAt time.Time `json:"taken_at"`
	Today   string    `json:"today"`
	Version string    `json:"version"`
}

// SnapshotStreak is one habit's streaks within a snapshot.
type SnapshotStreak struct {
	ID            int64  `json:"id"`
	SnapshotID    int64  `json:"snapshot_id"`
	HabitName     string `json:"habit_name"`
	Periodicity   string `json:"periodicity"`
	Completions   int    `json:"completions"`
	CurrentStreak int    `json:"current_streak"`
	LongestStreak int    `json:"longest_streak"`
}

// SnapshotDiff represents the comparison between two snapshots.
type SnapshotDiff struct {
	Previous *Snapshot     `json:"previous"`
	Current  *Snapshot     `json:"current"`
	Deltas   []StreakDelta `json:"deltas"`
}

// StreakDelta is the change in one habit's streaks between snapshots.
type StreakDelta struct {
	HabitName       string `json:"habit_name"`
	PreviousCurrent int    `json:"previous_current"`
	Current         int    `json:"current"`
	CurrentDelta    int    `json:"current_delta"`
	PreviousLongest int    `json:"previous_longest"`
	Longest         int    `json:"longest"`
	LongestDelta    int    `json:"longest_delta"`
	New             bool   `json:"new,omitempty"`
}
