package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// CreateSnapshot inserts a new snapshot and returns its ID. today is the
// reference date the snapshot's current streaks were computed against.
func (db *DB) CreateSnapshot(today, version string) (int64, error) {
	result, err := db.conn.Exec(
		"INSERT INTO snapshots (taken_at, today, version) VALUES (?, ?, ?)",
		time.Now().UTC().Format(time.RFC3339), today, version,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// SaveSnapshot records a snapshot together with its streak rows in one
// transaction and returns the stored snapshot. If any row fails, nothing is
// written.
func (db *DB) SaveSnapshot(today, version string, streaks []SnapshotStreak) (*Snapshot, error) {
	tx, err := db.conn.Begin()
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	takenAt := time.Now().UTC().Truncate(time.Second)
	result, err := tx.Exec(
		"INSERT INTO snapshots (taken_at, today, version) VALUES (?, ?, ?)",
		takenAt.Format(time.RFC3339), today, version,
	)
	if err != nil {
		return nil, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	for _, ss := range streaks {
		ss.SnapshotID = id
		if err := insertSnapshotStreak(tx, &ss); err != nil {
			return nil, fmt.Errorf("inserting streak for %s: %w", ss.HabitName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &Snapshot{ID: id, TakenAt: takenAt, Today: today, Version: version}, nil
}

// GetLatestSnapshot returns the most recent snapshot, or nil if none exist.
func (db *DB) GetLatestSnapshot() (*Snapshot, error) {
	return db.GetSnapshotN(1)
}

// GetSnapshotN returns the Nth most recent snapshot (1 = latest, 2 = previous, etc.),
// or nil if there are fewer than N snapshots.
func (db *DB) GetSnapshotN(n int) (*Snapshot, error) {
	row := db.conn.QueryRow(
		"SELECT id, taken_at, today, version FROM snapshots ORDER BY id DESC LIMIT 1 OFFSET ?",
		n-1,
	)
	return scanSnapshot(row)
}

func scanSnapshot(row *sql.Row) (*Snapshot, error) {
	var s Snapshot
	var takenAt string
	err := row.Scan(&s.ID, &takenAt, &s.Today, &s.Version)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	s.TakenAt, err = time.Parse(time.RFC3339, takenAt)
	if err != nil {
		return nil, fmt.Errorf("snapshot %d: parsing taken_at %q: %w", s.ID, takenAt, err)
	}
	return &s, nil
}

// InsertSnapshotStreak inserts one habit's streaks for a snapshot.
func (db *DB) InsertSnapshotStreak(ss *SnapshotStreak) error {
	return insertSnapshotStreak(db.conn, ss)
}

func insertSnapshotStreak(e execer, ss *SnapshotStreak) error {
	_, err := e.Exec(
		`INSERT INTO snapshot_streaks
		(snapshot_id, habit_name, periodicity, completions, current_streak, longest_streak)
		VALUES (?, ?, ?, ?, ?, ?)`,
		ss.SnapshotID, ss.HabitName, ss.Periodicity, ss.Completions,
		ss.CurrentStreak, ss.LongestStreak,
	)
	return err
}

// GetSnapshotStreaks returns all habit streaks recorded in a snapshot.
func (db *DB) GetSnapshotStreaks(snapshotID int64) ([]SnapshotStreak, error) {
	rows, err := db.conn.Query(
		`SELECT id, snapshot_id, habit_name, periodicity, completions, current_streak, longest_streak
		 FROM snapshot_streaks WHERE snapshot_id = ? ORDER BY id`,
		snapshotID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var streaks []SnapshotStreak
	for rows.Next() {
		var ss SnapshotStreak
		if err := rows.Scan(&ss.ID, &ss.SnapshotID, &ss.HabitName, &ss.Periodicity,
			&ss.Completions, &ss.CurrentStreak, &ss.LongestStreak); err != nil {
			return nil, err
		}
		streaks = append(streaks, ss)
	}
	return streaks, rows.Err()
}

// DiffSnapshots compares the streaks of two snapshots habit by habit. Habits
// that only exist in current are marked New; habits dropped since previous
// are omitted.
func (db *DB) DiffSnapshots(previous, current *Snapshot) (*SnapshotDiff, error) {
	prevStreaks, err := db.GetSnapshotStreaks(previous.ID)
	if err != nil {
		return nil, err
	}
	curStreaks, err := db.GetSnapshotStreaks(current.ID)
	if err != nil {
		return nil, err
	}

	prevByName := make(map[string]SnapshotStreak, len(prevStreaks))
	for _, ss := range prevStreaks {
		prevByName[ss.HabitName] = ss
	}

	diff := &SnapshotDiff{Previous: previous, Current: current}
	for _, cur := range curStreaks {
		prev, ok := prevByName[cur.HabitName]
		diff.Deltas = append(diff.Deltas, StreakDelta{
			HabitName:       cur.HabitName,
			PreviousCurrent: prev.CurrentStreak,
			Current:         cur.CurrentStreak,
			CurrentDelta:    cur.CurrentStreak - prev.CurrentStreak,
			PreviousLongest: prev.LongestStreak,
			Longest:         cur.LongestStreak,
			LongestDelta:    cur.LongestStreak - prev.LongestStreak,
			New:             !ok,
		})
	}
	return diff, nil
}
