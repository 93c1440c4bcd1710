package store

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/blackwell-systems/habitual/internal/habit"
)

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

const habitColumns = "id, name, periodicity, start_date"

// CreateHabit inserts a new habit and returns it with its assigned ID.
func (db *DB) CreateHabit(name string, periodicity habit.Periodicity, startDate time.Time) (*habit.Habit, error) {
	// Validate before touching the database.
	if _, err := habit.New(0, name, periodicity, startDate); err != nil {
		return nil, err
	}

	if _, err := db.FindHabitByName(name); err == nil {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	result, err := db.conn.Exec(
		"INSERT INTO habits (name, periodicity, start_date, created_at) VALUES (?, ?, ?, ?)",
		name, string(periodicity), habit.Day(startDate).Format(habit.DateLayout),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return nil, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	slog.Debug("created habit", "id", id, "name", name, "periodicity", periodicity)
	return habit.New(id, name, periodicity, startDate)
}

// LoadHabits returns every habit with its completions, ordered by ID. Habits
// and completions are read in a single transaction so callers get a
// consistent snapshot.
func (db *DB) LoadHabits() ([]*habit.Habit, error) {
	tx, err := db.conn.Begin()
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	rows, err := tx.Query("SELECT " + habitColumns + " FROM habits ORDER BY id")
	if err != nil {
		return nil, err
	}

	var habits []*habit.Habit
	byID := make(map[int64]*habit.Habit)
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			_ = rows.Close()
			return nil, err
		}
		habits = append(habits, h)
		byID[h.ID()] = h
	}
	_ = rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	crows, err := tx.Query("SELECT habit_id, completed_on FROM completions ORDER BY habit_id, completed_on")
	if err != nil {
		return nil, err
	}
	defer func() { _ = crows.Close() }()

	for crows.Next() {
		var habitID int64
		var completedOn string
		if err := crows.Scan(&habitID, &completedOn); err != nil {
			return nil, err
		}
		h, ok := byID[habitID]
		if !ok {
			continue
		}
		if err := completeFromRow(h, completedOn); err != nil {
			return nil, err
		}
	}
	if err := crows.Err(); err != nil {
		return nil, err
	}

	slog.Debug("loaded habits", "count", len(habits))
	return habits, nil
}

// GetHabit returns the habit with the given ID and its completions.
func (db *DB) GetHabit(id int64) (*habit.Habit, error) {
	row := db.conn.QueryRow("SELECT "+habitColumns+" FROM habits WHERE id = ?", id)
	h, err := scanHabit(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("habit %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	if err := loadCompletions(db.conn, h); err != nil {
		return nil, err
	}
	return h, nil
}

// FindHabitByName returns the habit with the given name, ignoring case.
func (db *DB) FindHabitByName(name string) (*habit.Habit, error) {
	row := db.conn.QueryRow("SELECT "+habitColumns+" FROM habits WHERE name = ? COLLATE NOCASE", name)
	h, err := scanHabit(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("habit %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	if err := loadCompletions(db.conn, h); err != nil {
		return nil, err
	}
	return h, nil
}

// UpdateHabit renames a habit and/or changes its periodicity.
func (db *DB) UpdateHabit(id int64, upd HabitUpdate) error {
	current, err := db.GetHabit(id)
	if err != nil {
		return err
	}

	name := current.Name()
	if upd.Name != "" {
		name = upd.Name
	}
	periodicity := current.Periodicity()
	if upd.Periodicity != "" {
		periodicity = upd.Periodicity
	}
	if _, err := habit.New(id, name, periodicity, current.StartDate()); err != nil {
		return err
	}

	if other, err := db.FindHabitByName(name); err == nil && other.ID() != id {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	} else if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}

	if _, err := db.conn.Exec(
		"UPDATE habits SET name = ?, periodicity = ? WHERE id = ?",
		name, string(periodicity), id,
	); err != nil {
		return err
	}
	slog.Debug("updated habit", "id", id, "name", name, "periodicity", periodicity)
	return nil
}

// DeleteHabit removes a habit and all of its completions.
func (db *DB) DeleteHabit(id int64) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM completions WHERE habit_id = ?", id); err != nil {
		return err
	}
	result, err := tx.Exec("DELETE FROM habits WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("habit %d: %w", id, ErrNotFound)
	}

	slog.Debug("deleted habit", "id", id)
	return tx.Commit()
}

// SaveCompletion records that a habit was completed on day. A zero day means
// today. Saving the same day twice is a no-op. The completed day is returned.
func (db *DB) SaveCompletion(id int64, day time.Time) (time.Time, error) {
	h, err := db.GetHabit(id)
	if err != nil {
		return time.Time{}, err
	}
	if day.IsZero() {
		day = habit.Today()
	}
	day = habit.Day(day)
	if err := h.Complete(day); err != nil {
		return time.Time{}, err
	}

	if _, err := db.conn.Exec(
		"INSERT OR IGNORE INTO completions (habit_id, completed_on) VALUES (?, ?)",
		id, day.Format(habit.DateLayout),
	); err != nil {
		return time.Time{}, err
	}
	slog.Debug("saved completion", "id", id, "day", day.Format(habit.DateLayout))
	return day, nil
}

// ResetCompletions removes every completion of a habit.
func (db *DB) ResetCompletions(id int64) error {
	if _, err := db.GetHabit(id); err != nil {
		return err
	}
	_, err := db.conn.Exec("DELETE FROM completions WHERE habit_id = ?", id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHabit(row rowScanner) (*habit.Habit, error) {
	var (
		id          int64
		name        string
		periodicity string
		startDate   string
	)
	if err := row.Scan(&id, &name, &periodicity, &startDate); err != nil {
		return nil, err
	}
	start, err := time.Parse(habit.DateLayout, startDate)
	if err != nil {
		return nil, fmt.Errorf("habit %d start date: %w", id, err)
	}
	return habit.New(id, name, habit.Periodicity(periodicity), start)
}

func loadCompletions(q queryer, h *habit.Habit) error {
	rows, err := q.Query("SELECT completed_on FROM completions WHERE habit_id = ? ORDER BY completed_on", h.ID())
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var completedOn string
		if err := rows.Scan(&completedOn); err != nil {
			return err
		}
		if err := completeFromRow(h, completedOn); err != nil {
			return err
		}
	}
	return rows.Err()
}

func completeFromRow(h *habit.Habit, completedOn string) error {
	d, err := time.Parse(habit.DateLayout, completedOn)
	if err != nil {
		return fmt.Errorf("habit %d completion: %w", h.ID(), err)
	}
	if err := h.Complete(d); err != nil {
		return fmt.Errorf("habit %d: %w", h.ID(), err)
	}
	return nil
}
