package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/blackwell-systems/habitual/internal/habit"
	"github.com/blackwell-systems/habitual/internal/store"
)

// openDB opens the configured database.
func openDB() (*store.DB, error) {
	db, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return db, nil
}

// resolveHabit finds a habit by numeric ID or, failing that, by name.
func resolveHabit(db *store.DB, ref string) (*habit.Habit, error) {
	ref = strings.TrimSpace(ref)
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		h, err := db.GetHabit(id)
		if err == nil {
			return h, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
	}
	return db.FindHabitByName(ref)
}

// parseDay parses an optional YYYY-MM-DD flag value. Empty means today.
func parseDay(s string) (time.Time, error) {
	if s == "" {
		return habit.Today(), nil
	}
	return habit.ParseDate(s)
}

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// habitView is the JSON shape of a habit.
type habitView struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Periodicity string   `json:"periodicity"`
	StartDate   string   `json:"start_date"`
	Completions []string `json:"completions"`
}

func newHabitView(h *habit.Habit) habitView {
	v := habitView{
		ID:          h.ID(),
		Name:        h.Name(),
		Periodicity: string(h.Periodicity()),
		StartDate:   h.StartDate().Format(habit.DateLayout),
		Completions: []string{},
	}
	for _, c := range h.Completions() {
		v.Completions = append(v.Completions, c.Format(habit.DateLayout))
	}
	return v
}
