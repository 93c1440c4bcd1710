// Package habit defines the habit record tracked by habitual: its identity,
// periodicity, start date and the set of dates it was completed on.
package habit

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

var (
	// ErrInvalidPeriodicity is returned when a periodicity is neither daily nor weekly.
	ErrInvalidPeriodicity = errors.New("periodicity must be 'daily' or 'weekly'")

	// ErrDateBeforeStart is returned when a completion precedes the habit's start date.
	ErrDateBeforeStart = errors.New("completion date cannot be before start date")
)

// DateLayout is the calendar date format used for parsing and storage.
const DateLayout = "2006-01-02"

// Periodicity is the cadence a habit is expected to be completed at.
type Periodicity string

const (
	Daily  Periodicity = "daily"
	Weekly Periodicity = "weekly"
)

// Periodicities lists the supported periodicities in display order.
var Periodicities = []Periodicity{Daily, Weekly}

// ParsePeriodicity converts user input into a Periodicity. Matching ignores
// case and surrounding whitespace.
func ParsePeriodicity(s string) (Periodicity, error) {
	p := Periodicity(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: got %q", ErrInvalidPeriodicity, s)
	}
	return p, nil
}

// Valid reports whether p is a supported periodicity.
func (p Periodicity) Valid() bool {
	return p == Daily || p == Weekly
}

// ExpectedGap returns the number of days between two consecutive completions
// that keep a streak alive.
func (p Periodicity) ExpectedGap() int {
	if p == Weekly {
		return 7
	}
	return 1
}

func (p Periodicity) String() string {
	return string(p)
}

// Day truncates t to its calendar date. The year, month and day are taken in
// t's own location and the result is midnight UTC, so that two Days can be
// compared and subtracted without DST surprises.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the current local calendar date.
func Today() time.Time {
	return Day(time.Now())
}

// ParseDate parses a YYYY-MM-DD string into a calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// DaysBetween returns the number of calendar days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(Day(b).Sub(Day(a)).Hours() / 24)
}

// Habit is a single tracked habit.
type Habit struct {
	id          int64
	name        string
	periodicity Periodicity
	startDate   time.Time
	completions map[time.Time]struct{}
}

// New creates a habit with no completions.
func New(id int64, name string, periodicity Periodicity, startDate time.Time) (*Habit, error) {
	if !periodicity.Valid() {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidPeriodicity, string(periodicity))
	}
	return &Habit{
		id:          id,
		name:        name,
		periodicity: periodicity,
		startDate:   Day(startDate),
		completions: make(map[time.Time]struct{}),
	}, nil
}

func (h *Habit) ID() int64 { return h.id }
func (h *Habit) Name() string { return h.name }
func (h *Habit) Periodicity() Periodicity { return h.periodicity }
func (h *Habit) StartDate() time.Time { return h.startDate }

// Complete records a completion on the given day. A zero day means today.
// Completing an already completed day is a no-op.
func (h *Habit) Complete(day time.Time) error {
	if day.IsZero() {
		day = Today()
	}
	day = Day(day)
	if day.Before(h.startDate) {
		return fmt.Errorf("%w: %s is before %s", ErrDateBeforeStart,
			day.Format(DateLayout), h.startDate.Format(DateLayout))
	}
	h.completions[day] = struct{}{}
	return nil
}

// Reset clears every recorded completion.
func (h *Habit) Reset() {
	clear(h.completions)
}

// Completions returns the completion dates in ascending order. The returned
// slice is a copy.
func (h *Habit) Completions() []time.Time {
	out := make([]time.Time, 0, len(h.completions))
	for d := range h.completions {
		out = append(out, d)
	}
	slices.SortFunc(out, func(a, b time.Time) int { return a.Compare(b) })
	return out
}

// CompletionCount returns the number of distinct completion dates.
func (h *Habit) CompletionCount() int {
	return len(h.completions)
}

// Completed reports whether the habit was completed on the given day.
func (h *Habit) Completed(day time.Time) bool {
	_, ok := h.completions[Day(day)]
	return ok
}

func (h *Habit) String() string {
	return fmt.Sprintf("%s (%s): %d completions", h.name, h.periodicity, len(h.completions))
}
