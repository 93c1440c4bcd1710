package app

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/blackwell-systems/habitual/internal/habit"
	"github.com/blackwell-systems/habitual/internal/store"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

const (
	menuAdd       = "add"
	menuComplete  = "complete"
	menuAnalytics = "analytics"
	menuDelete    = "delete"
	menuExit      = "exit"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive menu",
	Args:  cobra.NoArgs,
	RunE:  runMenu,
}

func init() {
	rootCmd.AddCommand(menuCmd)
}

func runMenu(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	out := cmd.OutOrStdout()
	for {
		var choice string
		form := huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().
				Title("HABIT TRACKER").
				Options(
					huh.NewOption("Add habit", menuAdd),
					huh.NewOption("Complete habit", menuComplete),
					huh.NewOption("View analytics", menuAnalytics),
					huh.NewOption("Delete habit", menuDelete),
					huh.NewOption("Exit", menuExit),
				).
				Value(&choice),
		))
		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				choice = menuExit
			} else {
				return err
			}
		}

		var actionErr error
		switch choice {
		case menuAdd:
			actionErr = menuAddHabit(out, db)
		case menuComplete:
			actionErr = menuCompleteHabit(out, db)
		case menuAnalytics:
			var habits []*habit.Habit
			habits, actionErr = db.LoadHabits()
			if actionErr == nil {
				renderStreaks(out, habits, habit.Today())
			}
		case menuDelete:
			actionErr = menuDeleteHabit(out, db)
		case menuExit:
			fmt.Fprintln(out, "\n<<<< Keep up the good habits! See you soon! >>>>")
			return nil
		}

		switch {
		case actionErr == nil:
		case errors.Is(actionErr, huh.ErrUserAborted):
			// Back to the menu.
		default:
			fmt.Fprintln(out, "error:", actionErr)
		}
	}
}

func menuAddHabit(w io.Writer, db *store.DB) error {
	var name string
	periodicity := habit.Periodicity(cfg.DefaultPeriodicity)

	options := make([]huh.Option[habit.Periodicity], 0, len(habit.Periodicities))
	for _, p := range habit.Periodicities {
		options = append(options, huh.NewOption(string(p), p))
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Habit name").
			Value(&name).
			Validate(func(s string) error { return validateNewHabitName(db, s) }),
		huh.NewSelect[habit.Periodicity]().
			Title("Periodicity").
			Options(options...).
			Value(&periodicity),
	))
	if err := form.Run(); err != nil {
		return err
	}

	return addHabit(w, db, name, periodicity, habit.Today())
}

// validateNewHabitName rejects blank names and names already in use.
func validateNewHabitName(db *store.DB, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("name cannot be empty")
	}
	_, err := db.FindHabitByName(name)
	switch {
	case err == nil:
		return store.ErrDuplicateName
	case errors.Is(err, store.ErrNotFound):
		return nil
	default:
		return err
	}
}

func addHabit(w io.Writer, db *store.DB, name string, p habit.Periodicity, start time.Time) error {
	h, err := db.CreateHabit(strings.TrimSpace(name), p, start)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Habit '%s' added successfully.\n", h.Name())
	return nil
}

func menuCompleteHabit(w io.Writer, db *store.DB) error {
	h, err := pickHabit(db, "Habit to complete")
	if err != nil || h == nil {
		if err == nil {
			fmt.Fprintln(w, "No habits available.")
		}
		return err
	}

	return completeHabit(w, db, h, habit.Today())
}

func completeHabit(w io.Writer, db *store.DB, h *habit.Habit, day time.Time) error {
	day, err := db.SaveCompletion(h.ID(), day)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Habit '%s' marked as completed on %s.\n", h.Name(), day.Format(habit.DateLayout))
	return nil
}

func menuDeleteHabit(w io.Writer, db *store.DB) error {
	h, err := pickHabit(db, "Habit to delete")
	if err != nil || h == nil {
		if err == nil {
			fmt.Fprintln(w, "No habits to delete.")
		}
		return err
	}

	confirmed := false
	confirm := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf("Delete '%s' and all %d completions?", h.Name(), h.CompletionCount())).
			Affirmative("Delete").
			Negative("Cancel").
			Value(&confirmed),
	))
	if err := confirm.Run(); err != nil {
		return err
	}
	if !confirmed {
		return nil
	}
	return deleteHabit(w, db, h)
}

func deleteHabit(w io.Writer, db *store.DB, h *habit.Habit) error {
	if err := db.DeleteHabit(h.ID()); err != nil {
		return err
	}
	fmt.Fprintf(w, "Habit '%s' deleted successfully.\n", h.Name())
	return nil
}

// pickHabit asks the user to choose one of the stored habits. It returns nil
// without error when there are no habits.
func pickHabit(db *store.DB, title string) (*habit.Habit, error) {
	habits, err := db.LoadHabits()
	if err != nil {
		return nil, err
	}
	if len(habits) == 0 {
		return nil, nil
	}

	options := make([]huh.Option[int], 0, len(habits))
	for i, h := range habits {
		options = append(options, huh.NewOption(fmt.Sprintf("%d. %s", h.ID(), h.Name()), i))
	}

	var picked int
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[int]().Title(title).Options(options...).Value(&picked),
	))
	if err := form.Run(); err != nil {
		return nil, err
	}
	return habits[picked], nil
}
