package app

import (
	"fmt"

	"github.com/blackwell-systems/habitual/internal/analyzer"
	"github.com/blackwell-systems/habitual/internal/habit"
	"github.com/spf13/cobra"
)

var completeDate string

var completeCmd = &cobra.Command{
	Use:   "complete <name|id>",
	Short: "Mark a habit as completed",
	Long: `Mark a habit as completed for today or for the day given with --date.
Completing the same day twice has no additional effect.

Examples:
  habitual complete "Skin Rutin"
  habitual complete 3 --date 2026-01-14`,
	Args: cobra.ExactArgs(1),
	RunE: runComplete,
}

func init() {
	completeCmd.Flags().StringVar(&completeDate, "date", "", "Completion date YYYY-MM-DD (default: today)")
	rootCmd.AddCommand(completeCmd)
}

func runComplete(cmd *cobra.Command, args []string) error {
	day, err := parseDay(completeDate)
	if err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	h, err := resolveHabit(db, args[0])
	if err != nil {
		return err
	}

	if _, err := db.SaveCompletion(h.ID(), day); err != nil {
		return fmt.Errorf("completing %q: %w", h.Name(), err)
	}
	// Reflect the new completion locally for the streak line below.
	if err := h.Complete(day); err != nil {
		return err
	}

	today := habit.Today()
	if flagJSON {
		return writeJSON(cmd.OutOrStdout(), analyzer.HabitStreaks([]*habit.Habit{h}, today)[0])
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Habit '%s' marked as completed on %s. Current streak: %d\n",
		h.Name(), day.Format(habit.DateLayout), analyzer.CurrentStreak(h, today))
	return nil
}
