package app

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/blackwell-systems/habitual/internal/analyzer"
	"github.com/blackwell-systems/habitual/internal/habit"
	"github.com/blackwell-systems/habitual/internal/output"
	"github.com/spf13/cobra"
)

var streaksToday string

var streaksCmd = &cobra.Command{
	Use:     "streaks",
	Aliases: []string{"analytics"},
	Short:   "Show streak analytics",
	Long: `Show the current and longest streak of every habit, the best habit per
periodicity and the longest streak overall.

A daily habit keeps its current streak while it was completed today or
yesterday; a weekly habit while it was completed within the last 7 days.
Use --today to evaluate current streaks as of another date.`,
	Args: cobra.NoArgs,
	RunE: runStreaks,
}

func init() {
	streaksCmd.Flags().StringVar(&streaksToday, "today", "", "Reference date YYYY-MM-DD for current streaks (default: today)")
	rootCmd.AddCommand(streaksCmd)
}

func runStreaks(cmd *cobra.Command, args []string) error {
	today, err := parseDay(streaksToday)
	if err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	habits, err := db.LoadHabits()
	if err != nil {
		return fmt.Errorf("loading habits: %w", err)
	}

	if flagJSON {
		return writeJSON(cmd.OutOrStdout(), analyzer.Analyze(habits, today))
	}
	renderStreaks(cmd.OutOrStdout(), habits, today)
	return nil
}

// renderStreaks prints the analytics overview for habits as of today.
func renderStreaks(w io.Writer, habits []*habit.Habit, today time.Time) {
	if len(habits) == 0 {
		fmt.Fprintln(w, "No habits available.")
		return
	}

	report := analyzer.Analyze(habits, today)

	fmt.Fprintln(w, output.Section("Habit Overview", cfg.Output.Width))
	fmt.Fprintln(w)
	tbl := output.NewTable("Name", "Periodicity", "Current Streak", "Longest", "Progress")
	for _, s := range report.Streaks {
		tbl.AddRow(
			s.Name,
			string(s.Periodicity),
			output.StreakValue(s.CurrentStreak),
			strconv.Itoa(s.LongestStreak),
			output.StreakBar(s.CurrentStreak, s.LongestStreak, cfg.Output.BarWidth),
		)
	}
	tbl.Fprint(w)

	fmt.Fprintln(w, output.Section("Longest Streak By Periodicity", cfg.Output.Width))
	fmt.Fprintln(w)
	for _, best := range report.ByPeriodicity {
		fmt.Fprintf(w, " %s %s (%d)\n", output.StyleLabel.Render(string(best.Periodicity)+":"), best.Name, best.Streak)
	}

	fmt.Fprintln(w, output.Section("Longest Streak Overall", cfg.Output.Width))
	fmt.Fprintln(w)
	fmt.Fprintf(w, " %s → %s\n",
		strings.Join(report.Overall.Names, ", "),
		output.StyleBold.Render(strconv.Itoa(report.Overall.Streak)))
	fmt.Fprintln(w)
	fmt.Fprintln(w, output.StyleMuted.Render(" as of "+report.Today))
}
