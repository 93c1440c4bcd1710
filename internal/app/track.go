package app

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/blackwell-systems/habitual/internal/analyzer"
	"github.com/blackwell-systems/habitual/internal/habit"
	"github.com/blackwell-systems/habitual/internal/output"
	"github.com/blackwell-systems/habitual/internal/store"
	"github.com/spf13/cobra"
)

var (
	trackCompare int
	trackToday   string
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Snapshot streaks and compare over time",
	Long: `Compute every habit's streaks, store them as a new snapshot, and compare
against a previous snapshot to show deltas with trend arrows.`,
	Args: cobra.NoArgs,
	RunE: runTrack,
}

func init() {
	trackCmd.Flags().IntVar(&trackCompare, "compare", 1, "Compare against Nth previous snapshot (1 = most recent)")
	trackCmd.Flags().StringVar(&trackToday, "today", "", "Reference date YYYY-MM-DD for current streaks (default: today)")
	rootCmd.AddCommand(trackCmd)
}

func runTrack(cmd *cobra.Command, args []string) error {
	if trackCompare < 1 {
		return fmt.Errorf("--compare must be at least 1")
	}
	today, err := parseDay(trackToday)
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

	current, err := recordSnapshot(db, habits, today)
	if err != nil {
		return err
	}

	// The snapshot just taken is #1, so the Nth previous one is N+1.
	previous, err := db.GetSnapshotN(trackCompare + 1)
	if err != nil {
		return fmt.Errorf("loading previous snapshot: %w", err)
	}

	out := cmd.OutOrStdout()
	if previous == nil {
		if flagJSON {
			return writeJSON(out, &store.SnapshotDiff{Current: current})
		}
		fmt.Fprintf(out, "Snapshot #%d recorded for %d habits. Run 'habitual track' again later to see trends.\n",
			current.ID, len(habits))
		return nil
	}

	diff, err := db.DiffSnapshots(previous, current)
	if err != nil {
		return fmt.Errorf("comparing snapshots: %w", err)
	}
	if flagJSON {
		return writeJSON(out, diff)
	}
	renderDiff(out, diff)
	return nil
}

// recordSnapshot stores the streaks of every habit as a new snapshot.
func recordSnapshot(db *store.DB, habits []*habit.Habit, today time.Time) (*store.Snapshot, error) {
	var streaks []store.SnapshotStreak
	for _, s := range analyzer.HabitStreaks(habits, today) {
		streaks = append(streaks, store.SnapshotStreak{
			HabitName:     s.Name,
			Periodicity:   string(s.Periodicity),
			Completions:   s.Completions,
			CurrentStreak: s.CurrentStreak,
			LongestStreak: s.LongestStreak,
		})
	}

	snap, err := db.SaveSnapshot(today.Format(habit.DateLayout), appVersion, streaks)
	if err != nil {
		return nil, fmt.Errorf("saving snapshot: %w", err)
	}
	return snap, nil
}

func renderDiff(w io.Writer, diff *store.SnapshotDiff) {
	fmt.Fprintln(w, output.Section(fmt.Sprintf("Streaks since %s", diff.Previous.Today), cfg.Output.Width))
	fmt.Fprintln(w)

	if len(diff.Deltas) == 0 {
		fmt.Fprintln(w, " No habits to compare.")
		return
	}

	tbl := output.NewTable("Habit", "Current", "Change", "Longest", "Change")
	for _, d := range diff.Deltas {
		currentChange := output.TrendArrow(d.CurrentDelta)
		longestChange := output.TrendArrow(d.LongestDelta)
		if d.New {
			currentChange = output.StyleMuted.Render("new")
			longestChange = currentChange
		}
		tbl.AddRow(d.HabitName,
			strconv.Itoa(d.Current), currentChange,
			strconv.Itoa(d.Longest), longestChange)
	}
	tbl.Fprint(w)
}
