package app

import (
	"fmt"
	"strconv"

	"github.com/blackwell-systems/habitual/internal/habit"
	"github.com/blackwell-systems/habitual/internal/output"
	"github.com/spf13/cobra"
)

var listPeriodicity string

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List habits",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

func init() {
	listCmd.Flags().StringVarP(&listPeriodicity, "periodicity", "p", "", "Only list habits with this periodicity")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	habits, err := db.LoadHabits()
	if err != nil {
		return fmt.Errorf("loading habits: %w", err)
	}

	if listPeriodicity != "" {
		p, err := habit.ParsePeriodicity(listPeriodicity)
		if err != nil {
			return err
		}
		habits = filterByPeriodicity(habits, p)
	}

	out := cmd.OutOrStdout()
	if flagJSON {
		views := make([]habitView, 0, len(habits))
		for _, h := range habits {
			views = append(views, newHabitView(h))
		}
		return writeJSON(out, views)
	}

	if len(habits) == 0 {
		fmt.Fprintln(out, "No habits available. Use 'habitual add <name>' to register one.")
		return nil
	}

	tbl := output.NewTable("ID", "Name", "Periodicity", "Start", "Completions")
	for _, h := range habits {
		tbl.AddRow(
			strconv.FormatInt(h.ID(), 10),
			h.Name(),
			string(h.Periodicity()),
			h.StartDate().Format(habit.DateLayout),
			strconv.Itoa(h.CompletionCount()),
		)
	}
	tbl.Fprint(out)
	return nil
}

func filterByPeriodicity(habits []*habit.Habit, p habit.Periodicity) []*habit.Habit {
	var out []*habit.Habit
	for _, h := range habits {
		if h.Periodicity() == p {
			out = append(out, h)
		}
	}
	return out
}
