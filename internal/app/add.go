package app

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/habitual/internal/habit"
	"github.com/spf13/cobra"
)

var (
	addPeriodicity string
	addStart       string
)

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Register a new habit",
	Long: `Register a new habit with a daily or weekly periodicity. Habit names are
unique, ignoring case.

Examples:
  habitual add "Skin Rutin" --periodicity daily
  habitual add "Work Out" -p weekly --start 2026-01-01`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addPeriodicity, "periodicity", "p", "", "daily or weekly (default from config)")
	addCmd.Flags().StringVar(&addStart, "start", "", "Start date YYYY-MM-DD (default: today)")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		return fmt.Errorf("habit name cannot be empty")
	}

	raw := addPeriodicity
	if raw == "" {
		raw = cfg.DefaultPeriodicity
	}
	periodicity, err := habit.ParsePeriodicity(raw)
	if err != nil {
		return err
	}

	start, err := parseDay(addStart)
	if err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	h, err := db.CreateHabit(name, periodicity, start)
	if err != nil {
		return fmt.Errorf("adding habit: %w", err)
	}

	if flagJSON {
		return writeJSON(cmd.OutOrStdout(), newHabitView(h))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Habit '%s' added successfully (id %d, %s).\n", h.Name(), h.ID(), h.Periodicity())
	return nil
}
