package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset <name|id>",
	Short: "Clear every completion of a habit",
	Args:  cobra.ExactArgs(1),
	RunE:  runReset,
}

func init() {
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	h, err := resolveHabit(db, args[0])
	if err != nil {
		return err
	}
	if err := db.ResetCompletions(h.ID()); err != nil {
		return fmt.Errorf("resetting %q: %w", h.Name(), err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Habit '%s' reset (%d completions cleared).\n", h.Name(), h.CompletionCount())
	return nil
}
