package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <name|id>",
	Aliases: []string{"rm"},
	Short:   "Delete a habit and all of its completions",
	Args:    cobra.ExactArgs(1),
	RunE:    runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	h, err := resolveHabit(db, args[0])
	if err != nil {
		return err
	}
	if err := db.DeleteHabit(h.ID()); err != nil {
		return fmt.Errorf("deleting %q: %w", h.Name(), err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Habit '%s' deleted successfully.\n", h.Name())
	return nil
}
