package app

import (
	"fmt"

	"github.com/blackwell-systems/habitual/internal/habit"
	"github.com/blackwell-systems/habitual/internal/store"
	"github.com/spf13/cobra"
)

var (
	editName        string
	editPeriodicity string
)

var editCmd = &cobra.Command{
	Use:   "edit <name|id>",
	Short: "Rename a habit or change its periodicity",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

func init() {
	editCmd.Flags().StringVar(&editName, "name", "", "New habit name")
	editCmd.Flags().StringVarP(&editPeriodicity, "periodicity", "p", "", "New periodicity (daily or weekly)")
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	if editName == "" && editPeriodicity == "" {
		return fmt.Errorf("nothing to change; use --name and/or --periodicity")
	}

	upd := store.HabitUpdate{Name: editName}
	if editPeriodicity != "" {
		p, err := habit.ParsePeriodicity(editPeriodicity)
		if err != nil {
			return err
		}
		upd.Periodicity = p
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
	if err := db.UpdateHabit(h.ID(), upd); err != nil {
		return fmt.Errorf("updating %q: %w", h.Name(), err)
	}

	updated, err := db.GetHabit(h.ID())
	if err != nil {
		return err
	}
	if flagJSON {
		return writeJSON(cmd.OutOrStdout(), newHabitView(updated))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Habit '%s' updated: %s\n", h.Name(), updated)
	return nil
}
