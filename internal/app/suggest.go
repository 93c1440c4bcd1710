package app

import (
	"fmt"

	"github.com/blackwell-systems/habitual/internal/output"
	"github.com/blackwell-systems/habitual/internal/suggest"
	"github.com/spf13/cobra"
)

var (
	suggestLimit int
	suggestToday string
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Rank habits that need attention",
	Long: `Examine every habit's streaks and list what to act on first: streaks
that lapse unless completed today, lapsed habits worth restarting, habits
that were never completed, and live streaks close to a personal best.`,
	Args: cobra.NoArgs,
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().IntVar(&suggestLimit, "limit", 10, "Maximum number of suggestions to show (0 = all)")
	suggestCmd.Flags().StringVar(&suggestToday, "today", "", "Reference date YYYY-MM-DD (default: today)")
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	today, err := parseDay(suggestToday)
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

	suggestions := suggest.NewEngine().Run(suggest.BuildContext(habits, today))
	if suggestLimit > 0 && len(suggestions) > suggestLimit {
		suggestions = suggestions[:suggestLimit]
	}

	out := cmd.OutOrStdout()
	if flagJSON {
		if suggestions == nil {
			suggestions = []suggest.Suggestion{}
		}
		return writeJSON(out, suggestions)
	}

	if len(suggestions) == 0 {
		fmt.Fprintln(out, "Nothing needs attention. Keep it up!")
		return nil
	}

	fmt.Fprintln(out, output.Section("Suggestions", cfg.Output.Width))
	for i, s := range suggestions {
		fmt.Fprintf(out, "\n %d. %s %s\n", i+1, priorityLabel(s.Priority), output.StyleBold.Render(s.Title))
		fmt.Fprintf(out, "    %s\n", output.StyleMuted.Render(s.Description))
	}
	fmt.Fprintln(out)
	return nil
}

func priorityLabel(p int) string {
	switch p {
	case suggest.PriorityCritical:
		return output.StyleError.Render("[now]")
	case suggest.PriorityHigh:
		return output.StyleWarning.Render("[high]")
	case suggest.PriorityMedium:
		return "[medium]"
	default:
		return output.StyleMuted.Render("[low]")
	}
}
