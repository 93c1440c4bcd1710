// Package app contains the Cobra command tree for habitual.
package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/blackwell-systems/habitual/internal/config"
	"github.com/blackwell-systems/habitual/internal/output"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
	flagConfig  string
	flagDB      string
)

// cfg is loaded once per invocation by the root PersistentPreRunE.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "habitual",
	Short: "Track daily and weekly habits and their streaks",
	Long: `habitual keeps a local record of the habits you want to build, the days
you completed them, and how long your streaks are.

Run 'habitual' with no arguments in a terminal to open the interactive menu.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		if isatty.IsTerminal(os.Stdin.Fd()) && !flagJSON {
			return runMenu(cmd, args)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "habitual", appVersion)
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Use a subcommand:")
		fmt.Fprintln(out, "  add       Register a new habit")
		fmt.Fprintln(out, "  complete  Mark a habit as completed")
		fmt.Fprintln(out, "  list      List habits")
		fmt.Fprintln(out, "  streaks   Show streak analytics")
		fmt.Fprintln(out, "  edit      Rename a habit or change its periodicity")
		fmt.Fprintln(out, "  reset     Clear a habit's completions")
		fmt.Fprintln(out, "  delete    Delete a habit and its completions")
		fmt.Fprintln(out, "  track     Snapshot streaks and compare over time")
		fmt.Fprintln(out, "  suggest   Rank habits that need attention")
		fmt.Fprintln(out, "  menu      Interactive menu")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/habitual/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Database path (overrides db_path from config)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")
}

// setup loads configuration and configures logging and color for every command.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if flagDB != "" {
		cfg.DBPath = flagDB
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	if flagVerbose {
		level = slog.LevelDebug
	}
	setupLogging(cmd.ErrOrStderr(), level)

	output.SetNoColor(flagNoColor || !cfg.Output.Color || !isatty.IsTerminal(os.Stdout.Fd()))
	return nil
}
