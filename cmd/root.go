package cmd

import (
	"github.com/abhisek/focusbar/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "focusbar",
	Short: "Pomodoro timer with streaks, XP and achievements",
	Long:  "FocusBar — a terminal Pomodoro timer that turns focus time into XP, levels, streaks and achievements.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides FOCUSBAR_DB env var)")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(coachCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then FOCUSBAR_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
