package cmd

import (
	"fmt"

	"github.com/abhisek/focusbar/internal/config"
	"github.com/abhisek/focusbar/internal/export"
	"github.com/abhisek/focusbar/internal/store"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export all data as JSON",
	Long:  "Export sessions, achievements, daily stats and preferences as a single schema-validated JSON document.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		repos := st.Repos()
		exp := export.New(export.Source{
			Sessions:     repos.Sessions,
			Achievements: repos.Achievements,
			Stats:        repos.Stats,
			Progress:     repos.Progress,
		}, config.FromEnv())

		path := exp.DefaultFilename()
		if len(args) == 1 {
			path = args[0]
		}

		if err := exp.WriteFile(cmd.Context(), path); err != nil {
			return err
		}
		fmt.Println("Exported to", path)
		return nil
	},
}
