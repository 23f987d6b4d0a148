package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all focus data",
	Long:  "Delete the local database: sessions, XP, streaks, achievements and tasks. This cannot be undone.",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Printf("This deletes %s and all progress. Re-run with --yes to confirm.\n", dbPath)
			return nil
		}

		if err := os.Remove(dbPath); err != nil {
			if os.IsNotExist(err) {
				fmt.Println("Nothing to reset.")
				return nil
			}
			return fmt.Errorf("remove database: %w", err)
		}
		// WAL sidecar files, if present.
		os.Remove(dbPath + "-wal")
		os.Remove(dbPath + "-shm")

		fmt.Println("All data deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}
