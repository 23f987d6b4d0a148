package cmd

import (
	"fmt"

	"github.com/abhisek/focusbar/internal/gamification"
	"github.com/abhisek/focusbar/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show focus statistics",
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

		ctx := cmd.Context()
		repos := st.Repos()

		prog, err := repos.Progress.Get(ctx)
		if err != nil {
			return err
		}
		level := gamification.LevelForXP(prog.XP)
		next := gamification.XPForNextLevel(prog.XP)

		fmt.Printf("Level %d — %s\n", level.Level, level.Title)
		fmt.Printf("XP: %d (next level at %d)\n", prog.XP, next)
		fmt.Printf("Streak: %d days (%d freezes left)\n", prog.CurrentStreak, prog.FreezesRemaining)

		unlocked, err := repos.Achievements.UnlockedSet(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Achievements: %d / %d\n", len(unlocked), len(gamification.Catalog))

		days, err := repos.Stats.All(ctx)
		if err != nil {
			return err
		}
		if len(days) == 0 {
			fmt.Println("No sessions recorded yet.")
			return nil
		}

		fmt.Println()
		start := len(days) - 7
		if start < 0 {
			start = 0
		}
		for i := len(days) - 1; i >= start; i-- {
			d := days[i]
			mark := " "
			if d.StreakMaintained {
				mark = "*"
			}
			fmt.Printf("%s %s  %2d pomodoros  %3d min  %4d XP\n",
				d.Date, mark, d.PomodorosCompleted, d.TotalFocusMinutes, d.XPEarned)
		}
		return nil
	},
}
