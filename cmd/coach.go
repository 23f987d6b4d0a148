package cmd

import (
	"fmt"

	"github.com/abhisek/focusbar/internal/coach"
	"github.com/abhisek/focusbar/internal/llm"
	"github.com/abhisek/focusbar/internal/store"
	"github.com/spf13/cobra"
)

var coachCmd = &cobra.Command{
	Use:   "coach",
	Short: "Get an AI recap of your focus week",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		llmCfg := llm.ConfigFromEnv()
		if err := llmCfg.Validate(); err != nil {
			discovered, ok := llm.DiscoverConfig()
			if !ok {
				return fmt.Errorf("no LLM provider configured: %w", err)
			}
			llmCfg = discovered
		}

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
		provider, err := llm.NewProvider(ctx, llmCfg, repos.Events)
		if err != nil {
			return fmt.Errorf("create provider: %w", err)
		}

		recap, err := coach.New(provider, repos.Stats).WeeklyRecap(ctx)
		if err != nil {
			return err
		}

		fmt.Println(recap.Headline)
		fmt.Println()
		fmt.Println(recap.Body)
		if recap.Suggestion != "" {
			fmt.Println()
			fmt.Println("Try this:", recap.Suggestion)
		}
		return nil
	},
}
