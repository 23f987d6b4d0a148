package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/abhisek/focusbar/internal/app"
	"github.com/abhisek/focusbar/internal/config"
	"github.com/abhisek/focusbar/internal/notify"
	"github.com/abhisek/focusbar/internal/orchestrator"
	"github.com/abhisek/focusbar/internal/reminders"
	"github.com/abhisek/focusbar/internal/store"
	"github.com/abhisek/focusbar/internal/timer"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg := config.FromEnv()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
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

	log := newLogger(cfg)

	sk, prog, froze, err := orchestrator.Load(ctx, cfg, st, log)
	if err != nil {
		return fmt.Errorf("load progress: %w", err)
	}

	engine := timer.New(cfg)
	orch := orchestrator.New(&cfg, engine, sk, st, notify.NewDesktop(), log)
	if froze {
		orch.MarkFreezeUsed()
	}

	deps := app.Deps{
		Config:        &cfg,
		Engine:        engine,
		Orchestrator:  orch,
		Repos:         st.Repos(),
		Tasks:         reminders.New(st.Repos().Reminders),
		InitialLevel:  prog.Level,
		InitialStreak: prog.CurrentStreak,
	}
	return app.Run(deps)
}

// newLogger builds the process logger. The TUI owns the terminal, so
// logs go to stderr only in debug mode and are discarded otherwise.
func newLogger(cfg config.Config) *slog.Logger {
	if cfg.Debug {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
