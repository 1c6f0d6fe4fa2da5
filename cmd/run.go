package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/abhisek/timesmaster/internal/app"
	"github.com/abhisek/timesmaster/internal/config"
	"github.com/abhisek/timesmaster/internal/engine"
	"github.com/abhisek/timesmaster/internal/screen"
	"github.com/abhisek/timesmaster/internal/store"
)

// runApp opens the store, builds the engine, and launches the TUI.
func runApp(ctx context.Context) error {
	logger, closer, err := cfg.OpenLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	st, err := store.OpenMemory()
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eng, err := newEngine(cfg, st, logger)
	if err != nil {
		return err
	}

	env := screen.NewEnv(eng, screen.Timing{
		Correct:   cfg.CorrectDelay,
		Incorrect: cfg.IncorrectDelay,
		DontKnow:  cfg.DontKnowDelay,
		Badge:     cfg.BadgeDuration,
	}, logger)

	err = app.Run(ctx, env, app.Options{SkipWelcome: cfg.NoWelcome})
	eng.Finish()
	return err
}

// newEngine builds an engine for c that records its events into st.
func newEngine(c config.Config, st *store.Store, logger *slog.Logger, extra ...engine.Option) (*engine.Engine, error) {
	mode, err := c.Mode()
	if err != nil {
		return nil, err
	}

	opts := []engine.Option{
		engine.WithDifficulty(mode, c.Tables),
		engine.WithEventRepo(st.EventRepo()),
		engine.WithLogger(logger),
	}
	if c.Seed != 0 {
		opts = append(opts, engine.WithRand(rand.New(rand.NewPCG(c.Seed, c.Seed))))
	}
	opts = append(opts, extra...)

	eng, err := engine.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("create engine: %w", err)
	}
	return eng, nil
}
