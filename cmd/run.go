package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/synthgen/internal/config"
	"github.com/abhisek/synthgen/internal/generate"
	"github.com/abhisek/synthgen/internal/screens/generation"
	"github.com/abhisek/synthgen/internal/store"
)

// runEnv holds what a generation needs beyond its config: settings, the
// file logger and the store for run history and the LLM event log.
type runEnv struct {
	settings config.Settings
	logger   *slog.Logger
	store    *store.Store
	logFile  *os.File
}

// openRunEnv loads settings, opens the log file and the store.
func openRunEnv(cmd *cobra.Command) (*runEnv, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, &ExitError{Code: ExitInvalid, Err: fmt.Errorf("load settings: %w", err)}
	}

	rt := &runEnv{settings: settings}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if err := rt.openLog(verbose); err != nil {
		return nil, err
	}

	st, err := openStoreAt(cmd, settings.DBPath)
	if err != nil {
		rt.Close()
		return nil, err
	}
	rt.store = st
	return rt, nil
}

// openLog sends slog output to the log file so it never mixes with the
// terminal UI.
func (rt *runEnv) openLog(verbose bool) error {
	path, err := rt.settings.DefaultLogPath()
	if err != nil {
		return fmt.Errorf("resolve log path: %w", err)
	}
	if err := store.EnsureDir(path); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	rt.logFile = f
	rt.logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return nil
}

// Close releases the store and the log file.
func (rt *runEnv) Close() {
	if rt.store != nil {
		rt.store.Close()
	}
	if rt.logFile != nil {
		rt.logFile.Close()
	}
}

// runner returns a generation.Runner that builds a fresh engine per run,
// wired to the configured backend, run history and log.
func (rt *runEnv) runner() generation.Runner {
	connect := generate.DefaultConnector(rt.settings, rt.store.EventRepo(), rt.logger)
	return func(ctx context.Context, cfg config.GenerationConfig, progress func(generate.Progress)) (*generate.Result, error) {
		eng := generate.New(connect, generate.Deps{
			Rand:     generate.NewRand(rt.settings.Seed),
			Logger:   rt.logger,
			Progress: progress,
			Runs:     rt.store.RunRepo(),
		})
		return eng.Run(ctx, cfg)
	}
}
