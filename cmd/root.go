package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/synthgen/internal/config"
	"github.com/abhisek/synthgen/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "synthgen",
	Short: "Synthetic labeled text data generation",
	Long: "Synthgen builds a generation config through an interactive wizard (or flags) " +
		"and asks a language model for labeled samples, written to a CSV file batch by batch.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, &genFlags)
	},
}

// Execute runs the root command. Cancelling ctx stops a running generation.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SYNTH_DB env var)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log at debug level")

	registerGenerateFlags(rootCmd, &genFlags)

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then envPath (SYNTH_DB), then the default XDG path.
func resolveDBPath(cmd *cobra.Command, envPath string) (string, error) {
	p, _ := cmd.Flags().GetString("db")
	if p == "" {
		p = envPath
	}
	if p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore loads settings and opens the database they select.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, &ExitError{Code: ExitInvalid, Err: fmt.Errorf("load settings: %w", err)}
	}
	return openStoreAt(cmd, settings.DBPath)
}

func openStoreAt(cmd *cobra.Command, envPath string) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd, envPath)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}
