package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/synthgen/internal/store"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Inspect generation run history",
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent generation runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		runs, err := s.RunRepo().ListRuns(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("list runs: %w", err)
		}
		printRuns(cmd.OutOrStdout(), runs)
		return nil
	},
}

var runsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a generation run and its LLM calls",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		run, err := s.RunRepo().GetRun(ctx, args[0])
		if err != nil {
			return fmt.Errorf("get run: %w", err)
		}
		if run == nil {
			return fmt.Errorf("run %s not found", args[0])
		}

		events, err := s.EventRepo().QueryLLMEvents(ctx, store.QueryOpts{RunID: run.ID})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		printRun(cmd.OutOrStdout(), run, events)
		return nil
	},
}

func printRuns(w io.Writer, runs []store.Run) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		return
	}

	fmt.Fprintf(w, "%-8s  %-19s  %-9s  %-22s  %-28s  %s\n",
		"ID", "Started", "Status", "Use case", "Model", "Records")
	fmt.Fprintln(w, strings.Repeat("─", 104))
	for _, r := range runs {
		fmt.Fprintf(w, "%-8s  %-19s  %-9s  %-22s  %-28s  %d/%d\n",
			truncate(r.ID, 8),
			r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			r.Status,
			truncate(r.UseCase, 22),
			truncate(r.Model, 28),
			r.Records, r.SampleSize,
		)
	}
}

func printRun(w io.Writer, r *store.Run, events []store.LLMRequestEvent) {
	fmt.Fprintf(w, "ID:        %s\n", r.ID)
	fmt.Fprintf(w, "Started:   %s\n", r.StartedAt.Local().Format("2006-01-02 15:04:05"))
	if !r.FinishedAt.IsZero() {
		fmt.Fprintf(w, "Finished:  %s (%s)\n",
			r.FinishedAt.Local().Format("2006-01-02 15:04:05"),
			r.FinishedAt.Sub(r.StartedAt).Round(time.Millisecond))
	}
	fmt.Fprintf(w, "Status:    %s\n", r.Status)
	fmt.Fprintf(w, "Use case:  %s\n", r.UseCase)
	fmt.Fprintf(w, "Labels:    %s\n", strings.Join(r.Labels, ", "))
	fmt.Fprintf(w, "Model:     %s\n", r.Model)
	fmt.Fprintf(w, "Records:   %d of %d (batch size %d)\n", r.Records, r.SampleSize, r.BatchSize)
	if r.OutputPath != "" {
		fmt.Fprintf(w, "Output:    %s\n", r.OutputPath)
	}
	if r.ErrorMessage != "" {
		fmt.Fprintf(w, "Error:     %s\n", r.ErrorMessage)
	}

	if len(events) == 0 {
		return
	}

	var in, out int
	var failed int
	for _, e := range events {
		in += e.InputTokens
		out += e.OutputTokens
		if !e.Success {
			failed++
		}
	}
	fmt.Fprintf(w, "LLM calls: %d (%d failed), %d in / %d out tokens\n", len(events), failed, in, out)
}

func init() {
	runsListCmd.Flags().IntP("limit", "n", 20, "Number of runs to show")

	runsCmd.AddCommand(runsListCmd)
	runsCmd.AddCommand(runsShowCmd)
}
