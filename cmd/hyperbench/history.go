package main

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"hyperbench/internal/benchmark"
	"hyperbench/internal/history"
	"hyperbench/internal/telemetry"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	newStoreFunc = func(cfg history.StoreConfig) (history.Store, error) { return history.NewStore(cfg) }
	nowFunc      = time.Now

	// historyExecCommand allows mocking git in tests.
	historyExecCommand = exec.Command
)

func openStore() (history.Store, error) {
	cfg := history.StoreConfig{
		Type:             viper.GetString("history.type"),
		ConnectionString: viper.GetString("history.dsn"),
	}
	store, err := newStoreFunc(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open history: %w", err)
	}
	return store, nil
}

func newHistoryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Keep benchmark runs and export them later",
	}
	cmd.PersistentFlags().String("store", "", "History backend (sqlite, postgres, json)")
	cmd.PersistentFlags().String("dsn", "", "History location: file path or Postgres DSN")
	viper.BindPFlag("history.type", cmd.PersistentFlags().Lookup("store"))
	viper.BindPFlag("history.dsn", cmd.PersistentFlags().Lookup("dsn"))

	cmd.AddCommand(newHistorySaveCmd(), newHistoryListCmd(), newHistoryExportCmd(a))
	return cmd
}

func newHistorySaveCmd() *cobra.Command {
	var commit string

	cmd := &cobra.Command{
		Use:   "save RESULTS.json...",
		Short: "Store a result set as a new run",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := loadInputs(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			if commit == "" {
				if c, err := getGitCommit(); err == nil {
					commit = c
				} else {
					telemetry.LogDebug("No git commit recorded", "error", err)
				}
			}

			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			id, err := store.SaveRun(benchmark.Run{Timestamp: nowFunc(), Commit: commit, Results: results})
			if err != nil {
				return fmt.Errorf("failed to save run: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved run %d with %d results\n", id, len(results))
			return nil
		},
	}

	cmd.Flags().StringVar(&commit, "commit", "", "Commit to record (default: current git HEAD)")
	return cmd
}

func newHistoryListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.ListRuns(limit)
			if err != nil {
				return fmt.Errorf("failed to list runs: %w", err)
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No runs saved.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "ID\tTIMESTAMP\tCOMMIT\tCOMMANDS\tFASTEST")
			for _, run := range runs {
				fastest := "-"
				if e, ok := benchmark.Fastest(benchmark.ComputeRelative(run.Results)); ok {
					fastest = e.Result.Command
				}
				commit := run.Commit
				if commit == "" {
					commit = "-"
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n",
					run.ID, run.Timestamp.UTC().Format(time.RFC3339), commit, len(run.Results), fastest)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to list (0 for all)")
	return cmd
}

func newHistoryExportCmd(a *app) *cobra.Command {
	var flags exportFlags

	cmd := &cobra.Command{
		Use:   "export [ID|latest]",
		Short: "Export a stored run",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := "latest"
			if len(args) == 1 {
				ref = args[0]
			}

			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			run, err := lookupRun(store, ref)
			if err != nil {
				return err
			}
			return flags.write(a, run.Results, cmd.OutOrStdout())
		},
	}

	flags = addExportFlags(cmd)
	return cmd
}

func lookupRun(store history.Store, ref string) (*benchmark.Run, error) {
	if ref == "latest" {
		run, err := store.LatestRun()
		if err != nil {
			return nil, fmt.Errorf("failed to load latest run: %w", err)
		}
		if run == nil {
			return nil, fmt.Errorf("no runs saved: %w", history.ErrRunNotFound)
		}
		return run, nil
	}

	id, err := strconv.ParseInt(ref, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid run id %q: expected a number or \"latest\"", ref)
	}
	return store.GetRun(id)
}

func getGitCommit() (string, error) {
	cmd := historyExecCommand("git", "rev-parse", "--short", "HEAD")
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
