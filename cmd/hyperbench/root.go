package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"hyperbench/internal/benchmark"
	"hyperbench/internal/config"
	"hyperbench/internal/telemetry"
	"hyperbench/internal/units"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var exit = os.Exit

// app carries the state shared by one command tree.
type app struct {
	cfgFile  string
	registry *prometheus.Registry
	metrics  *telemetry.Metrics
}

func newApp() *app {
	a := &app{registry: prometheus.NewRegistry()}
	a.metrics = telemetry.NewMetrics(a.registry)
	return a
}

func newRootCmd() *cobra.Command {
	return newApp().rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hyperbench",
		Short: "Compare and export command-line benchmark results",
		Long: `hyperbench turns benchmark results into comparison tables.

Each command is compared against the fastest one, with the measurement
uncertainty propagated into the ratio, and every time in a table shares
one unit.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is ./.hyperbench.yaml)")
	flags.BoolP("verbose", "v", false, "Enable verbose/debug logging")
	flags.StringP("time-unit", "u", "", "Force the time unit for tables (second, millisecond, microsecond)")
	flags.String("log-file", "", "Also write logs to this file")
	flags.String("metrics-push-url", "", "Push export metrics to this Prometheus Pushgateway on exit")

	viper.BindPFlag("verbose", flags.Lookup("verbose"))
	viper.BindPFlag("time_unit", flags.Lookup("time-unit"))
	viper.BindPFlag("log_file", flags.Lookup("log-file"))
	viper.BindPFlag("metrics_push_url", flags.Lookup("metrics-push-url"))

	rootCmd.AddCommand(
		newExportCmd(a),
		newSummaryCmd(a),
		newShowCmd(a),
		newHistoryCmd(a),
		newConfigCmd(a),
	)
	return rootCmd
}

// Execute runs the command tree built from os.Args.
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n=== CRITICAL ERROR: Command Execution Panic ===\n")
			fmt.Fprintf(os.Stderr, "Error: %v\n", r)
			exit(1)
		}
	}()

	a := newApp()
	if err := a.run(a.rootCmd()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}
}

func (a *app) initConfig() error {
	if err := config.Load(a.cfgFile); err != nil {
		return err
	}
	if err := config.ValidateConfig(); err != nil {
		return err
	}

	settings := config.Current()
	telemetry.InitLogger(settings.Verbose, settings.LogFile)
	return nil
}

// run executes cmd and then pushes the collected metrics, so failed
// exports are reported too. A push failure is logged, not returned.
func (a *app) run(cmd *cobra.Command) error {
	err := cmd.Execute()

	if pushURL := viper.GetString("metrics_push_url"); pushURL != "" {
		if perr := telemetry.PushMetrics(context.Background(), pushURL, "hyperbench", a.registry); perr != nil {
			telemetry.LogError("Metrics push failed", perr)
		}
	}
	return err
}

// forcedUnit returns the configured time unit, or nil to let the first
// result decide.
func forcedUnit() (*units.Unit, error) {
	name := viper.GetString("time_unit")
	if name == "" {
		return nil, nil
	}
	u, err := units.ParseUnit(name)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// loadInputs reads and concatenates result files in argument order.
// "-" reads from stdin.
func loadInputs(paths []string, stdin io.Reader) ([]benchmark.Result, error) {
	var all []benchmark.Result
	for _, path := range paths {
		var (
			results []benchmark.Result
			err     error
		)
		if path == "-" {
			results, err = benchmark.ReadResults(stdin)
		} else {
			results, err = benchmark.LoadResults(path)
		}
		if err != nil {
			return nil, err
		}
		telemetry.LogDebug("Loaded results", "source", path, "count", len(results))
		all = append(all, results...)
	}
	return all, nil
}
