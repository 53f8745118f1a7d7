package main

import (
	"fmt"
	"io"

	"hyperbench/internal/benchmark"
	"hyperbench/internal/export"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// exportFlags holds one --export-<format> FILE flag per known format.
type exportFlags map[string]*string

func addExportFlags(cmd *cobra.Command) exportFlags {
	flags := exportFlags{}
	for _, format := range export.Formats() {
		flags[format] = cmd.Flags().String("export-"+format, "",
			fmt.Sprintf("Export results as %s to FILE ('-' for stdout)", format))
	}
	return flags
}

// write serializes results to every requested target. Without any
// --export-* flag the configured format goes to out.
func (f exportFlags) write(a *app, results []benchmark.Result, out io.Writer) error {
	unit, err := forcedUnit()
	if err != nil {
		return err
	}

	m := export.NewManager(unit, out)
	m.SetObserver(a.metrics.ObserveExport)
	for _, format := range export.Formats() {
		if path := *f[format]; path != "" {
			if err := m.Add(format, path); err != nil {
				return err
			}
		}
	}
	if m.Len() == 0 {
		if err := m.Add(viper.GetString("format"), "-"); err != nil {
			return err
		}
	}
	return m.WriteResults(results)
}

func newExportCmd(a *app) *cobra.Command {
	var flags exportFlags

	cmd := &cobra.Command{
		Use:   "export RESULTS.json...",
		Short: "Render benchmark results as a table or data file",
		Long: `Reads one or more JSON result files ("-" for stdin) and writes them in
the configured format to stdout, or to the files named by --export-* flags.

The first result decides the time unit unless --time-unit is given.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := loadInputs(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			return flags.write(a, results, cmd.OutOrStdout())
		},
	}

	flags = addExportFlags(cmd)
	cmd.Flags().StringP("format", "f", "", "Format written to stdout when no --export-* flag is given")
	viper.BindPFlag("format", cmd.Flags().Lookup("format"))
	return cmd
}
