package main

import (
	"fmt"

	"hyperbench/internal/benchmark"
	"hyperbench/internal/export"
	"hyperbench/internal/ui"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func newSummaryCmd(a *app) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "summary RESULTS.json...",
		Short: "Print how much faster the fastest command was",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := loadInputs(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			entries := benchmark.ComputeRelative(results)
			if entries == nil {
				return &export.ExportError{Format: "summary", Err: export.ErrRelativeComparisonUnavailable}
			}

			out := cmd.OutOrStdout()
			styles := ui.NewStyles(ui.NewRenderer(out, plain || !isTerminal(out)))
			fmt.Fprint(out, ui.Summary(styles, entries))
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Disable colors")
	return cmd
}

type fdWriter interface {
	Fd() uintptr
}

func isTerminal(w any) bool {
	f, ok := w.(fdWriter)
	return ok && isatty.IsTerminal(f.Fd())
}
