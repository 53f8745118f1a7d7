package main

import (
	"fmt"

	"hyperbench/internal/export"
	"hyperbench/internal/ui"

	"github.com/spf13/cobra"
)

func newShowCmd(a *app) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "show RESULTS.json...",
		Short: "Preview the Markdown comparison table in the terminal",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := loadInputs(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			unit, err := forcedUnit()
			if err != nil {
				return err
			}

			table, err := export.NewMarkdownExporter().Serialize(results, unit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			rendered, err := ui.Preview(string(table), width, isTerminal(out))
			if err != nil {
				return err
			}
			fmt.Fprint(out, rendered)
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 100, "Wrap the preview at this many columns")
	return cmd
}
