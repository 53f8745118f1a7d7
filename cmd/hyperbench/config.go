package main

import (
	"fmt"
	"os"
	"slices"

	"hyperbench/internal/config"
	"hyperbench/internal/export"
	"hyperbench/internal/units"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
)

var askOneFunc = survey.AskOne

const autoUnit = "auto"

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the hyperbench configuration file",
	}
	cmd.AddCommand(newConfigInitCmd())
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		output string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(output); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", output)
			}

			settings, err := askSettings(config.Current())
			if err != nil {
				return err
			}
			if err := config.Write(output, settings); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote configuration to %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", ".hyperbench.yaml", "Path of the config file to write")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}

func askSettings(current config.Settings) (config.Settings, error) {
	settings := current

	// Config files may hold aliases such as "md"; offer the canonical name.
	if format, err := export.CanonicalFormat(current.Format); err == nil {
		settings.Format = format
	}
	if err := askOneFunc(&survey.Select{
		Message: "Default export format:",
		Options: export.Formats(),
		Default: selectDefault(export.Formats(), settings.Format),
	}, &settings.Format); err != nil {
		return settings, err
	}

	unitOptions := []string{autoUnit}
	for _, u := range units.All {
		unitOptions = append(unitOptions, u.String())
	}
	unit := autoUnit
	if u, err := units.ParseUnit(current.TimeUnit); err == nil {
		unit = u.String()
	}
	if err := askOneFunc(&survey.Select{
		Message: "Time unit for tables:",
		Options: unitOptions,
		Default: selectDefault(unitOptions, unit),
	}, &unit); err != nil {
		return settings, err
	}
	settings.TimeUnit = unit
	if unit == autoUnit {
		settings.TimeUnit = ""
	}

	backends := []string{"sqlite", "json", "postgres"}
	if err := askOneFunc(&survey.Select{
		Message: "History backend:",
		Options: backends,
		Default: selectDefault(backends, current.HistoryType),
	}, &settings.HistoryType); err != nil {
		return settings, err
	}

	if err := askOneFunc(&survey.Input{
		Message: "History location (file path or Postgres DSN, empty for default):",
		Default: current.HistoryDSN,
	}, &settings.HistoryDSN); err != nil {
		return settings, err
	}
	return settings, nil
}

// selectDefault returns v if it is one of options. survey rejects defaults
// missing from the option list.
func selectDefault(options []string, v string) any {
	if slices.Contains(options, v) {
		return v
	}
	return nil
}
