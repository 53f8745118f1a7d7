package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"hyperbench/internal/export"
	"hyperbench/internal/history"
	"hyperbench/internal/units"

	"github.com/spf13/viper"
)

// ValidateConfig validates configuration values and returns an error if any are invalid.
// This function should be called after viper has loaded the configuration.
func ValidateConfig() error {
	var errors []string

	if format := viper.GetString("format"); format != "" {
		if _, err := export.CanonicalFormat(format); err != nil {
			errors = append(errors, err.Error())
		}
	}

	if unit := viper.GetString("time_unit"); unit != "" {
		if _, err := units.ParseUnit(unit); err != nil {
			errors = append(errors, err.Error())
		}
	}

	if raw := viper.GetString("metrics_push_url"); raw != "" {
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errors = append(errors, fmt.Sprintf("metrics_push_url must be an http(s) URL, got: %q", raw))
		}
	}

	storeType := strings.ToLower(viper.GetString("history.type"))
	if !slices.Contains(history.Types, storeType) {
		errors = append(errors, fmt.Sprintf("history.type must be one of sqlite, postgres or json, got: %q", storeType))
	} else if (storeType == "postgres" || storeType == "postgresql") && viper.GetString("history.dsn") == "" {
		errors = append(errors, "history.dsn is required for postgres history")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  %s", strings.Join(errors, "\n  "))
	}

	return nil
}
