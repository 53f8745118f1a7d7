package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. HYPERBENCH_FORMAT.
const EnvPrefix = "HYPERBENCH"

// Load initializes the configuration from file and environment variables.
// A missing default config file is not an error; a missing explicit one is.
func Load(cfgFile string) error {
	// .env is optional
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".hyperbench")
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	SetDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	slog.Debug("Using config file", "path", viper.ConfigFileUsed())
	return nil
}

// SetDefaults registers the default value of every key.
func SetDefaults() {
	viper.SetDefault("format", "markdown")
	viper.SetDefault("time_unit", "")
	viper.SetDefault("verbose", false)
	viper.SetDefault("log_file", "")
	viper.SetDefault("metrics_push_url", "")
	viper.SetDefault("history.type", "sqlite")
	viper.SetDefault("history.dsn", "")
}

// Settings is a typed snapshot of the loaded configuration.
type Settings struct {
	Format         string
	TimeUnit       string
	Verbose        bool
	LogFile        string
	MetricsPushURL string
	HistoryType    string
	HistoryDSN     string
}

// Current reads the active settings from viper.
func Current() Settings {
	return Settings{
		Format:         viper.GetString("format"),
		TimeUnit:       viper.GetString("time_unit"),
		Verbose:        viper.GetBool("verbose"),
		LogFile:        viper.GetString("log_file"),
		MetricsPushURL: viper.GetString("metrics_push_url"),
		HistoryType:    viper.GetString("history.type"),
		HistoryDSN:     viper.GetString("history.dsn"),
	}
}

// Write stores settings as a YAML config file at path.
func Write(path string, s Settings) error {
	v := viper.New()
	v.Set("format", s.Format)
	v.Set("time_unit", s.TimeUnit)
	v.Set("verbose", s.Verbose)
	v.Set("log_file", s.LogFile)
	v.Set("metrics_push_url", s.MetricsPushURL)
	v.Set("history.type", s.HistoryType)
	v.Set("history.dsn", s.HistoryDSN)
	v.SetConfigType("yaml")

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}
