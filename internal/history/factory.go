package history

import (
	"fmt"
	"strings"
)

const (
	defaultSQLitePath = ".hyperbench.db"
	defaultJSONPath   = ".hyperbench/history.json"
)

// StoreConfig holds configuration for the storage backend
type StoreConfig struct {
	Type             string // "sqlite", "postgres" or "json"
	ConnectionString string // File path for SQLite and JSON, DSN for Postgres
}

// Types lists the accepted backend names.
var Types = []string{"", "sqlite", "sqlite3", "postgres", "postgresql", "json"}

// NewStore creates a new Store instance based on the provided configuration
func NewStore(config StoreConfig) (Store, error) {
	switch strings.ToLower(config.Type) {
	case "postgres", "postgresql":
		if config.ConnectionString == "" {
			return nil, fmt.Errorf("postgres connection string is required")
		}
		return NewPostgresStore(config.ConnectionString)
	case "sqlite", "sqlite3", "":
		if config.ConnectionString == "" {
			config.ConnectionString = defaultSQLitePath
		}
		return NewSQLiteStore(config.ConnectionString)
	case "json":
		if config.ConnectionString == "" {
			config.ConnectionString = defaultJSONPath
		}
		return NewFileStore(config.ConnectionString)
	default:
		return nil, fmt.Errorf("unsupported store type: %s", config.Type)
	}
}
