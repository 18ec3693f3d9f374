package database

import (
	"fmt"

	"expensetracker/internal/config"
)

// Config holds database configuration
type Config struct {
	Driver string
	// Path is the SQLite database file.
	Path string
	// URL is the PostgreSQL connection URL.
	URL string
}

// NewConfig derives the database configuration from the application config.
func NewConfig(app *config.Config) (*Config, error) {
	switch app.DBDriver {
	case config.DriverSQLite:
		return &Config{Driver: config.DriverSQLite, Path: app.DBPath}, nil
	case config.DriverPostgres:
		return &Config{Driver: config.DriverPostgres, URL: app.PostgresURL()}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", app.DBDriver)
	}
}

// sqliteDSN enables foreign keys on every connection.
func (c *Config) sqliteDSN() string {
	return c.Path + "?_foreign_keys=on"
}
