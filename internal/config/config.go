// Package config holds runtime settings for the planner.
package config

import (
	"fmt"

	"github.com/litescript/ls-missionplan/internal/catalog"
	"github.com/litescript/ls-missionplan/internal/logging"
	"github.com/litescript/ls-missionplan/internal/mission"
)

// Config holds the settings shared by all commands.
type Config struct {
	StartDate    string  // default launch search start, YYYY-MM-DD
	PayloadKg    float64 // default payload
	WindowCount  int     // launch windows to project
	ReportDir    string  // where saved reports go
	HistoryPath  string  // SQLite history file, empty disables history
	LogLevel     string
	SessionLimit int    // evaluations kept in the session log
	CatalogPath  string // YAML catalog, empty uses the stock catalog
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		StartDate:    mission.DefaultStartDate,
		PayloadKg:    0,
		WindowCount:  mission.DefaultWindowCount,
		ReportDir:    ".",
		HistoryPath:  "",
		LogLevel:     "info",
		SessionLimit: 20,
		CatalogPath:  "",
	}
}

// Validate checks the settings for values the planner cannot use.
func (c Config) Validate() error {
	if _, err := mission.ParseDate("start date", c.StartDate); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.PayloadKg < 0 {
		return fmt.Errorf("config: payload must not be negative, got %.0f kg", c.PayloadKg)
	}
	if c.WindowCount < 1 || c.WindowCount > 50 {
		return fmt.Errorf("config: window count must be between 1 and 50, got %d", c.WindowCount)
	}
	if c.ReportDir == "" {
		return fmt.Errorf("config: report directory is empty")
	}
	if c.SessionLimit < 1 {
		return fmt.Errorf("config: session limit must be positive, got %d", c.SessionLimit)
	}
	return nil
}

// Catalog loads the configured catalog, or returns the stock one.
func (c Config) Catalog() (*catalog.Catalog, error) {
	if c.CatalogPath == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(c.CatalogPath)
}

// Level returns the parsed log level.
func (c Config) Level() logging.Level {
	return logging.ParseLevel(c.LogLevel)
}
