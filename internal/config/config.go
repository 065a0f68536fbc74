// Package config loads runtime settings from an optional YAML file with
// environment overrides for the Google credentials.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/caesbrissa/visual-poker/internal/pipeline"
)

// Config holds all runtime settings.
type Config struct {
	Player string `yaml:"player"`

	ClientEmail   string `yaml:"client_email"`
	PrivateKey    string `yaml:"private_key"`
	SpreadsheetID string `yaml:"spreadsheet_id"`

	PollInterval time.Duration `yaml:"poll_interval"`
	FetchTimeout time.Duration `yaml:"fetch_timeout"`
	MonthlyGoal  float64       `yaml:"monthly_goal"`
	LogLevel     string        `yaml:"log_level"`

	API   APIConfig       `yaml:"api"`
	Sheet pipeline.Schema `yaml:"sheet"`
}

// APIConfig holds HTTP server settings.
type APIConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the baseline configuration before file and env
// overrides.
func Default() Config {
	return Config{
		Player:       "Carlos Sbrissa",
		PollInterval: 5 * time.Minute,
		FetchTimeout: 30 * time.Second,
		MonthlyGoal:  10000,
		LogLevel:     "info",
		API:          APIConfig{Addr: ":8080"},
		Sheet:        pipeline.DefaultSchema(),
	}
}

// LoadFile merges a YAML file over the receiver. A missing path is fine;
// only read or parse failures are errors.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overlays the Google credential env vars. These win over the
// file so deployments never need secrets on disk.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("GOOGLE_SHEETS_CLIENT_EMAIL"); v != "" {
		c.ClientEmail = v
	}
	if v := os.Getenv("GOOGLE_SHEETS_PRIVATE_KEY"); v != "" {
		c.PrivateKey = v
	}
	if v := os.Getenv("GOOGLE_SPREADSHEET_ID"); v != "" {
		c.SpreadsheetID = v
	}
}

// ConfigurationError lists the settings that are missing or invalid,
// so the operator sees everything wrong in one pass.
type ConfigurationError struct {
	Missing []string
}

func (e *ConfigurationError) Error() string {
	return "missing configuration: " + strings.Join(e.Missing, ", ")
}

// Validate checks credentials, the sheet schema and the poll settings.
func (c *Config) Validate() error {
	var missing []string
	if c.ClientEmail == "" {
		missing = append(missing, "GOOGLE_SHEETS_CLIENT_EMAIL")
	}
	if c.PrivateKey == "" {
		missing = append(missing, "GOOGLE_SHEETS_PRIVATE_KEY")
	}
	if c.SpreadsheetID == "" {
		missing = append(missing, "GOOGLE_SPREADSHEET_ID")
	}
	if len(missing) > 0 {
		return &ConfigurationError{Missing: missing}
	}

	if err := c.Sheet.Validate(); err != nil {
		return err
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll_interval must be positive, got %s", c.PollInterval)
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("fetch_timeout must be positive, got %s", c.FetchTimeout)
	}
	return nil
}
