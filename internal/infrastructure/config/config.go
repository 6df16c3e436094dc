package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure for the questions service.
// All configuration is loaded from YAML and can be overridden by environment variables.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Logging  LoggingConfig  `yaml:"logging"`
	InfluxDB InfluxDBConfig `yaml:"influxdb"`
	Seed     SeedConfig     `yaml:"seed"`
}

// DatabaseConfig contains SQLite database settings.
type DatabaseConfig struct {
	Path        string `yaml:"path"         env:"QUESTIONS_DATABASE_PATH"`
	WALMode     bool   `yaml:"wal_mode"     env:"QUESTIONS_DATABASE_WAL_MODE"`
	BusyTimeout int    `yaml:"busy_timeout" env:"QUESTIONS_DATABASE_BUSY_TIMEOUT"`

	// ReadOnly opens the store with mode=ro. Seeding is refused.
	ReadOnly bool `yaml:"read_only" env:"QUESTIONS_DATABASE_READ_ONLY"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"  env:"QUESTIONS_LOG_LEVEL"`
	Format string `yaml:"format" env:"QUESTIONS_LOG_FORMAT"`
	Output string `yaml:"output" env:"QUESTIONS_LOG_OUTPUT"`
}

// InfluxDBConfig contains settings for the query telemetry sink.
type InfluxDBConfig struct {
	Enabled       bool   `yaml:"enabled"        env:"QUESTIONS_INFLUXDB_ENABLED"`
	URL           string `yaml:"url"            env:"QUESTIONS_INFLUXDB_URL"`
	Token         string `yaml:"token"          env:"QUESTIONS_INFLUXDB_TOKEN"`
	Org           string `yaml:"org"            env:"QUESTIONS_INFLUXDB_ORG"`
	Bucket        string `yaml:"bucket"         env:"QUESTIONS_INFLUXDB_BUCKET"`
	BatchSize     int    `yaml:"batch_size"     env:"QUESTIONS_INFLUXDB_BATCH_SIZE"`
	FlushInterval int    `yaml:"flush_interval" env:"QUESTIONS_INFLUXDB_FLUSH_INTERVAL"`
}

// SeedConfig points at an optional fixture applied to an empty store.
type SeedConfig struct {
	Path string `yaml:"path" env:"QUESTIONS_SEED_PATH"`
}

// Load reads configuration from a YAML file and applies environment variable overrides.
//
// The configuration loading order is:
//  1. Default values (hardcoded)
//  2. YAML file values (override defaults)
//  3. Environment variables (override file values)
//
// Environment variables follow the pattern: QUESTIONS_SECTION_KEY
// For example: QUESTIONS_DATABASE_PATH, QUESTIONS_LOG_LEVEL
//
// Parameters:
//   - path: Path to the YAML configuration file
//
// Returns:
//   - *Config: Loaded and validated configuration
//   - error: If file cannot be read, parsed, or validation fails
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // Path comes from the operator
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns a Config with sensible defaults.
func defaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path:        "questions.db",
			WALMode:     true,
			BusyTimeout: 5,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
		InfluxDB: InfluxDBConfig{
			Org:           "questions",
			Bucket:        "forum",
			BatchSize:     100,
			FlushInterval: 10,
		},
	}
}

// applyEnvOverrides applies QUESTIONS_* environment variables on top of cfg.
// Unset variables leave the file value in place.
func applyEnvOverrides(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parsing environment overrides: %w", err)
	}
	return nil
}

var (
	validLogLevels  = []string{"debug", "info", "warn", "warning", "error"}
	validLogFormats = []string{"json", "text"}
	validLogOutputs = []string{"stdout", "stderr"}
)

// Validate checks the configuration for errors.
//
// Returns:
//   - error: Description of validation failure, or nil if valid
func (c *Config) Validate() error {
	var errs []string

	if c.Database.Path == "" {
		errs = append(errs, "database.path is required")
	}
	if c.Database.BusyTimeout < 0 {
		errs = append(errs, "database.busy_timeout must not be negative")
	}
	if c.Database.ReadOnly && c.Seed.Path != "" {
		errs = append(errs, "seed.path cannot be used with database.read_only")
	}

	if !oneOf(c.Logging.Level, validLogLevels) {
		errs = append(errs, fmt.Sprintf("logging.level must be one of %s", strings.Join(validLogLevels, ", ")))
	}
	if !oneOf(c.Logging.Format, validLogFormats) {
		errs = append(errs, fmt.Sprintf("logging.format must be one of %s", strings.Join(validLogFormats, ", ")))
	}
	if !oneOf(c.Logging.Output, validLogOutputs) {
		errs = append(errs, fmt.Sprintf("logging.output must be one of %s", strings.Join(validLogOutputs, ", ")))
	}

	if c.InfluxDB.Enabled {
		if c.InfluxDB.URL == "" {
			errs = append(errs, "influxdb.url is required when influxdb is enabled")
		}
		if c.InfluxDB.Token == "" {
			errs = append(errs, "influxdb.token is required when influxdb is enabled (set QUESTIONS_INFLUXDB_TOKEN environment variable)")
		}
		if c.InfluxDB.Bucket == "" {
			errs = append(errs, "influxdb.bucket is required when influxdb is enabled")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}

// GetBusyTimeout returns the database busy timeout as a Duration.
func (c *Config) GetBusyTimeout() time.Duration {
	return time.Duration(c.Database.BusyTimeout) * time.Second
}

// GetFlushInterval returns the InfluxDB flush interval as a Duration.
func (c *Config) GetFlushInterval() time.Duration {
	return time.Duration(c.InfluxDB.FlushInterval) * time.Second
}

func oneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return true
		}
	}
	return false
}
