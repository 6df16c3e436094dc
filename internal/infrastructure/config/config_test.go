package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return configPath
}

func TestLoad_ValidConfig(t *testing.T) {
	configPath := writeConfig(t, `
database:
  path: "/tmp/test.db"
  wal_mode: false
  busy_timeout: 2
logging:
  level: "debug"
  format: "text"
seed:
  path: "configs/seed.yaml"
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Database.Path != "/tmp/test.db" {
		t.Errorf("Database.Path = %q, want %q", cfg.Database.Path, "/tmp/test.db")
	}
	if cfg.Database.WALMode {
		t.Error("Database.WALMode = true, want false from file")
	}
	if cfg.Database.BusyTimeout != 2 {
		t.Errorf("Database.BusyTimeout = %d, want 2", cfg.Database.BusyTimeout)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
	// Output was not in the file, so the default survives.
	if cfg.Logging.Output != "stdout" {
		t.Errorf("Logging.Output = %q, want %q", cfg.Logging.Output, "stdout")
	}
	if cfg.Seed.Path != "configs/seed.yaml" {
		t.Errorf("Seed.Path = %q, want %q", cfg.Seed.Path, "configs/seed.yaml")
	}
}

func TestLoad_EmptyFileUsesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Database.Path != "questions.db" {
		t.Errorf("Database.Path = %q, want %q", cfg.Database.Path, "questions.db")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("Load() expected error for missing file, got nil")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "invalid: [yaml: content"))
	if err == nil {
		t.Error("Load() expected error for invalid YAML, got nil")
	}
}

func TestLoad_ValidationFailure(t *testing.T) {
	_, err := Load(writeConfig(t, `
logging:
  level: "verbose"
`))
	if err == nil {
		t.Fatal("Load() expected validation error for unknown log level, got nil")
	}
	if !strings.Contains(err.Error(), "logging.level") {
		t.Errorf("error = %q, want mention of logging.level", err.Error())
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	configPath := writeConfig(t, `
database:
  path: "/from/file.db"
influxdb:
  enabled: true
  url: "http://localhost:8086"
`)
	t.Setenv("QUESTIONS_DATABASE_PATH", "/from/env.db")
	t.Setenv("QUESTIONS_INFLUXDB_TOKEN", "secret-token")

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Database.Path != "/from/env.db" {
		t.Errorf("Database.Path = %q, want %q", cfg.Database.Path, "/from/env.db")
	}
	if cfg.InfluxDB.Token != "secret-token" {
		t.Errorf("InfluxDB.Token = %q, want %q", cfg.InfluxDB.Token, "secret-token")
	}
}

func TestLoad_InvalidEnvValue(t *testing.T) {
	t.Setenv("QUESTIONS_DATABASE_BUSY_TIMEOUT", "soon")

	if _, err := Load(writeConfig(t, "")); err == nil {
		t.Error("Load() expected error for non-numeric busy timeout, got nil")
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config { return defaultConfig() }

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "defaults",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "missing database path",
			mutate:  func(c *Config) { c.Database.Path = "" },
			wantErr: true,
		},
		{
			name:    "negative busy timeout",
			mutate:  func(c *Config) { c.Database.BusyTimeout = -1 },
			wantErr: true,
		},
		{
			name: "seed with read-only store",
			mutate: func(c *Config) {
				c.Database.ReadOnly = true
				c.Seed.Path = "seed.yaml"
			},
			wantErr: true,
		},
		{
			name:    "read-only without seed",
			mutate:  func(c *Config) { c.Database.ReadOnly = true },
			wantErr: false,
		},
		{
			name:    "unknown log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: true,
		},
		{
			name:    "log level is case-insensitive",
			mutate:  func(c *Config) { c.Logging.Level = "WARN" },
			wantErr: false,
		},
		{
			name:    "unknown log output",
			mutate:  func(c *Config) { c.Logging.Output = "syslog" },
			wantErr: true,
		},
		{
			name:    "influxdb enabled without url",
			mutate:  func(c *Config) { c.InfluxDB.Enabled = true; c.InfluxDB.Token = "t" },
			wantErr: true,
		},
		{
			name:    "influxdb enabled without token",
			mutate:  func(c *Config) { c.InfluxDB.Enabled = true; c.InfluxDB.URL = "http://localhost:8086" },
			wantErr: true,
		},
		{
			name: "influxdb enabled and complete",
			mutate: func(c *Config) {
				c.InfluxDB.Enabled = true
				c.InfluxDB.URL = "http://localhost:8086"
				c.InfluxDB.Token = "t"
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_ValidateReportsAllErrors(t *testing.T) {
	cfg := defaultConfig()
	cfg.Database.Path = ""
	cfg.Logging.Format = "xml"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() expected error, got nil")
	}
	for _, want := range []string{"database.path", "logging.format"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing %q", err.Error(), want)
		}
	}
}

func TestConfig_Durations(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{BusyTimeout: 5},
		InfluxDB: InfluxDBConfig{FlushInterval: 10},
	}

	if got := cfg.GetBusyTimeout(); got != 5*time.Second {
		t.Errorf("GetBusyTimeout() = %v, want 5s", got)
	}
	if got := cfg.GetFlushInterval(); got != 10*time.Second {
		t.Errorf("GetFlushInterval() = %v, want 10s", got)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	cfg := defaultConfig()

	t.Setenv("QUESTIONS_DATABASE_PATH", "/custom/path.db")
	t.Setenv("QUESTIONS_DATABASE_READ_ONLY", "true")
	t.Setenv("QUESTIONS_LOG_LEVEL", "debug")
	t.Setenv("QUESTIONS_INFLUXDB_TOKEN", "secret-token")
	t.Setenv("QUESTIONS_INFLUXDB_BATCH_SIZE", "500")
	t.Setenv("QUESTIONS_SEED_PATH", "/seed.yaml")

	if err := applyEnvOverrides(cfg); err != nil {
		t.Fatalf("applyEnvOverrides() error = %v", err)
	}

	if cfg.Database.Path != "/custom/path.db" {
		t.Errorf("Database.Path = %q, want %q", cfg.Database.Path, "/custom/path.db")
	}
	if !cfg.Database.ReadOnly {
		t.Error("Database.ReadOnly = false, want true")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
	if cfg.InfluxDB.Token != "secret-token" {
		t.Errorf("InfluxDB.Token = %q, want %q", cfg.InfluxDB.Token, "secret-token")
	}
	if cfg.InfluxDB.BatchSize != 500 {
		t.Errorf("InfluxDB.BatchSize = %d, want 500", cfg.InfluxDB.BatchSize)
	}
	if cfg.Seed.Path != "/seed.yaml" {
		t.Errorf("Seed.Path = %q, want %q", cfg.Seed.Path, "/seed.yaml")
	}

	// Unset variables leave values alone.
	if !cfg.Database.WALMode {
		t.Error("Database.WALMode changed without an override")
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want default %q", cfg.Logging.Format, "json")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Database.Path != "questions.db" {
		t.Errorf("defaultConfig Database.Path = %q, want %q", cfg.Database.Path, "questions.db")
	}
	if cfg.InfluxDB.Enabled {
		t.Error("defaultConfig should leave InfluxDB disabled")
	}
	if cfg.Seed.Path != "" {
		t.Errorf("defaultConfig Seed.Path = %q, want empty", cfg.Seed.Path)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaultConfig does not validate: %v", err)
	}
}
