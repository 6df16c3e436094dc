// Questions - read-only Q&A forum store
//
// This is the main entry point for the questions service. It opens the
// forum store, brings the schema up to date, applies an optional seed
// fixture and logs a short report of what the store holds.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nerrad567/questions-core/internal/forum"
	"github.com/nerrad567/questions-core/internal/infrastructure/config"
	"github.com/nerrad567/questions-core/internal/infrastructure/database"
	"github.com/nerrad567/questions-core/internal/infrastructure/influxdb"
	"github.com/nerrad567/questions-core/internal/infrastructure/logging"
	"github.com/nerrad567/questions-core/internal/seed"
	"github.com/nerrad567/questions-core/migrations"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

const (
	// defaultConfigPath is used when QUESTIONS_CONFIG is unset.
	defaultConfigPath = "configs/config.yaml"

	// topFollowedCount is how many questions the report ranks.
	topFollowedCount = 3
)

// errPendingMigrations is returned when a read-only store is behind the schema.
var errPendingMigrations = errors.New("read-only database has pending migrations")

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the application logic, separated from main for testability.
func run(ctx context.Context) error {
	log := logging.Default()
	log.Info("starting questions",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log = logging.New(cfg.Logging, version)
	log.Info("configuration loaded", "path", configPath, "level", cfg.Logging.Level)

	db, err := database.Open(database.Config{
		Path:        cfg.Database.Path,
		WALMode:     cfg.Database.WALMode,
		BusyTimeout: cfg.Database.BusyTimeout,
		ReadOnly:    cfg.Database.ReadOnly,
	})
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		log.Info("closing database")
		if closeErr := db.Close(); closeErr != nil {
			log.Error("error closing database", "error", closeErr)
		}
	}()
	log.Info("database connected", "path", db.Path(), "read_only", cfg.Database.ReadOnly)

	if err := prepareSchema(ctx, db, cfg.Database.ReadOnly); err != nil {
		return err
	}
	log.Info("database schema ready")

	if cfg.Seed.Path != "" {
		fx, loadErr := seed.Load(cfg.Seed.Path)
		if loadErr != nil {
			return fmt.Errorf("loading seed: %w", loadErr)
		}
		if applyErr := seed.Apply(ctx, db, fx, log.Logger); applyErr != nil {
			return fmt.Errorf("applying seed: %w", applyErr)
		}
	}

	store := forum.NewStore(db)
	store.SetLogger(log.With("component", "forum"))

	if cfg.InfluxDB.Enabled {
		influxClient, connErr := influxdb.Connect(cfg.InfluxDB)
		if connErr != nil {
			return fmt.Errorf("connecting to InfluxDB: %w", connErr)
		}
		defer func() {
			log.Info("disconnecting from InfluxDB")
			if closeErr := influxClient.Close(); closeErr != nil {
				log.Error("error closing InfluxDB", "error", closeErr)
			}
		}()
		influxClient.SetOnError(func(err error) {
			log.Error("InfluxDB write error", "error", err)
		})
		store.SetObserver(influxClient)
		log.Info("InfluxDB connected", "url", cfg.InfluxDB.URL, "bucket", cfg.InfluxDB.Bucket)
	}

	if err := db.HealthCheck(ctx); err != nil {
		return err
	}

	rep, err := buildReport(ctx, store, topFollowedCount)
	if err != nil {
		return fmt.Errorf("building report: %w", err)
	}
	log.Info("forum report",
		"users", rep.Users,
		"questions", rep.Questions,
		"replies", rep.Replies,
		"follows", rep.Follows,
		"likes", rep.Likes,
		"most_followed", rep.MostFollowed,
	)
	return nil
}

// prepareSchema migrates a writable store. A read-only store cannot be
// migrated, so it must already be current.
func prepareSchema(ctx context.Context, db *database.DB, readOnly bool) error {
	if !readOnly {
		if err := db.Migrate(ctx, migrations.Source()); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		return nil
	}

	_, pending, err := db.GetMigrationStatus(ctx, migrations.Source())
	if err != nil {
		return fmt.Errorf("checking migrations: %w", err)
	}
	if len(pending) > 0 {
		return fmt.Errorf("%w: %d outstanding, first %s", errPendingMigrations, len(pending), pending[0].Version)
	}
	return nil
}

// getConfigPath returns the configuration file path.
// It checks the QUESTIONS_CONFIG environment variable first.
func getConfigPath() string {
	if path := os.Getenv("QUESTIONS_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}
