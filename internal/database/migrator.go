package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"ledger-categorizer/internal/config"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrationsFS embed.FS

const seedsPath = "db/seeds"

var (
	maxRetries    = 30
	retryInterval = 2 * time.Second
)

// MigrationRunner handles database migrations and seeding
type MigrationRunner struct {
	db         *sql.DB
	dialect    string
	migrations fs.FS
	seedsPath  string
	seed       bool

	// built on first use and shared by RunMigrations and GetMigrationStatus
	migrate *migrate.Migrate
	source  source.Driver
	conn    *sql.Conn
}

// NewMigrationRunner creates a migration runner for the configured dialect
func NewMigrationRunner(db *sql.DB, cfg *config.DatabaseConfig) *MigrationRunner {
	path := cfg.SeedsPath
	if path == "" {
		path = seedsPath
	}
	return &MigrationRunner{
		db:         db,
		dialect:    cfg.Dialect,
		migrations: migrationsFS,
		seedsPath:  path,
		seed:       cfg.SeedDatabase,
	}
}

// WaitForDatabase waits for the database to be ready
func (mr *MigrationRunner) WaitForDatabase() error {
	slog.Info("waiting for database to be ready")

	for i := 0; i < maxRetries; i++ {
		err := mr.db.Ping()
		if err == nil {
			slog.Info("database is ready")
			return nil
		}

		slog.Warn("database not ready", "attempt", i+1, "max_attempts", maxRetries, "error", err)
		time.Sleep(retryInterval)
	}

	return fmt.Errorf("database not ready after %d attempts", maxRetries)
}

// migrator returns the runner's migrate instance, building it on first use.
// The postgres driver runs on a reserved connection so that Close can release
// it without closing the shared pool; the sqlite driver holds no connection.
func (mr *MigrationRunner) migrator() (*migrate.Migrate, error) {
	if mr.migrate != nil {
		return mr.migrate, nil
	}

	var driver migratedb.Driver
	switch mr.dialect {
	case config.DialectSQLite:
		sqliteDriver, err := sqlite3.WithInstance(mr.db, &sqlite3.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to create %s driver: %w", mr.dialect, err)
		}
		driver = sqliteDriver
	case config.DialectPostgres:
		ctx := context.Background()
		conn, err := mr.db.Conn(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to reserve migration connection: %w", err)
		}
		pgDriver, err := postgres.WithConnection(ctx, conn, &postgres.Config{})
		if err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("failed to create %s driver: %w", mr.dialect, err)
		}
		mr.conn = conn
		driver = pgDriver
	default:
		return nil, fmt.Errorf("no migrations for dialect %q", mr.dialect)
	}

	src, err := iofs.New(mr.migrations, "migrations/"+mr.dialect)
	if err != nil {
		_ = mr.Close()
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}
	mr.source = src

	m, err := migrate.NewWithInstance("iofs", src, mr.dialect, driver)
	if err != nil {
		_ = mr.Close()
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}
	mr.migrate = m
	return m, nil
}

// Close releases the migration source and any reserved connection. The
// *sql.DB passed to NewMigrationRunner stays open.
func (mr *MigrationRunner) Close() error {
	var errs []error
	if mr.source != nil {
		errs = append(errs, mr.source.Close())
	}
	if mr.conn != nil {
		errs = append(errs, mr.conn.Close())
	}
	mr.migrate, mr.source, mr.conn = nil, nil, nil
	return errors.Join(errs...)
}

// RunMigrations executes all pending migrations
func (mr *MigrationRunner) RunMigrations() error {
	m, err := mr.migrator()
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	if dirty {
		slog.Warn("database is in dirty state, forcing version", "version", version)
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("failed to force version: %w", err)
		}
	}

	slog.Info("running migrations", "dialect", mr.dialect, "current_version", version)

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		slog.Info("no new migrations to apply")
		return nil
	}

	newVersion, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("failed to get new migration version: %w", err)
	}
	slog.Info("migrations applied", "version", newVersion)

	return nil
}

// LoadSeeds executes every *.sql file in the seeds directory, in name order
func (mr *MigrationRunner) LoadSeeds() error {
	if !mr.seed {
		slog.Info("seed data loading disabled")
		return nil
	}

	if _, err := os.Stat(mr.seedsPath); os.IsNotExist(err) {
		slog.Info("seeds directory not found, skipping seed data", "path", mr.seedsPath)
		return nil
	}

	files, err := filepath.Glob(filepath.Join(mr.seedsPath, "*.sql"))
	if err != nil {
		return fmt.Errorf("failed to find seed files: %w", err)
	}

	if len(files) == 0 {
		slog.Info("no seed files found", "path", mr.seedsPath)
		return nil
	}

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read seed file %s: %w", file, err)
		}

		if _, err := mr.db.Exec(string(content)); err != nil {
			slog.Warn("failed to execute seed file", "file", filepath.Base(file), "error", err)
			continue
		}

		slog.Info("executed seed file", "file", filepath.Base(file))
	}

	return nil
}

// GetMigrationStatus returns the current migration status
func (mr *MigrationRunner) GetMigrationStatus() (version uint, dirty bool, err error) {
	m, err := mr.migrator()
	if err != nil {
		return 0, false, err
	}
	return m.Version()
}

// RunMigrationsIfEnabled runs migrations and seeds when AUTO_MIGRATE is set
func RunMigrationsIfEnabled(db *sql.DB, cfg *config.DatabaseConfig) error {
	if !cfg.AutoMigrate {
		slog.Info("auto-migration disabled")
		return nil
	}

	runner := NewMigrationRunner(db, cfg)
	defer func() {
		if err := runner.Close(); err != nil {
			slog.Warn("failed to release migration resources", "error", err)
		}
	}()

	if err := runner.WaitForDatabase(); err != nil {
		return fmt.Errorf("database readiness check failed: %w", err)
	}

	if err := runner.RunMigrations(); err != nil {
		return fmt.Errorf("migration execution failed: %w", err)
	}

	if err := runner.LoadSeeds(); err != nil {
		slog.Warn("seed data loading failed", "error", err)
	}

	version, dirty, err := runner.GetMigrationStatus()
	if err != nil {
		slog.Warn("failed to get migration status", "error", err)
	} else {
		slog.Info("migration status", "version", version, "dirty", dirty)
	}

	return nil
}
