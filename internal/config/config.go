package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

const (
	StoreBackendFile     = "file"
	StoreBackendDatabase = "database"

	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"
)

type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	Database DatabaseConfig
	Ingest   IngestConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port               string        `env:"SERVER_PORT" envDefault:"8080"`
	Host               string        `env:"SERVER_HOST" envDefault:"localhost"`
	Environment        string        `env:"APP_ENV" envDefault:"development"`
	ReadTimeout        time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout       time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"15s"`
	ShutdownTimeout    time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	RateLimitPerSecond int           `env:"RATE_LIMIT_PER_SECOND" envDefault:"5"`
	RateLimitBurst     int           `env:"RATE_LIMIT_BURST" envDefault:"10"`
	MaxUploadBytes     int64         `env:"MAX_UPLOAD_BYTES" envDefault:"10485760"`
}

// StoreConfig selects where the category dictionary lives
type StoreConfig struct {
	Backend      string `env:"STORE_BACKEND" envDefault:"file"`
	CategoryFile string `env:"CATEGORY_FILE" envDefault:"categories.json"`
}

type DatabaseConfig struct {
	Dialect         string        `env:"DB_DIALECT" envDefault:"sqlite"`
	Path            string        `env:"DB_PATH" envDefault:"categories.db"`
	Host            string        `env:"DB_HOST" envDefault:"localhost"`
	Port            string        `env:"DB_PORT" envDefault:"5432"`
	User            string        `env:"DB_USER" envDefault:"ledger_user"`
	Password        string        `env:"DB_PASSWORD" envDefault:"ledger_password"`
	Name            string        `env:"DB_NAME" envDefault:"ledger_db"`
	SSLMode         string        `env:"DB_SSL_MODE" envDefault:"disable"`
	MaxConnections  int           `env:"DB_MAX_CONNECTIONS" envDefault:"10"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"1h"`
	AutoMigrate     bool          `env:"AUTO_MIGRATE" envDefault:"false"`
	SeedDatabase    bool          `env:"SEED_DATABASE" envDefault:"false"`
	SeedsPath       string        `env:"DB_SEEDS_PATH" envDefault:"db/seeds"`
}

// IngestConfig names the required columns of an uploaded ledger
type IngestConfig struct {
	DateColumn        string `env:"INGEST_DATE_COLUMN" envDefault:"Date"`
	AmountColumn      string `env:"INGEST_AMOUNT_COLUMN" envDefault:"Amount (GBP)"`
	DescriptionColumn string `env:"INGEST_DESCRIPTION_COLUMN" envDefault:"Spending Category"`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:""`
}

// Load parses the environment into a Config and validates it
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once
func (c *Config) Validate() error {
	var problems []string

	switch c.Store.Backend {
	case StoreBackendFile:
		if strings.TrimSpace(c.Store.CategoryFile) == "" {
			problems = append(problems, "CATEGORY_FILE is required for the file store")
		}
	case StoreBackendDatabase:
		switch c.Database.Dialect {
		case DialectSQLite:
			if strings.TrimSpace(c.Database.Path) == "" {
				problems = append(problems, "DB_PATH is required for sqlite")
			}
		case DialectPostgres:
			if c.Database.Host == "" || c.Database.Name == "" {
				problems = append(problems, "DB_HOST and DB_NAME are required for postgres")
			}
		default:
			problems = append(problems, fmt.Sprintf("DB_DIALECT must be %q or %q, got %q", DialectSQLite, DialectPostgres, c.Database.Dialect))
		}
	default:
		problems = append(problems, fmt.Sprintf("STORE_BACKEND must be %q or %q, got %q", StoreBackendFile, StoreBackendDatabase, c.Store.Backend))
	}

	if c.Ingest.DateColumn == "" || c.Ingest.AmountColumn == "" || c.Ingest.DescriptionColumn == "" {
		problems = append(problems, "ingest column names cannot be empty")
	}
	if c.Server.MaxUploadBytes <= 0 {
		problems = append(problems, "MAX_UPLOAD_BYTES must be positive")
	}
	if c.Server.RateLimitPerSecond <= 0 || c.Server.RateLimitBurst <= 0 {
		problems = append(problems, "rate limit settings must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// DSN returns the connection string for the configured dialect
func (c *DatabaseConfig) DSN() string {
	if c.Dialect == DialectPostgres {
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
	}
	return c.Path
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

// SlogLevel maps LOG_LEVEL to a slog level, defaulting to info
func (c *LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
