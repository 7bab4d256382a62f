// Package config loads service configuration from the environment.
// All variables are prefixed with ROSTER_.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds every tunable of the service. Connection parameters are
// externalized here instead of being hard-coded at the call site.
type Config struct {
	Port int `envconfig:"ROSTER_PORT" default:"8080"`

	DBDriver   string `envconfig:"ROSTER_DB_DRIVER" default:"postgres"`
	DBHost     string `envconfig:"ROSTER_DB_HOST" default:"localhost"`
	DBPort     int    `envconfig:"ROSTER_DB_PORT" default:"5432"`
	DBUser     string `envconfig:"ROSTER_DB_USER" default:"roster"`
	DBPassword string `envconfig:"ROSTER_DB_PASSWORD"`
	DBName     string `envconfig:"ROSTER_DB_NAME" default:"roster"`
	DBSSLMode  string `envconfig:"ROSTER_DB_SSLMODE" default:"disable"`

	// DBPath is only used by the sqlite driver.
	DBPath string `envconfig:"ROSTER_DB_PATH" default:"roster.db"`

	DBMaxOpenConns    int           `envconfig:"ROSTER_DB_MAX_OPEN_CONNS" default:"5"`
	DBMaxIdleConns    int           `envconfig:"ROSTER_DB_MAX_IDLE_CONNS" default:"2"`
	DBConnMaxLifetime time.Duration `envconfig:"ROSTER_DB_CONN_MAX_LIFETIME" default:"30m"`

	// QueryTimeout bounds every database operation, including the ones
	// issued during startup. A hung database fails the one request that
	// hit it instead of wedging the process.
	QueryTimeout time.Duration `envconfig:"ROSTER_QUERY_TIMEOUT" default:"5s"`

	// ListMaxRows caps how many records a single list call may return.
	ListMaxRows int `envconfig:"ROSTER_LIST_MAX_ROWS" default:"1000"`
}

// Load reads configuration from the environment and validates it.
// Bad configuration is a startup error, unlike an unreachable database.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("ROSTER_DB_DRIVER must be %q or %q, got %q", DriverPostgres, DriverSQLite, c.DBDriver)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("ROSTER_PORT must be between 1 and 65535, got %d", c.Port)
	}
	if c.DBMaxOpenConns < 1 {
		return fmt.Errorf("ROSTER_DB_MAX_OPEN_CONNS must be at least 1, got %d", c.DBMaxOpenConns)
	}
	if c.DBMaxIdleConns < 0 {
		return fmt.Errorf("ROSTER_DB_MAX_IDLE_CONNS must not be negative, got %d", c.DBMaxIdleConns)
	}
	if c.QueryTimeout <= 0 {
		return fmt.Errorf("ROSTER_QUERY_TIMEOUT must be positive, got %s", c.QueryTimeout)
	}
	if c.ListMaxRows < 1 {
		return fmt.Errorf("ROSTER_LIST_MAX_ROWS must be at least 1, got %d", c.ListMaxRows)
	}
	return nil
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// PostgresDSN assembles a keyword/value connection string from the
// configured parameters.
func (c *Config) PostgresDSN() string {
	parts := []string{
		fmt.Sprintf("host=%s", c.DBHost),
		fmt.Sprintf("port=%d", c.DBPort),
		fmt.Sprintf("user=%s", c.DBUser),
		fmt.Sprintf("dbname=%s", c.DBName),
		fmt.Sprintf("sslmode=%s", c.DBSSLMode),
	}
	if c.DBPassword != "" {
		parts = append(parts, fmt.Sprintf("password=%s", c.DBPassword))
	}
	return strings.Join(parts, " ")
}
