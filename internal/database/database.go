// Package database opens the admin account store and scopes repository calls to transactions.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
)

// Drivers accepted by Connect. The names match the registered database/sql drivers.
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// defaultPingTimeout bounds the startup ping when Config.PingTimeout is unset.
const defaultPingTimeout = 5 * time.Second

// ErrUnsupportedDriver is returned for drivers other than postgres and mysql.
var ErrUnsupportedDriver = errors.New("unsupported database driver")

// Config holds the connection pool settings for the admin store.
type Config struct {
	Driver             string
	ConnectionString   string
	MaxOpenConnections int
	MaxIdleConnections int
	ConnMaxLifetime    time.Duration
	PingTimeout        time.Duration
}

// ValidateDriver reports ErrUnsupportedDriver unless driver is postgres or mysql.
func ValidateDriver(driver string) error {
	switch driver {
	case DriverPostgres, DriverMySQL:
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedDriver, driver)
	}
}

// Connect opens a pool for cfg and verifies it answers a ping within the ping timeout.
func Connect(cfg Config) (*sql.DB, error) {
	if err := ValidateDriver(cfg.Driver); err != nil {
		return nil, err
	}

	db, err := sql.Open(cfg.Driver, cfg.ConnectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConnections)
	db.SetMaxIdleConns(cfg.MaxIdleConnections)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	timeout := cfg.PingTimeout
	if timeout <= 0 {
		timeout = defaultPingTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
