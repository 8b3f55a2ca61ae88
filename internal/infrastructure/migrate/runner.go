// Package migrate provides utilities for running database migrations.
package migrate

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file" // file source for migrations
)

type Config struct {
	DatabaseURL    string
	MigrationsPath string
}

type Runner struct {
	config *Config
}

func NewRunner(config *Config) *Runner {
	return &Runner{
		config: config,
	}
}

// withInstance opens the database, builds a migrate instance and hands it to
// fn, closing the connection afterwards.
func (r *Runner) withInstance(fn func(m *migrate.Migrate) error) error {
	db, err := sql.Open("postgres", r.config.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			fmt.Printf("Failed to close database connection: %v\n", closeErr)
		}
	}()

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", r.config.MigrationsPath),
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	return fn(m)
}

// Run executes all pending migrations.
func (r *Runner) Run() error {
	return r.withInstance(func(m *migrate.Migrate) error {
		if upErr := m.Up(); upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
			return fmt.Errorf("failed to run migrations: %w", upErr)
		}

		version, dirty, err := m.Version()
		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			return fmt.Errorf("failed to get version: %w", err)
		}
		if dirty {
			return fmt.Errorf("database is in dirty state at version %d", version)
		}

		return nil
	})
}

// Steps applies n migrations forward, or -n backward.
func (r *Runner) Steps(n int) error {
	return r.withInstance(func(m *migrate.Migrate) error {
		if err := m.Steps(n); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("failed to apply %d migration steps: %w", n, err)
		}
		return nil
	})
}

// Rollback rolls back the last migration.
func (r *Runner) Rollback() error {
	return r.Steps(-1)
}

// Version returns the current migration version.
func (r *Runner) Version() (uint, bool, error) {
	var version uint
	var dirty bool

	err := r.withInstance(func(m *migrate.Migrate) error {
		v, d, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to get version: %w", err)
		}
		version, dirty = v, d
		return nil
	})

	return version, dirty, err
}
