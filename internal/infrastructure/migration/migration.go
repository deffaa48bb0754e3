// Package migration runs schema migrations with goose. Migration scripts are
// embedded so the binary carries its own schema.
package migration

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/VELIFZ/mechanicshop-api/internal/shared/logger"
)

//go:embed scripts/*.sql
var embedMigrations embed.FS

type Migrator struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewMigrator(db *gorm.DB, log logger.Interface) *Migrator {
	return &Migrator{db: db, logger: log}
}

func (m *Migrator) prepare() (*sql.DB, error) {
	db, err := m.db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("mysql"); err != nil {
		return nil, fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return db, nil
}

// Up applies all pending migrations.
func (m *Migrator) Up() error {
	db, err := m.prepare()
	if err != nil {
		return err
	}

	currentVersion, err := goose.GetDBVersion(db)
	if err != nil {
		return fmt.Errorf("failed to get current version: %w", err)
	}

	if err := goose.Up(db, "scripts"); err != nil {
		m.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	finalVersion, err := goose.GetDBVersion(db)
	if err != nil {
		return fmt.Errorf("failed to get final version: %w", err)
	}

	m.logger.Infow("migration completed",
		"from_version", currentVersion,
		"to_version", finalVersion)
	return nil
}

// Down rolls back the given number of migrations.
func (m *Migrator) Down(steps int) error {
	db, err := m.prepare()
	if err != nil {
		return err
	}

	for i := 0; i < steps; i++ {
		if err := goose.Down(db, "scripts"); err != nil {
			m.logger.Errorw("down migration failed", "error", err)
			return fmt.Errorf("failed to run down migration: %w", err)
		}
	}

	m.logger.Infow("down migration completed", "steps", steps)
	return nil
}

// Status prints the per-script migration status.
func (m *Migrator) Status() error {
	db, err := m.prepare()
	if err != nil {
		return err
	}

	if err := goose.Status(db, "scripts"); err != nil {
		return fmt.Errorf("failed to get migration status: %w", err)
	}
	return nil
}

// Version returns the current schema version.
func (m *Migrator) Version() (int64, error) {
	db, err := m.prepare()
	if err != nil {
		return 0, err
	}

	version, err := goose.GetDBVersion(db)
	if err != nil {
		return 0, fmt.Errorf("failed to get version: %w", err)
	}
	return version, nil
}
