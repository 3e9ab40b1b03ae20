package database

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"

	"rentalhub/internal/domain"
	"rentalhub/internal/logger"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Models lists every table in dependency order.
func Models() []any {
	return []any{
		&domain.User{},
		&domain.Category{},
		&domain.Item{},
		&domain.Customer{},
		&domain.Rental{},
		&domain.Payment{},
		&domain.Expense{},
		&domain.Maintenance{},
	}
}

func AutoMigrate(db *gorm.DB) error {
	for _, m := range Models() {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("automigrate %T: %w", m, err)
		}
	}
	return nil
}

// Migrate applies the embedded SQL migrations on postgres when useSQL is
// set, and falls back to AutoMigrate otherwise.
func Migrate(db *gorm.DB, dsn string, useSQL bool) error {
	if !useSQL {
		return AutoMigrate(db)
	}
	if DialectOf(dsn) != DialectPostgres {
		logger.Warn("sql migrations are postgres only, using automigrate", "dialect", DialectOf(dsn))
		return AutoMigrate(db)
	}
	return runSQLMigrations(dsn)
}

func runSQLMigrations(dsn string) error {
	src, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return err
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, dsn)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("sql migrations failed: %w", err)
	}
	version, dirty, _ := m.Version()
	logger.Info("sql migrations applied", "version", version, "dirty", dirty)
	return nil
}
