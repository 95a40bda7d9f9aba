package migration

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/gorm"

	"fieldserve/internal/shared/logger"
)

// Runner applies versioned SQL migrations from a directory. It reuses the
// already-open GORM connection instead of opening a second one.
type Runner struct {
	scriptsPath string
	logger      logger.Interface
}

func NewRunner(scriptsPath string, log logger.Interface) *Runner {
	return &Runner{
		scriptsPath: scriptsPath,
		logger:      log,
	}
}

func (r *Runner) instance(db *gorm.DB) (*migrate.Migrate, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	driver, err := migratemysql.WithInstance(sqlDB, &migratemysql.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+r.scriptsPath, "mysql", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrator: %w", err)
	}

	return m, nil
}

// Up applies all pending migrations.
func (r *Runner) Up(db *gorm.DB) error {
	m, err := r.instance(db)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			r.logger.Infow("no pending migrations")
			return nil
		}
		return fmt.Errorf("migration up failed: %w", err)
	}

	return nil
}

// Down rolls back the given number of migrations.
func (r *Runner) Down(db *gorm.DB, steps int) error {
	if steps <= 0 {
		steps = 1
	}

	m, err := r.instance(db)
	if err != nil {
		return err
	}

	if err := m.Steps(-steps); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			r.logger.Infow("nothing to roll back")
			return nil
		}
		return fmt.Errorf("migration down failed: %w", err)
	}

	return nil
}

// Version returns the current schema version and whether the database is
// in a dirty state from a failed migration.
func (r *Runner) Version(db *gorm.DB) (uint, bool, error) {
	m, err := r.instance(db)
	if err != nil {
		return 0, false, err
	}

	version, dirty, err := m.Version()
	if err != nil {
		if errors.Is(err, migrate.ErrNilVersion) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to read migration version: %w", err)
	}

	return version, dirty, nil
}

// Force pins the schema version without running migrations. Used to
// recover from a dirty state after a failed migration was fixed by hand.
func (r *Runner) Force(db *gorm.DB, version int) error {
	m, err := r.instance(db)
	if err != nil {
		return err
	}

	if err := m.Force(version); err != nil {
		return fmt.Errorf("failed to force migration version: %w", err)
	}

	return nil
}
