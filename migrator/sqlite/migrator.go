package sqlite

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/GuiaBolso/darwin"
	"github.com/diegoclair/sqlmigrator"
)

const migrationsDir = "sql"

//go:embed sql/*.sql
var migrationFiles embed.FS

// Migrate brings the sent reminders log up to the latest schema. Files are
// applied in name order and each one only once.
func Migrate(db *sql.DB) error {
	migrator := sqlmigrator.New(db, darwin.SqliteDialect{})

	if err := migrator.Migrate(migrationFiles, migrationsDir); err != nil {
		return fmt.Errorf("failed to migrate sent reminders schema: %w", err)
	}
	return nil
}
