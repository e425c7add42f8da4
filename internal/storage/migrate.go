package storage

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// MigrateUp applies the up migrations in ascending order.
func MigrateUp(db *sql.DB) error {
	return applyMigrations(db, ".up.sql", false)
}

// MigrateDown applies the down migrations in reverse order, so later schema
// changes unwind before the ones they build on.
func MigrateDown(db *sql.DB) error {
	return applyMigrations(db, ".down.sql", true)
}

func applyMigrations(db *sql.DB, suffix string, reverse bool) error {
	entries, err := fs.Glob(migrationFiles, "migrations/*"+suffix)
	if err != nil {
		return fmt.Errorf("storage: glob migrations: %w", err)
	}
	sort.Strings(entries)
	if reverse {
		for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
			entries[i], entries[j] = entries[j], entries[i]
		}
	}
	for _, name := range entries {
		sqlBytes, readErr := migrationFiles.ReadFile(name)
		if readErr != nil {
			return fmt.Errorf("storage: read migration %s: %w", name, readErr)
		}
		if _, execErr := db.Exec(string(sqlBytes)); execErr != nil {
			return fmt.Errorf("storage: apply migration %s: %w", name, execErr)
		}
	}
	return nil
}
