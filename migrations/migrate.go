package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql
var remoteMigrations embed.FS

//go:embed sqlite/*.sql
var localMigrations embed.FS

var ErrNilDB = errors.New("db is nil")

// goose keeps the base FS and dialect in package state.
var gooseMu sync.Mutex

// Migrate applies the server schema to a Postgres database opened with the
// pgx stdlib driver.
func Migrate(db *sql.DB) error {
	return up(db, remoteMigrations, "pgx", "postgres")
}

// MigrateLocal applies the client schema to a SQLite database.
func MigrateLocal(db *sql.DB) error {
	return up(db, localMigrations, "sqlite3", "sqlite")
}

func up(db *sql.DB, fsys embed.FS, dialect, dir string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(fsys)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
