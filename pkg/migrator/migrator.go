package migrator

import (
	"database/sql"
	"fmt"
	"io/fs"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
)

// Run runs all pending goose migrations from files against the given open
// database. dialect is a goose dialect name ("sqlite3" or "postgres").
func Run(db *sql.DB, dialect string, files fs.FS, dir string) error {
	goose.SetBaseFS(files)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("failed to up migrations: %w", err)
	}
	return nil
}

// RunPostgres opens a pgx connection to dbURL and applies the postgres
// migrations rooted at dir within files.
func RunPostgres(dbURL string, files fs.FS, dir string) error {
	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close() //nolint:errcheck

	return Run(db, "postgres", files, dir)
}
