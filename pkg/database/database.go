package database

import (
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	migrate "github.com/rubenv/sql-migrate"
	"github.com/uptrace/bun/driver/pgdriver"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// New opens the backing store and brings its schema up to date. With a
// DATABASE_URL it connects to Postgres; otherwise it falls back to a local
// SQLite file, which is all a single-process bot needs.
func New(pgURL, sqlitePath string) (*sql.DB, error) {
	db, dialect, err := open(pgURL, sqlitePath)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging %s database: %w", dialect, err)
	}

	migrations := &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrationFiles,
		Root:       "migrations",
	}
	n, err := migrate.Exec(db, dialect, migrations, migrate.Up)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("applying migrations: %w", err)
	}
	slog.Info("database ready", "dialect", dialect, "migrationsApplied", n)

	return db, nil
}

func open(pgURL, sqlitePath string) (*sql.DB, string, error) {
	if pgURL != "" {
		return sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(pgURL))), "postgres", nil
	}

	if dir := filepath.Dir(sqlitePath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, "", fmt.Errorf("creating database directory %q: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", sqlitePath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, "", fmt.Errorf("opening sqlite database at %q: %w", sqlitePath, err)
	}
	return db, "sqlite3", nil
}
