// Package storetest sets up throwaway SQLite stores for tests.
//
// The credential table is owned by the login server, not by the tools in this
// repository, so the schema lives here only as a fixture: migrations/ holds
// the server's basic_login_user contract (unique username, auto-increment id)
// and Migrate applies it with goose.
package storetest

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate applies the basic_login_user schema to a SQLite database.
func Migrate(ctx context.Context, db *sql.DB) error {
	fsys, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("migrations fs: %w", err)
	}

	p, err := goose.NewProvider(goose.DialectSQLite3, db, fsys)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}

	if _, err := p.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

// NewSQLiteFile creates a migrated database file in t.TempDir and returns its
// path. The file is closed again, so callers open it the way production does.
func NewSQLiteFile(t testing.TB) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "mordor.db")
	db := open(t, path)
	if err := db.Close(); err != nil {
		t.Fatalf("close fixture db: %v", err)
	}
	return path
}

// NewSQLite returns an open, migrated database backed by a temp file.
// It is closed on test cleanup.
func NewSQLite(t testing.TB) *sql.DB {
	t.Helper()

	db := open(t, filepath.Join(t.TempDir(), "mordor.db"))
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func open(t testing.TB, path string) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("sql.Open error: %v", err)
	}
	if err := Migrate(context.Background(), db); err != nil {
		_ = db.Close()
		t.Fatalf("migrate fixture db: %v", err)
	}
	return db
}

// CountUsers returns the number of rows in basic_login_user.
func CountUsers(t testing.TB, db *sql.DB) int {
	t.Helper()

	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM basic_login_user`).Scan(&n); err != nil {
		t.Fatalf("count users: %v", err)
	}
	return n
}

// PasswordOf returns the stored digest for username.
func PasswordOf(t testing.TB, db *sql.DB, username string) string {
	t.Helper()

	var digest string
	err := db.QueryRow(`SELECT password FROM basic_login_user WHERE username = ?`, username).Scan(&digest)
	if err != nil {
		t.Fatalf("select password for %q: %v", username, err)
	}
	return digest
}
