package dbx

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Dialect names the SQL flavour behind a store location.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// driverName maps a dialect to its registered database/sql driver.
func (d Dialect) driverName() string {
	switch d {
	case DialectPostgres:
		return "pgx"
	default:
		return "sqlite"
	}
}

// DetectDialect classifies a store location. postgres:// and postgresql://
// URLs are PostgreSQL DSNs; everything else is a SQLite database file,
// optionally written as sqlite://<path>.
func DetectDialect(location string) Dialect {
	l := strings.ToLower(location)
	if strings.HasPrefix(l, "postgres://") || strings.HasPrefix(l, "postgresql://") {
		return DialectPostgres
	}
	return DialectSQLite
}

func dataSourceName(d Dialect, location string) string {
	if d == DialectSQLite {
		return strings.TrimPrefix(location, "sqlite://")
	}
	return location
}

// Open connects to the store at location and pings it, so a store that
// cannot be opened fails here rather than on the first statement.
// The caller owns the returned *sql.DB and must close it.
func Open(ctx context.Context, location string) (*sql.DB, Dialect, error) {
	d := DetectDialect(location)

	db, err := sql.Open(d.driverName(), dataSourceName(d, location))
	if err != nil {
		return nil, d, fmt.Errorf("db open error: %w", err)
	}

	// one statement per run; a single connection is all we ever use
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, d, fmt.Errorf("db open error: %w", err)
	}

	return db, d, nil
}
