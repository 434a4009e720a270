// Package repomanager vends repository implementations for the SQL dialect
// behind a store location.
package repomanager

import (
	"fmt"

	"github.com/dmitrijs2005/mordor-tools/internal/common"
	"github.com/dmitrijs2005/mordor-tools/internal/dbx"
	"github.com/dmitrijs2005/mordor-tools/internal/repositories/users"
)

type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
}

// SQLiteRepositoryManager vends SQLite-backed repositories.
type SQLiteRepositoryManager struct{}

// Users returns a users.Repository bound to the provided DBTX.
func (m *SQLiteRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLiteRepository(db)
}

// PostgresRepositoryManager vends PostgreSQL-backed repositories.
type PostgresRepositoryManager struct{}

// Users returns a users.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

// ForDialect returns the manager for d.
func ForDialect(d dbx.Dialect) (RepositoryManager, error) {
	switch d {
	case dbx.DialectSQLite:
		return &SQLiteRepositoryManager{}, nil
	case dbx.DialectPostgres:
		return &PostgresRepositoryManager{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", common.ErrUnsupportedDialect, d)
	}
}
