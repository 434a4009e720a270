package users

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/mordor-tools/internal/models"
	"github.com/dmitrijs2005/mordor-tools/internal/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

func TestSQLiteCreate_FirstRowGetsIDOne(t *testing.T) {
	db := storetest.NewSQLite(t)
	r := NewSQLiteRepository(db)

	u := &models.User{Username: "alice", PasswordHash: "$argon2id$digest"}
	id, err := r.Create(context.Background(), u)
	require.NoError(t, err)

	assert.Equal(t, int64(1), id)
	assert.Equal(t, int64(1), u.ID)
	assert.Equal(t, 1, storetest.CountUsers(t, db))
	assert.Equal(t, "$argon2id$digest", storetest.PasswordOf(t, db, "alice"))
}

func TestSQLiteCreate_IDsIncrement(t *testing.T) {
	db := storetest.NewSQLite(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	id1, err := r.Create(ctx, &models.User{Username: "alice", PasswordHash: "h1"})
	require.NoError(t, err)
	id2, err := r.Create(ctx, &models.User{Username: "bob", PasswordHash: "h2"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), id1)
	assert.Equal(t, int64(2), id2)
}

func TestSQLiteCreate_DuplicateUsernameIsStoreError(t *testing.T) {
	db := storetest.NewSQLite(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	_, err := r.Create(ctx, &models.User{Username: "alice", PasswordHash: "h1"})
	require.NoError(t, err)

	_, err = r.Create(ctx, &models.User{Username: "alice", PasswordHash: "h2"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error")

	// the driver error is passed through, not translated
	var sqliteErr *sqlite.Error
	require.True(t, errors.As(err, &sqliteErr))
	assert.Equal(t, sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqliteErr.Code())

	assert.Equal(t, 1, storetest.CountUsers(t, db))
	assert.Equal(t, "h1", storetest.PasswordOf(t, db, "alice"))
}

func TestSQLiteCreate_ClosedDB(t *testing.T) {
	db := storetest.NewSQLite(t)
	r := NewSQLiteRepository(db)

	require.NoError(t, db.Close())

	_, err := r.Create(context.Background(), &models.User{Username: "alice", PasswordHash: "h"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error")
}

func TestSQLiteCreate_MissingTable(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+basic_login_user\(username,\s*password\)\s*VALUES\(\?,\s*\?\)$`
	mock.ExpectExec(q).
		WithArgs("alice", "h").
		WillReturnError(errors.New("no such table: basic_login_user"))

	_, err = NewSQLiteRepository(db).Create(context.Background(), &models.User{Username: "alice", PasswordHash: "h"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error: no such table")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteCreate_LastInsertIDError(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`INSERT\s+INTO\s+basic_login_user`).
		WithArgs("alice", "h").
		WillReturnResult(sqlmock.NewErrorResult(errors.New("no id")))

	u := &models.User{Username: "alice", PasswordHash: "h"}
	_, err = NewSQLiteRepository(db).Create(context.Background(), u)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error: no id")
	assert.Zero(t, u.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}
