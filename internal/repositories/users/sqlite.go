package users

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/mordor-tools/internal/dbx"
	"github.com/dmitrijs2005/mordor-tools/internal/models"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO basic_login_user(username, password) VALUES(?, ?)`,
		user.Username, user.PasswordHash)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	user.ID = id
	return id, nil
}
