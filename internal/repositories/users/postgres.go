package users

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/mordor-tools/internal/dbx"
	"github.com/dmitrijs2005/mordor-tools/internal/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create uses RETURNING because pgx does not implement LastInsertId.
func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (int64, error) {

	query :=
		`INSERT INTO basic_login_user (username, password)
		 VALUES ($1, $2)
		 RETURNING id
		 `

	var id int64
	err := r.db.QueryRowContext(ctx, query, user.Username, user.PasswordHash).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	user.ID = id
	return id, nil
}
