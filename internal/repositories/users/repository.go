package users

import (
	"context"

	"github.com/dmitrijs2005/mordor-tools/internal/models"
)

// Repository persists credential records.
//
// Create inserts exactly one row and returns the identifier the store
// assigned to it. Store errors, including unique-constraint violations on
// username, are returned wrapped but otherwise untouched.
type Repository interface {
	Create(ctx context.Context, user *models.User) (int64, error)
}
