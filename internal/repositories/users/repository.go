// Package users persists seeded accounts in the users table.
package users

import (
	"context"

	"github.com/dmitrijs2005/accountseed/internal/models"
)

// Repository is the storage contract for seeded users. Implementations are
// bound to a dbx.DBTX, so the same code runs inside or outside a transaction.
type Repository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
}
