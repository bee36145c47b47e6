package accounts

import (
	"context"

	"github.com/freshdeal/account-service/internal/server/models"
)

// Repository is the UserAccount persistence contract. Implementations are
// bound to a DBTX so the same methods run inside or outside a transaction.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByUUID(ctx context.Context, uuid string) (*models.User, error)
	// Update persists every mutable field of the row identified by user.ID.
	Update(ctx context.Context, user *models.User) error
}
