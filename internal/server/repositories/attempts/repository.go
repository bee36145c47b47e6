package attempts

import (
	"context"

	"github.com/freshdeal/account-service/internal/server/models"
)

// Repository stores failed-login records. Expired records are not filtered
// here: the lockout tracker sweeps them so the delete can be paired with the
// counter decrement in one transaction.
type Repository interface {
	ListByUser(ctx context.Context, userID int64) ([]*models.FailedAttempt, error)
	Create(ctx context.Context, attempt *models.FailedAttempt) error
	Delete(ctx context.Context, id int64) error
}
