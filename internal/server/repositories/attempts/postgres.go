package attempts

import (
	"context"
	"fmt"

	"github.com/freshdeal/account-service/internal/dbx"
	"github.com/freshdeal/account-service/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]*models.FailedAttempt, error) {

	query :=
		`SELECT id, user_id, failed_at, expires_at FROM user_login_attempts
		 WHERE user_id = $1
		 ORDER BY failed_at
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.FailedAttempt
	for rows.Next() {
		a := &models.FailedAttempt{}
		if err := rows.Scan(&a.ID, &a.UserID, &a.FailedAt, &a.ExpiresAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Create(ctx context.Context, attempt *models.FailedAttempt) error {

	query :=
		`INSERT INTO user_login_attempts (user_id, failed_at, expires_at)
         VALUES ($1, $2, $3)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		attempt.UserID, attempt.FailedAt, attempt.ExpiresAt).Scan(&attempt.ID)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {

	query := `DELETE FROM user_login_attempts WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
