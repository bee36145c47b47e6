package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/freshdeal/account-service/internal/common"
	"github.com/freshdeal/account-service/internal/dbx"
	"github.com/freshdeal/account-service/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const userColumns = `id, uuid, email, password_hash, password_last_changed_at,
	failed_login_attempts, account_locked_until, first_name, last_name,
	gender, date_of_birth, created_at, updated_at, last_login,
	last_activity_at, email_verified, user_status`

func scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID, &user.UUID, &user.Email, &user.PasswordHash, &user.PasswordLastChangedAt,
		&user.FailedLoginAttempts, &user.AccountLockedUntil, &user.FirstName, &user.LastName,
		&user.Gender, &user.DateOfBirth, &user.CreatedAt, &user.UpdatedAt, &user.LastLogin,
		&user.LastActivityAt, &user.EmailVerified, &user.Status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (uuid, email, password_hash, password_last_changed_at,
		     first_name, last_name, gender, date_of_birth,
		     created_at, updated_at, email_verified, user_status)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.UUID, user.Email, user.PasswordHash, user.PasswordLastChangedAt,
		user.FirstName, user.LastName, user.Gender, user.DateOfBirth,
		user.CreatedAt, user.UpdatedAt, user.EmailVerified, user.Status).Scan(&user.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	return scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *PostgresRepository) FindByUUID(ctx context.Context, uuid string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE uuid = $1`

	return scanUser(r.db.QueryRowContext(ctx, query, uuid))
}

func (r *PostgresRepository) Update(ctx context.Context, user *models.User) error {

	query :=
		`UPDATE users
		 SET email = $1, password_hash = $2, password_last_changed_at = $3,
		     failed_login_attempts = $4, account_locked_until = $5,
		     updated_at = $6, last_login = $7, last_activity_at = $8,
		     email_verified = $9, user_status = $10
		 WHERE id = $11
		 `

	res, err := r.db.ExecContext(ctx, query,
		user.Email, user.PasswordHash, user.PasswordLastChangedAt,
		user.FailedLoginAttempts, user.AccountLockedUntil,
		user.UpdatedAt, user.LastLogin, user.LastActivityAt,
		user.EmailVerified, user.Status, user.ID)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
