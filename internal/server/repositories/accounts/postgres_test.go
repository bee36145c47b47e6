package accounts

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/freshdeal/account-service/internal/common"
	"github.com/freshdeal/account-service/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func sampleUser() *models.User {
	return &models.User{
		UUID:         "b6f7aa2c-52cd-4e5b-9a81-0a3579ff4f44",
		Email:        "jane@example.com",
		PasswordHash: "$2a$10$hash",
		FirstName:    "Jane",
		LastName:     "Doe",
		Gender:       "female",
		DateOfBirth:  "1990-04-12",
		CreatedAt:    1718000000,
		UpdatedAt:    1718000000,
		Status:       models.StatusUnverified,
	}
}

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "uuid", "email", "password_hash", "password_last_changed_at",
		"failed_login_attempts", "account_locked_until", "first_name", "last_name",
		"gender", "date_of_birth", "created_at", "updated_at", "last_login",
		"last_activity_at", "email_verified", "user_status",
	})
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*INSERT\s+INTO\s+users\s*\(.*\)\s*VALUES\s*\(\$1.*\$12\)\s*RETURNING\s+id\s*$`

	mock.ExpectQuery(q).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	got, err := repo.Create(context.Background(), sampleUser())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 42 {
		t.Fatalf("expected assigned id 42, got %d", got.ID)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)INSERT\s+INTO\s+users`).
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), sampleUser())
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestFindByEmail_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+.*\s+FROM\s+users\s+WHERE\s+email\s*=\s*\$1\s*$`

	rows := userRows().AddRow(
		int64(7), "b6f7aa2c-52cd-4e5b-9a81-0a3579ff4f44", "jane@example.com", "$2a$10$hash", int64(0),
		2, int64(0), "Jane", "Doe",
		"female", "1990-04-12", int64(1718000000), int64(1718000000), int64(0),
		int64(0), true, "Active",
	)
	mock.ExpectQuery(q).WithArgs("jane@example.com").WillReturnRows(rows)

	got, err := repo.FindByEmail(context.Background(), "jane@example.com")
	if err != nil {
		t.Fatalf("FindByEmail error: %v", err)
	}
	if got.ID != 7 || got.Email != "jane@example.com" {
		t.Fatalf("unexpected user: %+v", got)
	}
	if got.Status != models.StatusActive || got.FailedLoginAttempts != 2 {
		t.Fatalf("unexpected scan: %+v", got)
	}
}

func TestFindByEmail_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)SELECT\s+.*FROM\s+users\s+WHERE\s+email`).
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByEmail(context.Background(), "ghost@example.com")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestFindByUUID_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+.*\s+FROM\s+users\s+WHERE\s+uuid\s*=\s*\$1\s*$`

	rows := userRows().AddRow(
		int64(7), "b6f7aa2c-52cd-4e5b-9a81-0a3579ff4f44", "jane@example.com", "$2a$10$hash", int64(0),
		0, int64(0), "Jane", "Doe",
		"female", "1990-04-12", int64(1718000000), int64(1718000000), int64(0),
		int64(0), true, "Active",
	)
	mock.ExpectQuery(q).WithArgs("b6f7aa2c-52cd-4e5b-9a81-0a3579ff4f44").WillReturnRows(rows)

	got, err := repo.FindByUUID(context.Background(), "b6f7aa2c-52cd-4e5b-9a81-0a3579ff4f44")
	if err != nil {
		t.Fatalf("FindByUUID error: %v", err)
	}
	if got.UUID != "b6f7aa2c-52cd-4e5b-9a81-0a3579ff4f44" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestUpdate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*UPDATE\s+users\s+SET\s+.*WHERE\s+id\s*=\s*\$11\s*$`

	mock.ExpectExec(q).WillReturnResult(sqlmock.NewResult(0, 1))

	u := sampleUser()
	u.ID = 7
	if err := repo.Update(context.Background(), u); err != nil {
		t.Fatalf("Update error: %v", err)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)UPDATE\s+users\s+SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	u := sampleUser()
	u.ID = 99
	if err := repo.Update(context.Background(), u); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestUpdate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)UPDATE\s+users\s+SET`).
		WillReturnError(errors.New("db down"))

	u := sampleUser()
	u.ID = 7
	err := repo.Update(context.Background(), u)
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
