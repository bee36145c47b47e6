package repomanager

import (
	"context"
	"database/sql"

	"github.com/freshdeal/account-service/internal/dbx"
	"github.com/freshdeal/account-service/internal/server/repositories/accounts"
	"github.com/freshdeal/account-service/internal/server/repositories/attempts"
)

// RepositoryManager vends repository implementations bound to a DBTX, so a
// request handler can run several repositories on the same transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Accounts(db dbx.DBTX) accounts.Repository
	Attempts(db dbx.DBTX) attempts.Repository
}
