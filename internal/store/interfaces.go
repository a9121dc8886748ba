package store

import (
	"context"
	"database/sql"

	"github.com/majorsigma/greenbasket-backend/models"
)

// AccountRepository is the persistence contract for [models.Account] records.
// A repository instance is always bound to one querying scope: either the
// shared connection pool or a single unit-of-work transaction obtained via
// [DB.Begin].
type AccountRepository interface {
	FindByEmail(ctx context.Context, email string) (models.Account, error)
	FindByUsername(ctx context.Context, username string) (models.Account, error)
	FindByID(ctx context.Context, id string) (models.Account, error)
	ListAll(ctx context.Context) ([]models.Account, error)
	Insert(ctx context.Context, account models.Account) (models.Account, error)
	Update(ctx context.Context, account models.Account) (models.Account, error)
	Delete(ctx context.Context, id string) error
}

// UnitOfWork scopes one logical operation to a single database transaction.
// It hands out repositories bound to its transaction and must end with
// exactly one of Commit or Rollback. Close rolls back anything uncommitted
// and is safe to defer unconditionally right after Begin.
type UnitOfWork interface {
	Accounts() AccountRepository
	Commit() error
	Rollback() error
	Close()
}

// TxStarter opens unit-of-work transactions. Implemented by [DB]; services
// depend on this interface so tests can substitute an in-memory double.
type TxStarter interface {
	Begin(ctx context.Context) (UnitOfWork, error)
}

// Querier abstracts the subset of database/sql operations shared by *sql.DB
// and *sql.Tx, so a repository can run either against the pool or inside a
// unit of work without knowing which.
type Querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. Implemented by [PostgresErrorClassifier].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
