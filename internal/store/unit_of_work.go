package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/majorsigma/greenbasket-backend/internal/logger"
)

// unitOfWork is the transaction-backed implementation of [UnitOfWork].
//
// A unit of work is acquired with [DB.Begin], hands out repositories bound to
// its transaction via Accounts, and must end with exactly one of
// Commit or Rollback. Commit is ALWAYS explicit at call sites; nothing
// commits on clean exit. The idiomatic shape is:
//
//	uow, err := db.Begin(ctx)
//	if err != nil { ... }
//	defer uow.Close()
//
//	accounts := uow.Accounts()
//	// reads and writes against accounts ...
//
//	if err := uow.Commit(); err != nil { ... }
//
// The deferred Close rolls back any transaction that was not committed, so
// every failure path releases the session with its pending writes discarded.
type unitOfWork struct {
	tx     *sql.Tx
	logger *logger.Logger
	done   bool
}

// Begin opens a new transaction and returns the [UnitOfWork] scoped to it.
func (db *DB) Begin(ctx context.Context) (UnitOfWork, error) {
	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*DB.Begin").Msg("failed to begin transaction")
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	return &unitOfWork{
		tx:     tx,
		logger: db.logger,
	}, nil
}

// Accounts returns an [AccountRepository] bound to this unit of work.
// All operations on the returned repository share the scope's transaction
// and become visible to other sessions only after Commit.
func (u *unitOfWork) Accounts() AccountRepository {
	return NewAccountRepository(u.tx, u.logger)
}

// Commit makes all pending writes of this scope durable and ends it.
func (u *unitOfWork) Commit() error {
	if u.done {
		return sql.ErrTxDone
	}

	if err := u.tx.Commit(); err != nil {
		u.logger.Err(err).Str("func", "*unitOfWork.Commit").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	u.done = true
	return nil
}

// Rollback discards all pending writes of this scope and ends it.
func (u *unitOfWork) Rollback() error {
	if u.done {
		return sql.ErrTxDone
	}

	u.done = true
	return u.tx.Rollback()
}

// Close releases the unit of work. If neither Commit nor Rollback has been
// called yet, the transaction is rolled back. Close is safe to defer
// unconditionally right after Begin.
func (u *unitOfWork) Close() {
	if u.done {
		return
	}

	u.done = true
	if err := u.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		u.logger.Err(err).Str("func", "*unitOfWork.Close").Msg("failed to roll back transaction")
	}
}
