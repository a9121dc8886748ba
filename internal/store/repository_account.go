package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/majorsigma/greenbasket-backend/internal/logger"
	"github.com/majorsigma/greenbasket-backend/models"
)

// accountRepository is the PostgreSQL-backed implementation of
// [AccountRepository]. It runs every statement against the [Querier] it was
// constructed with, either the shared pool or one unit-of-work transaction.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type accountRepository struct {
	logger *logger.Logger
	q      Querier
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided querying scope and logger.
func NewAccountRepository(q Querier, logger *logger.Logger) AccountRepository {
	return &accountRepository{
		q:      q,
		logger: logger,
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (models.Account, error) {
	var account models.Account
	err := row.Scan(
		&account.ID,
		&account.Username,
		&account.Email,
		&account.PasswordHash,
		&account.DateOfBirth,
		&account.IsActive,
		&account.IsOnline,
		&account.Is2FAEnabled,
		&account.IsVerified,
		&account.Address,
		&account.LGA,
		&account.State,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	return account, err
}

// Insert persists a new account record and returns the fully populated
// [models.Account] with server-assigned fields (CreatedAt, UpdatedAt and the
// flag defaults).
//
// The INSERT uses the [insertAccount] prepared query which returns all
// columns via a RETURNING clause, so the caller receives the canonical
// database representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *accountRepository) Insert(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	row := r.q.QueryRowContext(ctx, insertAccount,
		account.ID, account.Username, account.Email, account.PasswordHash, account.DateOfBirth, account.Address)

	// create account in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*accountRepository.Insert").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Account{}, ErrEmailAlreadyExists
		default:
			return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// scan saved account from db
	saved, err := scanAccount(row)
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Account{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*accountRepository.Insert").Msg("error: scanning error")
		return models.Account{}, err
	}

	return saved, nil
}

// FindByEmail retrieves the account whose email matches exactly
// (case-sensitive). Returns [ErrAccountNotFound] for an empty result set.
func (r *accountRepository) FindByEmail(ctx context.Context, email string) (models.Account, error) {
	return r.findOne(ctx, "*accountRepository.FindByEmail", findAccountByEmail, email)
}

// FindByUsername retrieves the account whose username matches exactly.
// Usernames are not unique at the storage layer; when several rows match,
// the first one is returned.
func (r *accountRepository) FindByUsername(ctx context.Context, username string) (models.Account, error) {
	return r.findOne(ctx, "*accountRepository.FindByUsername", findAccountByUsername, username)
}

// FindByID retrieves the account with the given opaque identifier.
// Returns [ErrAccountNotFound] for an empty result set.
func (r *accountRepository) FindByID(ctx context.Context, id string) (models.Account, error) {
	return r.findOne(ctx, "*accountRepository.FindByID", findAccountByID, id)
}

func (r *accountRepository) findOne(ctx context.Context, caller, query string, arg any) (models.Account, error) {
	log := logger.FromContext(ctx)

	row := r.q.QueryRowContext(ctx, query, arg)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", caller).Msg("error: row is nil")
		return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	account, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrAccountNotFound
		}
		log.Err(err).Str("func", caller).Msg("error: scanning error")
		return models.Account{}, err
	}

	return account, nil
}

// ListAll returns every account ordered by creation time.
func (r *accountRepository) ListAll(ctx context.Context) ([]models.Account, error) {
	log := logger.FromContext(ctx)

	rows, err := r.q.QueryContext(ctx, listAllAccounts)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.ListAll").Msg("error executing list query")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	accounts := make([]models.Account, 0)
	for rows.Next() {
		account, scanErr := scanAccount(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*accountRepository.ListAll").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		accounts = append(accounts, account)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*accountRepository.ListAll").Msg("error iterating rows")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return accounts, nil
}

// Update persists all mutable fields of the account and refreshes updated_at
// server-side. Returns the canonical post-update row.
//
// Error handling:
//   - No row matched the account id → [ErrAccountNotFound].
//   - Query construction failure → wrapped [ErrBuildingSQLQuery].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *accountRepository) Update(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildAccountUpdate(account)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.Update").Msg("error building update query")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.q.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*accountRepository.Update").Msg("error: row is nil")
		return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	updated, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrAccountNotFound
		}
		log.Err(err).Str("func", "*accountRepository.Update").Msg("error: scanning error")
		return models.Account{}, err
	}

	return updated, nil
}

// Delete permanently removes the account with the given id. There is no
// soft-delete; a deleted record is gone.
//
// Returns [ErrAccountNotFound] when no row matched.
func (r *accountRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	result, err := r.q.ExecContext(ctx, deleteAccount, id)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.Delete").Msg("error executing delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.Delete").Msg("error reading rows affected")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		return ErrAccountNotFound
	}

	return nil
}
