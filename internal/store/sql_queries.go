package store

import (
	"github.com/Masterminds/squirrel"

	"github.com/majorsigma/greenbasket-backend/models"
)

// accountColumns is the canonical column list of the accounts table. Every
// SELECT and RETURNING clause uses this order; scanAccount depends on it.
const accountColumns = `id, username, email, password_hash, date_of_birth, is_active, is_online, is_2fa_enabled, is_verified, address, lga, state, created_at, updated_at`

const (
	insertAccount = `INSERT INTO accounts (id, username, email, password_hash, date_of_birth, address)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING ` + accountColumns + `;`

	findAccountByEmail = `SELECT ` + accountColumns + `
    FROM accounts
    WHERE email = $1;`

	findAccountByUsername = `SELECT ` + accountColumns + `
    FROM accounts
    WHERE username = $1;`

	findAccountByID = `SELECT ` + accountColumns + `
    FROM accounts
    WHERE id = $1;`

	listAllAccounts = `SELECT ` + accountColumns + `
    FROM accounts
    ORDER BY created_at;`

	deleteAccount = `DELETE FROM accounts
    WHERE id = $1;`
)

// buildAccountUpdate builds the UPDATE statement persisting all mutable
// fields of an account. updated_at is refreshed server-side so that the
// updated_at >= created_at invariant never depends on caller clocks.
// The statement returns the canonical row via RETURNING; zero matched rows
// surface as sql.ErrNoRows at scan time.
func buildAccountUpdate(account models.Account) (string, []any, error) {
	return squirrel.Update(account.TableName()).
		Set("username", account.Username).
		Set("password_hash", account.PasswordHash).
		Set("date_of_birth", account.DateOfBirth).
		Set("is_active", account.IsActive).
		Set("is_online", account.IsOnline).
		Set("is_2fa_enabled", account.Is2FAEnabled).
		Set("is_verified", account.IsVerified).
		Set("address", account.Address).
		Set("lga", account.LGA).
		Set("state", account.State).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": account.ID}).
		Suffix("RETURNING " + accountColumns).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}
