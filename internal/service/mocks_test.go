package service

import (
	"context"
	"time"

	"github.com/majorsigma/greenbasket-backend/internal/store"
	"github.com/majorsigma/greenbasket-backend/models"
)

// ─────────────────────────────────────────────
// Mock: store.AccountRepository
// ─────────────────────────────────────────────

type mockAccountRepository struct {
	findByEmailFn    func(ctx context.Context, email string) (models.Account, error)
	findByUsernameFn func(ctx context.Context, username string) (models.Account, error)
	findByIDFn       func(ctx context.Context, id string) (models.Account, error)
	listAllFn        func(ctx context.Context) ([]models.Account, error)
	insertFn         func(ctx context.Context, account models.Account) (models.Account, error)
	updateFn         func(ctx context.Context, account models.Account) (models.Account, error)
	deleteFn         func(ctx context.Context, id string) error
}

func (m *mockAccountRepository) FindByEmail(ctx context.Context, email string) (models.Account, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return models.Account{}, store.ErrAccountNotFound
}

func (m *mockAccountRepository) FindByUsername(ctx context.Context, username string) (models.Account, error) {
	if m.findByUsernameFn != nil {
		return m.findByUsernameFn(ctx, username)
	}
	return models.Account{}, store.ErrAccountNotFound
}

func (m *mockAccountRepository) FindByID(ctx context.Context, id string) (models.Account, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return models.Account{}, store.ErrAccountNotFound
}

func (m *mockAccountRepository) ListAll(ctx context.Context) ([]models.Account, error) {
	if m.listAllFn != nil {
		return m.listAllFn(ctx)
	}
	return nil, nil
}

func (m *mockAccountRepository) Insert(ctx context.Context, account models.Account) (models.Account, error) {
	if m.insertFn != nil {
		return m.insertFn(ctx, account)
	}
	return account, nil
}

func (m *mockAccountRepository) Update(ctx context.Context, account models.Account) (models.Account, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, account)
	}
	return account, nil
}

func (m *mockAccountRepository) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.TxStarter / store.UnitOfWork
// ─────────────────────────────────────────────

type mockUnitOfWork struct {
	repo     store.AccountRepository
	commitFn func() error

	committed  bool
	rolledBack bool
	closed     bool
}

func (m *mockUnitOfWork) Accounts() store.AccountRepository { return m.repo }

func (m *mockUnitOfWork) Commit() error {
	if m.commitFn != nil {
		return m.commitFn()
	}
	m.committed = true
	return nil
}

func (m *mockUnitOfWork) Rollback() error {
	m.rolledBack = true
	return nil
}

func (m *mockUnitOfWork) Close() {
	m.closed = true
	if !m.committed {
		m.rolledBack = true
	}
}

type mockTxStarter struct {
	uow     *mockUnitOfWork
	beginFn func(ctx context.Context) (store.UnitOfWork, error)
}

func (m *mockTxStarter) Begin(ctx context.Context) (store.UnitOfWork, error) {
	if m.beginFn != nil {
		return m.beginFn(ctx)
	}
	return m.uow, nil
}

// newMockStore wires a repository mock into a unit of work and starter pair.
func newMockStore(repo *mockAccountRepository) (*mockTxStarter, *mockUnitOfWork) {
	uow := &mockUnitOfWork{repo: repo}
	return &mockTxStarter{uow: uow}, uow
}

// ─────────────────────────────────────────────
// Mock: CodeIssuer / mail.Sender
// ─────────────────────────────────────────────

type mockCodeIssuer struct {
	generateFn func(at time.Time) (string, error)
	verifyFn   func(code string, at time.Time) bool
	label      string
}

func (m *mockCodeIssuer) Generate(at time.Time) (string, error) {
	if m.generateFn != nil {
		return m.generateFn(at)
	}
	return "123456", nil
}

func (m *mockCodeIssuer) Verify(code string, at time.Time) bool {
	if m.verifyFn != nil {
		return m.verifyFn(code, at)
	}
	return false
}

func (m *mockCodeIssuer) Label() string { return m.label }

type mockSender struct {
	sendFn func(ctx context.Context, to, subject, body string) error

	sentTo      string
	sentSubject string
	sentBody    string
}

func (m *mockSender) Send(ctx context.Context, to, subject, body string) error {
	m.sentTo, m.sentSubject, m.sentBody = to, subject, body
	if m.sendFn != nil {
		return m.sendFn(ctx, to, subject, body)
	}
	return nil
}
