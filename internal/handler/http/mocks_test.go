package http

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/majorsigma/greenbasket-backend/internal/logger"
	"github.com/majorsigma/greenbasket-backend/internal/service"
	"github.com/majorsigma/greenbasket-backend/models"
)

// ─────────────────────────────────────────────
// Mock AccountService
// ─────────────────────────────────────────────

// mockAccountService implements service.AccountService for unit tests.
// Each method field can be overridden per test case.
type mockAccountService struct {
	registerFn      func(ctx context.Context, req models.RegisterRequest) (models.Account, error)
	getByEmailFn    func(ctx context.Context, email string) (models.Account, error)
	listAccountsFn  func(ctx context.Context) ([]models.AccountView, error)
	setVerifiedFn   func(ctx context.Context, email string) (bool, error)
	setLocationFn   func(ctx context.Context, email string, loc models.LocationUpdate) (models.Account, error)
	updateProfileFn func(ctx context.Context, email string, upd models.ProfileUpdate) (models.Account, error)
	toggleOnlineFn  func(ctx context.Context, id string, online bool) (bool, error)
	deleteFn        func(ctx context.Context, id string) (bool, error)
}

func (m *mockAccountService) Register(ctx context.Context, req models.RegisterRequest) (models.Account, error) {
	return m.registerFn(ctx, req)
}

func (m *mockAccountService) GetByEmail(ctx context.Context, email string) (models.Account, error) {
	return m.getByEmailFn(ctx, email)
}

func (m *mockAccountService) ListAccounts(ctx context.Context) ([]models.AccountView, error) {
	return m.listAccountsFn(ctx)
}

func (m *mockAccountService) SetVerified(ctx context.Context, email string) (bool, error) {
	return m.setVerifiedFn(ctx, email)
}

func (m *mockAccountService) SetLocation(ctx context.Context, email string, loc models.LocationUpdate) (models.Account, error) {
	return m.setLocationFn(ctx, email, loc)
}

func (m *mockAccountService) UpdateProfile(ctx context.Context, email string, upd models.ProfileUpdate) (models.Account, error) {
	return m.updateProfileFn(ctx, email, upd)
}

func (m *mockAccountService) ToggleOnline(ctx context.Context, id string, online bool) (bool, error) {
	return m.toggleOnlineFn(ctx, id, online)
}

func (m *mockAccountService) Delete(ctx context.Context, id string) (bool, error) {
	return m.deleteFn(ctx, id)
}

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

type mockAuthService struct {
	authenticateFn        func(ctx context.Context, email, password string) (models.Account, error)
	loginFn               func(ctx context.Context, email, password string) (models.Token, models.Account, error)
	createTokenFn         func(ctx context.Context, account models.Account) (models.Token, error)
	parseTokenFn          func(ctx context.Context, tokenString string) (models.Token, error)
	requestVerificationFn func(ctx context.Context, email string) error
	confirmVerificationFn func(ctx context.Context, email, code string) (bool, error)
}

func (m *mockAuthService) Authenticate(ctx context.Context, email, password string) (models.Account, error) {
	return m.authenticateFn(ctx, email, password)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.Token, models.Account, error) {
	return m.loginFn(ctx, email, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, account models.Account) (models.Token, error) {
	return m.createTokenFn(ctx, account)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) RequestVerification(ctx context.Context, email string) error {
	return m.requestVerificationFn(ctx, email)
}

func (m *mockAuthService) ConfirmVerification(ctx context.Context, email, code string) (bool, error) {
	return m.confirmVerificationFn(ctx, email, code)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler with the given service mocks.
func newTestHandler(t *testing.T, accounts service.AccountService, auth service.AuthService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AccountService: accounts,
		AuthService:    auth,
	}
	return NewHandler(svcs, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// stubToken returns a models.Token with the given signed string and email.
func stubToken(signed, email string) models.Token {
	return models.Token{SignedString: signed, Email: email}
}

// validRegisterRequest is a convenience fixture used across multiple tests.
var validRegisterRequest = models.RegisterRequest{
	Username:    "jane",
	Password:    "s3cr3t-passw0rd",
	Email:       "jane@example.com",
	DateOfBirth: "31/12/1990",
}
