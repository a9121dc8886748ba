package service

import (
	"context"
	"time"

	"github.com/majorsigma/greenbasket-backend/models"
)

// AccountService applies account mutations. Every operation opens its own
// unit of work, commits explicitly on success and rolls back on any failure.
type AccountService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.Account, error)
	GetByEmail(ctx context.Context, email string) (models.Account, error)
	ListAccounts(ctx context.Context) ([]models.AccountView, error)

	SetVerified(ctx context.Context, email string) (bool, error)
	SetLocation(ctx context.Context, email string, loc models.LocationUpdate) (models.Account, error)
	UpdateProfile(ctx context.Context, email string, upd models.ProfileUpdate) (models.Account, error)
	ToggleOnline(ctx context.Context, id string, online bool) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// AuthService handles credential verification, JWT token lifecycle and the
// email verification-code workflow.
type AuthService interface {
	Authenticate(ctx context.Context, email, password string) (models.Account, error)
	Login(ctx context.Context, email, password string) (models.Token, models.Account, error)
	CreateToken(ctx context.Context, account models.Account) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	RequestVerification(ctx context.Context, email string) error
	ConfirmVerification(ctx context.Context, email, code string) (bool, error)
}

// CodeIssuer derives and checks time-windowed verification codes.
// Implemented by *otp.Generator.
type CodeIssuer interface {
	Generate(at time.Time) (string, error)
	Verify(code string, at time.Time) bool
	Label() string
}
