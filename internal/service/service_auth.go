package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/majorsigma/greenbasket-backend/internal/config"
	"github.com/majorsigma/greenbasket-backend/internal/logger"
	"github.com/majorsigma/greenbasket-backend/internal/mail"
	"github.com/majorsigma/greenbasket-backend/internal/store"
	"github.com/majorsigma/greenbasket-backend/internal/utils"
	"github.com/majorsigma/greenbasket-backend/models"
)

// authService is the concrete implementation of AuthService.
// It handles credential verification, JWT token lifecycle and the email
// verification-code workflow, using a TxStarter for persistence, bcrypt for
// password comparison and a CodeIssuer for time-windowed one-time codes.
type authService struct {
	db store.TxStarter

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	codes  CodeIssuer
	sender mail.Sender

	// now is the clock used for code generation and verification.
	// Substitutable in tests.
	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given transaction
// starter, one-time code issuer and mail sender, with security parameters
// taken from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(db store.TxStarter, cfg config.App, codes CodeIssuer, sender mail.Sender, logger *logger.Logger) AuthService {
	return &authService{
		db:            db,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		codes:         codes,
		sender:        sender,
		now:           time.Now,
		logger:        logger,
	}
}

// Authenticate verifies the email/password pair and returns the matching
// account.
//
// Unknown email and wrong password both surface as ErrInvalidCredentials so
// the caller cannot probe which emails are registered. Unexpected storage
// failures propagate wrapped.
func (a *authService) Authenticate(ctx context.Context, email, password string) (models.Account, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		return models.Account{}, ErrInvalidCredentials
	}

	uow, err := a.db.Begin(ctx)
	if err != nil {
		return models.Account{}, err
	}
	defer uow.Close()

	account, err := uow.Accounts().FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			log.Debug().Str("func", "*authService.Authenticate").Msg("no account for email")
			return models.Account{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "*authService.Authenticate").Msg("account lookup failed")
		return models.Account{}, fmt.Errorf("account lookup failed: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return models.Account{}, err
	}

	if !utils.CheckPassword(password, account.PasswordHash) {
		log.Debug().Str("func", "*authService.Authenticate").Str("id", account.ID).Msg("password mismatch")
		return models.Account{}, ErrInvalidCredentials
	}

	return account, nil
}

// Login authenticates the credentials and issues a session token whose
// subject is the account email. Returns the token together with the account
// snapshot taken at authentication time.
func (a *authService) Login(ctx context.Context, email, password string) (models.Token, models.Account, error) {
	account, err := a.Authenticate(ctx, email, password)
	if err != nil {
		return models.Token{}, models.Account{}, err
	}

	token, err := a.CreateToken(ctx, account)
	if err != nil {
		return models.Token{}, models.Account{}, err
	}

	return token, account, nil
}

// CreateToken issues a signed JWT for the given account.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim and the account email as the
// "sub" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation
// fails.
func (a *authService) CreateToken(ctx context.Context, account models.Account) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, account.Email, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature
// and the issuer claim. Any validation failure (expired, wrong issuer,
// malformed) is normalised to ErrTokenIsExpiredOrInvalid so that callers do
// not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// RequestVerification generates the current one-time code and emails it to
// the account holder.
//
// Returns store.ErrAccountNotFound if no account has the given email, and
// ErrDeliveryFailed (wrapping the mail error) if the provider could not
// deliver. The errors stay distinct so callers can tell "account exists, code
// undelivered" from "no such account".
func (a *authService) RequestVerification(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	uow, err := a.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer uow.Close()

	account, err := uow.Accounts().FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	code, err := a.codes.Generate(a.now())
	if err != nil {
		log.Err(err).Str("func", "*authService.RequestVerification").Msg("code generation failed")
		return fmt.Errorf("code generation failed: %w", err)
	}

	subject := fmt.Sprintf("%s verification code", a.codes.Label())
	body := fmt.Sprintf("Hello %s,\n\nYour verification code is %s. It expires shortly; enter it soon.\n", account.Username, code)

	if err := a.sender.Send(ctx, account.Email, subject, body); err != nil {
		log.Err(err).Str("func", "*authService.RequestVerification").Str("id", account.ID).Msg("code delivery failed")
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	log.Info().Str("id", account.ID).Msg("verification code sent")
	return nil
}

// ConfirmVerification checks the submitted one-time code and, when it is
// valid for the current or an adjacent time window, marks the account as
// verified.
//
// An invalid or expired code yields (false, nil): a rejected code is an
// expected outcome, not a fault. Persistence failures while flipping the
// flag are returned as errors.
func (a *authService) ConfirmVerification(ctx context.Context, email, code string) (bool, error) {
	log := logger.FromContext(ctx)

	if !a.codes.Verify(code, a.now()) {
		log.Debug().Str("func", "*authService.ConfirmVerification").Msg("verification code rejected")
		return false, nil
	}

	uow, err := a.db.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer uow.Close()

	accounts := uow.Accounts()

	account, err := accounts.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}

	verified := true
	account.IsVerified = &verified

	if _, err := accounts.Update(ctx, account); err != nil {
		log.Err(err).Str("func", "*authService.ConfirmVerification").Msg("account update failed")
		return false, err
	}

	if err := uow.Commit(); err != nil {
		return false, err
	}

	log.Info().Str("id", account.ID).Msg("account verified")
	return true, nil
}
