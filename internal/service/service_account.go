package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/majorsigma/greenbasket-backend/internal/logger"
	"github.com/majorsigma/greenbasket-backend/internal/store"
	"github.com/majorsigma/greenbasket-backend/internal/utils"
	"github.com/majorsigma/greenbasket-backend/internal/validators"
	"github.com/majorsigma/greenbasket-backend/models"
)

// dateOfBirthLayout is the wire format of textual dates of birth:
// day/month/year, e.g. "31/12/1990".
const dateOfBirthLayout = "02/01/2006"

// accountService is the concrete implementation of AccountService.
// Each operation runs inside its own unit of work obtained from the
// TxStarter; nothing commits implicitly.
type accountService struct {
	db        store.TxStarter
	validator validators.Validator
	logger    *logger.Logger
}

// NewAccountService constructs an AccountService backed by the given
// transaction starter. The returned service is safe for concurrent use.
func NewAccountService(db store.TxStarter, logger *logger.Logger) AccountService {
	return &accountService{
		db:        db,
		validator: validators.NewAccountValidator(),
		logger:    logger,
	}
}

// Register creates a new account.
//
// The password is hashed with bcrypt before anything touches storage. A
// lookup by email runs first as an early exit; the UNIQUE constraint on the
// email column remains the source of truth, so a concurrent registration
// losing the race still surfaces as store.ErrEmailAlreadyExists from the
// insert itself.
//
// Returns the persisted account or:
//   - ErrInvalidDataProvided if the request fails field validation
//     (missing username/email/password, malformed email address).
//   - ErrMalformedDate if the date of birth does not parse as day/month/year.
//   - store.ErrEmailAlreadyExists if the email is already taken.
//   - ErrRegistrationFailed wrapping any other persistence failure.
func (s *accountService) Register(ctx context.Context, req models.RegisterRequest) (models.Account, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Err(err).Str("func", "*accountService.Register").Msg("invalid registration data provided")
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	dateOfBirth, err := parseDateOfBirth(req.DateOfBirth)
	if err != nil {
		return models.Account{}, err
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Str("func", "*accountService.Register").Msg("password hashing failed")
		return models.Account{}, fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}

	uow, err := s.db.Begin(ctx)
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}
	defer uow.Close()

	accounts := uow.Accounts()

	// early exit on a taken email; the insert below still guards the race
	_, err = accounts.FindByEmail(ctx, req.Email)
	if err == nil {
		return models.Account{}, store.ErrEmailAlreadyExists
	}
	if !errors.Is(err, store.ErrAccountNotFound) {
		log.Err(err).Str("func", "*accountService.Register").Msg("email lookup failed")
		return models.Account{}, fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}

	created, err := accounts.Insert(ctx, models.Account{
		ID:           utils.NewAccountID(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
		DateOfBirth:  dateOfBirth,
		IsActive:     true,
		Address:      req.Address,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.Account{}, store.ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*accountService.Register").Msg("account insert failed")
		return models.Account{}, fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}

	if err := uow.Commit(); err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}

	log.Info().Str("id", created.ID).Msg("account registered")
	return created, nil
}

// GetByEmail returns the account with the given email or
// store.ErrAccountNotFound.
func (s *accountService) GetByEmail(ctx context.Context, email string) (models.Account, error) {
	uow, err := s.db.Begin(ctx)
	if err != nil {
		return models.Account{}, err
	}
	defer uow.Close()

	account, err := uow.Accounts().FindByEmail(ctx, email)
	if err != nil {
		return models.Account{}, err
	}

	if err := uow.Commit(); err != nil {
		return models.Account{}, err
	}
	return account, nil
}

// ListAccounts returns read projections of all accounts ordered by creation
// time.
func (s *accountService) ListAccounts(ctx context.Context) ([]models.AccountView, error) {
	uow, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer uow.Close()

	accounts, err := uow.Accounts().ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	views := make([]models.AccountView, 0, len(accounts))
	for _, account := range accounts {
		views = append(views, account.View())
	}
	return views, nil
}

// SetVerified marks the account with the given email as verified.
// Once set, nothing in this service unsets the flag.
func (s *accountService) SetVerified(ctx context.Context, email string) (bool, error) {
	log := logger.FromContext(ctx)

	uow, err := s.db.Begin(ctx)
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
		log.Err(err).Str("func", "*accountService.SetVerified").Msg("account update failed")
		return false, err
	}

	if err := uow.Commit(); err != nil {
		return false, err
	}
	return true, nil
}

// SetLocation overwrites the location group (address, LGA, state) of the
// account with the given email and returns the updated record. The three
// fields are always written together.
func (s *accountService) SetLocation(ctx context.Context, email string, loc models.LocationUpdate) (models.Account, error) {
	log := logger.FromContext(ctx)

	uow, err := s.db.Begin(ctx)
	if err != nil {
		return models.Account{}, err
	}
	defer uow.Close()

	accounts := uow.Accounts()

	account, err := accounts.FindByEmail(ctx, email)
	if err != nil {
		return models.Account{}, err
	}

	account.Address = &loc.Address
	account.LGA = &loc.LGA
	account.State = &loc.State

	updated, err := accounts.Update(ctx, account)
	if err != nil {
		log.Err(err).Str("func", "*accountService.SetLocation").Msg("account update failed")
		return models.Account{}, err
	}

	if err := uow.Commit(); err != nil {
		return models.Account{}, err
	}
	return updated, nil
}

// UpdateProfile overwrites the mutable profile fields of the account with
// the given email and returns the updated record.
//
// Returns ErrMalformedDate if the textual date of birth does not parse as
// day/month/year; in that case nothing is persisted.
func (s *accountService) UpdateProfile(ctx context.Context, email string, upd models.ProfileUpdate) (models.Account, error) {
	log := logger.FromContext(ctx)

	dateOfBirth, err := parseDateOfBirth(upd.DateOfBirth)
	if err != nil {
		return models.Account{}, err
	}

	uow, err := s.db.Begin(ctx)
	if err != nil {
		return models.Account{}, err
	}
	defer uow.Close()

	accounts := uow.Accounts()

	account, err := accounts.FindByEmail(ctx, email)
	if err != nil {
		return models.Account{}, err
	}

	account.Username = upd.Username
	account.DateOfBirth = dateOfBirth
	account.Address = &upd.Address
	account.LGA = &upd.LGA
	account.State = &upd.State

	updated, err := accounts.Update(ctx, account)
	if err != nil {
		log.Err(err).Str("func", "*accountService.UpdateProfile").Msg("account update failed")
		return models.Account{}, err
	}

	if err := uow.Commit(); err != nil {
		return models.Account{}, err
	}
	return updated, nil
}

// ToggleOnline sets the availability flag of the account with the given id.
func (s *accountService) ToggleOnline(ctx context.Context, id string, online bool) (bool, error) {
	log := logger.FromContext(ctx)

	uow, err := s.db.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer uow.Close()

	accounts := uow.Accounts()

	account, err := accounts.FindByID(ctx, id)
	if err != nil {
		return false, err
	}

	account.IsOnline = online

	if _, err := accounts.Update(ctx, account); err != nil {
		log.Err(err).Str("func", "*accountService.ToggleOnline").Msg("account update failed")
		return false, err
	}

	if err := uow.Commit(); err != nil {
		return false, err
	}
	return true, nil
}

// Delete permanently removes the account with the given id. There is no
// soft delete; the record is gone after commit.
func (s *accountService) Delete(ctx context.Context, id string) (bool, error) {
	log := logger.FromContext(ctx)

	uow, err := s.db.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer uow.Close()

	if err := uow.Accounts().Delete(ctx, id); err != nil {
		log.Err(err).Str("func", "*accountService.Delete").Str("id", id).Msg("account delete failed")
		return false, err
	}

	if err := uow.Commit(); err != nil {
		return false, err
	}
	return true, nil
}

// parseDateOfBirth parses a textual day/month/year date, normalising any
// parse failure to ErrMalformedDate.
func parseDateOfBirth(raw string) (time.Time, error) {
	parsed, err := time.Parse(dateOfBirthLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, raw)
	}
	return parsed, nil
}
