package validators

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/majorsigma/greenbasket-backend/models"
)

const (
	FieldUsername    = "username"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldDateOfBirth = "date_of_birth"
	FieldCode        = "verification_code"
)

// maxPasswordBytes is the bcrypt input limit; longer passwords are silently
// truncated by some implementations, so they are rejected outright here.
const maxPasswordBytes = 72

type AccountValidator struct {
}

func NewAccountValidator() Validator {
	return &AccountValidator{}
}

func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)

	case models.VerificationRequest:
		return v.validateVerificationRequest(ctx, value, fields...)
	case *models.VerificationRequest:
		return v.validateVerificationRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AccountValidator) validateRegisterRequest(_ context.Context, req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword, FieldDateOfBirth}
	}

	for _, field := range fields {
		switch field {
		case FieldUsername:
			if req.Username == "" {
				return ErrEmptyUsername
			}
		case FieldEmail:
			if err := validateEmail(req.Email); err != nil {
				return err
			}
		case FieldPassword:
			if err := validatePassword(req.Password); err != nil {
				return err
			}
		case FieldDateOfBirth:
			if req.DateOfBirth == "" {
				return ErrEmptyDateOfBirth
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *AccountValidator) validateLoginRequest(_ context.Context, req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, field := range fields {
		switch field {
		case FieldEmail:
			if err := validateEmail(req.Email); err != nil {
				return err
			}
		case FieldPassword:
			if err := validatePassword(req.Password); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *AccountValidator) validateVerificationRequest(_ context.Context, req models.VerificationRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldCode}
	}

	for _, field := range fields {
		switch field {
		case FieldEmail:
			if err := validateEmail(req.Email); err != nil {
				return err
			}
		case FieldCode:
			if req.Code == "" {
				return ErrEmptyCode
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return ErrEmptyEmail
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEmail, err)
	}
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if len(password) > maxPasswordBytes {
		return ErrPasswordTooLong
	}
	return nil
}
