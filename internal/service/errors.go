package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned for both unknown-email and
	// wrong-password failures so callers cannot tell the two apart.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrRegistrationFailed wraps unexpected persistence failures during
	// registration. Duplicate emails are NOT wrapped in it; they propagate
	// as store.ErrEmailAlreadyExists.
	ErrRegistrationFailed = errors.New("registration failed")

	// ErrMalformedDate is returned when a textual date of birth does not
	// parse as day/month/year.
	ErrMalformedDate = errors.New("malformed date of birth")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrDeliveryFailed wraps mail-delivery failures so callers can tell
	// "account exists, code undelivered" from account errors.
	ErrDeliveryFailed = errors.New("verification code delivery failed")
)
