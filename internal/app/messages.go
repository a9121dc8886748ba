// Package app contains shared application-layer constants used across the
// greenbasket server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded
	// as JSON.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidDataProvided is returned when the request body decodes but
	// fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidEmailPassword is returned when the supplied email/password
	// combination does not match any existing account record.
	MsgInvalidEmailPassword = "invalid email/password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgEmailAlreadyExists is returned when a registration attempt is
	// rejected because the requested email is already in use.
	MsgEmailAlreadyExists = "email already exists"

	// MsgAccountNotFound is returned when a read, update, or delete
	// operation targets an account that does not exist.
	MsgAccountNotFound = "account not found"

	// MsgVerificationCodeSent confirms that a one-time verification code
	// was handed to the mail provider.
	MsgVerificationCodeSent = "verification code sent"

	// MsgVerificationCodeRejected is returned when the submitted one-time
	// code does not match the current or an adjacent time window.
	MsgVerificationCodeRejected = "invalid or expired verification code"

	// MsgAccountVerified confirms that the verification flag was set.
	MsgAccountVerified = "account verified"

	// MsgAccountDeleted confirms permanent removal of an account.
	MsgAccountDeleted = "account deleted"

	// MsgGreeting is the root-endpoint welcome message.
	MsgGreeting = "welcome to the greenbasket API"
)
