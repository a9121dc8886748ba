package models

import "time"

// Account represents a registered user record, the sole persisted entity of
// the account core. Credential data must never leave trusted boundaries:
// PasswordHash is excluded from JSON and callers are expected to expose
// accounts via [Account.View] only.
type Account struct {
	// ID is the opaque unique identifier of the account (UUID string).
	// Generated once at creation and immutable afterwards.
	ID string `json:"id"`

	// Username is the display name. Uniqueness is deliberately NOT enforced
	// at the storage layer; registration checks email uniqueness only.
	Username string `json:"username"`

	// Email is the canonical login key. At most one account per email value,
	// enforced by a UNIQUE constraint on the accounts table.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the account password.
	// Never plaintext, never empty after registration completes.
	PasswordHash string `json:"-"`

	// DateOfBirth is the account holder's calendar date of birth.
	DateOfBirth time.Time `json:"date_of_birth"`

	IsActive bool `json:"is_active"`
	IsOnline bool `json:"is_online"`

	// Is2FAEnabled and IsVerified are nullable pending verification.
	// Once IsVerified is true no operation in this core unsets it.
	Is2FAEnabled *bool `json:"is_2fa_enabled"`
	IsVerified   *bool `json:"is_verified"`

	// Address, LGA and State form the optional location group,
	// always overwritten together by SetLocation.
	Address *string `json:"address,omitempty"`
	LGA     *string `json:"lga,omitempty"`
	State   *string `json:"state,omitempty"`

	// CreatedAt is set once at creation. UpdatedAt is refreshed on every
	// mutation; UpdatedAt >= CreatedAt always holds.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}

// AccountView is the caller-facing read projection of an [Account].
// It deliberately omits the password hash.
type AccountView struct {
	ID           string  `json:"id"`
	Username     string  `json:"username"`
	Email        string  `json:"email"`
	DateOfBirth  string  `json:"date_of_birth"`
	IsActive     bool    `json:"is_active"`
	IsOnline     bool    `json:"is_online"`
	Is2FAEnabled *bool   `json:"is_2fa_enabled"`
	IsVerified   *bool   `json:"is_verified"`
	Address      *string `json:"address,omitempty"`
	LGA          *string `json:"lga,omitempty"`
	State        *string `json:"state,omitempty"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

// View converts the account into its caller-facing projection.
// Timestamps and the date of birth are serialized as RFC 3339 strings.
func (a Account) View() AccountView {
	return AccountView{
		ID:           a.ID,
		Username:     a.Username,
		Email:        a.Email,
		DateOfBirth:  a.DateOfBirth.Format(time.RFC3339),
		IsActive:     a.IsActive,
		IsOnline:     a.IsOnline,
		Is2FAEnabled: a.Is2FAEnabled,
		IsVerified:   a.IsVerified,
		Address:      a.Address,
		LGA:          a.LGA,
		State:        a.State,
		CreatedAt:    a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    a.UpdatedAt.Format(time.RFC3339),
	}
}
