// Package otp issues and verifies time-based one-time verification codes.
//
// Codes are derived deterministically from a shared secret and the current
// time window, so the same code can be generated independently by the server
// for delivery and re-derived later for verification without persisting
// anything. A code is accepted for its own window plus one adjacent window
// to tolerate clock and delivery skew.
package otp

import (
	"encoding/base32"
	"errors"
	"fmt"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"

	"github.com/majorsigma/greenbasket-backend/internal/config"
)

// Generator derives and checks time-windowed verification codes from a
// shared secret. It is safe for concurrent use.
type Generator struct {
	secret string
	period uint
	label  string
}

// NewGenerator builds a Generator from application config.
//
// The raw config secret is base32-encoded internally, so any non-empty
// string works as a secret. Returns an error if the secret is empty or
// the period is zero.
func NewGenerator(cfg config.App) (*Generator, error) {
	if cfg.OTPSecret == "" {
		return nil, errors.New("empty one-time code secret")
	}
	if cfg.OTPPeriod == 0 {
		return nil, errors.New("one-time code period must be positive")
	}

	return &Generator{
		secret: base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString([]byte(cfg.OTPSecret)),
		period: cfg.OTPPeriod,
		label:  cfg.OTPLabel,
	}, nil
}

// Generate derives the six-digit code for the time window containing `at`.
// The result is deterministic: two calls within the same window produce
// the same code.
func (g *Generator) Generate(at time.Time) (string, error) {
	code, err := totp.GenerateCodeCustom(g.secret, at, g.opts())
	if err != nil {
		return "", fmt.Errorf("error generating one-time code: %w", err)
	}
	return code, nil
}

// Verify reports whether the code is valid at the given time. A code is
// accepted for its own window and one adjacent window on either side;
// anything older is rejected. There is no replay protection beyond window
// expiry: a code stays valid for its entire window.
func (g *Generator) Verify(code string, at time.Time) bool {
	ok, err := totp.ValidateCustom(code, g.secret, at, g.opts())
	return err == nil && ok
}

// Label returns the human-readable label identifying the issuing service,
// for use in delivery messages.
func (g *Generator) Label() string {
	return g.label
}

func (g *Generator) opts() totp.ValidateOpts {
	return totp.ValidateOpts{
		Period:    g.period,
		Skew:      1,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	}
}
