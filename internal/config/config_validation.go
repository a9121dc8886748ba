package config

// defaultOTPPeriod is the one-time-code window applied when no period is
// configured.
const defaultOTPPeriod uint = 60

// applyDefaults fills in values that have sensible fallbacks and are not
// required from the operator.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.OTPPeriod == 0 {
		cfg.App.OTPPeriod = defaultOTPPeriod
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = "greenbasket"
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the sentinel errors
// from errors.go otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration == 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.App.OTPSecret == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
