package config

import "time"

// Defaults applied to optional settings that were left unset by every
// configuration source.
const (
	defaultTokenIssuer    = "passvault"
	defaultTokenDuration  = 7 * 24 * time.Hour
	defaultHTTPAddress    = ":8080"
	defaultRequestTimeout = 30 * time.Second
)

// applyDefaults fills optional fields that remained zero after merging all
// sources. Secrets are never defaulted.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants the server cannot run without. Startup is fatal on failure;
// there are no silent fallbacks for secrets.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrMissingDatabaseDSN
	}

	return nil
}
