package config

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants shared by both binaries. Server-only and client-only
// requirements are validated by [GetServerConfig] and [GetClientConfig]
// respectively, since each binary needs a different subset of the config.
func (cfg *StructuredConfig) validate() error {
	return nil
}

// ValidateServer checks the invariants of a server process: a signed token
// issuer cannot operate without a sign key, and there is no in-memory
// fallback for the user store.
func (cfg *StructuredConfig) ValidateServer() error {
	if cfg.App.TokenSignKey == "" {
		return ErrNoTokenSignKey
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrNoDatabaseDSN
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
