package config

import "errors"

var (
	// ErrNoTokenSignKey is returned when the server is started without a
	// token signing key. Issuing unverifiable tokens is never acceptable.
	ErrNoTokenSignKey = errors.New("token sign key is not configured")

	// ErrNoDatabaseDSN is returned when the server is started without a
	// database connection string.
	ErrNoDatabaseDSN = errors.New("database DSN is not configured")

	// ErrInvalidAdapterConfigs is returned when the client adapter
	// configuration is incomplete.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configs")
)
