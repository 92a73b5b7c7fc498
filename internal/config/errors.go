package config

import "errors"

// Validation errors returned by validate when required configuration
// groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid adapter settings
	// (for example, missing bus address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates an unknown driver or empty DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates missing listen settings or a
	// non-positive rate limit.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero shutdown timeout).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidDecisionConfigs indicates an unknown strategy or a CEL
	// strategy without rules.
	ErrInvalidDecisionConfigs = errors.New("invalid decision configuration")
	// ErrInvalidEnvConfigs indicates an environment variable that cannot
	// be converted to its field type.
	ErrInvalidEnvConfigs = errors.New("invalid environment configuration")
	// ErrInvalidCryptoConfigs indicates missing secrets or a bad salt.
	ErrInvalidCryptoConfigs = errors.New("invalid crypto configuration")
)
