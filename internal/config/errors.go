package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when
// configuration groups are incomplete or inconsistent.
var (
	// ErrInvalidConfig indicates a field that failed its struct tag rules.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrInvalidServerConfigs indicates inconsistent listener or TLS
	// settings (for example, a TLS address without a certificate source).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidSecureConfigs indicates inconsistent connection policy
	// settings (for example, annotation without a canonical host).
	ErrInvalidSecureConfigs = errors.New("invalid secure configuration")
)
