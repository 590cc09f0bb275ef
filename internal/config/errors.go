package config

import "errors"

// Validation errors returned when the merged configuration is unusable.
var (
	// ErrInvalidBackendConfigs indicates an unparsable backend base URL or a
	// negative request timeout.
	ErrInvalidBackendConfigs = errors.New("invalid backend configuration")
	// ErrInvalidServerConfigs indicates a missing frontend listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidUIConfigs indicates a non-positive default top_k or a default
	// alpha outside [0, 1].
	ErrInvalidUIConfigs = errors.New("invalid ui configuration")
)
