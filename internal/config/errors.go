package config

import "errors"

// Validation errors returned when the merged configuration is unusable.
var (
	// ErrInvalidVaultConfigs indicates an empty vault path or a negative
	// timeout.
	ErrInvalidVaultConfigs = errors.New("invalid vault configuration")
	// ErrInvalidLogConfigs indicates a level zerolog does not know.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidOutputConfigs indicates an unsupported output format.
	ErrInvalidOutputConfigs = errors.New("invalid output configuration")
	// ErrMissingPassword is returned by commands that unlock the vault when
	// OPVAULT_PASSWORD is not set.
	ErrMissingPassword = errors.New("master password is not set (OPVAULT_PASSWORD)")
)
