// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] can be used.
// The vault path and password are not checked here: commands that need
// them call [StructuredConfig.RequireVault] or [StructuredConfig.RequirePassword].
func (cfg *StructuredConfig) validate() error {
	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogConfigs, cfg.Log.Level)
	}

	switch cfg.Output.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidOutputConfigs, cfg.Output.Format)
	}

	if cfg.Vault.Timeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidVaultConfigs)
	}

	return nil
}

// RequireVault reports whether a vault path is configured.
func (cfg *StructuredConfig) RequireVault() error {
	if cfg.Vault.Path == "" {
		return fmt.Errorf("%w: vault path is empty", ErrInvalidVaultConfigs)
	}
	return nil
}

// RequirePassword reports whether a master password is configured.
func (cfg *StructuredConfig) RequirePassword() error {
	if cfg.Vault.Password == "" {
		return ErrMissingPassword
	}
	return nil
}
