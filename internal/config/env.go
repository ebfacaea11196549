// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the OPVAULT_* variables and CONFIG. Names come
// from the `env` and `envPrefix` tags on [StructuredConfig].
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse OPVAULT_* env: %w", err)
	}
	return nil
}
