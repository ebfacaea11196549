package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flag names registered by [RegisterFlags].
const (
	FlagVault    = "vault"
	FlagTimeout  = "timeout"
	FlagLogLevel = "log-level"
	FlagOutput   = "output"
	FlagConfig   = "config"
)

// RegisterFlags adds the configuration flags to fs. Every default is the
// zero value so that an unset flag never hides an env or JSON value.
//
// Flags:
//
//	-p/--vault      vault directory (the one holding default/)
//	--timeout       command timeout (e.g. "30s")
//	--log-level     zerolog level
//	-o/--output     output format: text, json or yaml
//	-c/--config     json file path with configs
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagVault, "p", "", "Vault directory")
	fs.Duration(FlagTimeout, 0, "Command timeout (e.g., 30s, 1m)")
	fs.String(FlagLogLevel, "", "Log level (debug, info, warn, error)")
	fs.StringP(FlagOutput, "o", "", "Output format (text, json, yaml)")
	fs.StringP(FlagConfig, "c", "", "JSON config file path")
}

// parseFlags reads the values registered by [RegisterFlags] from an already
// parsed fs.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	vaultPath, err := fs.GetString(FlagVault)
	if err != nil {
		return nil, fmt.Errorf("error reading flags: %w", err)
	}
	timeout, err := fs.GetDuration(FlagTimeout)
	if err != nil {
		return nil, fmt.Errorf("error reading flags: %w", err)
	}
	logLevel, err := fs.GetString(FlagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("error reading flags: %w", err)
	}
	output, err := fs.GetString(FlagOutput)
	if err != nil {
		return nil, fmt.Errorf("error reading flags: %w", err)
	}
	jsonConfigPath, err := fs.GetString(FlagConfig)
	if err != nil {
		return nil, fmt.Errorf("error reading flags: %w", err)
	}

	return &StructuredConfig{
		Vault: Vault{
			Path:    vaultPath,
			Timeout: timeout,
		},
		Log:          Log{Level: logLevel},
		Output:       Output{Format: output},
		JSONFilePath: jsonConfigPath,
	}, nil
}
