package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestParseFlags_AllFlags(t *testing.T) {
	fs := newFlagSet(t,
		"--vault", "/vaults/demo.opvault",
		"--timeout", "1m",
		"--log-level", "warn",
		"--output", "json",
		"--config", "/etc/opvault.json",
	)

	cfg, err := parseFlags(fs)
	require.NoError(t, err)

	assert.Equal(t, "/vaults/demo.opvault", cfg.Vault.Path)
	assert.Equal(t, time.Minute, cfg.Vault.Timeout)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "/etc/opvault.json", cfg.JSONFilePath)
	assert.Empty(t, cfg.Vault.Password)
}

func TestParseFlags_Shorthands(t *testing.T) {
	fs := newFlagSet(t, "-p", "/vaults/a", "-o", "yaml", "-c", "cfg.json")

	cfg, err := parseFlags(fs)
	require.NoError(t, err)

	assert.Equal(t, "/vaults/a", cfg.Vault.Path)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_DefaultsAreZero(t *testing.T) {
	cfg, err := parseFlags(newFlagSet(t))
	require.NoError(t, err)
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseFlags_UnregisteredFlagSet(t *testing.T) {
	fs := pflag.NewFlagSet("empty", pflag.ContinueOnError)

	cfg, err := parseFlags(fs)
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading flags")
}

func TestParseFlags_InvalidDuration(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)

	err := fs.Parse([]string{"--timeout", "soon"})
	assert.Error(t, err)
}
