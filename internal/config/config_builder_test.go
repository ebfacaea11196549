package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that an empty builder yields the defaults.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, defaults(), cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies that an earlier config is not overridden
// by a later one, while fields it leaves empty are filled.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Vault: Vault{Path: "/from/env"}},
		&StructuredConfig{Vault: Vault{Path: "/from/flags", Timeout: time.Second}, Output: Output{Format: FormatYAML}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.Vault.Path)
	assert.Equal(t, time.Second, cfg.Vault.Timeout)
	assert.Equal(t, FormatYAML, cfg.Output.Format)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestBuild_InvalidOutput(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Output: Output{Format: "xml"}})

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidOutputConfigs)
}

func TestBuild_InvalidLogLevel(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Log: Log{Level: "loud"}})

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidLogConfigs)
}

func TestBuild_NegativeTimeout(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Vault: Vault{Timeout: -time.Second}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidVaultConfigs)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"OPVAULT_PATH":   "/vaults/env",
		"OPVAULT_OUTPUT": "json",
	})

	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())

	require.Len(t, b.configs, 1)
	assert.Equal(t, "/vaults/env", b.configs[0].Vault.Path)
	assert.Equal(t, "json", b.configs[0].Output.Format)
	assert.NoError(t, b.err)
}

func TestWithEnv_RecordsError(t *testing.T) {
	setEnvVars(t, map[string]string{"OPVAULT_TIMEOUT": "nope"})

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_NilFlagSetIsNoOp(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
	assert.Empty(t, b.configs)
}

func TestWithFlags_AppendsParsedFlags(t *testing.T) {
	b := newConfigBuilder().withFlags(newFlagSet(t, "--vault", "/vaults/flag"))

	require.Len(t, b.configs, 1)
	assert.Equal(t, "/vaults/flag", b.configs[0].Vault.Path)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	assert.Same(t, b, b.withJSON())

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Vault.Path = "/vaults/json"
	payload.Log.Level = "debug"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "/vaults/json", b.configs[1].Vault.Path)
	assert.Equal(t, "debug", b.configs[1].Log.Level)
}

func TestWithJSON_SetsError_WhenFileMissing(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_Precedence(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Vault.Path = "/vaults/json"
	payload.Vault.Timeout = Duration(time.Minute)
	payload.Output.Format = "yaml"
	payload.Log.Level = "error"
	path := writeTempJSONConfig(t, payload)

	setEnvVars(t, map[string]string{
		"OPVAULT_PATH":     "/vaults/env",
		"OPVAULT_PASSWORD": "secret",
		"CONFIG":           path,
	})
	fs := newFlagSet(t, "--vault", "/vaults/flag", "--output", "json")

	cfg, err := GetStructuredConfig(fs)
	require.NoError(t, err)

	assert.Equal(t, "/vaults/env", cfg.Vault.Path)
	assert.Equal(t, "secret", cfg.Vault.Password)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, time.Minute, cfg.Vault.Timeout)
	assert.NoError(t, cfg.RequireVault())
	assert.NoError(t, cfg.RequirePassword())
}

func TestRequire_Missing(t *testing.T) {
	cfg := defaults()
	assert.ErrorIs(t, cfg.RequireVault(), ErrInvalidVaultConfigs)
	assert.ErrorIs(t, cfg.RequirePassword(), ErrMissingPassword)
}
