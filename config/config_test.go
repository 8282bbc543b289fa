package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigWithoutFileUsesDefaults(t *testing.T) {
	t.Setenv("PROPDESK_CONFIG", filepath.Join(t.TempDir(), "missing.json"))

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", c.Port)
	assert.Equal(t, 7, c.PreviewHorizonDays)
	assert.Equal(t, "en-US", c.Locale)
	assert.Equal(t, c, GetConfig())
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	t.Setenv("PROPDESK_CONFIG", filepath.Join(t.TempDir(), "nested", "propdesk_config.json"))

	want := defaults()
	want.Port = "9090"
	want.Locale = "fr-FR"
	want.PreviewHorizonDays = 14
	want.BankPortalURL = "https://bank.example.com/login"
	require.NoError(t, SaveConfig(want))

	got, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	t.Setenv("PROPDESK_CONFIG", filepath.Join(t.TempDir(), "propdesk_config.json"))
	require.NoError(t, SaveConfig(Config{Port: "9090"}))

	t.Setenv("PROPDESK_PORT", "7000")
	got, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "7000", got.Port)
}

func TestSaveConfigFillsDefaults(t *testing.T) {
	t.Setenv("PROPDESK_CONFIG", filepath.Join(t.TempDir(), "propdesk_config.json"))
	require.NoError(t, SaveConfig(Config{}))

	got := GetConfig()
	assert.Equal(t, 7, got.PreviewHorizonDays)
	assert.Equal(t, "./propdesk.db", got.DatabasePath)
}
