package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestLoad_ReturnsDefaultsWhenMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.History.Enabled = true
	cfg.Watch.Debounce = "250ms"
	cfg.App.Locale = "pt-BR"
	require.NoError(t, cfg.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())

	cfg.Watch.Debounce = "not a duration"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.App.Locale = "not a locale"
	assert.Error(t, cfg.Validate())
}

func TestGetWatchDebounce(t *testing.T) {
	cfg := DefaultConfig()
	d, err := cfg.GetWatchDebounce()
	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, d)
}

func TestGetLocale(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, language.English, cfg.GetLocale())

	cfg.App.Locale = "pt-BR"
	assert.Equal(t, language.BrazilianPortuguese, cfg.GetLocale())

	cfg.App.Locale = "##"
	assert.Equal(t, language.English, cfg.GetLocale())
}
