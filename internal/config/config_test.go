package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/helium/internal/hotkey"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	require.NoError(t, err)
	assert.Zero(t, cfg.App.Width)
	assert.Zero(t, cfg.App.Height)
	assert.Equal(t, hotkey.PolicyLog, cfg.App.DispatchErrors)
	assert.Equal(t, "en", cfg.App.Locale)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Trace)
	assert.False(t, cfg.App.ListActions)
	assert.Equal(t, "log", cfg.Flags["dispatchErrors"])
}

func TestLoadArgsEnvironment(t *testing.T) {
	env := []string{
		"HELIUM_WIDTH=80",
		"HELIUM_HEIGHT=24",
		"HELIUM_TRACE=true",
		"HELIUM_LOG_FILE=/tmp/helium.log",
		"HELIUM_LOG_LEVEL=debug",
		"HELIUM_DISPATCH_ERRORS=notify",
		"HELIUM_LOCALE=zh-CN",
		"malformed",
		"",
	}
	cfg, err := LoadArgs(nil, env)
	require.NoError(t, err)
	assert.Equal(t, 80, cfg.App.Width)
	assert.Equal(t, 24, cfg.App.Height)
	assert.True(t, cfg.Logging.Trace)
	assert.Equal(t, "/tmp/helium.log", cfg.Logging.FilePath)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, hotkey.PolicyNotify, cfg.App.DispatchErrors)
	assert.Equal(t, "zh-CN", cfg.App.Locale)
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	cfg, err := LoadArgs([]string{"-width", "100", "-dispatch-errors", "ignore"}, []string{"HELIUM_WIDTH=80"})
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.App.Width)
	assert.Equal(t, hotkey.PolicyIgnore, cfg.App.DispatchErrors)
	assert.Equal(t, []string{"-width", "100", "-dispatch-errors", "ignore"}, cfg.Args)
}

func TestInvalidEnvironmentFallsBack(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"HELIUM_WIDTH=wide", "HELIUM_TRACE=maybe"})
	require.NoError(t, err)
	assert.Zero(t, cfg.App.Width)
	assert.False(t, cfg.Logging.Trace)
}

func TestListActionsQuery(t *testing.T) {
	cfg, err := LoadArgs([]string{"-list-actions", "log", "click"}, nil)
	require.NoError(t, err)
	assert.True(t, cfg.App.ListActions)
	assert.Equal(t, "log click", cfg.App.Query)
}

func TestLoadArgsErrors(t *testing.T) {
	_, err := LoadArgs([]string{"-width", "-1"}, nil)
	assert.ErrorContains(t, err, "width must be >= 0")
	_, err = LoadArgs([]string{"-height", "-2"}, nil)
	assert.ErrorContains(t, err, "height must be >= 0")
	_, err = LoadArgs([]string{"-dispatch-errors", "explode"}, nil)
	assert.ErrorContains(t, err, "unknown error policy")
	_, err = LoadArgs([]string{"-bogus"}, nil)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	require.NoError(t, err)
	assert.NoError(t, Validate(cfg))

	cfg.App.Locale = "fr"
	assert.ErrorContains(t, Validate(cfg), "not supported")

	cfg.App.Locale = "en"
	cfg.App.Keymap = filepath.Join(t.TempDir(), "missing.yaml")
	assert.ErrorContains(t, Validate(cfg), "keymap")

	cfg.App.Keymap = t.TempDir()
	assert.ErrorContains(t, Validate(cfg), "is a directory")

	path := filepath.Join(t.TempDir(), "keymap.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	cfg.App.Keymap = path
	assert.NoError(t, Validate(cfg))
}
