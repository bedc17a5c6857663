package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.aimuz.me/mediabar/hotkey"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadFromMissingFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)

	assert.Equal(t, defaultConfig(), cfg)
	assert.Equal(t, 380, cfg.Window.Width)
	assert.Equal(t, 800, cfg.Window.Height)
	assert.Equal(t, time.Millisecond, cfg.ShowDelay())
	assert.Equal(t, hotkey.BackendAuto, cfg.HotkeyBackend, "media keys need the hook fallback on macOS and Linux")
}

func TestLoadFromPartialFile(t *testing.T) {
	path := writeConfig(t, `{"hotkey_backend": "hook", "log_level": "debug", "window": {"width": 400, "height": 600}}`)

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, hotkey.BackendHook, cfg.HotkeyBackend)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, WindowConfig{Width: 400, Height: 600}, cfg.Window)
	assert.Equal(t, "/", cfg.ContentURL, "unset fields keep defaults")
	assert.Equal(t, 1, cfg.ShowDelayMS)
}

func TestLoadFromInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"window":`},
		{name: "unknown backend", body: `{"hotkey_backend": "x11"}`},
		{name: "zero width", body: `{"window": {"width": 0, "height": 800}}`},
		{name: "negative delay", body: `{"show_delay_ms": -5}`},
		{name: "empty url", body: `{"content_url": ""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestValidateAcceptsEveryBackend(t *testing.T) {
	for _, name := range []string{hotkey.BackendAuto, hotkey.BackendGrab, hotkey.BackendHook} {
		cfg := defaultConfig()
		cfg.HotkeyBackend = name
		assert.NoError(t, cfg.Validate(), name)
	}
}

func TestValidateUnknownBackendIsSentinel(t *testing.T) {
	cfg := defaultConfig()
	cfg.HotkeyBackend = "evdev"
	assert.ErrorIs(t, cfg.Validate(), hotkey.ErrUnknownBackend)
}

func TestLoadUsesEnvOverride(t *testing.T) {
	path := writeConfig(t, `{"log_level": "warn"}`)
	t.Setenv("MEDIABAR_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
}
