// Package config handles application configuration.
//
// The file is read once at startup and never written. Tray menu choices live
// only for the life of the process.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.aimuz.me/mediabar/hotkey"
)

const (
	appName        = "mediabar"
	configFileName = "config.json"
)

// Config represents the application configuration.
type Config struct {
	ContentURL    string       `json:"content_url"`
	Window        WindowConfig `json:"window"`
	ShowDelayMS   int          `json:"show_delay_ms"`
	HotkeyBackend string       `json:"hotkey_backend"` // "auto", "grab" or "hook"
	LogLevel      string       `json:"log_level"`      // "debug", "info", "warn", "error"
	Locale        string       `json:"locale,omitempty"`
}

// WindowConfig sizes the popup window.
type WindowConfig struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ShowDelay returns the pause between startup and showing the window.
func (c *Config) ShowDelay() time.Duration {
	return time.Duration(c.ShowDelayMS) * time.Millisecond
}

// Load loads configuration from the user config directory.
// Returns default config if file doesn't exist.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, fmt.Errorf("get config path: %w", err)
	}
	return LoadFrom(path)
}

// LoadFrom loads configuration from path. Fields missing from the file keep
// their defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	switch c.HotkeyBackend {
	case hotkey.BackendAuto, hotkey.BackendGrab, hotkey.BackendHook:
	default:
		return fmt.Errorf("hotkey_backend %q: %w", c.HotkeyBackend, hotkey.ErrUnknownBackend)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.ShowDelayMS < 0 {
		return fmt.Errorf("show_delay_ms must not be negative, got %d", c.ShowDelayMS)
	}
	if c.ContentURL == "" {
		return fmt.Errorf("content_url required")
	}
	return nil
}

func configPath() (string, error) {
	if p := os.Getenv("MEDIABAR_CONFIG"); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("get user config dir: %w", err)
	}
	return filepath.Join(dir, appName, configFileName), nil
}

func defaultConfig() *Config {
	return &Config{
		ContentURL: "/",
		Window: WindowConfig{
			Width:  380,
			Height: 800,
		},
		ShowDelayMS:   1,
		HotkeyBackend: hotkey.BackendAuto,
		LogLevel:      "info",
	}
}
