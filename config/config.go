package config

import (
	"os"
	"time"

	"github.com/pkg/errors"

	"chatbox/client"
)

type EndpointConfig struct {
	URL     string   `toml:"url"`
	Timeout Duration `toml:"timeout"`
}

type WidgetConfig struct {
	Title       string `toml:"title"`
	Placeholder string `toml:"placeholder"`
}

type ServerConfig struct {
	Addr     string `toml:"addr"`
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
	BaseURL  string `toml:"base_url,omitempty"`
}

// Settings mirrors settings.toml.
type Settings struct {
	Endpoint EndpointConfig `toml:"endpoint"`
	Widget   WidgetConfig   `toml:"widget"`
	Server   ServerConfig   `toml:"server"`
}

// Config is the resolved configuration: settings file, then environment,
// then flags (applied by the caller through the With* setters).
type Config struct {
	Settings
	Keybindings *KeyBindingsConfig

	dir    string
	envErr error
}

// Dir returns the configuration directory the config was loaded from.
func (c *Config) Dir() string {
	return c.dir
}

// EndpointURL returns the chat endpoint.
func (c *Config) EndpointURL() string {
	return c.Endpoint.URL
}

// Timeout returns the per-exchange timeout. Zero means no timeout.
func (c *Config) Timeout() time.Duration {
	return c.Endpoint.Timeout.Duration
}

// WithEndpoint overrides the endpoint URL when url is not empty.
func (c *Config) WithEndpoint(url string) {
	if url != "" {
		c.Endpoint.URL = url
	}
}

func (c *Config) applyEnvOverrides() {
	if endpoint := os.Getenv("CHATBOX_ENDPOINT"); endpoint != "" {
		c.Endpoint.URL = endpoint
	}
	if timeout := os.Getenv("CHATBOX_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			c.envErr = errors.Wrap(err, "CHATBOX_TIMEOUT")
		} else {
			c.Endpoint.Timeout = Duration{d}
		}
	}
	if provider := os.Getenv("CHATBOX_PROVIDER"); provider != "" {
		c.Server.Provider = provider
	}
	if model := os.Getenv("CHATBOX_MODEL"); model != "" {
		c.Server.Model = model
	}
}

// Validate checks the values the widget depends on, including environment
// overrides that could not be parsed.
func (c *Config) Validate() error {
	if c.envErr != nil {
		return c.envErr
	}
	if err := client.ValidateEndpoint(c.Endpoint.URL); err != nil {
		return errors.Wrap(err, "endpoint.url")
	}
	if c.Endpoint.Timeout.Duration < 0 {
		return errors.Errorf("endpoint.timeout must not be negative, got %s", c.Endpoint.Timeout)
	}
	if ok, warning := c.Keybindings.Validate(); !ok {
		return errors.Errorf("keybindings: %s", warning)
	}
	return nil
}

// Load reads settings.toml and keybindings.toml from dir, writing commented
// templates on first run, then applies environment overrides. An empty dir
// selects GetConfigDir().
func Load(dir string) (*Config, error) {
	if dir == "" {
		dir = GetConfigDir()
	}
	dir = ExpandPath(dir)

	if err := EnsureDir(dir); err != nil {
		return nil, errors.Wrap(err, "failed to create config directory")
	}

	settings, err := LoadSettings(dir)
	if err != nil {
		return nil, err
	}

	keybindings, err := LoadKeybindings(dir)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Settings:    *settings,
		Keybindings: keybindings,
		dir:         dir,
	}
	cfg.applyEnvOverrides()

	return cfg, nil
}

// Default returns a config with built-in defaults and environment overrides,
// without touching the filesystem.
func Default() *Config {
	cfg := &Config{
		Settings:    *DefaultSettings(),
		Keybindings: DefaultKeybindings(),
		dir:         GetConfigDir(),
	}
	cfg.applyEnvOverrides()
	return cfg
}
