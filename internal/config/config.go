package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Flow FlowConfig
	UI   UIConfig
	Log  LogConfig
	Keys KeysConfig
}

// FlowConfig holds the input lengths that gate each step.
type FlowConfig struct {
	PhoneLength int `mapstructure:"phone_length"`
	CodeLength  int `mapstructure:"code_length"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Accent      string
	Welcome     string
	CursorBlink bool `mapstructure:"cursor_blink"`
}

// LogConfig controls the log file. The terminal belongs to the UI, so logs never go to stdout.
type LogConfig struct {
	Level string
	Path  string
}

// KeysConfig points at an optional keybinding override file.
type KeysConfig struct {
	Path string
}

var ErrInvalidConfig = errors.New("invalid config")

func home() string {
	if h, err := os.UserHomeDir(); err == nil {
		return h
	}
	return os.Getenv("HOME")
}

// Load reads configuration from file and env. Env var overrides use prefix ONIGO_.
// An explicit path wins over ONIGO_CONFIG; a missing default file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("flow.phone_length", 10)
	v.SetDefault("flow.code_length", 6)
	v.SetDefault("ui.accent", "#EB6419")
	v.SetDefault("ui.welcome", "Welcome to OniGO!")
	v.SetDefault("ui.cursor_blink", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.path", filepath.Join(home(), ".local", "state", "onigo", "onigo.log"))
	v.SetDefault("keys.path", filepath.Join(home(), ".config", "onigo", "keys.toml"))

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("ONIGO_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(home(), ".config", "onigo"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("ONIGO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the flow cannot run with.
func (c Config) Validate() error {
	if c.Flow.PhoneLength <= 0 {
		return fmt.Errorf("%w: flow.phone_length must be positive, got %d", ErrInvalidConfig, c.Flow.PhoneLength)
	}
	if c.Flow.CodeLength <= 0 {
		return fmt.Errorf("%w: flow.code_length must be positive, got %d", ErrInvalidConfig, c.Flow.CodeLength)
	}
	return nil
}
