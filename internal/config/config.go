package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI    UIConfig    `mapstructure:"ui"`
	Timer TimerConfig `mapstructure:"timer"`
	Sound SoundConfig `mapstructure:"sound"`
	Log   LogConfig   `mapstructure:"log"`
	Keys  KeysConfig  `mapstructure:"keys"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Title       string `mapstructure:"title" validate:"required"`
	ClockFormat string `mapstructure:"clock_format" validate:"required"`
	Mouse       bool   `mapstructure:"mouse"`
}

// TimerConfig holds countdown settings.
type TimerConfig struct {
	DefaultMinutes int `mapstructure:"default_minutes" validate:"min=1,max=180"`
}

// SoundConfig selects how cues are played: bell, notify or off.
type SoundConfig struct {
	Mode string `mapstructure:"mode" validate:"oneof=bell notify off"`
}

// LogConfig holds file logging settings. An empty file disables logging.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

// KeysConfig points at an optional TOML file of keybinding overrides.
type KeysConfig struct {
	File string `mapstructure:"file"`
}

// Dir returns the directory for class-board config files.
func Dir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(os.Getenv("HOME"), ".config", "classboard")
	}
	return filepath.Join(dir, "classboard")
}

// Load reads configuration from file and env. An explicit path wins over
// CLASSBOARD_CONFIG, which wins over the default config dir. Env var
// overrides use prefix CLASSBOARD_.
func Load(path string) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ui.title", "Our Class Board")
	v.SetDefault("ui.clock_format", "2006-01-02 15:04:05")
	v.SetDefault("ui.mouse", true)
	v.SetDefault("timer.default_minutes", 5)
	v.SetDefault("sound.mode", "bell")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("keys.file", filepath.Join(Dir(), "keybindings.toml"))

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("CLASSBOARD_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(Dir())
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CLASSBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

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

var validate = validator.New()

// Validate checks field ranges and enumerations.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

type keybindingsFile struct {
	Keys map[string][]string `toml:"keys"`
}

// LoadKeyOverrides reads action -> keys overrides from a TOML file:
//
//	[keys]
//	vote-reveal = ["v"]
//
// A missing file yields no overrides.
func LoadKeyOverrides(path string) (map[string][]string, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	var f keybindingsFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("parse keybindings %s: %w", path, err)
	}
	out := make(map[string][]string, len(f.Keys))
	for action, keys := range f.Keys {
		action = strings.TrimSpace(action)
		var cleaned []string
		for _, k := range keys {
			if k = strings.TrimSpace(k); k != "" {
				cleaned = append(cleaned, k)
			}
		}
		if action == "" || len(cleaned) == 0 {
			continue
		}
		out[action] = cleaned
	}
	return out, nil
}
