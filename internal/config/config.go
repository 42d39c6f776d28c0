// Package config handles configuration loading and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Storage backends.
const (
	StorageJSON   = "json"
	StorageSQLite = "sqlite"
)

// Default values.
const (
	DefaultStorage  = StorageJSON
	DefaultKey      = "_$-todos_"
	DefaultTheme    = "classic"
	DefaultLogLevel = "warn"
	DefaultColor    = ColorAuto
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the full configuration for todo.
type Config struct {
	// Storage selects the key/value backend: "json" or "sqlite".
	Storage string `toml:"storage"`
	// Data is the backing file. Empty means the backend's default in the
	// working directory.
	Data     string `toml:"data"`
	Key      string `toml:"key"`
	Theme    string `toml:"theme"`
	LogLevel string `toml:"log_level"`
	// Color is "auto", "always" or "never".
	Color string `toml:"color"`
}

// Default returns a config with every field set to its default.
func Default() *Config {
	return &Config{
		Storage:  DefaultStorage,
		Key:      DefaultKey,
		Theme:    DefaultTheme,
		LogLevel: DefaultLogLevel,
		Color:    DefaultColor,
	}
}

// Load builds the config from, in increasing priority:
//  1. Defaults
//  2. User config file ($XDG_CONFIG_HOME/todos/config.toml)
//  3. Project config file (todos.toml or .todos.toml in the working directory)
//  4. Environment variables (TODOS_*)
//
// When explicit is non-empty it replaces steps 2 and 3 and must exist.
// Flags are applied by the caller on top of the result.
func Load(explicit string) (*Config, error) {
	cfg := Default()

	if explicit != "" {
		if err := loadConfigFile(cfg, explicit); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", explicit, err)
		}
	} else {
		if p := findUserConfigFile(); p != "" {
			if err := loadConfigFile(cfg, p); err != nil {
				return nil, fmt.Errorf("loading user config file %s: %w", p, err)
			}
		}
		if p := findProjectConfigFile(); p != "" {
			if err := loadConfigFile(cfg, p); err != nil {
				return nil, fmt.Errorf("loading project config file %s: %w", p, err)
			}
		}
	}

	loadFromEnv(cfg)
	return cfg, nil
}

// Validate normalizes and checks the final config.
func (c *Config) Validate() error {
	c.Storage = strings.ToLower(strings.TrimSpace(c.Storage))
	switch c.Storage {
	case StorageJSON, StorageSQLite:
	default:
		return fmt.Errorf("invalid storage %q: must be %s or %s", c.Storage, StorageJSON, StorageSQLite)
	}
	if c.Key == "" {
		return errors.New("key must not be empty")
	}
	c.Color = strings.ToLower(strings.TrimSpace(c.Color))
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	case "":
		c.Color = ColorAuto
	default:
		return fmt.Errorf("invalid color %q: must be %s, %s or %s", c.Color, ColorAuto, ColorAlways, ColorNever)
	}
	c.Data = expandPath(strings.TrimSpace(c.Data))
	return nil
}

func loadConfigFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

func loadFromEnv(cfg *Config) {
	set := func(name string, dst *string) {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			*dst = v
		}
	}
	set("TODOS_STORAGE", &cfg.Storage)
	set("TODOS_DATA", &cfg.Data)
	set("TODOS_KEY", &cfg.Key)
	set("TODOS_THEME", &cfg.Theme)
	set("TODOS_LOG_LEVEL", &cfg.LogLevel)
	set("TODOS_COLOR", &cfg.Color)
}

func findUserConfigFile() string {
	dir := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME"))
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	p := filepath.Join(dir, "todos", "config.toml")
	if fileExists(p) {
		return p
	}
	return ""
}

func findProjectConfigFile() string {
	for _, name := range []string{"todos.toml", ".todos.toml"} {
		if fileExists(name) {
			return name
		}
	}
	return ""
}

func fileExists(p string) bool {
	fi, err := os.Stat(p)
	return err == nil && !fi.IsDir()
}

func expandPath(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}
