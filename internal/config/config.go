// Package config handles configuration loading and defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Default values.
const (
	DefaultTheme     = "classic"
	DefaultLogLevel  = "info"
	DefaultAddr      = "127.0.0.1:8080"
	DefaultColor     = "auto"
	DefaultAltScreen = true
)

// Config holds the full configuration for tada.
type Config struct {
	Theme     string `toml:"theme"`      // classic | neon | mono
	Color     string `toml:"color"`      // auto | always | never
	AltScreen bool   `toml:"alt_screen"` // TUI in the alternate screen buffer

	LogLevel string `toml:"log_level"`
	LogFile  string `toml:"log_file"`

	// Web server listen address.
	Addr string `toml:"addr"`

	// File the config was read from, if any (computed).
	Path string `toml:"-"`
}

// Default returns a config with defaults applied.
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

func setDefaults(cfg *Config) {
	cfg.Theme = DefaultTheme
	cfg.Color = DefaultColor
	cfg.AltScreen = DefaultAltScreen
	cfg.LogLevel = DefaultLogLevel
	cfg.Addr = DefaultAddr
}

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. User config file ($XDG_CONFIG_HOME/tada/tada.toml)
// 3. Project config file (tada.toml or .tada.toml in current directory)
// 4. Environment variables
//
// An explicit path replaces steps 2 and 3 and must exist.
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

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated values.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Theme) {
	case "classic", "neon", "mono":
	default:
		return fmt.Errorf("invalid theme %q (want classic, neon or mono)", c.Theme)
	}
	switch strings.ToLower(c.Color) {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color %q (want auto, always or never)", c.Color)
	}
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("addr is empty")
	}
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
	cfg.Path = path
	return nil
}

func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TADA_THEME"); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv("TADA_COLOR"); v != "" {
		cfg.Color = v
	}
	if v := os.Getenv("TADA_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TADA_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("TADA_ADDR"); v != "" {
		cfg.Addr = v
	}
}

func findProjectConfigFile() string {
	for _, name := range []string{"tada.toml", ".tada.toml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

func findUserConfigFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	p := filepath.Join(dir, "tada", "tada.toml")
	if _, err := os.Stat(p); err == nil {
		return p
	}
	return ""
}
