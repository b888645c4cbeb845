package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Log LogConfig `mapstructure:"log"`
	IDs IDConfig  `mapstructure:"ids"`
	UI  UIConfig  `mapstructure:"ui"`
}

// LogConfig controls where and how much the app logs. Path "-" means stderr.
type LogConfig struct {
	Path   string `mapstructure:"path"`
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// IDConfig selects the record identifier strategy.
type IDConfig struct {
	Strategy string `mapstructure:"strategy"`
	Node     int64  `mapstructure:"node"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	AltScreen bool `mapstructure:"alt_screen"`
}

// flagKeys maps command-line flag names onto config keys.
var flagKeys = map[string]string{
	"id-strategy": "ids.strategy",
	"id-node":     "ids.node",
	"log-level":   "log.level",
	"log-file":    "log.path",
	"alt-screen":  "ui.alt_screen",
}

// Path returns the config file location: $LINEITEM_CONFIG when set,
// otherwise ~/.config/lineitem/config.toml.
func Path() string {
	if p := os.Getenv("LINEITEM_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "lineitem", "config.toml")
}

// Load reads configuration from defaults, the config file, env and flags,
// in increasing priority. Env var overrides use prefix LINEITEM_. An empty
// path falls back to Path(); a missing file is not an error. flags may be
// nil; only flags the user actually set override the file.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("log.path", filepath.Join(os.Getenv("HOME"), ".local", "state", "lineitem", "lineitem.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("ids.strategy", "sequence")
	v.SetDefault("ids.node", 1)
	v.SetDefault("ui.alt_screen", true)

	v.SetConfigType("toml")
	if path == "" {
		path = Path()
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix("LINEITEM")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil || !f.Changed {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes cfg to path (or Path() when empty), creating the directory
// if needed. Used by `lineitem init-config`.
func Save(path string, cfg Config) error {
	if path == "" {
		path = Path()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.format", cfg.Log.Format)
	v.Set("ids.strategy", cfg.IDs.Strategy)
	v.Set("ids.node", cfg.IDs.Node)
	v.Set("ui.alt_screen", cfg.UI.AltScreen)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
