package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Profile  ProfileConfig
	UI       UIConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// ProfileConfig identifies the active user. Edit and delete actions are
// only offered for records whose author matches this id; the store itself
// does not re-check, so the id is a presentation guard, not a credential.
type ProfileConfig struct {
	ID          string
	DisplayName string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DateFormat string `mapstructure:"date_format"`
	Accent     string
}

// Load reads configuration from file and env. Env var overrides use prefix BIODEX_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "biodex", "biodex.db"))
	v.SetDefault("profile.id", "")
	v.SetDefault("profile.displayname", "")
	v.SetDefault("ui.date_format", "2 Jan 2006")
	v.SetDefault("ui.accent", "green")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("BIODEX_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "biodex"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("BIODEX")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := os.Getenv("BIODEX_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "biodex", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("profile.id", cfg.Profile.ID)
	v.Set("profile.displayname", cfg.Profile.DisplayName)
	v.Set("ui.date_format", cfg.UI.DateFormat)
	v.Set("ui.accent", cfg.UI.Accent)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
