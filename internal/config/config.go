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
	UI      UIConfig
	Log     LogConfig
	Friends []FriendConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	CurrencySymbol string `mapstructure:"currency_symbol"`
	AvatarBaseURL  string `mapstructure:"avatar_base_url"`
}

// LogConfig controls where slog output goes while the TUI owns the terminal.
type LogConfig struct {
	File  string
	Level string
}

// FriendConfig is one entry of the initial friends list.
type FriendConfig struct {
	ID        string
	Name      string
	AvatarURL string `mapstructure:"avatar_url"`
	Balance   float64
}

// DefaultFriends is the collection a fresh session starts with.
func DefaultFriends() []FriendConfig {
	return []FriendConfig{
		{ID: "118836", Name: "Clark", AvatarURL: "https://i.pravatar.cc/48?u=118836", Balance: -7},
		{ID: "933372", Name: "Sarah", AvatarURL: "https://i.pravatar.cc/48?u=933372", Balance: 20},
		{ID: "499476", Name: "Anthony", AvatarURL: "https://i.pravatar.cc/48?u=499476", Balance: 0},
	}
}

// Load reads configuration from file and env. Env var overrides use prefix SPLITBILL_.
// An explicit path wins over SPLITBILL_CONFIG; a missing default file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ui.currency_symbol", "$")
	v.SetDefault("ui.avatar_base_url", "https://i.pravatar.cc/48")
	v.SetDefault("log.file", filepath.Join(os.TempDir(), "splitbill.log"))
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("SPLITBILL_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "splitbill"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SPLITBILL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); explicit || !ok {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if len(c.Friends) == 0 {
		c.Friends = DefaultFriends()
	}
	return c, nil
}
