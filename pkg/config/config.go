/* pkg/config/config.go */

package config

import (
	"os"
	"path/filepath"
	"strings"

	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// Settings holds the user-tunable configuration resolved from the config
// file, environment and built-in defaults.
type Settings struct {
	DefaultLength int    `mapstructure:"length"`
	Symbols       string `mapstructure:"symbols"`
	HistoryPath   string `mapstructure:"history_path"`
	HistoryLimit  int    `mapstructure:"history_limit"`
}

// Load resolves settings with precedence: SPARTANPASS_* environment
// variables, then ~/.config/spartanpass/config.yaml, then defaults.
func Load() (*Settings, error) {
	v := viper.New()

	v.SetDefault("length", DefaultPasswordLength)
	v.SetDefault("symbols", PasswordCharset)
	v.SetDefault("history_path", defaultHistoryPath())
	v.SetDefault("history_limit", PasswordHistoryLimit)

	v.SetEnvPrefix("SPARTANPASS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "spartanpass"))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !cerr.As(err, &notFound) {
			return nil, cerr.Wrap(err, "read config file")
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, cerr.Wrap(err, "unmarshal settings")
	}

	if s.DefaultLength <= 0 {
		s.DefaultLength = DefaultPasswordLength
	}
	if s.Symbols == "" {
		s.Symbols = PasswordCharset
	}
	if s.HistoryLimit <= 0 {
		s.HistoryLimit = PasswordHistoryLimit
	}
	if s.HistoryPath == "" {
		s.HistoryPath = defaultHistoryPath()
	}
	return &s, nil
}

func defaultHistoryPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "password_history.json"
	}
	return filepath.Join(dir, "spartanpass", "password_history.json")
}
