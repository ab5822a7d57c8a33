package store

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config supplies the base path for the on-disk store.
type Config interface {
	BasePath() string
}

// LoadConfig resolves the store location from a .murmur config file or
// MURMUR_* environment variables, defaulting to ~/.murmur.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.murmur.db")
	viper.SetConfigName(".murmur") // .yaml is implicit
	viper.SetEnvPrefix("MURMUR")
	viper.AutomaticEnv()

	if override := os.Getenv("MURMUR_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

// PathConfig builds a Config pointing at an explicit directory. Intended for
// tests and embedding callers.
func PathConfig(path string) Config {
	return &fileConfig{Path: path}
}
