package store

import (
	"fmt"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

type Config interface {
	BasePath() string
}

func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.entropy.db")
	viper.SetConfigName(".entropy") // .yaml is implicit
	viper.SetEnvPrefix("ENTROPY")
	viper.AutomaticEnv()

	if override := os.Getenv("ENTROPY_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path := viper.GetString("path")
	if strings.HasPrefix(path, "~") {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return nil, fmt.Errorf("store: expand path: %w", err)
		}
		path = expanded
	}

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
