// Package config provides application configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds application configuration values loaded from file or environment variables.
type Config struct {
	Port           string `mapstructure:"PORT"`
	DataDir        string `mapstructure:"DATA_DIR"`
	DBFile         string `mapstructure:"DB_FILE"`
	StaticDir      string `mapstructure:"STATIC_DIR"`
	AllowedOrigins string `mapstructure:"ALLOWED_ORIGINS"`
	Env            string `mapstructure:"APP_ENV"`
}

// LoadConfig loads application configuration from file and environment variables.
func LoadConfig() (*Config, error) {
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AutomaticEnv()

	// The config file is optional; environment variables and defaults
	// cover every setting.
	_ = viper.ReadInConfig()

	viper.SetDefault("PORT", "8081")
	viper.SetDefault("DATA_DIR", ".")
	viper.SetDefault("DB_FILE", "stories.db")
	viper.SetDefault("STATIC_DIR", ".")
	viper.SetDefault("ALLOWED_ORIGINS", "*")
	viper.SetDefault("APP_ENV", "development")

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate ensures that required configuration values are present.
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	if c.DBFile == "" {
		return errors.New("DB_FILE is required")
	}
	return nil
}

// DBPath returns the full path of the sqlite database file. DATA_DIR can be
// pointed at a mounted persistent disk so stories survive restarts.
func (c *Config) DBPath() string {
	dir := c.DataDir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, c.DBFile)
}
