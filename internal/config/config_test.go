package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	defer viper.Reset()

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, ".", cfg.DataDir)
	assert.Equal(t, "stories.db", cfg.DBFile)
	assert.Equal(t, "*", cfg.AllowedOrigins)
	assert.Equal(t, "development", cfg.Env)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	defer viper.Reset()
	defer os.Unsetenv("PORT")
	defer os.Unsetenv("DATA_DIR")

	os.Setenv("PORT", "9090")
	os.Setenv("DATA_DIR", "/var/data")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "/var/data", cfg.DataDir)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
	}{
		{"Valid", Config{Port: "8081", DBFile: "stories.db"}, false},
		{"Missing port", Config{DBFile: "stories.db"}, true},
		{"Missing db file", Config{Port: "8081"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_DBPath(t *testing.T) {
	c := &Config{DataDir: "/mnt/disk", DBFile: "stories.db"}
	assert.Equal(t, filepath.Join("/mnt/disk", "stories.db"), c.DBPath())

	c = &Config{DataDir: "", DBFile: "stories.db"}
	assert.Equal(t, filepath.Join(".", "stories.db"), c.DBPath())
}
