package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func devConfig() *Config {
	return &Config{
		Port:      "8350",
		JWTSecret: "your-secret-key-change-in-production",
		Env:       "development",
	}
}

func prodConfig() *Config {
	return &Config{
		Port:       "8350",
		JWTSecret:  strings.Repeat("s", 32),
		Env:        "production",
		DBPassword: "a-real-password",
		DBSSLMode:  "require",
	}
}

func TestValidate_Development(t *testing.T) {
	cfg := devConfig()
	assert.NoError(t, cfg.Validate())
}

func TestValidate_RequiredFields(t *testing.T) {
	cfg := devConfig()
	cfg.Port = ""
	require.Error(t, cfg.Validate())

	cfg = devConfig()
	cfg.JWTSecret = ""
	require.Error(t, cfg.Validate())
}

func TestValidate_ProductionStrictness(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid production config",
			mutate: func(c *Config) {},
		},
		{
			name:    "default jwt secret rejected",
			mutate:  func(c *Config) { c.JWTSecret = "your-secret-key-change-in-production" },
			wantErr: "JWT_SECRET must be changed",
		},
		{
			name:    "short jwt secret rejected",
			mutate:  func(c *Config) { c.JWTSecret = "short" },
			wantErr: "at least 32 characters",
		},
		{
			name:    "default db password rejected",
			mutate:  func(c *Config) { c.DBPassword = "password" },
			wantErr: "DB_PASSWORD",
		},
		{
			name:    "ssl disabled rejected",
			mutate:  func(c *Config) { c.DBSSLMode = "disable" },
			wantErr: "DB_SSLMODE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := prodConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8350", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.False(t, cfg.TracingEnabled)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("PORT", "9000")
	t.Setenv("DB_NAME", "devconnect_test")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "devconnect_test", cfg.DBName)
}
