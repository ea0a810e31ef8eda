package config_test

import (
	"testing"

	"github.com/phrazzld/directory-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DIRECTORY_DATABASE_URL", "postgres://localhost:5432/directory_test")
	t.Setenv("DIRECTORY_SERVER_PORT", "9090")
	t.Setenv("DIRECTORY_SERVER_LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost:5432/directory_test", cfg.Database.URL)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
}

func TestLoad_AppliesDefaults(t *testing.T) {
	t.Setenv("DIRECTORY_DATABASE_URL", "postgres://localhost:5432/directory_test")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DIRECTORY_DATABASE_URL", "")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "port_out_of_range",
			env: map[string]string{
				"DIRECTORY_DATABASE_URL": "postgres://localhost:5432/directory_test",
				"DIRECTORY_SERVER_PORT":  "70000",
			},
		},
		{
			name: "unknown_log_level",
			env: map[string]string{
				"DIRECTORY_DATABASE_URL":     "postgres://localhost:5432/directory_test",
				"DIRECTORY_SERVER_LOG_LEVEL": "loud",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}
