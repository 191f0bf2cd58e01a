package config_test

import (
	"testing"

	"github.com/phrazzld/taskboard-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("TASKBOARD_DATABASE_URL", "postgres://localhost:5432/taskboard_test")
	t.Setenv("TASKBOARD_SERVER_PORT", "9090")
	t.Setenv("TASKBOARD_SERVER_LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "postgres://localhost:5432/taskboard_test", cfg.Database.URL)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TASKBOARD_DATABASE_URL", "postgres://localhost:5432/taskboard_test")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("TASKBOARD_DATABASE_URL", "")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("TASKBOARD_DATABASE_URL", "postgres://localhost:5432/taskboard_test")
	t.Setenv("TASKBOARD_SERVER_LOG_LEVEL", "loud")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
