package config_test

import (
	"testing"
	"time"

	"github.com/Flaque/filet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/employee-service/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.App.Port)
	assert.Equal(t, "0.0.0.0:3000", cfg.App.Addr())
	assert.Equal(t, "http://localhost:3000", cfg.App.BaseURL())
	assert.Zero(t, cfg.App.RequestTimeout())
	assert.Equal(t, config.DriverMongo, cfg.Store.Driver)
	assert.Equal(t, "mongodb://localhost/employeeDB", cfg.Mongo.URI)
	assert.Equal(t, "employeeDB", cfg.Mongo.Database)
	assert.Equal(t, "employees", cfg.Mongo.Collection)
	assert.Equal(t, 10*time.Second, cfg.Mongo.ConnectTimeout())
	assert.Equal(t, int32(10), cfg.Postgres.MaxConns)
	assert.Equal(t, "employees", cfg.Redis.KeyPrefix)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.True(t, cfg.Seed.Enabled)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("APP_HOST", "127.0.0.1")
	t.Setenv("APP_PORT", "8081")
	t.Setenv("STORE_DRIVER", "Redis")
	t.Setenv("REDIS_ADDR", "cache:6379")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("HTTP_REQUEST_TIMEOUT_SECONDS", "5")
	t.Setenv("SEED_ENABLED", "false")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:8081", cfg.App.BaseURL())
	assert.Equal(t, 5*time.Second, cfg.App.RequestTimeout())
	assert.Equal(t, config.DriverRedis, cfg.Store.Driver)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.False(t, cfg.Seed.Enabled)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestLoad_File(t *testing.T) {
	defer filet.CleanUp(t)

	file := filet.TmpFile(t, "", `
store:
  driver: postgres
postgres:
  dsn: postgres://app:app@db:5432/employees
  max_conns: 4
mongo:
  database: staff
`)
	t.Setenv("CONFIG_PATH", file.Name())
	t.Setenv("APP_PORT", "9000")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.DriverPostgres, cfg.Store.Driver)
	assert.Equal(t, "postgres://app:app@db:5432/employees", cfg.Postgres.DSN)
	assert.Equal(t, int32(4), cfg.Postgres.MaxConns)
	assert.Equal(t, int32(2), cfg.Postgres.MinConns)
	assert.Equal(t, "staff", cfg.Mongo.Database)
	assert.Equal(t, "9000", cfg.App.Port)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing config file", func(t *testing.T) {
		t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")
		_, err := config.Load()
		require.Error(t, err)
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("CONFIG_PATH", "")
		t.Setenv("STORE_DRIVER", "cassandra")
		_, err := config.Load()
		require.ErrorContains(t, err, "cassandra")
	})

	t.Run("invalid redis db", func(t *testing.T) {
		t.Setenv("CONFIG_PATH", "")
		t.Setenv("REDIS_DB", "primary")
		_, err := config.Load()
		require.ErrorContains(t, err, "REDIS_DB")
	})
}
