package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestMustLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		// Given: a config file that sets nothing
		path := writeConfig(t, "log-level: debug\n")

		// When: it is loaded
		conf := MustLoad(path)

		// Then: every other key falls back to its default
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, "7777", conf.SocketPort)
		assert.Equal(t, StoreRedis, conf.Store.Driver)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, time.Second, conf.ComputerDelay)
	})

	t.Run("File values", func(t *testing.T) {
		path := writeConfig(t, `
http-port: "8080"
store:
  driver: memory
computer-delay: 250ms
allowed-origins:
  - http://localhost:3000
`)

		conf := MustLoad(path)

		assert.Equal(t, "8080", conf.HTTPPort)
		assert.Equal(t, StoreMemory, conf.Store.Driver)
		assert.Equal(t, 250*time.Millisecond, conf.ComputerDelay)
		assert.Equal(t, []string{"http://localhost:3000"}, conf.AllowedOrigins)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		path := writeConfig(t, "redis:\n  host: redis.local\n")
		t.Setenv("REDIS_PORT", "6380")

		conf := MustLoad(path)

		assert.Equal(t, "redis.local:6380", conf.Redis.GetRedisAddr())
	})

	t.Run("Unknown store driver panics", func(t *testing.T) {
		path := writeConfig(t, "store:\n  driver: firebase\n")

		assert.Panics(t, func() { MustLoad(path) })
	})

	t.Run("Missing file panics", func(t *testing.T) {
		assert.Panics(t, func() { MustLoad(filepath.Join(t.TempDir(), "absent.yml")) })
	})
}
