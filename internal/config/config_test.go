package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
# POS backend settings
server:
  port: 8080
  shutdown_timeout: 10

database:
  path: "/var/lib/pos/pos.db"

redis:
  addr: "localhost:6379"

rabbitmq:
  host: rabbit.internal
  port: 5673
  user: pos
  password: 's3cret'
  vhost: /pos
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "/var/lib/pos/pos.db", cfg.Database.Path)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "rabbit.internal", cfg.Rabbit.Host)
	assert.Equal(t, 5673, cfg.Rabbit.Port)
	assert.Equal(t, "pos", cfg.Rabbit.User)
	assert.Equal(t, "s3cret", cfg.Rabbit.Password)
	assert.Equal(t, "/pos", cfg.Rabbit.VHost)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "server:\n"))
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, 5, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "pos.db", cfg.Database.Path)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Empty(t, cfg.Rabbit.Host)
	assert.Equal(t, 5672, cfg.Rabbit.Port)
	assert.Equal(t, "/", cfg.Rabbit.VHost)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load(writeConfig(t, "server:\n  port: 99999\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "server:\n  shutdown_timeout: 0\n"))
	assert.Error(t, err, "a zero shutdown timeout would drop in-flight requests")

	_, err = Load(writeConfig(t, "rabbitmq:\n  host: rabbit.internal\n"))
	assert.Error(t, err, "host without credentials must be rejected")

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_IgnoresNoise(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
# comment only

server:
  # indented comment
  port: 7000
  garbage line without separator is skipped too
`))
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Server.Port)
}
