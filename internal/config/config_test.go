package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
jwt:
  secret: "test-secret"
admin:
  password: "test-password"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, BackendLocal, cfg.Storage.Backend)
	assert.Equal(t, "data", cfg.Storage.DataDir)
	assert.Equal(t, "admin@tnqdo.com", cfg.Admin.Email)
	assert.Equal(t, "tnqdo.com", cfg.JWT.Issuer)
	assert.Equal(t, "tnqdo:events", cfg.Events.RedisChannel)
	assert.Equal(t, 12*time.Hour, cfg.TokenExpiration())
}

func TestLoadConfigFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9090"
storage:
  backend: "postgres"
jwt:
  secret: "test-secret"
  token_expiration: "30m"
admin:
  password: "test-password"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, BackendPostgres, cfg.Storage.Backend)
	assert.Equal(t, 30*time.Minute, cfg.TokenExpiration())
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("STORAGE_BACKEND", "local")

	path := writeConfig(t, `
server:
  port: "9090"
jwt:
  secret: "test-secret"
admin:
  password: "test-password"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Server.Port)
}

func TestLoadConfigRejectsUnknownBackend(t *testing.T) {
	path := writeConfig(t, `
storage:
  backend: "cassandra"
jwt:
  secret: "test-secret"
admin:
  password: "test-password"
`)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigRequiresSecrets(t *testing.T) {
	path := writeConfig(t, `
jwt:
  secret: ""
`)
	_, err := LoadConfig(path)
	assert.Error(t, err)

	path = writeConfig(t, `
jwt:
  secret: "test-secret"
admin:
  password: ""
`)
	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)
	cfg.Database.Password = "pw"
	cfg.Database.DBName = "tnqdo"

	assert.Equal(t, "postgres://postgres:pw@localhost:5432/tnqdo?sslmode=disable", cfg.GetPostgresConnectionString())
}
