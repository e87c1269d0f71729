package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
env:
  env: test
  serviceName: salesboard
  log:
    pretty: true
    level: debug
http:
  port: 8080
database:
  driver: sqlite
  sqlite:
    path: test.db
docstore:
  url: "mem://{collection}/_id"
  collection: dashboard
  probeTimeout: 1s
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600))

	return dir
}

func TestLoadWithEnv_ReadsYAMLAndEnvOverrides(t *testing.T) {
	dir := writeConfig(t, testConfigYAML)
	t.Chdir(dir)
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("DOCSTORE_PROBETIMEOUT", "3s")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "salesboard", cfg.Env.ServiceName)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "test.db", cfg.Database.SQLite.Path)
	require.NotNil(t, cfg.Docstore)
	assert.Equal(t, 3*time.Second, cfg.Docstore.ProbeTimeout)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, defaultSQLitePath, cfg.Database.SQLite.Path)
	assert.Equal(t, defaultDocstoreURL, cfg.Docstore.URL)
	assert.Equal(t, defaultDocstoreCollection, cfg.Docstore.Collection)
	assert.Equal(t, defaultDocstoreProbeTimout, cfg.Docstore.ProbeTimeout)
	assert.True(t, cfg.Report.Compress)
	assert.Empty(t, cfg.Scheduler.ClientCounterSpec)
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("SALESBOARD_TEST_VAR=from-dotenv\n"), 0o600))

	t.Setenv("SALESBOARD_TEST_VAR", "")
	require.NoError(t, os.Unsetenv("SALESBOARD_TEST_VAR"))

	require.NoError(t, loadEnvFile(path))
	assert.Equal(t, "from-dotenv", os.Getenv("SALESBOARD_TEST_VAR"))

	require.NoError(t, loadEnvFile(filepath.Join(dir, "missing.env")))
}

func TestBuildReplicasFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-0")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5432")
	t.Setenv("POSTGRES_REPLICAS_0_USERNAME", "reader")

	replicas := buildReplicasFromEnv()
	require.Len(t, replicas, 1)
	assert.Equal(t, "replica-0", replicas[0].Host)
	assert.Equal(t, "5432", replicas[0].Port)
	assert.Equal(t, "reader", replicas[0].UserName)
}
