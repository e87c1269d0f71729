package relational

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"salesboard/config"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{}
	cfg.Database.Driver = config.DriverSQLite
	cfg.Database.SQLite.Path = filepath.Join(t.TempDir(), "vendas_test.db")

	db, err := Open(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	require.NoError(t, Migrate(context.Background(), db))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.Driver = "oracle"

	_, err := Open(cfg, nil)
	require.Error(t, err)
}

func TestOpen_PostgresWithoutConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.Driver = config.DriverPostgres

	_, err := Open(cfg, nil)
	require.Error(t, err)
}
