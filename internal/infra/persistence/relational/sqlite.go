package relational

import (
	"os"
	"path/filepath"

	"salesboard/internal/errors"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const sqliteBusyTimeoutMillis = "5000"

func openSQLite(path string) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrapf(err, "failed to create sqlite directory %s", dir)
		}
	}

	dsn := path + "?_busy_timeout=" + sqliteBusyTimeoutMillis + "&_journal_mode=WAL"

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sqlite sql.DB")
	}
	// SQLite allows a single writer. One connection serializes transactions instead of
	// failing them with "database is locked".
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}
