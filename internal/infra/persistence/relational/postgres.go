package relational

import (
	"salesboard/config"
	"salesboard/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"gorm.io/gorm"
)

func openPostgres(cfg *config.Config) (*gorm.DB, error) {
	if cfg.Postgres == nil {
		return nil, errors.New("postgres configuration is missing")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}

	return db, nil
}
