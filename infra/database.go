// Package infra bootstraps infrastructure collaborators: the postgres
// connection and schema migration.
package infra

import (
	"errors"

	infrarepo "github.com/amirasaad/balance/infra/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewDBConnection opens the postgres connection and migrates the ledger
// schema. TranslateError lets gorm surface unique violations as
// gorm.ErrDuplicatedKey so error mapping stays driver-agnostic.
func NewDBConnection(databaseURL string) (*gorm.DB, error) {
	if databaseURL == "" {
		return nil, errors.New("database url is not set")
	}
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&infrarepo.Account{}, &infrarepo.Transaction{}); err != nil {
		return nil, err
	}
	return db, nil
}
