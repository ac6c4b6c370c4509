// Package initializer wires the process dependencies: logger, database
// connection, and the unit of work handed to the services.
package initializer

import (
	"fmt"

	"github.com/amirasaad/balance/config"
	"github.com/amirasaad/balance/infra"
	infrarepo "github.com/amirasaad/balance/infra/repository"
)

// InitializeDependencies builds the dependency set from configuration.
func InitializeDependencies(cfg *config.App) (config.Deps, error) {
	logger := setupLogger(cfg.Log)

	db, err := infra.NewDBConnection(cfg.DB.Url)
	if err != nil {
		return config.Deps{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return config.Deps{
		Uow:    infrarepo.NewUoW(db),
		Logger: logger,
		Config: cfg,
	}, nil
}
