package store

import (
	"context"
	"fmt"

	"github.com/alebedev/passvault/internal/config"
	"github.com/alebedev/passvault/internal/logger"
	"github.com/alebedev/passvault/migrations"
)

// Storages bundles every repository the service layer depends on.
type Storages struct {
	UserRepository  UserRepository
	VaultRepository VaultRepository
}

// NewStorages connects to the configured database, applies pending schema
// migrations, and wires up all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := migrations.Migrate(db.DB); err != nil {
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		UserRepository:  NewUserRepository(db, log),
		VaultRepository: NewVaultRepository(db, log),
	}, nil
}
