package store

import (
	"context"

	"github.com/cryptbox/cryptbox/internal/config"
	"github.com/cryptbox/cryptbox/internal/logger"
)

// Storages bundles the server-side repositories over one PostgreSQL
// connection.
type Storages struct {
	Users UserRepository
	Files FileRepository
}

// NewStorages connects to PostgreSQL, applies migrations and wires the
// repositories.
func NewStorages(cfg *config.StructuredConfig, logger *logger.Logger) (*Storages, error) {
	logger.Debug().Msg("creating server storages")

	db, err := NewConnectPostgres(context.Background(), cfg.Storage.DB, logger)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	return &Storages{
		Users: NewUserRepository(db, logger),
		Files: NewFileRepository(db, logger),
	}, nil
}
