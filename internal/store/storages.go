package store

import (
	"context"
	"fmt"

	"github.com/resumekit/resumekit/internal/config"
	"github.com/resumekit/resumekit/internal/logger"
	"github.com/resumekit/resumekit/migrations"
)

// Storages aggregates every server-side repository behind one constructor,
// so the composition root deals with a single value.
type Storages struct {
	UserRepository UserRepository
}

// NewStorages connects to PostgreSQL, applies the embedded migrations, and
// wires up the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to postgres: %w", err)
	}

	if err = migrations.Migrate(db.DB); err != nil {
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
	}, nil
}
