// Package app wires configuration to a store and a tracker for both binaries.
package app

import (
	"context"
	"fmt"
	"log"

	"fittrack-backend-go/internal/config"
	"fittrack-backend-go/internal/db"
	"fittrack-backend-go/internal/migrations"
	"fittrack-backend-go/internal/services"
	"fittrack-backend-go/internal/store"
)

// Repository is a tracker store that owns a connection.
type Repository interface {
	services.Repository
	Close() error
}

// OpenRepository returns the in-memory store for DATABASE_URL=memory and
// Postgres otherwise, applying migrations first when migrate is set.
func OpenRepository(ctx context.Context, cfg config.Config, migrate bool) (Repository, error) {
	if cfg.UsesMemoryStore() {
		log.Printf("store: in-memory (data is lost on exit)")
		return store.NewMemory(), nil
	}
	database, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("db: %w", err)
	}
	if migrate {
		if err := migrations.Apply(ctx, database, cfg.MigrationsDir); err != nil {
			_ = database.Close()
			return nil, fmt.Errorf("migrations: %w", err)
		}
	}
	return store.NewPostgres(database), nil
}

func NewTracker(repo services.Repository, cfg config.Config, events *services.EventsHub) *services.Tracker {
	return services.NewTracker(repo, cfg.Targets, cfg.Location(), events)
}
