// Package seed resets a store to the built-in catalog.
package seed

import (
	"context"
	"fmt"
	"log"
	"time"

	"fittrack-backend-go/internal/models"
)

// Reseeder is implemented by both store backends.
type Reseeder interface {
	Reseed(ctx context.Context, catalog models.Catalog) (int64, error)
}

// Run wipes every table and loads Catalog. Starting metrics are dated now.
// It returns the id of the seeded user.
func Run(ctx context.Context, store Reseeder, now time.Time) (int64, error) {
	catalog := Catalog()
	for i := range catalog.Metrics {
		catalog.Metrics[i].Date = now
	}
	userID, err := store.Reseed(ctx, catalog)
	if err != nil {
		return 0, fmt.Errorf("seed: %w", err)
	}
	log.Printf("seed: user %s (id %d), %d exercises, %d workouts, %d medications, %d meals, %d schedule blocks",
		catalog.UserName, userID, len(catalog.Exercises), len(catalog.Workouts), len(catalog.Medications),
		len(catalog.Meals), len(catalog.ScheduleBlocks))
	return userID, nil
}
