package ports

import (
	"context"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/rider"
)

// RiderRepository defines the persistence contract for rider aggregates.
// A rider's active claims are derived from the orders table, so the
// repository reconstructs the full aggregate on every Get.
type RiderRepository interface {
	// Add persists a new rider aggregate to storage.
	Add(ctx context.Context, aggregate *rider.Rider) error

	// Update persists changes to an existing rider aggregate.
	Update(ctx context.Context, aggregate *rider.Rider) error

	// Get retrieves a rider aggregate by its unique identifier,
	// including the orders the rider currently holds.
	Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error)
}
