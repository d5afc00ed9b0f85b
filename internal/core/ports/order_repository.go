package ports

import (
	"context"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their lifecycle status and rider assignment.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its current status and assignment.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllActive retrieves all orders in a non-terminal status.
	// Used by actor dashboards and the delay monitor.
	GetAllActive(ctx context.Context) ([]*order.Order, error)

	// AssignRider atomically claims the order for the rider.
	// The write is a compare-and-swap on the rider column: it succeeds only
	// while the order has no rider, so exactly one of several concurrent
	// claims wins. Losing claims receive order.ErrRiderAlreadyAssigned.
	AssignRider(ctx context.Context, orderID, riderID kernel.UUID) error
}
