package ports

import (
	"context"

	"foodcourt/internal/core/domain/model/kernel"
)

// RiderLocation is a rider's last reported position.
type RiderLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// TrackingStore keeps riders' last known locations for the polled tracking
// read path. Entries expire on their own; a rider that stops reporting
// simply disappears from the map.
type TrackingStore interface {
	// SetLocation records the rider's current position.
	SetLocation(ctx context.Context, riderID kernel.UUID, location RiderLocation) error

	// GetLocation returns the rider's last reported position.
	// Returns an errs.ObjectNotFoundError when no recent report exists.
	GetLocation(ctx context.Context, riderID kernel.UUID) (RiderLocation, error)
}
