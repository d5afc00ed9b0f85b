// Package redis provides the Redis-backed tracking store for rider locations.
// Locations are hot, small, and disposable: each write refreshes a per-rider
// key with a TTL, so riders that stop reporting age out on their own.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/ports"
	"foodcourt/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// DefaultLocationTTL is how long a reported location stays readable without
// a fresh report.
const DefaultLocationTTL = 2 * time.Minute

// TrackingStore implements ports.TrackingStore on a Redis client.
type TrackingStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTrackingStore creates a tracking store with the given TTL.
// A non-positive TTL falls back to DefaultLocationTTL.
func NewTrackingStore(client *redis.Client, ttl time.Duration) *TrackingStore {
	if ttl <= 0 {
		ttl = DefaultLocationTTL
	}
	return &TrackingStore{client: client, ttl: ttl}
}

// SetLocation records the rider's current position, refreshing its expiry.
func (s *TrackingStore) SetLocation(ctx context.Context, riderID kernel.UUID, location ports.RiderLocation) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	payload, err := json.Marshal(location)
	if err != nil {
		return fmt.Errorf("marshal rider location: %w", err)
	}

	return s.client.Set(ctx, locationKey(riderID), payload, s.ttl).Err()
}

// GetLocation returns the rider's last reported position.
func (s *TrackingStore) GetLocation(ctx context.Context, riderID kernel.UUID) (ports.RiderLocation, error) {
	if err := riderID.Validate(); err != nil {
		return ports.RiderLocation{}, err
	}

	payload, err := s.client.Get(ctx, locationKey(riderID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ports.RiderLocation{}, errs.NewObjectNotFoundError("rider location", riderID.String())
		}
		return ports.RiderLocation{}, err
	}

	var location ports.RiderLocation
	if err := json.Unmarshal(payload, &location); err != nil {
		return ports.RiderLocation{}, fmt.Errorf("unmarshal rider location: %w", err)
	}

	return location, nil
}

func locationKey(riderID kernel.UUID) string {
	return "tracking:rider:" + riderID.String()
}
