// Package rider contains the Rider aggregate.
//
// A rider picks up ready orders and delivers them. The aggregate's single
// business rule is the claim cap: a rider carries at most MaxActiveClaims
// orders at a time, and a claim is released when the delivery completes.
package rider

import (
	"errors"
	"fmt"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
	"foodcourt/internal/pkg/guard"
)

// MaxActiveClaims is how many undelivered orders a rider may hold at once.
const MaxActiveClaims = 2

var (
	// ErrNameIsRequired is returned when attempting to create a rider without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrRiderIsNotConstructed is returned when using an improperly initialized Rider.
	ErrRiderIsNotConstructed = errors.New("Rider must be created via NewRider constructor")
	// ErrRiderAtCapacity rejects a claim when the rider already holds MaxActiveClaims orders.
	ErrRiderAtCapacity = errors.New("rider already holds the maximum number of active orders")
	// ErrOrderAlreadyClaimed rejects claiming the same order twice.
	ErrOrderAlreadyClaimed = errors.New("order is already claimed by this rider")
	// ErrOrderNotClaimed rejects releasing an order the rider does not hold.
	ErrOrderNotClaimed = errors.New("order is not claimed by this rider")
)

// Rider represents a delivery rider in the system.
// It is an aggregate root that manages rider identity and the set of orders
// the rider is currently carrying.
//
// Business rules:
//   - Rider must have a valid UUID and non-empty name
//   - At most MaxActiveClaims orders may be active at once
//   - The same order cannot be claimed twice
//
// The capacity rule here guards the aggregate; claiming an order also races
// other riders for the order itself, which the order repository resolves
// with a compare-and-swap.
type Rider struct {
	// id uniquely identifies the rider
	id kernel.UUID
	// name is the human-readable name of the rider
	name string
	// activeOrders are the orders currently claimed and not yet delivered
	activeOrders []kernel.UUID
	// guard ensures the rider was properly constructed
	guard guard.ConstructorGuard
}

// NewRider creates a new Rider with no active claims.
//
// Parameters:
//   - id: Unique identifier for the rider (must be a valid UUID)
//   - name: Human-readable name (must be non-empty)
//
// Returns the rider, or a validation error if any parameter is invalid.
func NewRider(id kernel.UUID, name string) (*Rider, error) {
	r := &Rider{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRider reconstructs a Rider aggregate from persistent storage,
// including its active claims.
func RestoreRider(id kernel.UUID, name string, activeOrders []kernel.UUID) (*Rider, error) {
	r, err := NewRider(id, name)
	if err != nil {
		return nil, err
	}

	if len(activeOrders) > MaxActiveClaims {
		return nil, errs.NewValueIsOutOfRangeError("active orders", len(activeOrders), 0, MaxActiveClaims)
	}
	for _, orderID := range activeOrders {
		if err := orderID.Validate(); err != nil {
			return nil, err
		}
	}

	r.activeOrders = activeOrders
	return r, nil
}

// Validate checks if the Rider was properly constructed.
func (r *Rider) Validate() error {
	if r == nil {
		return ErrRiderIsNotConstructed
	}
	return r.guard.Validate(ErrRiderIsNotConstructed)
}

// IsEqual compares two riders by their unique identifiers.
func (r *Rider) IsEqual(other *Rider) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the rider's unique identifier.
func (r *Rider) ID() kernel.UUID {
	return r.id
}

// Name returns the rider's name.
func (r *Rider) Name() string {
	return r.name
}

// ActiveOrders returns the orders the rider currently holds.
func (r *Rider) ActiveOrders() []kernel.UUID {
	return r.activeOrders
}

// CanClaim reports whether the rider has room for another order.
func (r *Rider) CanClaim() bool {
	return len(r.activeOrders) < MaxActiveClaims
}

// Claim adds an order to the rider's active set.
// Fails when the rider is at capacity or already holds the order.
func (r *Rider) Claim(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if r.holds(orderID) {
		return fmt.Errorf("%w: %s", ErrOrderAlreadyClaimed, orderID)
	}
	if !r.CanClaim() {
		return fmt.Errorf("%w: limit is %d", ErrRiderAtCapacity, MaxActiveClaims)
	}

	r.activeOrders = append(r.activeOrders, orderID)
	return nil
}

// Release removes an order from the rider's active set, freeing a claim slot.
// Called when the delivery completes.
func (r *Rider) Release(orderID kernel.UUID) error {
	for i, id := range r.activeOrders {
		if id.IsEqual(orderID) {
			r.activeOrders = append(r.activeOrders[:i], r.activeOrders[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrOrderNotClaimed, orderID)
}

func (r *Rider) holds(orderID kernel.UUID) bool {
	for _, id := range r.activeOrders {
		if id.IsEqual(orderID) {
			return true
		}
	}
	return false
}

func (r *Rider) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rider) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	r.name = name
	return nil
}
