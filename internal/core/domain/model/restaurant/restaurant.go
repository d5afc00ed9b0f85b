// Package restaurant contains the Restaurant aggregate and its operating-hours
// value objects. Operating hours gate item availability together with per-item
// serving windows; the evaluation itself lives in the services package.
package restaurant

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
)

var (
	// ErrNameIsRequired is returned when attempting to create a restaurant without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrRestaurantIsNotConstructed is returned when using an improperly initialized Restaurant.
	ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")
)

// Restaurant represents a vendor storefront in the marketplace.
//
// The aggregate owns the identity and operating hours of the store. Menu
// items reference their restaurant by ID; the catalog repository resolves
// both sides when the availability of an item needs to be evaluated.
//
// Invariants:
//   - Must have a valid unique identifier and a non-empty name
//   - Operating hours are optional: a restaurant without them is always open
//   - Can only be created through NewRestaurant or RestoreRestaurant
type Restaurant struct {
	// id is the unique identifier for the restaurant
	id kernel.UUID

	// name is the customer-facing store name
	name string

	// hours is the weekly schedule; nil means the store is always open
	hours *OperatingHours

	// guard ensures the restaurant was created via a constructor
	guard kernel.ConstructorGuard
}

// NewRestaurant creates a new Restaurant with validation.
//
// Parameters:
//   - id: Unique identifier (must be a valid UUID)
//   - name: Customer-facing store name (must be non-empty)
//   - hours: Weekly operating hours, or nil for an always-open store
//
// Returns the restaurant, or a validation error if any parameter is invalid.
func NewRestaurant(id kernel.UUID, name string, hours *OperatingHours) (*Restaurant, error) {
	r := &Restaurant{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
	); err != nil {
		return nil, err
	}

	r.hours = hours
	return r, nil
}

// RestoreRestaurant reconstructs a Restaurant from persistent storage.
// The restored aggregate behaves identically to one created through
// NewRestaurant.
func RestoreRestaurant(id kernel.UUID, name string, hours *OperatingHours) (*Restaurant, error) {
	return NewRestaurant(id, name, hours)
}

// Validate ensures the Restaurant was properly constructed.
func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

// IsEqual compares two restaurants by their unique identifiers.
func (r *Restaurant) IsEqual(other *Restaurant) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the restaurant's unique identifier.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// Name returns the customer-facing store name.
func (r *Restaurant) Name() string {
	return r.name
}

// Hours returns the weekly operating hours, or nil if the store is always open.
func (r *Restaurant) Hours() *OperatingHours {
	return r.hours
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	r.name = name
	return nil
}
