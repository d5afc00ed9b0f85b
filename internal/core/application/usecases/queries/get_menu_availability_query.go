package queries

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/guard"
)

var ErrGetMenuAvailabilityQueryIsNotConstructed = errors.New(
	"GetMenuAvailabilityQuery must be created via NewGetMenuAvailabilityQuery constructor",
)

// GetMenuAvailabilityQuery retrieves a restaurant's menu with a per-item
// availability verdict at the time of the query.
type GetMenuAvailabilityQuery struct {
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMenuAvailabilityQuery creates a menu availability query.
func NewGetMenuAvailabilityQuery(restaurantID kernel.UUID) (GetMenuAvailabilityQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetMenuAvailabilityQuery{}, err
	}
	return GetMenuAvailabilityQuery{
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMenuAvailabilityQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuAvailabilityQueryIsNotConstructed)
}

// RestaurantID returns the restaurant whose menu is requested.
func (q GetMenuAvailabilityQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// GetMenuAvailabilityQueryResponse is one menu item with its verdict.
type GetMenuAvailabilityQueryResponse struct {
	ItemID    kernel.UUID
	Name      string
	BasePrice kernel.Money
	Category  string
	Available bool
	Reason    string
}
