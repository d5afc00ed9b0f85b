// Package queries contains read-only operations over the persisted state.
// Implements the Query side of the CQRS architecture: handlers read the
// database directly and return display-shaped responses, bypassing the
// aggregates.
package queries

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery retrieves a customer's open cart with derived totals.
type GetCartQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a cart read query for the given customer.
func NewGetCartQuery(customerID kernel.UUID) (GetCartQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCartQuery{}, err
	}
	return GetCartQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// CustomerID returns the cart owner's identifier.
func (q GetCartQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// GetCartQueryResponse is the display shape of a cart.
type GetCartQueryResponse struct {
	CartID     kernel.UUID
	CustomerID kernel.UUID
	Lines      []CartLineResponse
	CouponCode string

	Subtotal    kernel.Money
	DeliveryFee kernel.Money
	Discount    kernel.Money
	GrandTotal  kernel.Money
}

// CartLineResponse is one cart line for display.
type CartLineResponse struct {
	CartItemID kernel.UUID
	ItemID     kernel.UUID
	Name       string
	Quantity   int
	UnitPrice  kernel.Money
	TotalPrice kernel.Money
}
