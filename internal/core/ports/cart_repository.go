// Package ports defines repository and infrastructure interfaces for the
// marketplace domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"foodcourt/internal/core/domain/model/cart"
	"foodcourt/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for cart aggregates.
// Every customer has at most one open cart, addressed by customer ID.
type CartRepository interface {
	// Add persists a new cart aggregate to storage.
	Add(ctx context.Context, aggregate *cart.Cart) error

	// Update persists changes to an existing cart aggregate, including
	// its line items and applied offer.
	Update(ctx context.Context, aggregate *cart.Cart) error

	// GetByCustomer retrieves the customer's open cart.
	// Returns an errs.ObjectNotFoundError when the customer has none.
	GetByCustomer(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error)
}
