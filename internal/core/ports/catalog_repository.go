package ports

import (
	"context"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/menu"
	"foodcourt/internal/core/domain/model/offer"
	"foodcourt/internal/core/domain/model/restaurant"
)

// CatalogRepository is the read-only contract for catalog data: restaurants,
// their menus, and active offers. The ordering flow only reads the catalog;
// catalog management is a separate back-office surface.
type CatalogRepository interface {
	// GetRestaurant retrieves a restaurant with its operating hours.
	GetRestaurant(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)

	// GetMenuItem retrieves a single menu item with its customization
	// options and serving window.
	GetMenuItem(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error)

	// GetMenuForRestaurant retrieves all menu items of a restaurant.
	GetMenuForRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*menu.MenuItem, error)

	// GetOfferByCouponCode resolves a coupon code to its offer.
	// Returns an errs.ObjectNotFoundError for unknown codes.
	GetOfferByCouponCode(ctx context.Context, code string) (*offer.Offer, error)
}
