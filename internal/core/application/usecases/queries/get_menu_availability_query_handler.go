package queries

import (
	"context"

	"foodcourt/internal/core/domain/services"
	"foodcourt/internal/core/ports"
)

// GetMenuAvailabilityQueryHandler lists a restaurant's menu with per-item
// availability. Unlike the other read models this one goes through the
// catalog repository: the verdict needs the full operating-hours and
// serving-window domain objects, not flat rows.
type GetMenuAvailabilityQueryHandler struct {
	catalog   ports.CatalogRepository
	evaluator services.AvailabilityEvaluator
	clock     ports.Clock
}

// NewGetMenuAvailabilityQueryHandler creates a handler for menu availability queries.
func NewGetMenuAvailabilityQueryHandler(
	catalog ports.CatalogRepository,
	clock ports.Clock,
) GetMenuAvailabilityQueryHandler {
	return GetMenuAvailabilityQueryHandler{
		catalog:   catalog,
		evaluator: services.NewAvailabilityEvaluator(),
		clock:     clock,
	}
}

// Handle executes the menu availability query.
func (h GetMenuAvailabilityQueryHandler) Handle(
	ctx context.Context,
	query GetMenuAvailabilityQuery,
) ([]GetMenuAvailabilityQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	restaurant, err := h.catalog.GetRestaurant(ctx, query.RestaurantID())
	if err != nil {
		return nil, err
	}

	items, err := h.catalog.GetMenuForRestaurant(ctx, query.RestaurantID())
	if err != nil {
		return nil, err
	}

	now := h.clock.Now()
	responses := make([]GetMenuAvailabilityQueryResponse, 0, len(items))
	for _, item := range items {
		verdict := h.evaluator.Evaluate(item, restaurant, now)
		responses = append(responses, GetMenuAvailabilityQueryResponse{
			ItemID:    item.ID(),
			Name:      item.Name(),
			BasePrice: item.BasePrice(),
			Category:  item.Category(),
			Available: verdict.Available,
			Reason:    verdict.Reason,
		})
	}

	return responses, nil
}
