package commands

import (
	"context"

	"foodcourt/internal/core/ports"
)

// ApplyOfferCommandHandler handles applying coupon codes to carts.
// Resolves the code through the catalog and delegates the eligibility rules
// to the cart aggregate.
type ApplyOfferCommandHandler struct {
	uowFactory CartUoWFactory
	catalog    ports.CatalogRepository
	clock      ports.Clock
}

// NewApplyOfferCommandHandler creates a handler for offer applications.
func NewApplyOfferCommandHandler(
	uowFactory CartUoWFactory,
	catalog ports.CatalogRepository,
	clock ports.Clock,
) ApplyOfferCommandHandler {
	return ApplyOfferCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		clock:      clock,
	}
}

// Handle processes the offer application command.
// Unknown coupon codes surface as not-found errors from the catalog;
// ineligible offers surface as the cart's sentinel rejections.
func (h ApplyOfferCommandHandler) Handle(ctx context.Context, command ApplyOfferCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	appliedOffer, err := h.catalog.GetOfferByCouponCode(ctx, command.CouponCode())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()
	customerCart, err := cartRepo.GetByCustomer(ctx, command.CustomerID())
	if err != nil {
		return err
	}

	if err = customerCart.ApplyOffer(appliedOffer, h.clock.Now()); err != nil {
		return err
	}

	if err = cartRepo.Update(ctx, customerCart); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
