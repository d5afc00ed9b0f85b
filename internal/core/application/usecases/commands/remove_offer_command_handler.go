package commands

import (
	"context"
)

// RemoveOfferCommandHandler handles dropping an applied offer from a cart.
// Removing an offer that isn't applied is a no-op.
type RemoveOfferCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewRemoveOfferCommandHandler creates a handler for offer removals.
func NewRemoveOfferCommandHandler(uowFactory CartUoWFactory) RemoveOfferCommandHandler {
	return RemoveOfferCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the offer removal command.
func (h RemoveOfferCommandHandler) Handle(ctx context.Context, command RemoveOfferCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
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

	customerCart.RemoveOffer()

	if err = cartRepo.Update(ctx, customerCart); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
