package commands

import (
	"context"

	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/services"
	"foodcourt/internal/core/ports"
)

// CheckoutCommandHandler handles freezing carts into orders.
// The new order and the emptied cart are persisted in one transaction, so a
// failed checkout leaves the cart untouched.
type CheckoutCommandHandler struct {
	uowFactory CheckoutUoWFactory
	checkout   services.CheckoutService
	clock      ports.Clock
}

// NewCheckoutCommandHandler creates a handler for checkouts.
func NewCheckoutCommandHandler(uowFactory CheckoutUoWFactory, clock ports.Clock) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory: uowFactory,
		checkout:   services.NewCheckoutService(),
		clock:      clock,
	}
}

// Handle processes the checkout command and returns the placed order.
func (h CheckoutCommandHandler) Handle(ctx context.Context, command CheckoutCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()
	customerCart, err := cartRepo.GetByCustomer(ctx, command.CustomerID())
	if err != nil {
		return nil, err
	}

	placedOrder, err := h.checkout.Checkout(
		customerCart,
		command.Address(),
		command.PaymentMethod(),
		command.DeliveryOption(),
		h.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, placedOrder); err != nil {
		return nil, err
	}

	if err = cartRepo.Update(ctx, customerCart); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placedOrder, nil
}
