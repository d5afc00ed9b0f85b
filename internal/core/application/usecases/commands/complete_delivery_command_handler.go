package commands

import (
	"context"
	"errors"
	"fmt"

	"foodcourt/internal/core/domain/model/order"
)

// ErrOrderNotClaimedByRider rejects completing a delivery the rider does not hold.
var ErrOrderNotClaimedByRider = errors.New("order is not claimed by this rider")

// CompleteDeliveryCommandHandler handles delivery completions.
// Moves the order to Delivered and frees the rider's claim slot in one
// transaction.
type CompleteDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery completions.
func NewCompleteDeliveryCommandHandler(uowFactory DeliveryUoWFactory) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery completion command.
// Only the rider who claimed the order may complete it.
func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, command CompleteDeliveryCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if aggregate.Rider() == nil || !aggregate.Rider().IsEqual(command.RiderID()) {
		return fmt.Errorf("%w: %s", ErrOrderNotClaimedByRider, command.OrderID())
	}

	if err = aggregate.Deliver(order.ActorRider); err != nil {
		return err
	}

	riderRepo := uow.RiderRepository()
	deliveringRider, err := riderRepo.Get(ctx, command.RiderID())
	if err != nil {
		return err
	}

	if err = deliveringRider.Release(command.OrderID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = riderRepo.Update(ctx, deliveringRider); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
