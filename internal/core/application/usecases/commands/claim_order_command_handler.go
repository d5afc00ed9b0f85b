package commands

import (
	"context"
	"fmt"

	"foodcourt/internal/core/domain/model/order"
)

// ClaimOrderCommandHandler handles rider claims on ready orders.
//
// The claim is guarded twice: the rider aggregate enforces the active-claim
// cap, and the repository's AssignRider performs a compare-and-swap on the
// order's rider column so concurrent claims on the same order resolve to
// exactly one winner.
type ClaimOrderCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewClaimOrderCommandHandler creates a handler for rider claims.
func NewClaimOrderCommandHandler(uowFactory DeliveryUoWFactory) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the claim command.
// Returns rider.ErrRiderAtCapacity when the rider already holds the maximum
// number of orders, order.ErrOrderNotReadyForRider when the order has not
// been marked ready, and order.ErrRiderAlreadyAssigned when another rider
// claimed it first.
func (h ClaimOrderCommandHandler) Handle(ctx context.Context, command ClaimOrderCommand) error {
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

	riderRepo := uow.RiderRepository()
	claimingRider, err := riderRepo.Get(ctx, command.RiderID())
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if aggregate.Status() != order.StatusOnItsWay {
		return fmt.Errorf("%w: status is %s", order.ErrOrderNotReadyForRider, aggregate.Status())
	}

	if err = claimingRider.Claim(command.OrderID()); err != nil {
		return err
	}

	// the CAS write settles the race between riders
	if err = orderRepo.AssignRider(ctx, command.OrderID(), command.RiderID()); err != nil {
		return err
	}

	if err = riderRepo.Update(ctx, claimingRider); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
