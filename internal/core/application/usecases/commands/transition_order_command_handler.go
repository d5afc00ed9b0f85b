package commands

import (
	"context"

	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/ports"
)

// TransitionOrderCommandHandler handles actor-requested lifecycle transitions.
// The aggregate enforces both the state machine and actor permissions; the
// handler only loads, applies, and persists.
type TransitionOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
}

// NewTransitionOrderCommandHandler creates a handler for lifecycle transitions.
func NewTransitionOrderCommandHandler(uowFactory OrderUoWFactory, clock ports.Clock) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the transition command and returns the updated order.
func (h TransitionOrderCommandHandler) Handle(
	ctx context.Context,
	command TransitionOrderCommand,
) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	if err = h.apply(aggregate, command); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

func (h TransitionOrderCommandHandler) apply(aggregate *order.Order, command TransitionOrderCommand) error {
	switch command.Action() {
	case ActionAccept:
		return aggregate.Accept(command.Actor(), h.clock.Now())
	case ActionReject:
		return aggregate.Reject(command.Actor())
	case ActionMarkReady:
		return aggregate.MarkReady(command.Actor())
	case ActionCancel:
		return aggregate.CancelPreparing(command.Actor())
	default:
		return command.Action().Validate()
	}
}
