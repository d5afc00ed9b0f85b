package commands

import (
	"context"
)

// RemoveCartItemCommandHandler handles removing lines from carts.
type RemoveCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewRemoveCartItemCommandHandler creates a handler for line removals.
func NewRemoveCartItemCommandHandler(uowFactory CartUoWFactory) RemoveCartItemCommandHandler {
	return RemoveCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal command. Removing the line that carried an
// offer's eligibility drops the offer, reported through the result.
func (h RemoveCartItemCommandHandler) Handle(
	ctx context.Context,
	command RemoveCartItemCommand,
) (CartMutationResult, error) {
	if err := command.Validate(); err != nil {
		return CartMutationResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CartMutationResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()
	customerCart, err := cartRepo.GetByCustomer(ctx, command.CustomerID())
	if err != nil {
		return CartMutationResult{}, err
	}

	revoked, err := customerCart.RemoveItem(command.CartItemID())
	if err != nil {
		return CartMutationResult{}, err
	}

	if err = cartRepo.Update(ctx, customerCart); err != nil {
		return CartMutationResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CartMutationResult{}, err
	}

	return mutationResult(revoked), nil
}
