package commands

import (
	"context"
)

// ChangeItemQuantityCommandHandler handles quantity changes on cart lines.
// The cart revalidates any applied offer after the change; a dropped offer
// is reported through the mutation result.
type ChangeItemQuantityCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewChangeItemQuantityCommandHandler creates a handler for quantity changes.
func NewChangeItemQuantityCommandHandler(uowFactory CartUoWFactory) ChangeItemQuantityCommandHandler {
	return ChangeItemQuantityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the quantity change command.
func (h ChangeItemQuantityCommandHandler) Handle(
	ctx context.Context,
	command ChangeItemQuantityCommand,
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

	revoked, err := customerCart.SetQuantity(command.CartItemID(), command.Quantity())
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
