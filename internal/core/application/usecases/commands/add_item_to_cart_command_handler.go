package commands

import (
	"context"
	"errors"
	"fmt"

	"foodcourt/internal/core/domain/model/cart"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/offer"
	"foodcourt/internal/core/domain/services"
	"foodcourt/internal/core/ports"
	"foodcourt/internal/pkg/errs"
)

// ErrItemUnavailable rejects adding an item that cannot be ordered right now.
// The wrapped message carries the customer-facing reason.
var ErrItemUnavailable = errors.New("item is not available")

// CartMutationResult reports the side effects of a cart mutation.
// OfferRevoked is set when the mutation invalidated the applied offer and
// the cart dropped it; RevokedCoupon names the dropped coupon code.
type CartMutationResult struct {
	OfferRevoked  bool
	RevokedCoupon string
}

// AddItemToCartCommandHandler handles adding menu items to carts.
// Resolves the item and its restaurant from the catalog, gates on
// availability, prices the line, and persists the updated cart.
type AddItemToCartCommandHandler struct {
	uowFactory CartUoWFactory
	catalog    ports.CatalogRepository
	evaluator  services.AvailabilityEvaluator
	clock      ports.Clock
}

// NewAddItemToCartCommandHandler creates a handler for cart additions.
func NewAddItemToCartCommandHandler(
	uowFactory CartUoWFactory,
	catalog ports.CatalogRepository,
	clock ports.Clock,
) AddItemToCartCommandHandler {
	return AddItemToCartCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		evaluator:  services.NewAvailabilityEvaluator(),
		clock:      clock,
	}
}

// Handle processes the add-item command.
// An unavailable item is rejected with ErrItemUnavailable carrying the
// reason. Customers without an open cart get one created on the fly.
func (h AddItemToCartCommandHandler) Handle(
	ctx context.Context,
	command AddItemToCartCommand,
) (CartMutationResult, error) {
	if err := command.Validate(); err != nil {
		return CartMutationResult{}, err
	}

	item, err := h.catalog.GetMenuItem(ctx, command.ItemID())
	if err != nil {
		return CartMutationResult{}, err
	}

	restaurant, err := h.catalog.GetRestaurant(ctx, item.RestaurantID())
	if err != nil {
		return CartMutationResult{}, err
	}

	availability := h.evaluator.Evaluate(item, restaurant, h.clock.Now())
	if !availability.Available {
		return CartMutationResult{}, fmt.Errorf("%w: %s", ErrItemUnavailable, availability.Reason)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CartMutationResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()
	customerCart, created, err := loadOrCreateCart(ctx, cartRepo, command.CustomerID())
	if err != nil {
		return CartMutationResult{}, err
	}

	_, revoked, err := customerCart.AddItem(kernel.NewUUID(), item, command.Quantity(), command.Selections())
	if err != nil {
		return CartMutationResult{}, err
	}

	if created {
		err = cartRepo.Add(ctx, customerCart)
	} else {
		err = cartRepo.Update(ctx, customerCart)
	}
	if err != nil {
		return CartMutationResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CartMutationResult{}, err
	}

	return mutationResult(revoked), nil
}

// loadOrCreateCart fetches the customer's open cart, creating a fresh one
// when none exists yet. The second return value reports creation so the
// caller knows whether to Add or Update.
func loadOrCreateCart(
	ctx context.Context,
	repo ports.CartRepository,
	customerID kernel.UUID,
) (*cart.Cart, bool, error) {
	customerCart, err := repo.GetByCustomer(ctx, customerID)
	if err == nil {
		return customerCart, false, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, false, err
	}

	customerCart, err = cart.NewCart(kernel.NewUUID(), customerID)
	if err != nil {
		return nil, false, err
	}
	return customerCart, true, nil
}

func mutationResult(revoked *offer.Offer) CartMutationResult {
	if revoked == nil {
		return CartMutationResult{}
	}
	return CartMutationResult{
		OfferRevoked:  true,
		RevokedCoupon: revoked.CouponCode(),
	}
}
