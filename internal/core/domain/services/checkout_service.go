package services

import (
	"errors"
	"time"

	"foodcourt/internal/core/domain/model/cart"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
)

// ErrCartIsEmpty is returned when attempting to check out an empty cart.
var ErrCartIsEmpty = errors.New("cart has no items to check out")

// CheckoutService is a domain service that freezes a cart into an immutable
// order. All pricing is resolved at checkout time: line prices, the
// per-restaurant delivery fee, and the applied discount are copied into the
// order and never change afterwards.
//
// Business rules:
//   - The cart must not be empty and the address must be non-empty
//   - Pickup orders carry no delivery fee; home delivery uses the cart's fee
//   - The grand total never goes below zero
//   - The cart is cleared as part of the same operation; the caller persists
//     the new order and the emptied cart in one transaction
type CheckoutService struct{}

// NewCheckoutService creates a new CheckoutService instance.
func NewCheckoutService() CheckoutService {
	return CheckoutService{}
}

// Checkout builds a placed order from the cart's current content and clears
// the cart. The returned order starts in Placed with placedAt set to now.
func (s CheckoutService) Checkout(
	c *cart.Cart,
	address string,
	paymentMethod order.PaymentMethod,
	deliveryOption order.DeliveryOption,
	now time.Time,
) (*order.Order, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, ErrCartIsEmpty
	}

	lines := make([]order.Line, 0, len(c.Items()))
	for _, item := range c.Items() {
		lines = append(lines, order.Line{
			ItemID:       item.Item().ID(),
			RestaurantID: item.RestaurantID(),
			Name:         item.Item().Name(),
			Quantity:     item.Quantity(),
			UnitPrice:    item.UnitPrice(),
			TotalPrice:   item.TotalPrice(),
		})
	}

	subtotal := c.Subtotal()
	discount := c.DiscountAmount()

	deliveryFee := kernel.NewMoney(0)
	if deliveryOption == order.DeliveryHome {
		deliveryFee = c.DeliveryFee()
	}

	total := subtotal.Add(deliveryFee).Sub(discount).FloorZero()

	newOrder, err := order.NewOrder(
		kernel.NewUUID(),
		c.CustomerID(),
		lines,
		subtotal,
		deliveryFee,
		discount,
		total,
		address,
		paymentMethod,
		deliveryOption,
		now,
	)
	if err != nil {
		return nil, err
	}

	c.Clear()
	return newOrder, nil
}
