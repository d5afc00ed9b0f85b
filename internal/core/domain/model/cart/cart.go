// Package cart contains the Cart aggregate: the owner of a checkout session's
// line items, the multi-vendor pricing rules, and the single applied offer.
//
// Pricing is derived, never stored. Every read of subtotal, delivery fee,
// discount, and grand total recomputes from the current lines, and every
// content mutation re-validates the applied offer so an offer can never be
// silently kept while invalid.
package cart

import (
	"errors"
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/menu"
	"foodcourt/internal/core/domain/model/offer"

	"foodcourt/internal/pkg/errs"
)

// DeliveryFeePerRestaurant is charged once per distinct restaurant
// represented in the cart, not per order and not per item.
var DeliveryFeePerRestaurant = kernel.NewMoney(599)

var (
	// ErrCartIsNotConstructed is returned when using an improperly initialized Cart.
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")

	// ErrOfferAlreadyApplied rejects applying an offer the cart already carries.
	ErrOfferAlreadyApplied = errors.New("offer is already applied to this cart")
	// ErrOfferExpired rejects applying an offer past its expiry.
	ErrOfferExpired = errors.New("offer has expired")
	// ErrMinimumOrderNotMet rejects an offer whose minimum order value exceeds the subtotal.
	ErrMinimumOrderNotMet = errors.New("cart subtotal is below the offer's minimum order value")
	// ErrOfferNotApplicable rejects an offer that matches nothing in the cart.
	ErrOfferNotApplicable = errors.New("offer does not apply to any item in the cart")
)

// Cart is the aggregate root of one customer's checkout session.
//
// The cart owns its line items and the single applied offer, and is the only
// place where totals are computed. Items from multiple restaurants may
// coexist in one cart; the delivery fee is then charged once per distinct
// restaurant.
//
// Invariants:
//   - Line quantities are always >= 1
//   - Line totals are always recomputed, never trusted from outside
//   - At most one offer is applied at a time
//   - After every content mutation the applied offer is re-validated and
//     dropped if it no longer holds; the mutation reports the revocation
//   - The grand total never goes below zero
type Cart struct {
	// id is the unique identifier for the cart
	id kernel.UUID

	// customerID identifies the owning customer session
	customerID kernel.UUID

	// items are the cart lines in insertion order
	items []*CartItem

	// applied is the single active offer, nil if none
	applied *offer.AppliedOffer

	// guard ensures the cart was created via a constructor
	guard kernel.ConstructorGuard
}

// NewCart creates an empty cart for a customer.
func NewCart(id, customerID kernel.UUID) (*Cart, error) {
	c := &Cart{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setCustomerID(customerID),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCart reconstructs a cart from persistent storage, including its
// lines and any applied offer. The restored offer's discount is recomputed
// against the restored lines rather than trusted from storage.
func RestoreCart(id, customerID kernel.UUID, items []*CartItem, applied *offer.Offer) (*Cart, error) {
	c, err := NewCart(id, customerID)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}
	c.items = items

	if applied != nil {
		discount := c.computeDiscount(applied)
		if !discount.IsZero() {
			bound, err := offer.NewAppliedOffer(applied, discount)
			if err != nil {
				return nil, err
			}
			c.applied = &bound
		}
	}

	return c, nil
}

// Validate ensures the Cart was properly constructed.
func (c *Cart) Validate() error {
	if c == nil {
		return ErrCartIsNotConstructed
	}
	return c.guard.Validate(ErrCartIsNotConstructed)
}

// ID returns the cart's unique identifier.
func (c *Cart) ID() kernel.UUID {
	return c.id
}

// CustomerID returns the owning customer's identifier.
func (c *Cart) CustomerID() kernel.UUID {
	return c.customerID
}

// Items returns the cart lines in insertion order.
func (c *Cart) Items() []*CartItem {
	return c.items
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// AppliedOffer returns the active offer binding, or nil if none.
func (c *Cart) AppliedOffer() *offer.AppliedOffer {
	return c.applied
}

// AddItem appends a new line for the given menu item snapshot. Every call
// creates a distinct line, even for an identical item with identical
// selections.
//
// Returns the new line, the offer that was revoked by the mutation (nil if
// the applied offer still holds), and an error for invalid input.
func (c *Cart) AddItem(
	lineID kernel.UUID,
	item *menu.MenuItem,
	quantity int,
	selections []menu.Selection,
) (*CartItem, *offer.Offer, error) {
	line, err := NewCartItem(lineID, item, quantity, selections)
	if err != nil {
		return nil, nil, err
	}

	c.items = append(c.items, line)
	return line, c.revalidateOffer(), nil
}

// RemoveItem removes the line with the given identifier.
//
// Returns the offer revoked by the mutation (nil if none), or an
// ObjectNotFoundError when no such line exists.
func (c *Cart) RemoveItem(lineID kernel.UUID) (*offer.Offer, error) {
	for idx, line := range c.items {
		if line.ID().IsEqual(lineID) {
			c.items = append(c.items[:idx], c.items[idx+1:]...)
			return c.revalidateOffer(), nil
		}
	}
	return nil, errs.NewObjectNotFoundError("cart item", lineID.String())
}

// SetQuantity changes the quantity of an existing line. Quantities below 1
// are invariant violations; removing a line is an explicit RemoveItem call.
//
// Returns the offer revoked by the mutation (nil if none).
func (c *Cart) SetQuantity(lineID kernel.UUID, quantity int) (*offer.Offer, error) {
	for _, line := range c.items {
		if line.ID().IsEqual(lineID) {
			if err := line.setQuantity(quantity); err != nil {
				return nil, err
			}
			return c.revalidateOffer(), nil
		}
	}
	return nil, errs.NewObjectNotFoundError("cart item", lineID.String())
}

// ApplyOffer validates an offer against the current cart contents and, on
// success, stores it as the cart's single applied offer. An already applied
// different offer is replaced.
//
// Rejections are business outcomes the caller surfaces to the customer:
//   - ErrOfferAlreadyApplied: the same offer is already active
//   - ErrOfferExpired: the offer's expiry has passed
//   - ErrMinimumOrderNotMet: the subtotal is below the offer's minimum
//   - ErrOfferNotApplicable: nothing in the cart matches the offer's scope
func (c *Cart) ApplyOffer(o *offer.Offer, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if c.applied != nil && c.applied.Offer().IsEqual(o) {
		return ErrOfferAlreadyApplied
	}
	if o.IsExpired(now) {
		return ErrOfferExpired
	}
	if minOrder := o.MinOrderValue(); minOrder != nil && c.Subtotal().LessThan(*minOrder) {
		return ErrMinimumOrderNotMet
	}

	discount := c.computeDiscount(o)
	if discount.IsZero() {
		return ErrOfferNotApplicable
	}

	bound, err := offer.NewAppliedOffer(o, discount)
	if err != nil {
		return err
	}
	c.applied = &bound
	return nil
}

// RemoveOffer drops the applied offer, if any.
func (c *Cart) RemoveOffer() {
	c.applied = nil
}

// Clear removes all lines and the applied offer. Called by checkout when the
// cart's contents are frozen into an order.
func (c *Cart) Clear() {
	c.items = nil
	c.applied = nil
}

// Subtotal returns the sum of all line totals.
func (c *Cart) Subtotal() kernel.Money {
	var subtotal kernel.Money
	for _, line := range c.items {
		subtotal = subtotal.Add(line.TotalPrice())
	}
	return subtotal
}

// NumberOfRestaurants returns the count of distinct restaurants represented
// in the cart.
func (c *Cart) NumberOfRestaurants() int {
	seen := make(map[kernel.UUID]bool, len(c.items))
	for _, line := range c.items {
		seen[line.RestaurantID()] = true
	}
	return len(seen)
}

// DeliveryFee returns the delivery fee: one fee share per distinct
// restaurant. Removing the last line of a restaurant removes its share on
// the next read; there is no fee bookkeeping to update.
func (c *Cart) DeliveryFee() kernel.Money {
	return DeliveryFeePerRestaurant.MulInt(c.NumberOfRestaurants())
}

// DiscountAmount returns the discount of the applied offer, or zero.
func (c *Cart) DiscountAmount() kernel.Money {
	if c.applied == nil {
		return kernel.Money{}
	}
	return c.applied.DiscountAmount()
}

// GrandTotal returns max(0, subtotal + delivery fee - discount).
func (c *Cart) GrandTotal() kernel.Money {
	return c.Subtotal().Add(c.DeliveryFee()).Sub(c.DiscountAmount()).FloorZero()
}

// revalidateOffer recomputes the applied offer against the cart's new
// contents. If the offer's minimum order value is no longer met or its
// discount has dropped to zero, the offer is removed and returned so the
// caller can inform the customer. Returns nil when the offer still holds
// (with a freshly computed discount) or when no offer is applied.
func (c *Cart) revalidateOffer() *offer.Offer {
	if c.applied == nil {
		return nil
	}

	active := c.applied.Offer()
	if minOrder := active.MinOrderValue(); minOrder != nil && c.Subtotal().LessThan(*minOrder) {
		c.applied = nil
		return active
	}

	discount := c.computeDiscount(active)
	if discount.IsZero() {
		c.applied = nil
		return active
	}

	bound, err := offer.NewAppliedOffer(active, discount)
	if err != nil {
		c.applied = nil
		return active
	}
	c.applied = &bound
	return nil
}

// computeDiscount applies the offer's scope and type to the current lines:
// the applicable subtotal is summed over covered lines, percentage offers
// take their share of it, fixed offers take their value, and the result is
// clamped so a discount never exceeds what it applies to.
func (c *Cart) computeDiscount(o *offer.Offer) kernel.Money {
	var applicable kernel.Money
	scope := o.Scope()
	for _, line := range c.items {
		if scope.CoversItem(line.Item().ID(), line.RestaurantID()) {
			applicable = applicable.Add(line.TotalPrice())
		}
	}

	if applicable.IsZero() {
		return kernel.Money{}
	}

	var discount kernel.Money
	switch o.DiscountType() {
	case offer.DiscountPercentage:
		discount = applicable.Percent(o.DiscountValue())
	case offer.DiscountFixed:
		discount = kernel.NewMoney(int64(o.DiscountValue()))
	default:
		return kernel.Money{}
	}

	return discount.Min(applicable)
}

func (c *Cart) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Cart) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.customerID = id
	return nil
}
