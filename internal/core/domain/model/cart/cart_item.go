package cart

import (
	"errors"
	"fmt"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/menu"
	"foodcourt/internal/pkg/errs"
)

// ErrCartItemIsNotConstructed is returned when using an improperly initialized CartItem.
var ErrCartItemIsNotConstructed = errors.New("CartItem must be created via NewCartItem constructor")

// CartItem is one line of a cart: a frozen snapshot of a menu item together
// with a quantity and the customer's customization selections.
//
// Each line has its own identity, even when two lines reference the same menu
// item with the same selections. The line's total price is always recomputed
// from the snapshot and the quantity inside the aggregate; it is never
// accepted from outside.
type CartItem struct {
	// id is the unique identifier of this cart line
	id kernel.UUID

	// item is the frozen menu item snapshot taken at add time
	item *menu.MenuItem

	// quantity is the number of units ordered, always >= 1
	quantity int

	// selections are the customer's customization picks
	selections []menu.Selection

	// unitPrice is the priced-with-customizations price of one unit
	unitPrice kernel.Money

	// guard ensures the line was created via a constructor
	guard kernel.ConstructorGuard
}

// NewCartItem creates a cart line from a menu item snapshot, a quantity, and
// customization selections. The unit price is resolved from the snapshot;
// invalid selections and non-positive quantities are caller bugs and are
// returned as errors.
func NewCartItem(
	id kernel.UUID,
	item *menu.MenuItem,
	quantity int,
	selections []menu.Selection,
) (*CartItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}
	if quantity < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is less than 1", quantity))
	}

	unitPrice, err := item.UnitPrice(selections)
	if err != nil {
		return nil, err
	}

	return &CartItem{
		id:         id,
		item:       item,
		quantity:   quantity,
		selections: selections,
		unitPrice:  unitPrice,
		guard:      kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the CartItem was properly constructed.
func (i *CartItem) Validate() error {
	if i == nil {
		return ErrCartItemIsNotConstructed
	}
	return i.guard.Validate(ErrCartItemIsNotConstructed)
}

// ID returns the cart line's unique identifier.
func (i *CartItem) ID() kernel.UUID {
	return i.id
}

// Item returns the frozen menu item snapshot.
func (i *CartItem) Item() *menu.MenuItem {
	return i.item
}

// RestaurantID returns the restaurant owning the snapshotted item.
func (i *CartItem) RestaurantID() kernel.UUID {
	return i.item.RestaurantID()
}

// Quantity returns the number of units ordered.
func (i *CartItem) Quantity() int {
	return i.quantity
}

// Selections returns the customer's customization picks.
func (i *CartItem) Selections() []menu.Selection {
	return i.selections
}

// UnitPrice returns the customization-inclusive price of a single unit.
func (i *CartItem) UnitPrice() kernel.Money {
	return i.unitPrice
}

// TotalPrice returns unit price times quantity, recomputed on every read.
func (i *CartItem) TotalPrice() kernel.Money {
	return i.unitPrice.MulInt(i.quantity)
}

// setQuantity changes the ordered quantity. Only the owning cart calls this,
// so pricing and offer revalidation always follow.
func (i *CartItem) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is less than 1", quantity))
	}
	i.quantity = quantity
	return nil
}
