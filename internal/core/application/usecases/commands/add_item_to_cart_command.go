package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/menu"
	"foodcourt/internal/pkg/guard"
)

var (
	ErrAddItemToCartCommandIsNotConstructed = errors.New(
		"AddItemToCartCommand must be created via NewAddItemToCartCommand constructor",
	)
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// AddItemToCartCommand represents a request to add a menu item to a
// customer's cart with a quantity and customization selections.
type AddItemToCartCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	itemID     kernel.UUID
	quantity   int
	selections []menu.Selection

	guard guard.ConstructorGuard
}

// NewAddItemToCartCommand creates a command to add an item to a cart.
// Validates that both IDs are valid and the quantity is positive; the
// selections themselves are validated against the item by the domain.
func NewAddItemToCartCommand(
	customerID kernel.UUID,
	itemID kernel.UUID,
	quantity int,
	selections []menu.Selection,
) (AddItemToCartCommand, error) {
	command := AddItemToCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(customerID),
		command.setItemID(itemID),
		command.setQuantity(quantity),
	); err != nil {
		return AddItemToCartCommand{}, err
	}

	command.selections = selections
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddItemToCartCommand) Validate() error {
	return c.guard.Validate(ErrAddItemToCartCommandIsNotConstructed)
}

// CustomerID returns the cart owner's identifier.
func (c AddItemToCartCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ItemID returns the menu item to add.
func (c AddItemToCartCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Quantity returns the requested quantity.
func (c AddItemToCartCommand) Quantity() int {
	return c.quantity
}

// Selections returns the customization selections.
func (c AddItemToCartCommand) Selections() []menu.Selection {
	return c.selections
}

func (c *AddItemToCartCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.customerID = id
	return nil
}

func (c *AddItemToCartCommand) setItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.itemID = id
	return nil
}

func (c *AddItemToCartCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}
	c.quantity = quantity
	return nil
}
