package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/guard"
)

var ErrChangeItemQuantityCommandIsNotConstructed = errors.New(
	"ChangeItemQuantityCommand must be created via NewChangeItemQuantityCommand constructor",
)

// ChangeItemQuantityCommand represents a request to change the quantity of
// an existing cart line.
type ChangeItemQuantityCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	cartItemID kernel.UUID
	quantity   int

	guard guard.ConstructorGuard
}

// NewChangeItemQuantityCommand creates a quantity change command.
// The quantity must stay positive; removing a line is its own command.
func NewChangeItemQuantityCommand(
	customerID kernel.UUID,
	cartItemID kernel.UUID,
	quantity int,
) (ChangeItemQuantityCommand, error) {
	command := ChangeItemQuantityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(customerID),
		command.setCartItemID(cartItemID),
		command.setQuantity(quantity),
	); err != nil {
		return ChangeItemQuantityCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeItemQuantityCommand) Validate() error {
	return c.guard.Validate(ErrChangeItemQuantityCommandIsNotConstructed)
}

// CustomerID returns the cart owner's identifier.
func (c ChangeItemQuantityCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// CartItemID returns the line to change.
func (c ChangeItemQuantityCommand) CartItemID() kernel.UUID {
	return c.cartItemID
}

// Quantity returns the new quantity.
func (c ChangeItemQuantityCommand) Quantity() int {
	return c.quantity
}

func (c *ChangeItemQuantityCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.customerID = id
	return nil
}

func (c *ChangeItemQuantityCommand) setCartItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.cartItemID = id
	return nil
}

func (c *ChangeItemQuantityCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}
	c.quantity = quantity
	return nil
}
