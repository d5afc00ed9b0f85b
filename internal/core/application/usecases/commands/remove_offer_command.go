package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/guard"
)

var ErrRemoveOfferCommandIsNotConstructed = errors.New(
	"RemoveOfferCommand must be created via NewRemoveOfferCommand constructor",
)

// RemoveOfferCommand represents a request to drop the applied offer from a cart.
type RemoveOfferCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveOfferCommand creates an offer removal command.
func NewRemoveOfferCommand(customerID kernel.UUID) (RemoveOfferCommand, error) {
	command := RemoveOfferCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCustomerID(customerID); err != nil {
		return RemoveOfferCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveOfferCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOfferCommandIsNotConstructed)
}

// CustomerID returns the cart owner's identifier.
func (c RemoveOfferCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c *RemoveOfferCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.customerID = id
	return nil
}
