package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/guard"
)

var (
	ErrCheckoutCommandIsNotConstructed = errors.New(
		"CheckoutCommand must be created via NewCheckoutCommand constructor",
	)
	ErrAddressIsRequired = errors.New("address is required")
)

// CheckoutCommand represents a request to freeze a customer's cart into an
// order with the given delivery details.
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	customerID     kernel.UUID
	address        string
	paymentMethod  order.PaymentMethod
	deliveryOption order.DeliveryOption

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a checkout command.
func NewCheckoutCommand(
	customerID kernel.UUID,
	address string,
	paymentMethod order.PaymentMethod,
	deliveryOption order.DeliveryOption,
) (CheckoutCommand, error) {
	command := CheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(customerID),
		command.setAddress(address),
	); err != nil {
		return CheckoutCommand{}, err
	}

	command.paymentMethod = paymentMethod
	command.deliveryOption = deliveryOption
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// CustomerID returns the checking-out customer's identifier.
func (c CheckoutCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Address returns the delivery or contact address.
func (c CheckoutCommand) Address() string {
	return c.address
}

// PaymentMethod returns the chosen payment method.
func (c CheckoutCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// DeliveryOption returns the chosen delivery option.
func (c CheckoutCommand) DeliveryOption() order.DeliveryOption {
	return c.deliveryOption
}

func (c *CheckoutCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.customerID = id
	return nil
}

func (c *CheckoutCommand) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}
	c.address = address
	return nil
}
