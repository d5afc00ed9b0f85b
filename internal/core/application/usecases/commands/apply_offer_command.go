package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/guard"
)

var (
	ErrApplyOfferCommandIsNotConstructed = errors.New(
		"ApplyOfferCommand must be created via NewApplyOfferCommand constructor",
	)
	ErrCouponCodeIsRequired = errors.New("coupon code is required")
)

// ApplyOfferCommand represents a request to apply a coupon code to a cart.
type ApplyOfferCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	couponCode string

	guard guard.ConstructorGuard
}

// NewApplyOfferCommand creates an offer application command.
func NewApplyOfferCommand(customerID kernel.UUID, couponCode string) (ApplyOfferCommand, error) {
	command := ApplyOfferCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(customerID),
		command.setCouponCode(couponCode),
	); err != nil {
		return ApplyOfferCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyOfferCommand) Validate() error {
	return c.guard.Validate(ErrApplyOfferCommandIsNotConstructed)
}

// CustomerID returns the cart owner's identifier.
func (c ApplyOfferCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// CouponCode returns the coupon code to apply.
func (c ApplyOfferCommand) CouponCode() string {
	return c.couponCode
}

func (c *ApplyOfferCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.customerID = id
	return nil
}

func (c *ApplyOfferCommand) setCouponCode(code string) error {
	if code == "" {
		return ErrCouponCodeIsRequired
	}
	c.couponCode = code
	return nil
}
