// Package offer contains promotional offers and their applicability scope.
// Offers are read-only catalog entities; binding one to a cart produces an
// AppliedOffer with a computed discount, held by the cart alone.
package offer

import (
	"errors"
	"fmt"
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
)

// DiscountType determines how an offer's value is interpreted.
type DiscountType int

const (
	// DiscountPercentage discounts a percentage of the applicable subtotal.
	DiscountPercentage DiscountType = iota + 1
	// DiscountFixed discounts a fixed amount, clamped to the applicable subtotal.
	DiscountFixed
)

var (
	// ErrCouponCodeIsRequired is returned when attempting to create an offer without a coupon code.
	ErrCouponCodeIsRequired = errs.NewValueIsRequiredError("coupon code")
	// ErrOfferIsNotConstructed is returned when using an improperly initialized Offer.
	ErrOfferIsNotConstructed = errors.New("Offer must be created via NewOffer constructor")
)

// Offer represents a promotional rule from the catalog: a discount type and
// value, the scope it applies to, an optional minimum order value, and an
// optional expiry.
//
// Offers are immutable. Whether an offer can actually be applied to a given
// cart is decided by the cart's pricing rules, not by the offer itself; the
// offer only knows its own expiry.
type Offer struct {
	// id is the unique identifier for the offer
	id kernel.UUID

	// couponCode is the customer-entered code that selects this offer
	couponCode string

	// discountType selects percentage or fixed interpretation of discountValue
	discountType DiscountType

	// discountValue is a percentage (e.g. 15 for 15%) or a fixed amount in
	// cents, depending on discountType
	discountValue float64

	// scope describes which cart lines the offer applies to
	scope Scope

	// minOrderValue is the cart subtotal required to apply the offer, nil if none
	minOrderValue *kernel.Money

	// expiresAt is the instant the offer stops being applicable, nil if never
	expiresAt *time.Time

	// guard ensures the offer was created via a constructor
	guard kernel.ConstructorGuard
}

// NewOffer creates a new Offer with validation.
//
// Parameters:
//   - id: Unique identifier (must be a valid UUID)
//   - couponCode: Customer-entered code (must be non-empty)
//   - discountType: DiscountPercentage or DiscountFixed
//   - discountValue: Percentage in (0, 100] or fixed cents > 0
//   - scope: Applicability scope
//   - minOrderValue: Optional minimum cart subtotal, nil if none
//   - expiresAt: Optional expiry instant, nil if the offer never expires
func NewOffer(
	id kernel.UUID,
	couponCode string,
	discountType DiscountType,
	discountValue float64,
	scope Scope,
	minOrderValue *kernel.Money,
	expiresAt *time.Time,
) (*Offer, error) {
	o := &Offer{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCouponCode(couponCode),
		o.setDiscount(discountType, discountValue),
		o.setMinOrderValue(minOrderValue),
	); err != nil {
		return nil, err
	}

	o.scope = scope
	o.expiresAt = expiresAt
	return o, nil
}

// RestoreOffer reconstructs an Offer from persistent storage.
func RestoreOffer(
	id kernel.UUID,
	couponCode string,
	discountType DiscountType,
	discountValue float64,
	scope Scope,
	minOrderValue *kernel.Money,
	expiresAt *time.Time,
) (*Offer, error) {
	return NewOffer(id, couponCode, discountType, discountValue, scope, minOrderValue, expiresAt)
}

// Validate ensures the Offer was properly constructed.
func (o *Offer) Validate() error {
	if o == nil {
		return ErrOfferIsNotConstructed
	}
	return o.guard.Validate(ErrOfferIsNotConstructed)
}

// IsEqual compares two offers by their unique identifiers.
func (o *Offer) IsEqual(other *Offer) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the offer's unique identifier.
func (o *Offer) ID() kernel.UUID {
	return o.id
}

// CouponCode returns the customer-entered code selecting this offer.
func (o *Offer) CouponCode() string {
	return o.couponCode
}

// DiscountType returns how the discount value is interpreted.
func (o *Offer) DiscountType() DiscountType {
	return o.discountType
}

// DiscountValue returns the percentage or fixed-cents value of the discount.
func (o *Offer) DiscountValue() float64 {
	return o.discountValue
}

// Scope returns the offer's applicability scope.
func (o *Offer) Scope() Scope {
	return o.scope
}

// MinOrderValue returns the required cart subtotal, or nil if none.
func (o *Offer) MinOrderValue() *kernel.Money {
	return o.minOrderValue
}

// ExpiresAt returns the expiry instant, or nil if the offer never expires.
func (o *Offer) ExpiresAt() *time.Time {
	return o.expiresAt
}

// IsExpired reports whether the offer has expired as of now.
// Offers without an expiry never expire.
func (o *Offer) IsExpired(now time.Time) bool {
	return o.expiresAt != nil && now.After(*o.expiresAt)
}

func (o *Offer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Offer) setCouponCode(code string) error {
	if code == "" {
		return ErrCouponCodeIsRequired
	}
	o.couponCode = code
	return nil
}

func (o *Offer) setDiscount(discountType DiscountType, value float64) error {
	switch discountType {
	case DiscountPercentage:
		if value <= 0 || value > 100 {
			return errs.NewValueIsOutOfRangeError("discount percentage", value, 0, 100)
		}
	case DiscountFixed:
		if value <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("discount value",
				fmt.Errorf("%v is not greater than 0", value))
		}
	default:
		return errs.NewValueIsInvalidErrorWithCause("discount type",
			fmt.Errorf("%d is not a valid discount type", discountType))
	}

	o.discountType = discountType
	o.discountValue = value
	return nil
}

func (o *Offer) setMinOrderValue(minOrderValue *kernel.Money) error {
	if minOrderValue != nil {
		if err := minOrderValue.ValidateNonNegative("minimum order value"); err != nil {
			return err
		}
	}
	o.minOrderValue = minOrderValue
	return nil
}

// AppliedOffer is an Offer bound to a specific cart together with the
// discount computed against that cart's contents. It exists only inside a
// cart; the catalog Offer itself is never mutated.
type AppliedOffer struct {
	offer          *Offer
	discountAmount kernel.Money
}

// NewAppliedOffer binds an offer to a computed discount amount.
func NewAppliedOffer(o *Offer, discountAmount kernel.Money) (AppliedOffer, error) {
	if err := o.Validate(); err != nil {
		return AppliedOffer{}, err
	}
	if err := discountAmount.ValidateNonNegative("discount amount"); err != nil {
		return AppliedOffer{}, err
	}
	return AppliedOffer{offer: o, discountAmount: discountAmount}, nil
}

// Offer returns the bound catalog offer.
func (a AppliedOffer) Offer() *Offer {
	return a.offer
}

// DiscountAmount returns the discount computed for the bound cart.
func (a AppliedOffer) DiscountAmount() kernel.Money {
	return a.discountAmount
}
