package order

import (
	"errors"
	"fmt"
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
)

// PaymentMethod is the customer's payment choice, frozen at checkout.
type PaymentMethod int

const (
	// PaymentCash is paid on delivery.
	PaymentCash PaymentMethod = iota + 1
	// PaymentCard was charged at checkout.
	PaymentCard
)

// DeliveryOption determines how the order reaches the customer.
type DeliveryOption int

const (
	// DeliveryHome means a rider brings the order; the delivery fee applies.
	DeliveryHome DeliveryOption = iota + 1
	// DeliveryPickup means the customer collects the order; no delivery fee.
	DeliveryPickup
)

var (
	// ErrOrderIsNotConstructed is returned when using an improperly initialized Order.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrNoLines is returned when attempting to create an order without any items.
	ErrNoLines = errs.NewValueIsRequiredError("order lines")
	// ErrAddressIsRequired is returned when attempting to create an order without an address.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")
	// ErrRiderAlreadyAssigned rejects a claim on an order that already has a rider.
	ErrRiderAlreadyAssigned = errors.New("order already has a rider assigned")
	// ErrOrderNotReadyForRider rejects a claim on an order that is not ready for pickup.
	ErrOrderNotReadyForRider = errors.New("order is not ready for a rider claim")
)

// Line is one frozen order line: what was ordered, from whom, and at what
// price. Lines are value objects copied from cart lines at checkout and are
// never mutated afterwards.
type Line struct {
	ItemID       kernel.UUID
	RestaurantID kernel.UUID
	Name         string
	Quantity     int
	UnitPrice    kernel.Money
	TotalPrice   kernel.Money
}

// Order represents a placed order in the marketplace. It is the aggregate
// root that every actor surface observes and mutates through the lifecycle
// state machine.
//
// Order follows these invariants:
//   - Items, pricing, address, and payment choice are frozen at creation;
//     any adjustment requires a new order
//   - Status transitions follow the actor-scoped state machine in status.go
//   - placedAt is recorded at creation; acceptedAt is recorded the first
//     time the order reaches Preparing and never changes afterwards
//   - A rider is assigned at most once, and only while the order is
//     ready for pickup
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID identifies the customer who placed the order
	customerID kernel.UUID

	// lines are the frozen order lines
	lines []Line

	// subtotal, deliveryFee, discount, and total are the frozen pricing snapshot
	subtotal    kernel.Money
	deliveryFee kernel.Money
	discount    kernel.Money
	total       kernel.Money

	// address is the delivery or contact address
	address string

	// paymentMethod is the frozen payment choice
	paymentMethod PaymentMethod

	// deliveryOption is the frozen delivery choice
	deliveryOption DeliveryOption

	// status is the current lifecycle state
	status Status

	// riderID is the claiming rider, nil while unclaimed
	riderID *kernel.UUID

	// moderatorNote is free text a moderator may attach at any time
	moderatorNote string

	// placedAt is the creation instant
	placedAt time.Time

	// acceptedAt is the instant the order first reached Preparing, nil before
	acceptedAt *time.Time

	// guard ensures the order was created via a constructor
	guard kernel.ConstructorGuard
}

// NewOrder creates a freshly placed order from a frozen pricing snapshot.
// The order starts in StatusPlaced with placedAt set to the given instant.
//
// Parameters:
//   - id: Unique identifier (must be a valid UUID)
//   - customerID: The placing customer (must be a valid UUID)
//   - lines: The frozen order lines (must be non-empty)
//   - subtotal, deliveryFee, discount, total: The frozen pricing snapshot
//   - address: Delivery or contact address (must be non-empty)
//   - paymentMethod, deliveryOption: The frozen customer choices
//   - placedAt: The creation instant
//
// Returns the order, or a validation error if any parameter is invalid.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	lines []Line,
	subtotal, deliveryFee, discount, total kernel.Money,
	address string,
	paymentMethod PaymentMethod,
	deliveryOption DeliveryOption,
	placedAt time.Time,
) (*Order, error) {
	o := &Order{
		status: StatusPlaced,
		guard:  kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setLines(lines),
		o.setPricing(subtotal, deliveryFee, discount, total),
		o.setAddress(address),
		o.setPaymentMethod(paymentMethod),
		o.setDeliveryOption(deliveryOption),
	); err != nil {
		return nil, err
	}

	o.placedAt = placedAt
	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage,
// including its lifecycle state, rider assignment, note, and timestamps.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	lines []Line,
	subtotal, deliveryFee, discount, total kernel.Money,
	address string,
	paymentMethod PaymentMethod,
	deliveryOption DeliveryOption,
	status Status,
	riderID *kernel.UUID,
	moderatorNote string,
	placedAt time.Time,
	acceptedAt *time.Time,
) (*Order, error) {
	o, err := NewOrder(
		id, customerID, lines,
		subtotal, deliveryFee, discount, total,
		address, paymentMethod, deliveryOption, placedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	if riderID != nil {
		if err := riderID.Validate(); err != nil {
			return nil, err
		}
	}

	o.status = status
	o.riderID = riderID
	o.moderatorNote = moderatorNote
	o.acceptedAt = acceptedAt
	return o, nil
}

// Validate ensures the Order was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the placing customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Lines returns the frozen order lines.
func (o *Order) Lines() []Line {
	return o.lines
}

// Subtotal returns the frozen item subtotal.
func (o *Order) Subtotal() kernel.Money {
	return o.subtotal
}

// DeliveryFee returns the frozen delivery fee.
func (o *Order) DeliveryFee() kernel.Money {
	return o.deliveryFee
}

// Discount returns the frozen discount amount.
func (o *Order) Discount() kernel.Money {
	return o.discount
}

// Total returns the frozen grand total.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Address returns the delivery or contact address.
func (o *Order) Address() string {
	return o.address
}

// PaymentMethod returns the frozen payment choice.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// DeliveryOption returns the frozen delivery choice.
func (o *Order) DeliveryOption() DeliveryOption {
	return o.deliveryOption
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// Rider returns the claiming rider's ID, or nil while unclaimed.
func (o *Order) Rider() *kernel.UUID {
	return o.riderID
}

// ModeratorNote returns the attached moderator note, possibly empty.
func (o *Order) ModeratorNote() string {
	return o.moderatorNote
}

// PlacedAt returns the creation instant.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// AcceptedAt returns the instant the order first reached Preparing,
// or nil if it has not been accepted.
func (o *Order) AcceptedAt() *time.Time {
	return o.acceptedAt
}

// Accept moves the order into preparation on behalf of the given actor.
// acceptedAt is recorded the first time the order reaches Preparing;
// an idempotent re-accept leaves the original timestamp untouched.
func (o *Order) Accept(actor Actor, now time.Time) error {
	newStatus, err := o.status.Accept(actor)
	if err != nil {
		return err
	}

	o.status = newStatus
	if o.acceptedAt == nil {
		o.acceptedAt = &now
	}
	return nil
}

// Reject cancels a placed order on behalf of the given actor.
func (o *Order) Reject(actor Actor) error {
	newStatus, err := o.status.Reject(actor)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkReady moves the order out of the kitchen on behalf of the given actor,
// making it claimable by riders.
func (o *Order) MarkReady(actor Actor) error {
	newStatus, err := o.status.MarkReady(actor)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// CancelPreparing force-cancels an order the kitchen already accepted.
// Moderators only.
func (o *Order) CancelPreparing(actor Actor) error {
	newStatus, err := o.status.CancelPreparing(actor)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Deliver finalizes the delivery on behalf of the rider.
func (o *Order) Deliver(actor Actor) error {
	newStatus, err := o.status.Deliver(actor)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// AssignRider claims the order for a rider. A claim is an assignment, not a
// status change: the order must be ready for pickup and must not already
// have a rider. Exactly one concurrent claim may succeed; repositories back
// this rule with a compare-and-swap on the rider column.
func (o *Order) AssignRider(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}
	if o.status != StatusOnItsWay {
		return fmt.Errorf("%w: status is %s", ErrOrderNotReadyForRider, o.status)
	}
	if o.riderID != nil {
		return ErrRiderAlreadyAssigned
	}

	o.riderID = &riderID
	return nil
}

// SetModeratorNote attaches or replaces the free-text moderator note.
// Notes are orthogonal to the lifecycle: any status, no transition.
func (o *Order) SetModeratorNote(actor Actor, note string) error {
	if actor != ActorModerator {
		return fmt.Errorf("%w: %s cannot attach notes", ErrActorNotAllowed, actor)
	}

	o.moderatorNote = note
	return nil
}

// Delay classifies the order's current delay against wall-clock time.
// Pure read; see ClassifyDelay.
func (o *Order) Delay(now time.Time) DelaySeverity {
	return ClassifyDelay(o.status, o.placedAt, o.acceptedAt, now)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return ErrNoLines
	}
	for _, line := range lines {
		if line.Quantity < 1 {
			return errs.NewValueIsInvalidErrorWithCause("line quantity",
				fmt.Errorf("%d is less than 1", line.Quantity))
		}
	}
	o.lines = lines
	return nil
}

func (o *Order) setPricing(subtotal, deliveryFee, discount, total kernel.Money) error {
	if err := errors.Join(
		subtotal.ValidateNonNegative("subtotal"),
		deliveryFee.ValidateNonNegative("delivery fee"),
		discount.ValidateNonNegative("discount"),
		total.ValidateNonNegative("total"),
	); err != nil {
		return err
	}

	o.subtotal = subtotal
	o.deliveryFee = deliveryFee
	o.discount = discount
	o.total = total
	return nil
}

func (o *Order) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}
	o.address = address
	return nil
}

func (o *Order) setPaymentMethod(method PaymentMethod) error {
	switch method {
	case PaymentCash, PaymentCard:
		o.paymentMethod = method
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("payment method",
			fmt.Errorf("%d is not a valid payment method", method))
	}
}

func (o *Order) setDeliveryOption(option DeliveryOption) error {
	switch option {
	case DeliveryHome, DeliveryPickup:
		o.deliveryOption = option
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("delivery option",
			fmt.Errorf("%d is not a valid delivery option", option))
	}
}
