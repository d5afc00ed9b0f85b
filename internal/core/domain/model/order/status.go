package order

import (
	"errors"
	"fmt"
)

// Status represents the lifecycle state of an order.
// It implements a state machine whose transitions are scoped by the actor
// attempting them; every mutation of an order's status funnels through the
// transition methods below.
//
// State transitions:
//
//	Placed ──┬──> Preparing ──┬──> OnItsWay ──> Delivered
//	         │                │
//	         └──> Cancelled <─┘
//
// Delivered and Cancelled are terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPlaced is the initial status of a freshly created order,
	// waiting for the vendor to accept or reject it.
	StatusPlaced

	// StatusPreparing indicates the vendor accepted the order and the
	// kitchen is working on it.
	StatusPreparing

	// StatusOnItsWay indicates the order is ready for pickup or already
	// with a rider. Riders claim orders in this status.
	StatusOnItsWay

	// StatusDelivered indicates the rider handed the order over.
	// Terminal state.
	StatusDelivered

	// StatusCancelled indicates the order was rejected or cancelled
	// before leaving the kitchen. Terminal state.
	StatusCancelled
)

// Actor identifies which role is attempting a lifecycle operation.
type Actor int

const (
	// ActorCustomer places orders; it cannot change status afterwards.
	ActorCustomer Actor = iota + 1
	// ActorVendor accepts, rejects, and readies orders of its restaurant.
	ActorVendor
	// ActorModerator has every vendor permission plus cancelling orders
	// in preparation and attaching notes.
	ActorModerator
	// ActorRider claims ready orders and finalizes delivery.
	ActorRider
)

var (
	// ErrInvalidTransition rejects a status change the state machine does not allow.
	ErrInvalidTransition = errors.New("status transition is not allowed")
	// ErrActorNotAllowed rejects a status change the calling actor may not perform.
	ErrActorNotAllowed = errors.New("actor is not allowed to perform this transition")
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusPlaced:    "Placed",
		StatusPreparing: "Preparing",
		StatusOnItsWay:  "On its way",
		StatusDelivered: "Delivered",
		StatusCancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPlaced:    "Placed",
		StatusPreparing: "Preparing",
		StatusOnItsWay:  "On its way",
		StatusDelivered: "Delivered",
		StatusCancelled: "Cancelled",
	}
}

// Validate checks if the Status value is valid.
// StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return fmt.Errorf("%w: %d is not a valid status", ErrInvalidTransition, s)
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks if the Actor value is valid.
func (a Actor) Validate() error {
	switch a {
	case ActorCustomer, ActorVendor, ActorModerator, ActorRider:
		return nil
	default:
		return fmt.Errorf("%w: %d is not a valid actor", ErrActorNotAllowed, a)
	}
}

// String returns the human-readable name of the actor.
func (a Actor) String() string {
	switch a {
	case ActorCustomer:
		return "Customer"
	case ActorVendor:
		return "Vendor"
	case ActorModerator:
		return "Moderator"
	case ActorRider:
		return "Rider"
	default:
		return "Unknown"
	}
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Accept transitions Placed to Preparing. Vendors and moderators may accept.
// Accepting an order that is already Preparing is an idempotent re-save and
// returns Preparing again without error.
func (s Status) Accept(actor Actor) (Status, error) {
	if actor != ActorVendor && actor != ActorModerator {
		return 0, fmt.Errorf("%w: %s cannot accept orders", ErrActorNotAllowed, actor)
	}
	if s == StatusPreparing {
		return StatusPreparing, nil
	}
	if s != StatusPlaced {
		return 0, fmt.Errorf("%w: cannot accept an order in status %s", ErrInvalidTransition, s)
	}
	return StatusPreparing, nil
}

// Reject transitions Placed to Cancelled. Vendors and moderators may reject.
func (s Status) Reject(actor Actor) (Status, error) {
	if actor != ActorVendor && actor != ActorModerator {
		return 0, fmt.Errorf("%w: %s cannot reject orders", ErrActorNotAllowed, actor)
	}
	if s != StatusPlaced {
		return 0, fmt.Errorf("%w: cannot reject an order in status %s", ErrInvalidTransition, s)
	}
	return StatusCancelled, nil
}

// MarkReady transitions Preparing to OnItsWay. Vendors and moderators may
// mark an order ready for pickup.
func (s Status) MarkReady(actor Actor) (Status, error) {
	if actor != ActorVendor && actor != ActorModerator {
		return 0, fmt.Errorf("%w: %s cannot mark orders ready", ErrActorNotAllowed, actor)
	}
	if s != StatusPreparing {
		return 0, fmt.Errorf("%w: cannot mark ready an order in status %s", ErrInvalidTransition, s)
	}
	return StatusOnItsWay, nil
}

// CancelPreparing transitions Preparing to Cancelled. Only a moderator may
// force-cancel an order the kitchen already accepted.
func (s Status) CancelPreparing(actor Actor) (Status, error) {
	if actor != ActorModerator {
		return 0, fmt.Errorf("%w: %s cannot cancel orders in preparation", ErrActorNotAllowed, actor)
	}
	if s != StatusPreparing {
		return 0, fmt.Errorf("%w: cannot cancel an order in status %s", ErrInvalidTransition, s)
	}
	return StatusCancelled, nil
}

// Deliver transitions OnItsWay to Delivered. Only the rider finalizes delivery.
func (s Status) Deliver(actor Actor) (Status, error) {
	if actor != ActorRider {
		return 0, fmt.Errorf("%w: %s cannot finalize delivery", ErrActorNotAllowed, actor)
	}
	if s != StatusOnItsWay {
		return 0, fmt.Errorf("%w: cannot deliver an order in status %s", ErrInvalidTransition, s)
	}
	return StatusDelivered, nil
}
