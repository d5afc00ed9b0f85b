// Package order contains the Order aggregate and its lifecycle state machine.
//
// An order is an immutable snapshot of a checked-out cart: items, pricing,
// address, and payment choice are frozen at creation and never change. The
// only mutable aspects are the status, the rider assignment, the moderator
// note, and the timestamps the lifecycle records.
//
// Status transitions are scoped by actor:
//
//	Placed ──accept (vendor/moderator)──> Preparing ──ready──> On its way ──deliver (rider)──> Delivered
//	   │                                     │
//	   └──reject (vendor/moderator)──> Cancelled <──cancel (moderator only)
//
// Delivered and Cancelled are terminal. Rider assignment on an "On its way"
// order is a claim, not a status change, and succeeds at most once.
//
// Delay classification is a derived, read-only view: given the status and the
// recorded timestamps, ClassifyDelay reports whether the order has waited too
// long unaccepted or too long in preparation. It never mutates state and is
// identical from every actor surface.
package order
