package commands

import (
	"errors"
	"fmt"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/guard"
)

var ErrTransitionOrderCommandIsNotConstructed = errors.New(
	"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
)

// TransitionAction names a lifecycle action an actor can request on an order.
// Delivery completion is a separate command because it also releases the
// rider's claim slot.
type TransitionAction int

const (
	// ActionAccept moves a placed order into preparation.
	ActionAccept TransitionAction = iota + 1
	// ActionReject cancels a placed order.
	ActionReject
	// ActionMarkReady makes a preparing order claimable by riders.
	ActionMarkReady
	// ActionCancel force-cancels an order in preparation.
	ActionCancel
)

// Validate checks if the TransitionAction value is valid.
func (a TransitionAction) Validate() error {
	switch a {
	case ActionAccept, ActionReject, ActionMarkReady, ActionCancel:
		return nil
	default:
		return fmt.Errorf("%d is not a valid transition action", a)
	}
}

// String returns the action's wire name.
func (a TransitionAction) String() string {
	switch a {
	case ActionAccept:
		return "accept"
	case ActionReject:
		return "reject"
	case ActionMarkReady:
		return "ready"
	case ActionCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// ParseTransitionAction maps a wire name to its action.
func ParseTransitionAction(s string) (TransitionAction, error) {
	switch s {
	case "accept":
		return ActionAccept, nil
	case "reject":
		return ActionReject, nil
	case "ready":
		return ActionMarkReady, nil
	case "cancel":
		return ActionCancel, nil
	default:
		return 0, fmt.Errorf("%q is not a valid transition action", s)
	}
}

// TransitionOrderCommand represents an actor's request to move an order
// through its lifecycle.
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   order.Actor
	action  TransitionAction

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a lifecycle transition command.
func NewTransitionOrderCommand(
	orderID kernel.UUID,
	actor order.Actor,
	action TransitionAction,
) (TransitionOrderCommand, error) {
	command := TransitionOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		actor.Validate(),
		action.Validate(),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	command.actor = actor
	command.action = action
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

// OrderID returns the order to transition.
func (c TransitionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the role requesting the transition.
func (c TransitionOrderCommand) Actor() order.Actor {
	return c.actor
}

// Action returns the requested lifecycle action.
func (c TransitionOrderCommand) Action() TransitionAction {
	return c.action
}

func (c *TransitionOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}
