package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusValidate(t *testing.T) {
	t.Run("valid_statuses", func(t *testing.T) {
		for _, s := range []Status{StatusPlaced, StatusPreparing, StatusOnItsWay, StatusDelivered, StatusCancelled} {
			assert.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("unknown_is_invalid", func(t *testing.T) {
		assert.Error(t, StatusUnknown.Validate())
	})

	t.Run("out_of_range_is_invalid", func(t *testing.T) {
		assert.Error(t, Status(42).Validate())
	})
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "Placed", StatusPlaced.String())
	assert.Equal(t, "On its way", StatusOnItsWay.String())
	assert.Equal(t, "Unknown", Status(42).String())
}

func TestStatusIsTerminal(t *testing.T) {
	assert.True(t, StatusDelivered.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusPlaced.IsTerminal())
	assert.False(t, StatusPreparing.IsTerminal())
	assert.False(t, StatusOnItsWay.IsTerminal())
}

func TestStatusAccept(t *testing.T) {
	t.Run("vendor_accepts_placed_order", func(t *testing.T) {
		next, err := StatusPlaced.Accept(ActorVendor)
		assert.NoError(t, err)
		assert.Equal(t, StatusPreparing, next)
	})

	t.Run("moderator_accepts_placed_order", func(t *testing.T) {
		next, err := StatusPlaced.Accept(ActorModerator)
		assert.NoError(t, err)
		assert.Equal(t, StatusPreparing, next)
	})

	t.Run("accepting_preparing_order_is_idempotent", func(t *testing.T) {
		next, err := StatusPreparing.Accept(ActorVendor)
		assert.NoError(t, err)
		assert.Equal(t, StatusPreparing, next)
	})

	t.Run("customer_cannot_accept", func(t *testing.T) {
		_, err := StatusPlaced.Accept(ActorCustomer)
		assert.ErrorIs(t, err, ErrActorNotAllowed)
	})

	t.Run("rider_cannot_accept", func(t *testing.T) {
		_, err := StatusPlaced.Accept(ActorRider)
		assert.ErrorIs(t, err, ErrActorNotAllowed)
	})

	t.Run("cannot_accept_terminal_order", func(t *testing.T) {
		_, err := StatusCancelled.Accept(ActorVendor)
		assert.ErrorIs(t, err, ErrInvalidTransition)

		_, err = StatusDelivered.Accept(ActorVendor)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestStatusReject(t *testing.T) {
	t.Run("vendor_rejects_placed_order", func(t *testing.T) {
		next, err := StatusPlaced.Reject(ActorVendor)
		assert.NoError(t, err)
		assert.Equal(t, StatusCancelled, next)
	})

	t.Run("cannot_reject_after_acceptance", func(t *testing.T) {
		_, err := StatusPreparing.Reject(ActorVendor)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("customer_cannot_reject", func(t *testing.T) {
		_, err := StatusPlaced.Reject(ActorCustomer)
		assert.ErrorIs(t, err, ErrActorNotAllowed)
	})
}

func TestStatusMarkReady(t *testing.T) {
	t.Run("vendor_marks_preparing_order_ready", func(t *testing.T) {
		next, err := StatusPreparing.MarkReady(ActorVendor)
		assert.NoError(t, err)
		assert.Equal(t, StatusOnItsWay, next)
	})

	t.Run("cannot_mark_placed_order_ready", func(t *testing.T) {
		_, err := StatusPlaced.MarkReady(ActorVendor)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("rider_cannot_mark_ready", func(t *testing.T) {
		_, err := StatusPreparing.MarkReady(ActorRider)
		assert.ErrorIs(t, err, ErrActorNotAllowed)
	})
}

func TestStatusCancelPreparing(t *testing.T) {
	t.Run("moderator_cancels_preparing_order", func(t *testing.T) {
		next, err := StatusPreparing.CancelPreparing(ActorModerator)
		assert.NoError(t, err)
		assert.Equal(t, StatusCancelled, next)
	})

	t.Run("vendor_cannot_cancel_preparing_order", func(t *testing.T) {
		_, err := StatusPreparing.CancelPreparing(ActorVendor)
		assert.ErrorIs(t, err, ErrActorNotAllowed)
	})

	t.Run("cannot_cancel_order_on_its_way", func(t *testing.T) {
		_, err := StatusOnItsWay.CancelPreparing(ActorModerator)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestStatusDeliver(t *testing.T) {
	t.Run("rider_delivers_order_on_its_way", func(t *testing.T) {
		next, err := StatusOnItsWay.Deliver(ActorRider)
		assert.NoError(t, err)
		assert.Equal(t, StatusDelivered, next)
	})

	t.Run("vendor_cannot_deliver", func(t *testing.T) {
		_, err := StatusOnItsWay.Deliver(ActorVendor)
		assert.ErrorIs(t, err, ErrActorNotAllowed)
	})

	t.Run("moderator_cannot_deliver", func(t *testing.T) {
		_, err := StatusOnItsWay.Deliver(ActorModerator)
		assert.ErrorIs(t, err, ErrActorNotAllowed)
	})

	t.Run("cannot_deliver_before_ready", func(t *testing.T) {
		_, err := StatusPreparing.Deliver(ActorRider)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("cannot_deliver_twice", func(t *testing.T) {
		_, err := StatusDelivered.Deliver(ActorRider)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestActorValidate(t *testing.T) {
	for _, a := range []Actor{ActorCustomer, ActorVendor, ActorModerator, ActorRider} {
		assert.NoError(t, a.Validate(), a.String())
	}
	assert.Error(t, Actor(0).Validate())
	assert.Error(t, Actor(99).Validate())
}
