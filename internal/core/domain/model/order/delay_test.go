package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassifyDelay(t *testing.T) {
	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("placed_order_within_threshold", func(t *testing.T) {
		got := ClassifyDelay(StatusPlaced, base, nil, base.Add(4*time.Minute))
		assert.Equal(t, DelayNone, got)
	})

	t.Run("placed_order_exactly_at_threshold_is_not_delayed", func(t *testing.T) {
		got := ClassifyDelay(StatusPlaced, base, nil, base.Add(UnacceptedDelayThreshold))
		assert.Equal(t, DelayNone, got)
	})

	t.Run("placed_order_past_threshold_is_warning", func(t *testing.T) {
		got := ClassifyDelay(StatusPlaced, base, nil, base.Add(6*time.Minute))
		assert.Equal(t, DelayWarning, got)
	})

	t.Run("placed_order_past_double_threshold_is_critical", func(t *testing.T) {
		got := ClassifyDelay(StatusPlaced, base, nil, base.Add(11*time.Minute))
		assert.Equal(t, DelayCritical, got)
	})

	t.Run("preparing_order_measured_from_acceptance", func(t *testing.T) {
		acceptedAt := base.Add(3 * time.Minute)

		got := ClassifyDelay(StatusPreparing, base, &acceptedAt, acceptedAt.Add(14*time.Minute))
		assert.Equal(t, DelayNone, got)

		got = ClassifyDelay(StatusPreparing, base, &acceptedAt, acceptedAt.Add(16*time.Minute))
		assert.Equal(t, DelayWarning, got)

		got = ClassifyDelay(StatusPreparing, base, &acceptedAt, acceptedAt.Add(31*time.Minute))
		assert.Equal(t, DelayCritical, got)
	})

	t.Run("preparing_order_without_acceptance_timestamp", func(t *testing.T) {
		got := ClassifyDelay(StatusPreparing, base, nil, base.Add(time.Hour))
		assert.Equal(t, DelayNone, got)
	})

	t.Run("later_phases_are_never_delayed", func(t *testing.T) {
		acceptedAt := base.Add(time.Minute)
		for _, s := range []Status{StatusOnItsWay, StatusDelivered, StatusCancelled} {
			got := ClassifyDelay(s, base, &acceptedAt, base.Add(24*time.Hour))
			assert.Equal(t, DelayNone, got, s.String())
		}
	})
}

func TestOrderDelay(t *testing.T) {
	o := newTestOrder(t)
	assert.Equal(t, DelayWarning, o.Delay(placedAt.Add(7*time.Minute)))
}
