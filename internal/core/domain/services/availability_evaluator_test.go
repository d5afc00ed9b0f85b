package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/menu"
	"foodcourt/internal/core/domain/model/restaurant"
)

func timeOfDay(t *testing.T, hour, minute int) kernel.TimeOfDay {
	t.Helper()
	tod, err := kernel.NewTimeOfDay(hour, minute)
	require.NoError(t, err)
	return tod
}

// Monday is 2025-03-10.
func mondayAt(hour, minute int) time.Time {
	return time.Date(2025, 3, 10, hour, minute, 0, 0, time.UTC)
}

func newTestItem(t *testing.T, window menu.ServingWindow) *menu.MenuItem {
	t.Helper()
	item, err := menu.NewMenuItem(
		kernel.NewUUID(), kernel.NewUUID(),
		"Pancakes", kernel.NewMoney(850), nil, window, "breakfast",
	)
	require.NoError(t, err)
	return item
}

func newTestRestaurant(t *testing.T, hours *restaurant.OperatingHours) *restaurant.Restaurant {
	t.Helper()
	r, err := restaurant.NewRestaurant(kernel.NewUUID(), "Diner", hours)
	require.NoError(t, err)
	return r
}

func TestAvailabilityEvaluatorRestaurantGate(t *testing.T) {
	evaluator := NewAvailabilityEvaluator()
	item := newTestItem(t, menu.AllDay())

	t.Run("no_configured_hours_means_always_open", func(t *testing.T) {
		rest := newTestRestaurant(t, nil)

		got := evaluator.Evaluate(item, rest, mondayAt(3, 0))
		assert.True(t, got.Available)
	})

	t.Run("closed_day", func(t *testing.T) {
		hours, err := restaurant.NewOperatingHours(map[time.Weekday]restaurant.DaySchedule{
			time.Monday: restaurant.ClosedDay(),
		})
		require.NoError(t, err)
		rest := newTestRestaurant(t, &hours)

		got := evaluator.Evaluate(item, rest, mondayAt(12, 0))
		assert.False(t, got.Available)
		assert.Equal(t, "closed today", got.Reason)
	})

	t.Run("before_opening_names_the_next_slot", func(t *testing.T) {
		hours, err := restaurant.NewOperatingHours(map[time.Weekday]restaurant.DaySchedule{
			time.Monday: restaurant.NewDaySchedule(true, []restaurant.TimeSlot{
				restaurant.NewTimeSlot(timeOfDay(t, 11, 0), timeOfDay(t, 14, 0)),
				restaurant.NewTimeSlot(timeOfDay(t, 18, 0), timeOfDay(t, 22, 0)),
			}),
		})
		require.NoError(t, err)
		rest := newTestRestaurant(t, &hours)

		got := evaluator.Evaluate(item, rest, mondayAt(9, 30))
		assert.False(t, got.Available)
		assert.Equal(t, "opens at 11:00", got.Reason)

		// between lunch and dinner the next slot is dinner
		got = evaluator.Evaluate(item, rest, mondayAt(15, 0))
		assert.False(t, got.Available)
		assert.Equal(t, "opens at 18:00", got.Reason)
	})

	t.Run("after_last_slot_is_closed_for_the_day", func(t *testing.T) {
		hours, err := restaurant.NewOperatingHours(map[time.Weekday]restaurant.DaySchedule{
			time.Monday: restaurant.NewDaySchedule(true, []restaurant.TimeSlot{
				restaurant.NewTimeSlot(timeOfDay(t, 11, 0), timeOfDay(t, 14, 0)),
			}),
		})
		require.NoError(t, err)
		rest := newTestRestaurant(t, &hours)

		got := evaluator.Evaluate(item, rest, mondayAt(20, 0))
		assert.False(t, got.Available)
		assert.Equal(t, "closed for the day", got.Reason)
	})

	t.Run("wrap_around_slot_is_open_past_midnight", func(t *testing.T) {
		hours, err := restaurant.NewOperatingHours(map[time.Weekday]restaurant.DaySchedule{
			time.Monday: restaurant.NewDaySchedule(true, []restaurant.TimeSlot{
				restaurant.NewTimeSlot(timeOfDay(t, 22, 0), timeOfDay(t, 6, 0)),
			}),
		})
		require.NoError(t, err)
		rest := newTestRestaurant(t, &hours)

		got := evaluator.Evaluate(item, rest, mondayAt(2, 30))
		assert.True(t, got.Available)

		got = evaluator.Evaluate(item, rest, mondayAt(23, 0))
		assert.True(t, got.Available)

		got = evaluator.Evaluate(item, rest, mondayAt(12, 0))
		assert.False(t, got.Available)
		assert.Equal(t, "opens at 22:00", got.Reason)
	})

	t.Run("unconfigured_weekday_is_closed", func(t *testing.T) {
		hours, err := restaurant.NewOperatingHours(map[time.Weekday]restaurant.DaySchedule{
			time.Tuesday: restaurant.NewDaySchedule(true, []restaurant.TimeSlot{
				restaurant.NewTimeSlot(timeOfDay(t, 11, 0), timeOfDay(t, 14, 0)),
			}),
		})
		require.NoError(t, err)
		rest := newTestRestaurant(t, &hours)

		got := evaluator.Evaluate(item, rest, mondayAt(12, 0))
		assert.False(t, got.Available)
		assert.Equal(t, "closed today", got.Reason)
	})
}

func TestAvailabilityEvaluatorServingWindow(t *testing.T) {
	evaluator := NewAvailabilityEvaluator()
	rest := newTestRestaurant(t, nil)

	t.Run("all_day_item_is_always_available", func(t *testing.T) {
		item := newTestItem(t, menu.AllDay())
		got := evaluator.Evaluate(item, rest, mondayAt(4, 0))
		assert.True(t, got.Available)
	})

	t.Run("breakfast_item_before_window", func(t *testing.T) {
		item := newTestItem(t, menu.CustomWindow(timeOfDay(t, 6, 0), timeOfDay(t, 11, 0)))

		got := evaluator.Evaluate(item, rest, mondayAt(5, 0))
		assert.False(t, got.Available)
		assert.Equal(t, "not yet available, opens at 06:00", got.Reason)
	})

	t.Run("breakfast_item_after_window", func(t *testing.T) {
		item := newTestItem(t, menu.CustomWindow(timeOfDay(t, 6, 0), timeOfDay(t, 11, 0)))

		got := evaluator.Evaluate(item, rest, mondayAt(13, 0))
		assert.False(t, got.Available)
		assert.Equal(t, "no longer available today", got.Reason)
	})

	t.Run("window_boundaries_are_inclusive", func(t *testing.T) {
		item := newTestItem(t, menu.CustomWindow(timeOfDay(t, 6, 0), timeOfDay(t, 11, 0)))

		assert.True(t, evaluator.Evaluate(item, rest, mondayAt(6, 0)).Available)
		assert.True(t, evaluator.Evaluate(item, rest, mondayAt(11, 0)).Available)
	})

	t.Run("late_night_window_wraps_midnight", func(t *testing.T) {
		item := newTestItem(t, menu.CustomWindow(timeOfDay(t, 22, 0), timeOfDay(t, 2, 0)))

		assert.True(t, evaluator.Evaluate(item, rest, mondayAt(23, 30)).Available)
		assert.True(t, evaluator.Evaluate(item, rest, mondayAt(1, 0)).Available)

		got := evaluator.Evaluate(item, rest, mondayAt(12, 0))
		assert.False(t, got.Available)
		assert.Equal(t, "not yet available, opens at 22:00", got.Reason)
	})

	t.Run("restaurant_gate_runs_before_item_gate", func(t *testing.T) {
		hours, err := restaurant.NewOperatingHours(map[time.Weekday]restaurant.DaySchedule{
			time.Monday: restaurant.ClosedDay(),
		})
		require.NoError(t, err)
		closed := newTestRestaurant(t, &hours)
		item := newTestItem(t, menu.CustomWindow(timeOfDay(t, 6, 0), timeOfDay(t, 11, 0)))

		got := evaluator.Evaluate(item, closed, mondayAt(8, 0))
		assert.False(t, got.Available)
		assert.Equal(t, "closed today", got.Reason)
	})
}
