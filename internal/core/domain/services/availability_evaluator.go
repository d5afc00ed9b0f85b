package services

import (
	"fmt"
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/menu"
	"foodcourt/internal/core/domain/model/restaurant"
)

// Availability is the outcome of an availability check. When Available is
// false, Reason carries a customer-facing explanation.
type Availability struct {
	Available bool
	Reason    string
}

// AvailabilityEvaluator is a domain service that decides whether a menu item
// can be ordered at a given instant. The check is layered: the restaurant's
// operating hours gate first, then the item's own serving window.
//
// The evaluator is pure: it never errors and touches no external state, so
// both the ordering path and menu queries can call it freely.
type AvailabilityEvaluator struct{}

// NewAvailabilityEvaluator creates a new AvailabilityEvaluator instance.
func NewAvailabilityEvaluator() AvailabilityEvaluator {
	return AvailabilityEvaluator{}
}

// Evaluate checks whether the given item of the given restaurant can be
// ordered at the instant now. The weekday and time of day are taken from
// now as-is; callers are responsible for passing wall-clock time in the
// marketplace's zone.
func (e AvailabilityEvaluator) Evaluate(
	item *menu.MenuItem,
	rest *restaurant.Restaurant,
	now time.Time,
) Availability {
	timeOfDay := kernel.TimeOfDayOf(now)

	if result := e.evaluateRestaurant(rest, now.Weekday(), timeOfDay); !result.Available {
		return result
	}

	return e.evaluateWindow(item.Window(), timeOfDay)
}

// evaluateRestaurant applies the operating-hours gate. Restaurants without
// configured hours are always open.
func (e AvailabilityEvaluator) evaluateRestaurant(
	rest *restaurant.Restaurant,
	weekday time.Weekday,
	t kernel.TimeOfDay,
) Availability {
	hours := rest.Hours()
	if hours == nil {
		return Availability{Available: true}
	}

	day := hours.Day(weekday)
	if !day.IsOpen() {
		return Availability{Reason: "closed today"}
	}

	var nextOpen *kernel.TimeOfDay
	for _, slot := range day.Slots() {
		if slot.Contains(t) {
			return Availability{Available: true}
		}
		open := slot.Open()
		if t.Before(open) && (nextOpen == nil || open.Before(*nextOpen)) {
			nextOpen = &open
		}
	}

	if nextOpen != nil {
		return Availability{Reason: fmt.Sprintf("opens at %s", nextOpen)}
	}
	return Availability{Reason: "closed for the day"}
}

// evaluateWindow applies the item's serving-window gate.
func (e AvailabilityEvaluator) evaluateWindow(window menu.ServingWindow, t kernel.TimeOfDay) Availability {
	if window.Contains(t) {
		return Availability{Available: true}
	}

	if t.Before(window.Start()) {
		return Availability{Reason: fmt.Sprintf("not yet available, opens at %s", window.Start())}
	}
	return Availability{Reason: "no longer available today"}
}
