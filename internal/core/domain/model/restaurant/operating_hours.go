package restaurant

import (
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
)

// TimeSlot is a value object that represents one continuous interval during
// which a restaurant accepts orders. Boundaries are inclusive on both ends.
//
// A slot whose close time is earlier than its open time wraps around
// midnight: 22:00-06:00 contains 23:30 and 02:00 but not 12:00. Wrap-around
// slots are first-class; containment must never be reduced to a plain
// open <= t <= close comparison.
type TimeSlot struct {
	open  kernel.TimeOfDay
	close kernel.TimeOfDay
}

// NewTimeSlot creates a TimeSlot from open and close times.
// Open and close may be equal, which denotes a single-minute slot.
func NewTimeSlot(open, close kernel.TimeOfDay) TimeSlot {
	return TimeSlot{open: open, close: close}
}

// Open returns the slot's opening time.
func (s TimeSlot) Open() kernel.TimeOfDay {
	return s.open
}

// Close returns the slot's closing time.
func (s TimeSlot) Close() kernel.TimeOfDay {
	return s.close
}

// Contains reports whether t falls inside the slot, boundaries inclusive.
// Handles wrap-around slots where close < open.
func (s TimeSlot) Contains(t kernel.TimeOfDay) bool {
	if s.close.Before(s.open) {
		// Interval crosses midnight: inside if at-or-after open, or at-or-before close.
		return !t.Before(s.open) || !t.After(s.close)
	}
	return !t.Before(s.open) && !t.After(s.close)
}

// DaySchedule describes one weekday of a restaurant's operating hours:
// whether the restaurant opens at all that day and, if so, during which
// slots. Slots within a day may be disjoint (a lunch/dinner split) and are
// kept in the order they were configured; contiguity is never assumed.
type DaySchedule struct {
	isOpen bool
	slots  []TimeSlot
}

// NewDaySchedule creates a DaySchedule. A day marked open with zero slots
// behaves as closed for availability purposes.
func NewDaySchedule(isOpen bool, slots []TimeSlot) DaySchedule {
	return DaySchedule{isOpen: isOpen, slots: slots}
}

// ClosedDay returns the schedule of a day on which the restaurant does not open.
func ClosedDay() DaySchedule {
	return DaySchedule{}
}

// IsOpen reports whether the restaurant opens at all on this day.
func (d DaySchedule) IsOpen() bool {
	return d.isOpen
}

// Slots returns the day's time slots in configured order.
func (d DaySchedule) Slots() []TimeSlot {
	return d.slots
}

// OperatingHours is a value object mapping each weekday to its schedule.
// Weekdays without an entry are treated as closed.
//
// A restaurant without any operating-hours configuration is always open;
// that case is represented by a nil *OperatingHours on the Restaurant
// aggregate, not by an OperatingHours value.
type OperatingHours struct {
	days map[time.Weekday]DaySchedule
}

// NewOperatingHours creates an OperatingHours from a weekday schedule map.
// The map must not be nil; an always-open restaurant carries no
// OperatingHours at all.
func NewOperatingHours(days map[time.Weekday]DaySchedule) (OperatingHours, error) {
	if days == nil {
		return OperatingHours{}, errs.NewValueIsRequiredError("days")
	}
	copied := make(map[time.Weekday]DaySchedule, len(days))
	for weekday, schedule := range days {
		copied[weekday] = schedule
	}
	return OperatingHours{days: copied}, nil
}

// Day returns the schedule for the given weekday.
// Weekdays that were never configured are closed.
func (h OperatingHours) Day(weekday time.Weekday) DaySchedule {
	return h.days[weekday]
}
