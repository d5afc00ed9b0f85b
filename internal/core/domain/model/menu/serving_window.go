package menu

import (
	"foodcourt/internal/core/domain/model/kernel"
)

// ServingWindow is a value object describing when during the day a menu item
// may be ordered, independent of the restaurant's own operating hours.
//
// The zero value is the all-day window. A custom window restricts the item to
// a single daily interval with inclusive boundaries; a window whose end is
// earlier than its start wraps around midnight (22:00-06:00 serves at 23:30
// and at 02:00, but not at 12:00).
type ServingWindow struct {
	custom bool
	start  kernel.TimeOfDay
	end    kernel.TimeOfDay
}

// AllDay returns the window of an item that is orderable whenever its
// restaurant is open.
func AllDay() ServingWindow {
	return ServingWindow{}
}

// CustomWindow returns a window restricting the item to [start, end],
// boundaries inclusive, wrapping around midnight when end < start.
func CustomWindow(start, end kernel.TimeOfDay) ServingWindow {
	return ServingWindow{custom: true, start: start, end: end}
}

// IsAllDay reports whether the item has no time restriction of its own.
func (w ServingWindow) IsAllDay() bool {
	return !w.custom
}

// Start returns the window's starting time. Meaningless for all-day windows.
func (w ServingWindow) Start() kernel.TimeOfDay {
	return w.start
}

// End returns the window's ending time. Meaningless for all-day windows.
func (w ServingWindow) End() kernel.TimeOfDay {
	return w.end
}

// Contains reports whether t falls inside the window, boundaries inclusive.
// All-day windows contain every time of day.
func (w ServingWindow) Contains(t kernel.TimeOfDay) bool {
	if !w.custom {
		return true
	}
	if w.end.Before(w.start) {
		return !t.Before(w.start) || !t.After(w.end)
	}
	return !t.Before(w.start) && !t.After(w.end)
}
