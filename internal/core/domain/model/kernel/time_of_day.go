package kernel

import (
	"fmt"
	"time"

	"foodcourt/internal/pkg/errs"
)

const minutesPerDay = 24 * 60

// TimeOfDay is a value object that represents a wall-clock time within a day
// with minute precision, independent of any date or time zone. It is the unit
// in which restaurant operating hours and menu item serving windows are
// expressed.
//
// The zero value is midnight ("00:00") and is valid. TimeOfDay is immutable
// and safe for concurrent use.
//
// Example usage:
//
//	open, _ := kernel.ParseTimeOfDay("09:30")
//	now := kernel.TimeOfDayOf(time.Now())
//	if now.Before(open) {
//	    // store has not opened yet
//	}
type TimeOfDay struct {
	minutes int
}

// NewTimeOfDay creates a TimeOfDay from an hour and minute.
// Hour must be in [0, 23] and minute in [0, 59].
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("hour", hour, 0, 23)
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("minute", minute, 0, 59)
	}
	return TimeOfDay{minutes: hour*60 + minute}, nil
}

// ParseTimeOfDay parses a "HH:mm" string such as "22:00" into a TimeOfDay.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
		return TimeOfDay{}, errs.NewValueIsInvalidErrorWithCause("time of day", fmt.Errorf("%q is not HH:mm", s))
	}
	return NewTimeOfDay(hour, minute)
}

// TimeOfDayOf extracts the wall-clock time of day from an instant,
// in the instant's location.
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay{minutes: t.Hour()*60 + t.Minute()}
}

// Hour returns the hour component in [0, 23].
func (t TimeOfDay) Hour() int {
	return t.minutes / 60
}

// Minute returns the minute component in [0, 59].
func (t TimeOfDay) Minute() int {
	return t.minutes % 60
}

// MinuteOfDay returns the number of minutes since midnight in [0, 1439].
func (t TimeOfDay) MinuteOfDay() int {
	return t.minutes
}

// Before reports whether t is strictly earlier in the day than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.minutes < other.minutes
}

// After reports whether t is strictly later in the day than other.
func (t TimeOfDay) After(other TimeOfDay) bool {
	return t.minutes > other.minutes
}

// IsEqual compares two times of day for equality.
func (t TimeOfDay) IsEqual(other TimeOfDay) bool {
	return t.minutes == other.minutes
}

// String formats the time of day as "HH:mm".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}
