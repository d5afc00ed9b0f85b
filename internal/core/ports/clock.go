package ports

import "time"

// Clock supplies the current time to components that gate behavior on it.
// Injecting it keeps availability checks and delay classification testable.
type Clock interface {
	Now() time.Time
}
