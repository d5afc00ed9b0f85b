package order

import "time"

// Delay thresholds for the two pre-pickup phases of the lifecycle.
const (
	// UnacceptedDelayThreshold is how long an order may sit in Placed
	// before it is considered delayed.
	UnacceptedDelayThreshold = 5 * time.Minute

	// PreparationDelayThreshold is how long an order may sit in Preparing
	// before it is considered delayed.
	PreparationDelayThreshold = 15 * time.Minute
)

// DelaySeverity grades how overdue an order currently is.
type DelaySeverity int

const (
	// DelayNone means the order is within its phase threshold,
	// or in a phase where delay is not tracked.
	DelayNone DelaySeverity = iota
	// DelayWarning means the phase threshold was exceeded.
	DelayWarning
	// DelayCritical means the phase threshold was exceeded twice over.
	DelayCritical
)

// String returns a human-readable severity name.
func (d DelaySeverity) String() string {
	switch d {
	case DelayWarning:
		return "warning"
	case DelayCritical:
		return "critical"
	default:
		return "none"
	}
}

// ClassifyDelay grades an order's delay at the given instant.
//
// Only the two waiting phases are tracked: Placed is measured from placedAt
// against UnacceptedDelayThreshold, Preparing from acceptedAt against
// PreparationDelayThreshold. Orders on their way, delivered, or cancelled
// are never delayed. Exceeding a threshold yields DelayWarning; exceeding
// it twice over yields DelayCritical.
func ClassifyDelay(status Status, placedAt time.Time, acceptedAt *time.Time, now time.Time) DelaySeverity {
	var elapsed, threshold time.Duration

	switch status {
	case StatusPlaced:
		elapsed = now.Sub(placedAt)
		threshold = UnacceptedDelayThreshold
	case StatusPreparing:
		if acceptedAt == nil {
			return DelayNone
		}
		elapsed = now.Sub(*acceptedAt)
		threshold = PreparationDelayThreshold
	default:
		return DelayNone
	}

	switch {
	case elapsed > 2*threshold:
		return DelayCritical
	case elapsed > threshold:
		return DelayWarning
	default:
		return DelayNone
	}
}
