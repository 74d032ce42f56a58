package ports

import "time"

// Notifier announces finished countdowns outside the kiosk canvas.
// This is a driven port (implemented by adapters).
type Notifier interface {
	// NotifyCountdownFinished reports that the named countdown of the given
	// length reached zero.
	NotifyCountdownFinished(name string, total time.Duration) error

	// IsEnabled returns true if notifications should be sent at all.
	IsEnabled() bool
}
