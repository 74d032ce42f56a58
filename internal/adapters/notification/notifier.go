// Package notification provides desktop notification utilities.
package notification

import (
	"fmt"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/xvierd/botui/internal/config"
	"github.com/xvierd/botui/internal/ports"
)

// Notifier handles desktop notifications.
type Notifier struct {
	cfg    *config.NotificationConfig
	notify func(title, message string, icon any) error
	beep   func(freq float64, duration int) error
}

// Ensure Notifier implements ports.Notifier.
var _ ports.Notifier = (*Notifier)(nil)

// New creates a new notifier with the given configuration.
func New(cfg *config.NotificationConfig) *Notifier {
	return &Notifier{
		cfg:    cfg,
		notify: beeep.Notify,
		beep:   beeep.Beep,
	}
}

// NotifyCountdownFinished shows a notification and, when sound is on, beeps.
func (n *Notifier) NotifyCountdownFinished(name string, total time.Duration) error {
	if !n.IsEnabled() {
		return nil
	}
	title := fmt.Sprintf("⏰ %s finished", name)
	message := fmt.Sprintf("Time's up! %s is over.", formatTotal(total))
	if err := n.notify(title, message, ""); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	if n.cfg.Sound {
		if err := n.beep(beeep.DefaultFreq, beeep.DefaultDuration); err != nil {
			return fmt.Errorf("failed to beep: %w", err)
		}
	}
	return nil
}

// IsEnabled returns true if notifications are enabled.
func (n *Notifier) IsEnabled() bool {
	return n.cfg != nil && n.cfg.Enabled
}

func formatTotal(d time.Duration) string {
	d = d.Round(time.Second)
	if d < time.Minute {
		return fmt.Sprintf("%ds countdown", int(d.Seconds()))
	}
	if d%time.Hour == 0 {
		return fmt.Sprintf("%dh countdown", int(d.Hours()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm countdown", int(d.Minutes()))
	}
	return fmt.Sprintf("%dh%02dm countdown", int(d.Hours()), int(d.Minutes())%60)
}
