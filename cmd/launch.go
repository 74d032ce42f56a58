package cmd

import (
	"errors"
	"os"
	"time"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
	"github.com/xvierd/botui/internal/adapters/tui"
)

// errNotTerminal is returned when stdout cannot host the kiosk.
var errNotTerminal = errors.New("botui needs an interactive terminal")

// runKiosk starts the full-screen kiosk.
func runKiosk(cmd *cobra.Command, args []string) error {
	fd := os.Stdout.Fd()
	if !term.IsTerminal(fd) {
		return errNotTerminal
	}

	cfg := app.config
	if w, h, err := term.GetSize(fd); err == nil && (w < cfg.Display.Width || h < cfg.Display.Height) {
		app.logger.Warn().
			Int("cols", w).
			Int("rows", h).
			Msg("terminal is smaller than the kiosk canvas")
	}

	kiosk := tui.NewKiosk(tui.KioskConfig{
		Pomodoro: time.Duration(cfg.Pomodoro.Duration),
		Alarm:    cfg.AlarmTarget(),
		Splash:   app.splash,
		Notifier: app.notifier,
		Logger:   app.logger,
		Theme:    &cfg.Theme,
		Width:    cfg.Display.Width,
		Height:   cfg.Display.Height,
	})
	return kiosk.Run(setupSignalHandler())
}
