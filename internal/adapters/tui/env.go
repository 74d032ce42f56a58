package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/xvierd/botui/internal/domain"
	"github.com/xvierd/botui/internal/ports"
)

// env carries what every screen needs to build itself.
type env struct {
	styles   styles
	logger   zerolog.Logger
	notifier ports.Notifier
	splash   ports.SplashPlayer
	pomodoro time.Duration
	alarm    domain.AlarmTarget
	width    int
	height   int
}

// componentLogger returns the logger of one screen.
func (e env) componentLogger(component string) zerolog.Logger {
	return e.logger.With().Str("component", component).Logger()
}

// screen is one live page of the kiosk. Exactly one screen is live.
type screen interface {
	init() tea.Cmd
	update(msg tea.Msg) (screen, tea.Cmd)
	view() string

	// owner returns the ID of the countdown the screen owns, if any.
	owner() string

	// release cancels the screen's countdown before it is discarded.
	release() screen
}
