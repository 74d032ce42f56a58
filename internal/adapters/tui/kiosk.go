package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/xvierd/botui/internal/config"
	"github.com/xvierd/botui/internal/domain"
	"github.com/xvierd/botui/internal/ports"
)

// KioskConfig holds everything the kiosk needs to run.
type KioskConfig struct {
	Pomodoro time.Duration
	Alarm    domain.AlarmTarget

	// Splash plays the startup animation. Nil skips the splash.
	Splash   ports.SplashPlayer
	Notifier ports.Notifier
	Logger   zerolog.Logger
	Theme    *config.ThemeConfig

	// Width and Height are the canvas size in cells.
	Width  int
	Height int
}

func (c KioskConfig) withDefaults() KioskConfig {
	defaults := config.DefaultConfig()
	if c.Pomodoro <= 0 {
		c.Pomodoro = time.Duration(defaults.Pomodoro.Duration)
	}
	if c.Width <= 0 {
		c.Width = defaults.Display.Width
	}
	if c.Height <= 0 {
		c.Height = defaults.Display.Height
	}
	return c
}

// Kiosk runs the full-screen kiosk program.
type Kiosk struct {
	cfg KioskConfig
}

// NewKiosk creates a kiosk runner.
func NewKiosk(cfg KioskConfig) *Kiosk {
	return &Kiosk{cfg: cfg}
}

// Run shows the kiosk and blocks until the user quits or ctx is done.
func (k *Kiosk) Run(ctx context.Context) error {
	app := NewApp(ctx, k.cfg)

	program := tea.NewProgram(
		app,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	k.cfg.Logger.Info().Msg("kiosk started")
	_, err := program.Run()
	k.cfg.Logger.Info().Msg("kiosk stopped")

	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("failed to run kiosk: %w", err)
	}
	return nil
}

