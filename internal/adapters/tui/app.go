package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/xvierd/botui/internal/domain"
)

// App is the kiosk navigator. It owns the live screen and swaps it as the
// navigation state machine moves.
type App struct {
	ctx     context.Context
	env     env
	state   domain.Screen
	current screen
	logger  zerolog.Logger

	// terminal size; the canvas is env.width x env.height centered in it
	width  int
	height int
}

// NewApp creates the navigator. Without a splash player it starts on the
// expanded menu.
func NewApp(ctx context.Context, cfg KioskConfig) App {
	cfg = cfg.withDefaults()
	e := env{
		styles:   newStyles(resolveTheme(cfg.Theme)),
		logger:   cfg.Logger,
		notifier: cfg.Notifier,
		splash:   cfg.Splash,
		pomodoro: cfg.Pomodoro,
		alarm:    cfg.Alarm,
		width:    cfg.Width,
		height:   cfg.Height,
	}
	a := App{
		ctx:    ctx,
		env:    e,
		state:  domain.ScreenSplash,
		logger: e.componentLogger("navigator"),
		width:  cfg.Width,
		height: cfg.Height,
	}
	a.current = a.build(domain.ScreenSplash)
	if cfg.Splash == nil {
		a, _ = a.apply(domain.ActionSplashDone)
	}
	return a
}

// Screen returns the current navigation state.
func (a App) Screen() domain.Screen {
	return a.state
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return a.current.init()
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			a.current = a.current.release()
			a.logger.Info().Str("screen", string(a.state)).Msg("quit")
			return a, tea.Quit
		}

	case navigateMsg:
		return a.apply(msg.action)

	case tickMsg:
		if msg.owner != a.current.owner() {
			a.logger.Debug().Str("owner", msg.owner).Msg("tick for released countdown ignored")
			return a, nil
		}

	case notifiedMsg:
		if msg.err != nil {
			a.logger.Warn().Err(msg.err).Str("countdown_id", msg.owner).Msg("notification failed")
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.current, cmd = a.current.update(msg)
	return a, cmd
}

// apply moves the state machine and rebuilds the live screen when needed.
func (a App) apply(action domain.Action) (App, tea.Cmd) {
	step, err := domain.Transition(a.state, action)
	if err != nil {
		a.logger.Debug().Err(err).Msg("navigation ignored")
		return a, nil
	}
	if step.ReleaseCountdown {
		a.current = a.current.release()
	}
	a.state = step.To
	if !step.Rebuild {
		a.logger.Debug().Str("screen", string(step.To)).Str("action", string(action)).Msg("screen kept")
		return a, nil
	}

	a.current = a.build(step.To)
	a.logger.Info().
		Str("from", string(step.From)).
		Str("to", string(step.To)).
		Msg("screen changed")
	return a, a.current.init()
}

func (a App) build(s domain.Screen) screen {
	switch s {
	case domain.ScreenMenuCollapsed:
		return newMenuScreen(a.env, false)
	case domain.ScreenMenuExpanded:
		return newMenuScreen(a.env, true)
	case domain.ScreenPomodoro:
		return newPomodoroScreen(a.env)
	case domain.ScreenAlarm:
		return newAlarmScreen(a.env)
	default:
		return newSplashScreen(a.ctx, a.env)
	}
}

// View implements tea.Model.
func (a App) View() string {
	bg := lipgloss.WithWhitespaceBackground(lipgloss.Color(a.env.styles.theme.ColorBackground))
	canvas := lipgloss.Place(a.env.width, a.env.height,
		lipgloss.Center, lipgloss.Center,
		a.current.view(),
		bg,
	)
	if a.width <= a.env.width && a.height <= a.env.height {
		return canvas
	}
	return lipgloss.Place(max(a.width, a.env.width), max(a.height, a.env.height),
		lipgloss.Center, lipgloss.Center,
		canvas,
	)
}
