package tui

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/xvierd/botui/internal/domain"
	"github.com/xvierd/botui/internal/ports"
)

// splashLoadTimeout bounds how long the kiosk waits for the animation.
const splashLoadTimeout = 5 * time.Second

// splashLoadedMsg carries the result of loading the animation.
type splashLoadedMsg struct {
	owner string
	anim  *ports.Animation
	err   error
}

// splashFrameMsg asks the splash to show frame next.
type splashFrameMsg struct {
	owner string
	next  int
}

// splashScreen plays the startup animation once, then hands off to the menu.
type splashScreen struct {
	ctx      context.Context
	id       string
	player   ports.SplashPlayer
	frames   []string
	frame    int
	interval time.Duration
	done     bool
	styles   styles
	logger   zerolog.Logger
}

func newSplashScreen(ctx context.Context, e env) splashScreen {
	return splashScreen{
		ctx:    ctx,
		id:     uuid.NewString(),
		player: e.splash,
		styles: e.styles,
		logger: e.componentLogger("splash"),
	}
}

func (m splashScreen) init() tea.Cmd {
	if m.player == nil {
		return navigate(domain.ActionSplashDone)
	}
	ctx, player, owner := m.ctx, m.player, m.id
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, splashLoadTimeout)
		defer cancel()
		anim, err := player.Load(ctx)
		return splashLoadedMsg{owner: owner, anim: anim, err: err}
	}
}

func (m splashScreen) owner() string { return "" }

func (m splashScreen) release() screen { return m }

func (m splashScreen) update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case splashLoadedMsg:
		if msg.owner != m.id || m.done {
			return m, nil
		}
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Msg("splash animation unavailable, skipping")
			return m.finish()
		}
		if msg.anim == nil || len(msg.anim.Frames) == 0 {
			m.logger.Warn().Msg("splash animation is empty, skipping")
			return m.finish()
		}
		m.frames = msg.anim.Frames
		m.interval = msg.anim.Interval
		if m.interval <= 0 {
			m.interval = 250 * time.Millisecond
		}
		m.frame = 0
		m.logger.Debug().Int("frames", len(m.frames)).Msg("splash started")
		return m, m.scheduleFrame(1)

	case splashFrameMsg:
		if msg.owner != m.id || m.done {
			return m, nil
		}
		if msg.next >= len(m.frames) {
			return m.finish()
		}
		m.frame = msg.next
		return m, m.scheduleFrame(msg.next + 1)

	case tea.KeyMsg, tea.MouseMsg:
		if mm, ok := msg.(tea.MouseMsg); ok && mm.Action != tea.MouseActionPress {
			return m, nil
		}
		m.logger.Debug().Msg("splash skipped")
		return m.finish()
	}
	return m, nil
}

func (m splashScreen) scheduleFrame(next int) tea.Cmd {
	owner := m.id
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return splashFrameMsg{owner: owner, next: next}
	})
}

// finish hands off to the menu. Only the first call emits the transition.
func (m splashScreen) finish() (screen, tea.Cmd) {
	if m.done {
		return m, nil
	}
	m.done = true
	return m, navigate(domain.ActionSplashDone)
}

func (m splashScreen) view() string {
	if len(m.frames) == 0 || m.frame >= len(m.frames) {
		return m.styles.face.Render(strings.Repeat(" ", lipgloss.Width(menuFace)))
	}
	return m.styles.face.Render(m.frames[m.frame])
}
