package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/xvierd/botui/internal/domain"
)

// pomodoroScreen hosts a fixed-length focus countdown.
type pomodoroScreen struct {
	panel   countdownPanel
	seconds int
	keys    pomodoroKeyMap
	help    help.Model
	styles  styles
	width   int
}

func newPomodoroScreen(e env) pomodoroScreen {
	seconds := int(e.pomodoro.Seconds())
	return pomodoroScreen{
		panel:   newCountdownPanel(e, "Pomodoro", seconds, formatMinutes),
		seconds: seconds,
		keys:    newPomodoroKeyMap(),
		help:    help.New(),
		styles:  e.styles,
		width:   e.width,
	}
}

func (m pomodoroScreen) init() tea.Cmd { return nil }

func (m pomodoroScreen) owner() string { return m.panel.countdown.ID }

func (m pomodoroScreen) release() screen {
	m.panel.release()
	return m
}

func (m pomodoroScreen) update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m, m.panel.tick(msg)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Start):
			return m, m.panel.start()
		case key.Matches(msg, m.keys.Pause):
			m.panel.pause()
		case key.Matches(msg, m.keys.Reset):
			m.panel.reset(m.seconds)
		case key.Matches(msg, m.keys.Back):
			m.panel.release()
			return m, navigate(domain.ActionBack)
		}
	}
	return m, nil
}

func (m pomodoroScreen) view() string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render("🍅 Pomodoro"))
	b.WriteString("\n\n")
	b.WriteString(m.panel.view(m.styles, m.width))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
