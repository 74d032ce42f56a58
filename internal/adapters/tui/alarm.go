package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xvierd/botui/internal/domain"
)

type alarmFocus int

const (
	focusHour alarmFocus = iota
	focusMinute
)

// alarmScreen counts down a duration chosen with hour and minute pickers.
// It starts once and has no pause or reset.
type alarmScreen struct {
	panel   countdownPanel
	hour    dropdown
	minute  dropdown
	focus   alarmFocus
	started bool
	keys    alarmKeyMap
	help    help.Model
	styles  styles
	width   int
}

func newAlarmScreen(e env) alarmScreen {
	target := e.alarm
	return alarmScreen{
		panel:  newCountdownPanel(e, "Alarm", target.Seconds(), formatHours),
		hour:   newDropdown("hour", domain.MaxAlarmHour, target.Hour),
		minute: newDropdown("minute", domain.MaxAlarmMinute, target.Minute),
		keys:   newAlarmKeyMap(),
		help:   help.New(),
		styles: e.styles,
		width:  e.width,
	}
}

func (m alarmScreen) init() tea.Cmd { return nil }

func (m alarmScreen) owner() string { return m.panel.countdown.ID }

func (m alarmScreen) release() screen {
	m.panel.release()
	return m
}

// target is the duration currently selected in the pickers.
func (m alarmScreen) target() domain.AlarmTarget {
	return domain.AlarmTarget{Hour: m.hour.value(), Minute: m.minute.value()}
}

func (m *alarmScreen) focused() *dropdown {
	if m.focus == focusMinute {
		return &m.minute
	}
	return &m.hour
}

func (m alarmScreen) update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m, m.panel.tick(msg)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Back) {
			m.panel.release()
			return m, navigate(domain.ActionBack)
		}
		if key.Matches(msg, m.keys.Start) {
			return m.start()
		}
		if m.started {
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Focus):
			m.focused().open = false
			if m.focus == focusHour {
				m.focus = focusMinute
			} else {
				m.focus = focusHour
			}
		case key.Matches(msg, m.keys.Up):
			m.focused().next()
			m.panel.reset(m.target().Seconds())
		case key.Matches(msg, m.keys.Down):
			m.focused().prev()
			m.panel.reset(m.target().Seconds())
		case key.Matches(msg, m.keys.Dropdown):
			m.focused().toggle()
		}
	}
	return m, nil
}

// start captures the selection and starts counting. Only the first call
// has an effect.
func (m alarmScreen) start() (screen, tea.Cmd) {
	if m.started {
		return m, nil
	}
	m.started = true
	m.hour.open = false
	m.minute.open = false
	m.panel.reset(m.target().Seconds())
	return m, m.panel.start()
}

func (m alarmScreen) view() string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render("⏰ Alarm"))
	b.WriteString("\n\n")

	pickers := lipgloss.JoinHorizontal(lipgloss.Top,
		m.hour.view(m.styles, m.focus == focusHour, m.started),
		"   ",
		m.minute.view(m.styles, m.focus == focusMinute, m.started),
	)
	b.WriteString(pickers)
	b.WriteString("\n\n")
	b.WriteString(m.panel.view(m.styles, m.width))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
