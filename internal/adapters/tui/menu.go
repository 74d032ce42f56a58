package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/sahilm/fuzzy"
	"github.com/xvierd/botui/internal/domain"
)

// menuFace is the decorative face shown above the menu buttons.
const menuFace = "(｡◕‿◕｡)"

// todoStatus is shown after the To-Do button is pressed.
const todoStatus = "📝 To-Do list is coming soon"

type menuButton struct {
	icon   string
	name   string
	action domain.Action
}

func (b menuButton) String() string {
	return b.icon + " " + b.name
}

var menuButtons = []menuButton{
	{icon: "🍅", name: "Pomodoro", action: domain.ActionOpenPomodoro},
	{icon: "⏰", name: "Alarm", action: domain.ActionOpenAlarm},
	{icon: "📝", name: "To-Do List", action: domain.ActionOpenTodo},
}

// menuNames are the fuzzy filter targets.
var menuNames = func() []string {
	names := make([]string, len(menuButtons))
	for i, b := range menuButtons {
		names[i] = b.name
	}
	return names
}()

// menuScreen is the main menu. Collapsed it only shows the face.
type menuScreen struct {
	expanded   bool
	cursor     int
	filtering  bool
	filter     string
	status     string
	keys       menuKeyMap
	filterKeys filterKeyMap
	help       help.Model
	styles     styles
	logger     zerolog.Logger
}

func newMenuScreen(e env, expanded bool) menuScreen {
	return menuScreen{
		expanded:   expanded,
		keys:       newMenuKeyMap(),
		filterKeys: newFilterKeyMap(),
		help:       help.New(),
		styles:     e.styles,
		logger:     e.componentLogger("menu"),
	}
}

func (m menuScreen) init() tea.Cmd { return nil }

func (m menuScreen) owner() string { return "" }

func (m menuScreen) release() screen { return m }

// visible returns the indices of the buttons matching the filter, best first.
func (m menuScreen) visible() []int {
	if m.filter == "" {
		all := make([]int, len(menuButtons))
		for i := range all {
			all[i] = i
		}
		return all
	}
	matches := fuzzy.Find(m.filter, menuNames)
	idx := make([]int, len(matches))
	for i, match := range matches {
		idx[i] = match.Index
	}
	return idx
}

func (m menuScreen) update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if !m.expanded && msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			return m, navigate(domain.ActionReveal)
		}

	case tea.KeyMsg:
		if !m.expanded {
			switch {
			case key.Matches(msg, m.keys.Select):
				return m, navigate(domain.ActionReveal)
			case key.Matches(msg, m.keys.Quit):
				return m, tea.Quit
			}
			return m, nil
		}
		if m.filtering {
			return m.updateFilter(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.visible())-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			return m.activateCursor()
		case key.Matches(msg, m.keys.Pomodoro):
			return m.activate(menuButtons[0])
		case key.Matches(msg, m.keys.Alarm):
			return m.activate(menuButtons[1])
		case key.Matches(msg, m.keys.Todo):
			return m.activate(menuButtons[2])
		case key.Matches(msg, m.keys.Filter):
			m.filtering = true
			m.status = ""
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m menuScreen) updateFilter(msg tea.KeyMsg) (screen, tea.Cmd) {
	switch {
	case key.Matches(msg, m.filterKeys.Apply):
		return m.activateCursor()
	case key.Matches(msg, m.filterKeys.Clear):
		m.filtering = false
		m.filter = ""
	case key.Matches(msg, m.filterKeys.Erase):
		if r := []rune(m.filter); len(r) > 0 {
			m.filter = string(r[:len(r)-1])
		}
	case msg.Type == tea.KeyRunes:
		m.filter += string(msg.Runes)
	}
	m.cursor = 0
	return m, nil
}

func (m menuScreen) activateCursor() (screen, tea.Cmd) {
	visible := m.visible()
	if len(visible) == 0 {
		return m, nil
	}
	if m.cursor >= len(visible) {
		m.cursor = len(visible) - 1
	}
	return m.activate(menuButtons[visible[m.cursor]])
}

func (m menuScreen) activate(b menuButton) (screen, tea.Cmd) {
	if b.action == domain.ActionOpenTodo {
		m.logger.Info().Msg("To-Do clicked")
		m.status = todoStatus
	}
	m.filtering = false
	m.filter = ""
	m.cursor = 0
	return m, navigate(b.action)
}

func (m menuScreen) view() string {
	var b strings.Builder
	b.WriteString(m.styles.face.Render(menuFace))
	if !m.expanded {
		b.WriteString("\n\n")
		b.WriteString(m.styles.dim.Render("press enter or click to begin"))
		return b.String()
	}
	b.WriteString("\n\n")

	visible := m.visible()
	for i, idx := range visible {
		style := m.styles.button
		if i == m.cursor {
			style = m.styles.buttonActive
		}
		b.WriteString(style.Render(menuButtons[idx].String()))
		b.WriteString("\n\n")
	}
	if len(visible) == 0 {
		b.WriteString(m.styles.dim.Render("no match"))
		b.WriteString("\n\n")
	}

	if m.filtering {
		b.WriteString(m.styles.help.Render("/" + m.filter + "█"))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(m.styles.status.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if m.filtering {
		b.WriteString(m.help.View(m.filterKeys))
	} else {
		b.WriteString(m.help.View(m.keys))
	}
	return b.String()
}
