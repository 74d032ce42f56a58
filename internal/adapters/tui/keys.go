package tui

import "github.com/charmbracelet/bubbles/key"

// menuKeyMap is the key map of the expanded menu.
type menuKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Select   key.Binding
	Pomodoro key.Binding
	Alarm    key.Binding
	Todo     key.Binding
	Filter   key.Binding
	Quit     key.Binding
}

func newMenuKeyMap() menuKeyMap {
	return menuKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open")),
		Pomodoro: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "pomodoro")),
		Alarm:    key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "alarm")),
		Todo:     key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "to-do")),
		Filter:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k menuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Filter, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k menuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Pomodoro, k.Alarm, k.Todo},
		{k.Filter, k.Quit},
	}
}

// filterKeyMap is active while the menu filter is being typed.
type filterKeyMap struct {
	Apply key.Binding
	Erase key.Binding
	Clear key.Binding
}

func newFilterKeyMap() filterKeyMap {
	return filterKeyMap{
		Apply: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open match")),
		Erase: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "erase")),
		Clear: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
	}
}

// ShortHelp implements help.KeyMap.
func (k filterKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Apply, k.Erase, k.Clear}
}

// FullHelp implements help.KeyMap.
func (k filterKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// pomodoroKeyMap is the key map of the pomodoro screen.
type pomodoroKeyMap struct {
	Start key.Binding
	Pause key.Binding
	Reset key.Binding
	Back  key.Binding
}

func newPomodoroKeyMap() pomodoroKeyMap {
	return pomodoroKeyMap{
		Start: key.NewBinding(key.WithKeys("s", " "), key.WithHelp("s", "start")),
		Pause: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Reset: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Back:  key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
	}
}

// ShortHelp implements help.KeyMap.
func (k pomodoroKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Pause, k.Reset, k.Back}
}

// FullHelp implements help.KeyMap.
func (k pomodoroKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// alarmKeyMap is the key map of the alarm screen.
type alarmKeyMap struct {
	Focus    key.Binding
	Up       key.Binding
	Down     key.Binding
	Dropdown key.Binding
	Start    key.Binding
	Back     key.Binding
}

func newAlarmKeyMap() alarmKeyMap {
	return alarmKeyMap{
		Focus:    key.NewBinding(key.WithKeys("tab", "shift+tab", "left", "right"), key.WithHelp("tab", "hour/minute")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "next")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "previous")),
		Dropdown: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "list")),
		Start:    key.NewBinding(key.WithKeys("s", " "), key.WithHelp("s", "start")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
	}
}

// ShortHelp implements help.KeyMap.
func (k alarmKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Up, k.Down, k.Dropdown, k.Start, k.Back}
}

// FullHelp implements help.KeyMap.
func (k alarmKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
