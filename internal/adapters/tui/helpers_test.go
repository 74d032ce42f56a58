package tui

import (
	"bytes"
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/xvierd/botui/internal/config"
	"github.com/xvierd/botui/internal/domain"
	"github.com/xvierd/botui/internal/ports"
)

func init() {
	// Tick commands are run by some helpers; keep them from sleeping.
	tickInterval = time.Millisecond
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func leftClick() tea.MouseMsg {
	return tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

// testEnv returns an env with the default kiosk constants and a log buffer.
func testEnv() (env, *bytes.Buffer) {
	var buf bytes.Buffer
	return env{
		styles:   newStyles(config.DefaultThemeConfig()),
		logger:   zerolog.New(&buf),
		pomodoro: 25 * time.Minute,
		alarm:    domain.DefaultAlarmTarget(),
		width:    80,
		height:   24,
	}, &buf
}

// tickFor returns the tick a panel is currently waiting for.
func tickFor(p countdownPanel) tickMsg {
	return tickMsg{owner: p.countdown.ID, gen: p.countdown.Generation()}
}

// navAction runs cmd and returns the navigation action it requests.
func navAction(cmd tea.Cmd) (domain.Action, bool) {
	if cmd == nil {
		return "", false
	}
	nav, ok := cmd().(navigateMsg)
	return nav.action, ok
}

type fakeNotifier struct {
	enabled bool
	err     error
	names   []string
	totals  []time.Duration
}

func (f *fakeNotifier) NotifyCountdownFinished(name string, total time.Duration) error {
	f.names = append(f.names, name)
	f.totals = append(f.totals, total)
	return f.err
}

func (f *fakeNotifier) IsEnabled() bool { return f.enabled }

type fakePlayer struct {
	anim  *ports.Animation
	err   error
	loads int
}

func (f *fakePlayer) Load(ctx context.Context) (*ports.Animation, error) {
	f.loads++
	return f.anim, f.err
}
