package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/xvierd/botui/internal/domain"
)

// tickInterval is the period of every countdown.
var tickInterval = time.Second

// tickMsg is a countdown tick. owner is the countdown ID and gen the
// generation it was armed with; anything else is stale.
type tickMsg struct {
	owner string
	gen   uint64
}

// scheduleTick arms the next tick of c one interval from now.
func scheduleTick(c *domain.Countdown) tea.Cmd {
	owner, gen := c.ID, c.Generation()
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return tickMsg{owner: owner, gen: gen}
	})
}

// navigateMsg asks the navigator to apply an action.
type navigateMsg struct {
	action domain.Action
}

func navigate(action domain.Action) tea.Cmd {
	return func() tea.Msg {
		return navigateMsg{action: action}
	}
}

// notifiedMsg reports the outcome of a completion notification.
type notifiedMsg struct {
	owner string
	err   error
}
