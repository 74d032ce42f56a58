package domain

import "fmt"

// Screen is a state of the kiosk navigator. Exactly one screen is live.
type Screen string

const (
	ScreenSplash        Screen = "splash"
	ScreenMenuCollapsed Screen = "menu_collapsed"
	ScreenMenuExpanded  Screen = "menu_expanded"
	ScreenPomodoro      Screen = "pomodoro"
	ScreenAlarm         Screen = "alarm"
)

// Action is a user or system event that may move the navigator.
type Action string

const (
	ActionSplashDone   Action = "splash_done"
	ActionReveal       Action = "reveal"
	ActionOpenPomodoro Action = "open_pomodoro"
	ActionOpenAlarm    Action = "open_alarm"
	ActionOpenTodo     Action = "open_todo"
	ActionBack         Action = "back"
)

// Step describes a transition and the resources it touches.
type Step struct {
	From Screen
	To   Screen

	// ReleaseCountdown is set when the leaving screen owns a countdown that
	// must be cancelled before the next screen is built.
	ReleaseCountdown bool

	// Rebuild is set when the leaving screen's widgets are torn down and the
	// next screen is constructed from scratch.
	Rebuild bool
}

// OwnsCountdown returns true for screens that own a countdown.
func (s Screen) OwnsCountdown() bool {
	return s == ScreenPomodoro || s == ScreenAlarm
}

var transitions = map[Screen]map[Action]Screen{
	// The first menu after the splash opens expanded. Returning from a
	// screen opens it collapsed.
	ScreenSplash: {
		ActionSplashDone: ScreenMenuExpanded,
	},
	ScreenMenuCollapsed: {
		ActionReveal: ScreenMenuExpanded,
	},
	ScreenMenuExpanded: {
		ActionOpenPomodoro: ScreenPomodoro,
		ActionOpenAlarm:    ScreenAlarm,
		ActionOpenTodo:     ScreenMenuExpanded,
	},
	ScreenPomodoro: {
		ActionBack: ScreenMenuCollapsed,
	},
	ScreenAlarm: {
		ActionBack: ScreenMenuCollapsed,
	},
}

// Transition resolves the step taken when action happens on screen from.
func Transition(from Screen, action Action) (Step, error) {
	to, ok := transitions[from][action]
	if !ok {
		return Step{}, fmt.Errorf("no transition from %s on %s", from, action)
	}
	return Step{
		From:             from,
		To:               to,
		ReleaseCountdown: from.OwnsCountdown() && from != to,
		Rebuild:          from != to,
	}, nil
}
