package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		from    Screen
		action  Action
		to      Screen
		release bool
		rebuild bool
	}{
		{ScreenSplash, ActionSplashDone, ScreenMenuExpanded, false, true},
		{ScreenMenuCollapsed, ActionReveal, ScreenMenuExpanded, false, true},
		{ScreenMenuExpanded, ActionOpenPomodoro, ScreenPomodoro, false, true},
		{ScreenMenuExpanded, ActionOpenAlarm, ScreenAlarm, false, true},
		{ScreenMenuExpanded, ActionOpenTodo, ScreenMenuExpanded, false, false},
		{ScreenPomodoro, ActionBack, ScreenMenuCollapsed, true, true},
		{ScreenAlarm, ActionBack, ScreenMenuCollapsed, true, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"/"+string(tt.action), func(t *testing.T) {
			step, err := Transition(tt.from, tt.action)
			require.NoError(t, err)
			assert.Equal(t, tt.from, step.From)
			assert.Equal(t, tt.to, step.To)
			assert.Equal(t, tt.release, step.ReleaseCountdown)
			assert.Equal(t, tt.rebuild, step.Rebuild)
		})
	}
}

func TestTransition_Invalid(t *testing.T) {
	invalid := []struct {
		from   Screen
		action Action
	}{
		{ScreenSplash, ActionBack},
		{ScreenMenuCollapsed, ActionOpenPomodoro},
		{ScreenMenuExpanded, ActionSplashDone},
		{ScreenPomodoro, ActionOpenAlarm},
		{ScreenAlarm, ActionSplashDone},
	}
	for _, tt := range invalid {
		_, err := Transition(tt.from, tt.action)
		assert.Error(t, err, "%s on %s", tt.action, tt.from)
	}
}

func TestMoodFaces(t *testing.T) {
	faces := map[string]bool{}
	for _, m := range []Mood{MoodNeutral, MoodHappy, MoodSad, MoodCelebrating} {
		assert.NotEmpty(t, m.Face())
		faces[m.Face()] = true
	}
	assert.Len(t, faces, 4, "every mood needs a distinct face")
	assert.Equal(t, "(｡◕‿◕｡)", MoodNeutral.Face())
	assert.Equal(t, "celebrating", MoodCelebrating.String())
}
