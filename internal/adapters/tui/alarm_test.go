package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xvierd/botui/internal/domain"
)

func newTestAlarm(target domain.AlarmTarget) alarmScreen {
	e, _ := testEnv()
	e.alarm = target
	return newAlarmScreen(e)
}

func sendAlarm(m alarmScreen, msgs ...interface{}) alarmScreen {
	for _, msg := range msgs {
		next, _ := m.update(msg)
		m = next.(alarmScreen)
	}
	return m
}

func TestAlarm_InitialLabel(t *testing.T) {
	e, _ := testEnv()
	m := newAlarmScreen(e)

	assert.Equal(t, "00:30:00", m.panel.label())
	assert.Equal(t, domain.AlarmTarget{Hour: 0, Minute: 30}, m.target())
	assert.Equal(t, domain.MoodNeutral, m.panel.mood)

	view := m.view()
	assert.Contains(t, view, "Alarm")
	assert.Contains(t, view, "00 ▾")
	assert.Contains(t, view, "30 ▾")
}

func TestAlarm_PickersWrapAround(t *testing.T) {
	m := newTestAlarm(domain.DefaultAlarmTarget())

	m = sendAlarm(m, keyPress("down"))
	assert.Equal(t, 23, m.target().Hour, "hour wraps below zero")
	assert.Equal(t, "23:30:00", m.panel.label())

	m = sendAlarm(m, keyPress("up"))
	assert.Equal(t, 0, m.target().Hour)

	m = sendAlarm(m, keyPress("tab"))
	assert.Equal(t, focusMinute, m.focus)
	for i := 0; i < 30; i++ {
		m = sendAlarm(m, keyPress("k"))
	}
	assert.Equal(t, 0, m.target().Minute, "minute wraps past 59")
	assert.Equal(t, "00:00:00", m.panel.label())

	m = sendAlarm(m, keyPress("j"))
	assert.Equal(t, 59, m.target().Minute)

	m = sendAlarm(m, keyPress("tab"))
	assert.Equal(t, focusHour, m.focus)
}

func TestAlarm_DropdownOpens(t *testing.T) {
	m := newTestAlarm(domain.AlarmTarget{Hour: 5, Minute: 30})

	m = sendAlarm(m, keyPress("enter"))
	require.True(t, m.hour.open)
	view := m.view()
	assert.Contains(t, view, "▸ 05")
	assert.Contains(t, view, "04")
	assert.Contains(t, view, "06")

	m = sendAlarm(m, keyPress("tab"))
	assert.False(t, m.hour.open, "moving focus closes the list")

	m = sendAlarm(m, keyPress("enter"), keyPress("enter"))
	assert.False(t, m.minute.open)
}

func TestAlarm_OneMinuteReachesTerminalAfterSixtyTicks(t *testing.T) {
	m := newTestAlarm(domain.AlarmTarget{Hour: 0, Minute: 1})

	next, cmd := m.update(keyPress("s"))
	m = next.(alarmScreen)
	require.NotNil(t, cmd)
	assert.Equal(t, "00:01:00", m.panel.label())
	assert.Equal(t, domain.MoodHappy, m.panel.mood)

	for i := 1; i < 60; i++ {
		next, cmd = m.update(tickFor(m.panel))
		m = next.(alarmScreen)
		require.NotNil(t, cmd, "tick %d should reschedule", i)
		assert.False(t, m.panel.countdown.Finished())
	}
	assert.Equal(t, "00:00:01", m.panel.label())

	next, cmd = m.update(tickFor(m.panel))
	m = next.(alarmScreen)
	assert.Nil(t, cmd)
	assert.True(t, m.panel.countdown.Finished())
	assert.Equal(t, domain.MoodCelebrating, m.panel.mood)
	assert.Contains(t, m.view(), "Time's up!")
}

func TestAlarm_StartOnlyOnce(t *testing.T) {
	m := newTestAlarm(domain.AlarmTarget{Hour: 0, Minute: 2})

	next, _ := m.update(keyPress("s"))
	m = next.(alarmScreen)
	gen := m.panel.countdown.Generation()
	m = sendAlarm(m, tickFor(m.panel))
	require.Equal(t, "00:01:59", m.panel.label())

	next, cmd := m.update(keyPress("space"))
	m = next.(alarmScreen)
	assert.Nil(t, cmd, "later activations are no-ops")
	assert.Equal(t, gen, m.panel.countdown.Generation())
	assert.Equal(t, "00:01:59", m.panel.label())
}

func TestAlarm_PickersInertAfterStart(t *testing.T) {
	m := newTestAlarm(domain.AlarmTarget{Hour: 1, Minute: 0})
	m = sendAlarm(m, keyPress("enter"), keyPress("s"))
	assert.False(t, m.hour.open, "start closes an open list")

	m = sendAlarm(m, keyPress("up"), keyPress("tab"), keyPress("enter"))
	assert.Equal(t, domain.AlarmTarget{Hour: 1, Minute: 0}, m.target())
	assert.Equal(t, focusHour, m.focus)
	assert.False(t, m.hour.open)
	assert.Equal(t, "01:00:00", m.panel.label())
}

func TestAlarm_ZeroFinishesAtStart(t *testing.T) {
	e, _ := testEnv()
	n := &fakeNotifier{enabled: true}
	e.notifier = n
	e.alarm = domain.AlarmTarget{Hour: 0, Minute: 0}
	m := newAlarmScreen(e)

	next, cmd := m.update(keyPress("s"))
	m = next.(alarmScreen)
	assert.True(t, m.panel.countdown.Finished())
	assert.False(t, m.panel.countdown.Running())
	assert.Equal(t, finishedLabel, m.panel.label())
	assert.Equal(t, domain.MoodCelebrating, m.panel.mood)

	require.NotNil(t, cmd, "finishing still notifies")
	_, ok := cmd().(notifiedMsg)
	assert.True(t, ok)
	assert.Equal(t, []string{"Alarm"}, n.names)
}

func TestAlarm_BackReleasesCountdown(t *testing.T) {
	m := newTestAlarm(domain.AlarmTarget{Hour: 0, Minute: 1})
	next, _ := m.update(keyPress("s"))
	m = next.(alarmScreen)
	pending := tickFor(m.panel)

	next, cmd := m.update(keyPress("esc"))
	m = next.(alarmScreen)
	action, ok := navAction(cmd)
	require.True(t, ok)
	assert.Equal(t, domain.ActionBack, action)

	m = sendAlarm(m, pending)
	assert.Equal(t, "00:01:00", m.panel.label(), "ticks after release are ignored")
}
