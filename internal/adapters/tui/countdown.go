package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/xvierd/botui/internal/domain"
	"github.com/xvierd/botui/internal/ports"
)

// finishedLabel replaces the digits once a countdown reaches zero.
const finishedLabel = "Time's up! ✨"

// countdownPanel is the countdown, mood and progress bar shared by the
// pomodoro and alarm screens.
type countdownPanel struct {
	name      string
	countdown domain.Countdown
	mood      domain.Mood
	progress  progress.Model
	format    func(seconds int) string
	notifier  ports.Notifier
	logger    zerolog.Logger
}

func newCountdownPanel(e env, name string, seconds int, format func(int) string) countdownPanel {
	c := domain.NewCountdown(seconds)
	bar := progress.New(
		progress.WithGradient(e.styles.theme.GradientStart, e.styles.theme.GradientEnd),
		progress.WithoutPercentage(),
		progress.WithWidth(40),
	)
	return countdownPanel{
		name:      name,
		countdown: c,
		mood:      domain.MoodNeutral,
		progress:  bar,
		format:    format,
		notifier:  e.notifier,
		logger: e.componentLogger(strings.ToLower(name)).With().
			Str("countdown_id", c.ID).
			Logger(),
	}
}

// start arms the countdown and returns the first tick.
func (p *countdownPanel) start() tea.Cmd {
	if p.countdown.Running() || p.countdown.Finished() {
		return nil
	}
	if !p.countdown.Start() {
		// A zero-length countdown finishes on the spot.
		return p.finish()
	}
	p.mood = domain.MoodHappy
	p.logger.Info().Int("remaining", p.countdown.Remaining).Msg("countdown started")
	return scheduleTick(&p.countdown)
}

func (p *countdownPanel) pause() {
	if !p.countdown.Pause() {
		return
	}
	p.mood = domain.MoodSad
	p.logger.Info().Int("remaining", p.countdown.Remaining).Msg("countdown paused")
}

func (p *countdownPanel) reset(seconds int) {
	p.countdown.Reset(seconds)
	p.mood = domain.MoodNeutral
	p.logger.Debug().Int("remaining", seconds).Msg("countdown reset")
}

func (p *countdownPanel) release() {
	p.countdown.Cancel()
	p.logger.Debug().Int("remaining", p.countdown.Remaining).Msg("countdown released")
}

// tick applies msg and returns the follow-up command, if any.
func (p *countdownPanel) tick(msg tickMsg) tea.Cmd {
	switch p.countdown.Tick(msg.gen) {
	case domain.TickContinue:
		return scheduleTick(&p.countdown)
	case domain.TickFinished:
		return p.finish()
	default:
		p.logger.Debug().Uint64("gen", msg.gen).Msg("stale tick ignored")
		return nil
	}
}

func (p *countdownPanel) finish() tea.Cmd {
	p.mood = domain.MoodCelebrating
	p.logger.Info().Int("total", p.countdown.Initial).Msg("countdown finished")

	if p.notifier == nil || !p.notifier.IsEnabled() {
		return nil
	}
	n, name, owner := p.notifier, p.name, p.countdown.ID
	total := time.Duration(p.countdown.Initial) * time.Second
	return func() tea.Msg {
		return notifiedMsg{owner: owner, err: n.NotifyCountdownFinished(name, total)}
	}
}

// label is the plain text of the current display.
func (p countdownPanel) label() string {
	if p.countdown.Finished() {
		return finishedLabel
	}
	return p.format(p.countdown.Remaining)
}

func (p countdownPanel) view(st styles, width int) string {
	var b strings.Builder

	if p.countdown.Finished() {
		b.WriteString("\n")
		b.WriteString(st.finished.Render(finishedLabel))
		b.WriteString("\n\n\n")
	} else {
		b.WriteString(renderBigTime(p.label(), st.timerColor(), width))
	}
	b.WriteString("\n\n")
	b.WriteString(p.progress.ViewAs(p.countdown.Progress()))
	b.WriteString("\n\n")
	b.WriteString(st.face.Render(p.mood.Face()))

	return b.String()
}

// formatMinutes renders seconds as MM:SS.
func formatMinutes(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// formatHours renders seconds as HH:MM:SS.
func formatHours(seconds int) string {
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
}
