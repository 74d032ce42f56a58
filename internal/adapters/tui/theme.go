package tui

import (
	"reflect"

	"github.com/charmbracelet/lipgloss"
	"github.com/xvierd/botui/internal/config"
)

// resolveTheme fills any empty string fields in the given ThemeConfig with defaults.
// If theme is nil, returns the full default theme.
func resolveTheme(theme *config.ThemeConfig) config.ThemeConfig {
	defaults := config.DefaultThemeConfig()
	if theme == nil {
		return defaults
	}
	resolved := *theme
	rv := reflect.ValueOf(&resolved).Elem()
	dv := reflect.ValueOf(defaults)
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if f.Kind() == reflect.String && f.String() == "" {
			f.SetString(dv.Field(i).String())
		}
	}
	return resolved
}

// styles holds the lipgloss styles derived from a theme.
type styles struct {
	theme config.ThemeConfig

	canvas       lipgloss.Style
	title        lipgloss.Style
	face         lipgloss.Style
	button       lipgloss.Style
	buttonActive lipgloss.Style
	help         lipgloss.Style
	status       lipgloss.Style
	dim          lipgloss.Style
	finished     lipgloss.Style
}

func newStyles(theme config.ThemeConfig) styles {
	button := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.ColorButtonText)).
		Background(lipgloss.Color(theme.ColorButton)).
		Padding(0, 2).
		Width(22).
		Align(lipgloss.Center)

	return styles{
		theme:        theme,
		canvas:       lipgloss.NewStyle().Background(lipgloss.Color(theme.ColorBackground)),
		title:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.ColorTimer)),
		face:         lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorFace)),
		button:       button,
		buttonActive: button.Bold(true).Background(lipgloss.Color(theme.ColorButtonActive)),
		help:         lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorHelp)),
		status:       lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color(theme.ColorFace)),
		dim:          lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color(theme.ColorHelp)),
		finished:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.ColorTimer)),
	}
}

// timerColor returns the color used for the block digits.
func (s styles) timerColor() lipgloss.Color {
	return lipgloss.Color(s.theme.ColorTimer)
}
