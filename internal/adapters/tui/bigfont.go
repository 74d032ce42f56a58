package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// digitMap maps each clock character to its 5-row block glyph.
// Digits are 4 cells wide (1 is 3), the colon is 1.
var digitMap = map[rune][5]string{
	'0': {
		"████",
		"█  █",
		"█  █",
		"█  █",
		"████",
	},
	'1': {
		" █ ",
		"██ ",
		" █ ",
		" █ ",
		"███",
	},
	'2': {
		"████",
		"   █",
		"████",
		"█   ",
		"████",
	},
	'3': {
		"████",
		"   █",
		"████",
		"   █",
		"████",
	},
	'4': {
		"█  █",
		"█  █",
		"████",
		"   █",
		"   █",
	},
	'5': {
		"████",
		"█   ",
		"████",
		"   █",
		"████",
	},
	'6': {
		"████",
		"█   ",
		"████",
		"█  █",
		"████",
	},
	'7': {
		"████",
		"   █",
		"  █ ",
		" █  ",
		" █  ",
	},
	'8': {
		"████",
		"█  █",
		"████",
		"█  █",
		"████",
	},
	'9': {
		"████",
		"█  █",
		"████",
		"   █",
		"████",
	},
	':': {
		" ",
		"█",
		" ",
		"█",
		" ",
	},
}

// glyphGap separates two glyphs on every row.
const glyphGap = " "

// bigTimeWidth returns the number of cells renderBigTime needs for timeStr.
func bigTimeWidth(timeStr string) int {
	w := 0
	for _, ch := range timeStr {
		glyph, ok := digitMap[ch]
		if !ok {
			continue
		}
		if w > 0 {
			w += len(glyphGap)
		}
		w += lipgloss.Width(glyph[0])
	}
	return w
}

// renderBigTime draws a clock string like "25:00" or "00:30:00" with the
// block font. It falls back to a single bold line when the digits would not
// fit in width cells.
func renderBigTime(timeStr string, color lipgloss.Color, width int) string {
	style := lipgloss.NewStyle().Bold(true).Foreground(color)
	if bigTimeWidth(timeStr) > width {
		return style.Render(timeStr)
	}

	var rows [5]strings.Builder
	first := true
	for _, ch := range timeStr {
		glyph, ok := digitMap[ch]
		if !ok {
			continue
		}
		for i := range rows {
			if !first {
				rows[i].WriteString(glyphGap)
			}
			rows[i].WriteString(glyph[i])
		}
		first = false
	}

	styled := make([]string, len(rows))
	for i := range rows {
		styled[i] = style.Render(rows[i].String())
	}
	return strings.Join(styled, "\n")
}
