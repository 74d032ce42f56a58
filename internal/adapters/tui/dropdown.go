package tui

import (
	"fmt"
	"strings"
)

// dropdownWindow is the number of options listed while a dropdown is open.
const dropdownWindow = 3

// dropdown is a two-digit value picker that can be expanded into a list.
type dropdown struct {
	label    string
	options  []string
	selected int
	open     bool
}

// newDropdown offers the values 0..max, labelled with two digits.
func newDropdown(label string, max, selected int) dropdown {
	options := make([]string, max+1)
	for i := range options {
		options[i] = fmt.Sprintf("%02d", i)
	}
	if selected < 0 || selected > max {
		selected = 0
	}
	return dropdown{label: label, options: options, selected: selected}
}

func (d *dropdown) next() {
	d.selected = (d.selected + 1) % len(d.options)
}

func (d *dropdown) prev() {
	d.selected = (d.selected - 1 + len(d.options)) % len(d.options)
}

func (d *dropdown) toggle() {
	d.open = !d.open
}

func (d dropdown) value() int {
	return d.selected
}

func (d dropdown) view(st styles, focused, inert bool) string {
	current := fmt.Sprintf("%s ▾", d.options[d.selected])
	style := st.button.Width(8)
	switch {
	case inert:
		style = st.dim
	case focused:
		style = st.buttonActive.Width(8)
	}

	var b strings.Builder
	b.WriteString(st.help.Render(d.label))
	b.WriteString("\n")
	b.WriteString(style.Render(current))
	if !d.open || inert {
		return b.String()
	}

	// Show a window of options centered on the selection, wrapping around.
	half := dropdownWindow / 2
	for i := -half; i <= half; i++ {
		idx := (d.selected + i + len(d.options)) % len(d.options)
		line := "  " + d.options[idx]
		if i == 0 {
			line = "▸ " + d.options[idx]
			b.WriteString("\n" + st.title.Render(line))
			continue
		}
		b.WriteString("\n" + st.dim.Render(line))
	}
	return b.String()
}
