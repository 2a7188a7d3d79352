package output

import "github.com/charmbracelet/lipgloss"

// palette cycles through a handful of basic ANSI colors so every owner
// keeps one distinguishable color for the lifetime of a report.
var palette = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("6")), // cyan
	lipgloss.NewStyle().Foreground(lipgloss.Color("2")), // green
	lipgloss.NewStyle().Foreground(lipgloss.Color("3")), // yellow
	lipgloss.NewStyle().Foreground(lipgloss.Color("5")), // magenta
	lipgloss.NewStyle().Foreground(lipgloss.Color("4")), // blue
	lipgloss.NewStyle().Foreground(lipgloss.Color("1")), // red
}

var headerUnderline = lipgloss.NewStyle().Underline(true)

// colorPicker hands out palette entries first-seen-first-assigned,
// cycling when owners outnumber the palette. An owner's color never
// changes once assigned.
type colorPicker struct {
	assigned map[uint32]int
	next     int
}

func newColorPicker() *colorPicker {
	return &colorPicker{assigned: make(map[uint32]int)}
}

func (c *colorPicker) styleFor(uid uint32) lipgloss.Style {
	idx, ok := c.assigned[uid]
	if !ok {
		idx = c.next % len(palette)
		c.assigned[uid] = idx
		c.next++
	}
	return palette[idx]
}
