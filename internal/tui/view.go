//go:build linux

package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/ttywho/ttywho/internal/output"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.err != nil {
		return fmt.Sprintf("Error: %v", m.err)
	}

	summary := fmt.Sprintf("up %s, %d users, load %.2f %.2f %.2f, %d/%d running",
		output.FormatDuration(m.info.Uptime), len(m.res.Owners),
		m.info.Load1, m.info.Load5, m.info.Load15,
		m.info.Running, m.info.Total)

	title := titleStyle.Render("ttywho")
	if m.paused {
		title = lipgloss.JoinHorizontal(lipgloss.Center, title, " ", pausedStyle.Render("PAUSED"))
	}

	footer := footerStyle.Width(m.width - 2).
		Render("space: pause | r: refresh | ↑/↓: scroll | q: quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summaryStyle.Render(summary),
		m.table.View(),
		footer,
	)
}
