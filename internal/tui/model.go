//go:build linux

package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ttywho/ttywho/internal/output"
	"github.com/ttywho/ttywho/internal/snapshot"
	"github.com/ttywho/ttywho/internal/sysinfo"
)

const refreshInterval = 2 * time.Second

type tickMsg time.Time

// dataMsg carries one refresh cycle's snapshot into the model.
type dataMsg struct {
	res  snapshot.Result
	info sysinfo.Info
	when time.Time
}

type Model struct {
	table    table.Model
	keys     KeyMap
	res      snapshot.Result
	info     sysinfo.Info
	last     time.Time
	err      error
	width    int
	height   int
	paused   bool
	quitting bool
}

func InitialModel() Model {
	columns := []table.Column{
		{Title: "USER", Width: 10},
		{Title: "TTY", Width: 8},
		{Title: "LOGIN", Width: 7},
		{Title: "INPUT", Width: 7},
		{Title: "OUTPUT", Width: 7},
		{Title: "WHAT", Width: 40},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(20),
	)

	s := table.DefaultStyles()
	s.Header = tableHeaderStyle
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return Model{
		table: t,
		keys:  DefaultKeyMap(),
	}
}

// Start runs the watch-mode TUI until the user quits.
func Start() error {
	p := tea.NewProgram(InitialModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running tui: %w", err)
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(refresh(), tick())
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func refresh() tea.Cmd {
	return func() tea.Msg {
		res, err := snapshot.Collect()
		if err != nil {
			return err
		}
		info, err := sysinfo.Collect()
		if err != nil {
			return err
		}
		return dataMsg{res: res, info: info, when: time.Now()}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			m.paused = !m.paused
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			return m, refresh()
		}
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tickMsg:
		if m.paused {
			return m, tick()
		}
		return m, tea.Batch(refresh(), tick())

	case dataMsg:
		m.res = msg.res
		m.info = msg.info
		m.last = msg.when
		m.err = nil
		m.table.SetRows(m.rows())
		return m, nil

	case error:
		m.err = msg
		return m, nil
	}

	return m, nil
}

func (m *Model) resize() {
	height := m.height - 7
	if height < 5 {
		height = 5
	}
	m.table.SetHeight(height)
	m.table.SetWidth(m.width - 2)

	// Fixed columns take 10+8+7+7+7 plus padding; WHAT gets the rest.
	whatWidth := m.width - 51
	if whatWidth < 10 {
		whatWidth = 10
	}
	columns := []table.Column{
		{Title: "USER", Width: 10},
		{Title: "TTY", Width: 8},
		{Title: "LOGIN", Width: 7},
		{Title: "INPUT", Width: 7},
		{Title: "OUTPUT", Width: 7},
		{Title: "WHAT", Width: whatWidth},
	}
	m.table.SetColumns(columns)
}

// rows flattens the snapshot the same way the one-shot report does: one
// row per attributed command, an empty WHAT for idle terminals.
func (m *Model) rows() []table.Row {
	now := m.last
	if now.IsZero() {
		now = time.Now()
	}

	var rows []table.Row
	for _, t := range m.res.Terminals {
		cmds := t.Commands
		if len(cmds) == 0 {
			cmds = []string{""}
		}
		for _, cmd := range cmds {
			rows = append(rows, table.Row{
				output.Username(t.UID),
				t.Name,
				output.FormatDuration(now.Sub(t.Login)),
				output.FormatDuration(now.Sub(t.LastIn)),
				output.FormatDuration(now.Sub(t.LastOut)),
				cmd,
			})
		}
	}
	return rows
}
