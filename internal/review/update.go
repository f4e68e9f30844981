package review

import (
	tea "github.com/charmbracelet/bubbletea"
)

// visibleRows returns how many plan rows fit in the current viewport,
// leaving room for the header, summary, and help lines.
func (m Model) visibleRows() int {
	reserved := 6
	if m.height <= reserved {
		return 1
	}
	return m.height - reserved
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		switch msg.String() {
		case "y", "enter":
			m.confirmed = true
			m.quitting = true
			return m, tea.Quit

		case "n", "q", "esc", "ctrl+c":
			m.confirmed = false
			m.quitting = true
			return m, tea.Quit

		case "up", "k":
			if m.offset > 0 {
				m.offset--
			}

		case "down", "j":
			if m.offset < len(m.rows)-m.visibleRows() {
				m.offset++
			}

		case "pgup":
			m.offset -= m.visibleRows()
			if m.offset < 0 {
				m.offset = 0
			}

		case "pgdown":
			m.offset += m.visibleRows()
			if max := len(m.rows) - m.visibleRows(); m.offset > max {
				m.offset = max
			}
			if m.offset < 0 {
				m.offset = 0
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}
