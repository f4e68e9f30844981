package review

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#5B41DF", Dark: "#7B61FF"}).
			MarginBottom(1)

	dirStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#008866", Dark: "#00D4AA"}).
			Bold(true)

	fileStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"})

	detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#999999", Dark: "#666666"})

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#B8860B", Dark: "#FFD700"})

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#888888", Dark: "#555555"}).
			MarginTop(1)
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("mpsync deploy -> " + m.volume))
	b.WriteString("\n")

	if len(m.rows) == 0 {
		b.WriteString(detailStyle.Render("  Nothing to deploy."))
		b.WriteString("\n")
	} else {
		visible := m.visibleRows()
		end := m.offset + visible
		if end > len(m.rows) {
			end = len(m.rows)
		}

		for _, r := range m.rows[m.offset:end] {
			if r.isDir {
				b.WriteString(fmt.Sprintf("  %s %s", dirStyle.Render("mkdir"), dirStyle.Render(r.text)))
			} else {
				b.WriteString(fmt.Sprintf("  %s %s  %s", fileStyle.Render("copy "), fileStyle.Render(r.text), detailStyle.Render(r.detail)))
			}
			b.WriteString("\n")
		}

		if end < len(m.rows) {
			b.WriteString(detailStyle.Render(fmt.Sprintf("  ... %d more", len(m.rows)-end)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(summaryStyle.Render(m.plan.Summary()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("y/enter:deploy  n/q:cancel  up/down:scroll"))

	return b.String()
}
