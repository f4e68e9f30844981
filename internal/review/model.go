// Package review implements the interactive plan review shown before a
// deployment: the planned directories and copies, scrollable, with a
// confirm/cancel prompt.
package review

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/selim/mpsync/internal/sync"
)

// row is one display line of the plan.
type row struct {
	isDir  bool
	text   string
	detail string
}

// Model is the bubbletea model for plan review.
type Model struct {
	plan   sync.Plan
	volume string
	rows   []row

	offset    int
	width     int
	height    int
	confirmed bool
	quitting  bool
}

// New creates the initial model for a plan targeting a device volume.
func New(plan sync.Plan, volume string) Model {
	rows := make([]row, 0, len(plan.Dirs)+len(plan.Files))
	for _, dir := range plan.Dirs {
		rows = append(rows, row{isDir: true, text: dir})
	}
	for _, op := range plan.Files {
		rows = append(rows, row{
			text:   op.Device,
			detail: fmt.Sprintf("from %s", op.Local),
		})
	}

	return Model{
		plan:   plan,
		volume: volume,
		rows:   rows,
	}
}

// Init implements tea.Model; the review needs no initial commands.
func (m Model) Init() tea.Cmd {
	return nil
}

// Confirmed reports whether the user accepted the plan.
func (m Model) Confirmed() bool {
	return m.confirmed
}

// Run shows the review and blocks until the user confirms or cancels.
func Run(plan sync.Plan, volume string) (bool, error) {
	program := tea.NewProgram(New(plan, volume))
	final, err := program.Run()
	if err != nil {
		return false, fmt.Errorf("plan review failed: %w", err)
	}
	model, ok := final.(Model)
	if !ok {
		return false, fmt.Errorf("unexpected model type from review")
	}
	return model.Confirmed(), nil
}
