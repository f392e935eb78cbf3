package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/overthinkhq/ponder/internal/analysis"
)

// Run starts the interactive ask session and blocks until the user quits.
func Run(analyzer *analysis.Analyzer) error {
	program := tea.NewProgram(NewModel(analyzer))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("interactive session failed: %w", err)
	}
	return nil
}
