package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// IsInteractive reports whether both stdin and stdout are terminals.
// Piped input, CI pipelines and redirected output disable the TUI.
func IsInteractive() bool {
	if os.Getenv("CI") != "" {
		return false
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Run starts the interactive front end. defaultSource seeds the
// source field.
func Run(defaultSource string) error {
	if !IsInteractive() {
		return fmt.Errorf("interactive mode requires a terminal (use the organize command instead)")
	}

	program := tea.NewProgram(NewModel(defaultSource))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("interactive session failed: %w", err)
	}
	return nil
}
