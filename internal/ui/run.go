package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

// Run launches the interactive converter and blocks until the user quits
// or ctx is canceled.
func Run(ctx context.Context, opts Options) error {
	prog := tea.NewProgram(NewModel(opts), tea.WithContext(ctx))
	if _, err := prog.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
