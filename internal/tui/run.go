package tui

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tabula/internal/app"
	"github.com/thenoetrevino/tabula/internal/config"
)

// Run starts the terminal UI and blocks until the user quits. The App is
// closed when the program exits.
func Run(ctx context.Context, a *app.App, cfg *config.Config) error {
	defer func() {
		if err := a.Close(); err != nil {
			a.Logger().Error("failed to close database", "error", err)
		}
	}()

	p := tea.NewProgram(InitialModel(ctx, a, cfg), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run tui: %w", err)
	}
	return nil
}
