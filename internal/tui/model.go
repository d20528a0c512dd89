// Package tui is the terminal form shell: table definition inputs, an SQL
// input, a scrollable output pane and huh dialogs for row and file operations.
package tui

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/tabula/internal/app"
	"github.com/thenoetrevino/tabula/internal/config"
	"github.com/thenoetrevino/tabula/internal/tui/huhforms"
	"github.com/thenoetrevino/tabula/internal/tui/state"
	"github.com/thenoetrevino/tabula/internal/tui/theme"
)

const timeoutDB = 30 * time.Second

// Model is the bubbletea model. State lives behind pointers so the value
// receivers bubbletea requires share one copy.
type Model struct {
	Ctx    context.Context
	App    *app.App
	Config *config.Config

	UIState           *state.UIState
	FormState         *state.FormState
	NotificationState *state.NotificationState
	ResultState       *state.ResultState

	formTheme huh.Theme
}

// InitialModel builds the model with the table name input focused
func InitialModel(ctx context.Context, a *app.App, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	theme.Init(cfg.ColorScheme)

	m := Model{
		Ctx:               ctx,
		App:               a,
		Config:            cfg,
		UIState:           state.NewUIState(),
		FormState:         state.NewFormState(),
		NotificationState: state.NewNotificationState(),
		ResultState:       state.NewResultState(),
		formTheme:         huhforms.CreateTabulaTheme(cfg.ColorScheme),
	}
	m.FormState.TableName.Focus()
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// dbContext bounds every database call made from the event loop
func (m Model) dbContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(m.Ctx, timeoutDB)
}
