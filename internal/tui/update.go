package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/tabula/internal/tui/layers"
	"github.com/thenoetrevino/tabula/internal/tui/state"
)

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	select {
	case <-m.Ctx.Done():
		return m, tea.Quit
	default:
	}

	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.resize(ws.Width, ws.Height)
	}

	// Forms need ALL messages, not just keys
	if m.UIState.Mode().IsForm() {
		return m, m.updateForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, m.updateFocusedInput(msg)
	}

	switch m.UIState.Mode() {
	case state.MessageMode:
		return m, m.handleMessageKeys(keyMsg)
	case state.ChartMode:
		return m, m.handleChartKeys(keyMsg)
	case state.HelpMode:
		return m, m.handleHelpKeys(keyMsg)
	default:
		return m, m.handleNormalKeys(keyMsg)
	}
}

func (m Model) resize(width, height int) {
	m.UIState.SetWidth(width)
	m.UIState.SetHeight(height)
	m.ResultState.Resize(max(width-2, 1), m.UIState.OutputHeight(m.inputRows()))
	if m.FormState.Form != nil {
		m.FormState.Form = m.FormState.Form.WithWidth(layers.CalculateModalWidth(width))
	}
}

// inputRows is the height of the input block: table name, a "Columns"
// label, one line per column pair, the SQL input and two gap lines.
func (m Model) inputRows() int {
	return 5 + len(m.FormState.Columns)
}

func (m Model) handleNormalKeys(msg tea.KeyPressMsg) tea.Cmd {
	km := m.Config.KeyMappings

	switch msg.String() {
	case km.Quit:
		return tea.Quit
	case km.NextField:
		return m.moveFocus(m.UIState.Focus() + 1)
	case km.PrevField:
		return m.moveFocus(m.UIState.Focus() - 1)
	case km.AddColumn:
		idx := m.FormState.AddColumn()
		m.resize(m.UIState.Width(), m.UIState.Height())
		return m.moveFocus(m.FormState.ColumnNameIndex(idx))
	case km.CreateTable:
		m.createTable()
		return nil
	case km.RunQuery:
		m.runQuery()
		return nil
	case km.Visualize:
		m.visualize()
		return nil
	case km.InsertRow:
		return m.openInsertForm()
	case km.UpdateRows:
		return m.openUpdateForm()
	case km.DeleteRows:
		return m.openDeleteForm()
	case km.Export:
		return m.openTransferForm(state.ExportMode)
	case km.Import:
		return m.openTransferForm(state.ImportMode)
	case km.ShowHelp:
		m.UIState.SetMode(state.HelpMode)
		return nil
	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.ResultState.Output, cmd = m.ResultState.Output.Update(msg)
		return cmd
	case "enter":
		if m.UIState.Focus() == m.FormState.SQLIndex() {
			m.runQuery()
			return nil
		}
		return m.moveFocus(m.UIState.Focus() + 1)
	}

	return m.updateFocusedInput(msg)
}

// moveFocus blurs the focused input and focuses the one at index
func (m Model) moveFocus(index int) tea.Cmd {
	if in := m.FormState.Input(m.UIState.Focus()); in != nil {
		in.Blur()
	}
	m.UIState.SetFocus(index, m.FormState.FocusCount())
	if in := m.FormState.Input(m.UIState.Focus()); in != nil {
		return in.Focus()
	}
	return nil
}

func (m Model) updateFocusedInput(msg tea.Msg) tea.Cmd {
	in := m.FormState.Input(m.UIState.Focus())
	if in == nil {
		return nil
	}
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	return cmd
}

func (m Model) handleMessageKeys(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "enter", "esc", "space":
		if !m.NotificationState.Dismiss() {
			m.UIState.SetMode(state.NormalMode)
		}
	case m.Config.KeyMappings.Quit:
		return tea.Quit
	}
	return nil
}

func (m Model) handleChartKeys(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "q", m.Config.KeyMappings.Visualize:
		m.UIState.SetMode(state.NormalMode)
	case m.Config.KeyMappings.Quit:
		return tea.Quit
	}
	return nil
}

func (m Model) handleHelpKeys(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "q", m.Config.KeyMappings.ShowHelp:
		m.UIState.SetMode(state.NormalMode)
	case m.Config.KeyMappings.Quit:
		return tea.Quit
	}
	return nil
}

// openForm themes and sizes a huh form, then hands it every message
// until it completes or is aborted
func (m Model) openForm(mode state.Mode, form *huh.Form) tea.Cmd {
	m.FormState.Form = form.
		WithTheme(m.formTheme).
		WithWidth(layers.CalculateModalWidth(m.UIState.Width()))
	m.UIState.SetMode(mode)
	return m.FormState.Form.Init()
}

// updateForm forwards msg to the open form and submits it once completed
func (m Model) updateForm(msg tea.Msg) tea.Cmd {
	form := m.FormState.Form
	if form == nil {
		m.UIState.SetMode(state.NormalMode)
		return nil
	}
	if k, ok := msg.(tea.KeyPressMsg); ok && k.String() == m.Config.KeyMappings.Quit {
		return tea.Quit
	}

	model, cmd := form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.FormState.Form = f
		form = f
	}

	switch form.State {
	case huh.StateCompleted:
		mode := m.UIState.Mode()
		m.UIState.SetMode(state.NormalMode)
		m.submitForm(mode)
		m.FormState.ResetFormValues()
		return tea.ClearScreen
	case huh.StateAborted:
		m.UIState.SetMode(state.NormalMode)
		m.FormState.ResetFormValues()
		return tea.ClearScreen
	}

	return cmd
}

func (m Model) submitForm(mode state.Mode) {
	switch mode {
	case state.InsertMode:
		m.submitInsert()
	case state.UpdateMode:
		m.submitUpdate()
	case state.DeleteMode:
		m.submitDelete()
	case state.ExportMode:
		m.submitExport()
	case state.ImportMode:
		m.submitImport()
	}
}
