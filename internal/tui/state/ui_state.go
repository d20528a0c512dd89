package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode  Mode = iota // Editing the table, column and SQL inputs
	InsertMode              // Insert row form with huh
	UpdateMode              // Update rows form with huh
	DeleteMode              // Delete rows form with huh
	ExportMode              // Export file form with huh
	ImportMode              // Import file form with huh
	MessageMode             // Modal success/failure dialog
	ChartMode               // Full screen bar chart
	HelpMode                // Displaying help screen
)

// String names the mode for the status bar
func (m Mode) String() string {
	switch m {
	case InsertMode:
		return "INSERT"
	case UpdateMode:
		return "UPDATE"
	case DeleteMode:
		return "DELETE"
	case ExportMode:
		return "EXPORT"
	case ImportMode:
		return "IMPORT"
	case MessageMode:
		return "MESSAGE"
	case ChartMode:
		return "CHART"
	case HelpMode:
		return "HELP"
	default:
		return "NORMAL"
	}
}

// IsForm reports whether the mode is driven by a huh form
func (m Mode) IsForm() bool {
	switch m {
	case InsertMode, UpdateMode, DeleteMode, ExportMode, ImportMode:
		return true
	}
	return false
}

// UIState manages the user interface state: terminal dimensions,
// the current interaction mode and which input has focus.
type UIState struct {
	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode

	// focus is the index of the focused input, see FormState.FocusCount
	focus int
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{mode: NormalMode}
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width.
func (s *UIState) SetWidth(width int) {
	s.width = width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// OutputHeight returns the rows left for the output viewport once the
// header, the inputs and the status bar are drawn. Minimum of 3.
func (s *UIState) OutputHeight(inputRows int) int {
	const headerHeight = 2    // title + gap line
	const statusBarHeight = 2 // gap line + status bar
	const borderHeight = 2
	return max(s.height-headerHeight-statusBarHeight-borderHeight-inputRows, 3)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// Focus returns the index of the focused input.
func (s *UIState) Focus() int {
	return s.focus
}

// SetFocus moves focus to index, wrapping around count inputs.
func (s *UIState) SetFocus(index, count int) {
	if count <= 0 {
		s.focus = 0
		return
	}
	s.focus = ((index % count) + count) % count
}
