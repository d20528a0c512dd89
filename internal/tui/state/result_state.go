package state

import (
	"charm.land/bubbles/v2/viewport"
	"github.com/thenoetrevino/tabula/internal/chart"
	"github.com/thenoetrevino/tabula/internal/models"
)

// ResultState holds what the last operation produced: the rendered output
// pane, a one-line status and, after a visualize, the chart.
type ResultState struct {
	Output viewport.Model
	Status string
	Failed bool
	Last   *models.ResultSet
	Chart  *chart.Chart
}

// NewResultState creates an empty output pane
func NewResultState() *ResultState {
	output := viewport.New()
	output.SetContent("Run a query to see results here.")
	return &ResultState{Output: output}
}

// Show replaces the output pane content and scrolls to the top
func (s *ResultState) Show(rs *models.ResultSet, content string) {
	s.Last = rs
	s.Output.SetContent(content)
	s.Output.GotoTop()
}

// Resize fits the output pane to the available space
func (s *ResultState) Resize(width, height int) {
	s.Output.SetWidth(width)
	s.Output.SetHeight(height)
}

// SetStatus records the one-line outcome of the last operation
func (s *ResultState) SetStatus(status string, failed bool) {
	s.Status = status
	s.Failed = failed
}
