package notifications

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/tabula/internal/tui/state"
)

func TestRenderFromState(t *testing.T) {
	out := RenderFromState(state.Notification{
		Level:   state.LevelError,
		Title:   "Query failed",
		Message: "no such table: nope",
	}, 60)

	assert.Contains(t, out, "Query failed")
	assert.Contains(t, out, "no such table")
	assert.Contains(t, out, dismissHint)
}

func TestRender_DefaultTitle(t *testing.T) {
	assert.Contains(t, Render(Info, "", "done", 40), "Success")
	assert.Contains(t, Render(Error, "", "boom", 40), "Error")
}

func TestRenderInline(t *testing.T) {
	assert.Contains(t, RenderInline(Info, "3 rows"), "3 rows")
}
