package viewer

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/asciitable/pkg/render"
)

func tallContent(n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("| row %02d |", i)
	}
	return strings.Join(lines, "\n")
}

func sized(t *testing.T, m model, width, height int) model {
	t.Helper()
	next, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return next.(model)
}

func TestModel_ViewBeforeSize(t *testing.T) {
	m := newModel("Pets", "x", render.MonoTheme())
	assert.Equal(t, "Loading table...", m.View())
}

func TestModel_HeaderShowsTitleAndPercent(t *testing.T) {
	m := sized(t, newModel("Pets", "| a |", render.MonoTheme()), 40, 10)
	view := m.View()
	assert.Contains(t, view, "Pets")
	assert.Contains(t, view, "100%")
	assert.Contains(t, view, "| a |")
	assert.Contains(t, view, "q quit")
}

func TestModel_UntitledUsesProgramName(t *testing.T) {
	m := sized(t, newModel("", "| a |", render.MonoTheme()), 40, 10)
	assert.Contains(t, m.View(), "asciitable")
}

func TestModel_ViewportLeavesRoomForChrome(t *testing.T) {
	m := sized(t, newModel("t", tallContent(50), render.MonoTheme()), 30, 12)
	assert.Equal(t, 10, m.viewport.Height)
	assert.Equal(t, 30, m.viewport.Width)

	tiny := sized(t, newModel("t", "x", render.MonoTheme()), 30, 1)
	assert.Equal(t, 1, tiny.viewport.Height)
}

func TestModel_Scrolling(t *testing.T) {
	m := sized(t, newModel("t", tallContent(50), render.MonoTheme()), 30, 12)
	require.Equal(t, 0, m.viewport.YOffset)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(model)
	assert.Equal(t, 1, m.viewport.YOffset)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	m = next.(model)
	assert.Equal(t, 11, m.viewport.YOffset)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	m = next.(model)
	assert.True(t, m.viewport.AtBottom())
	assert.Contains(t, m.View(), "100%")

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyHome})
	m = next.(model)
	assert.True(t, m.viewport.AtTop())
	assert.Contains(t, m.View(), "  0%")
}

func TestModel_QuitKeys(t *testing.T) {
	keys := []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	}
	m := sized(t, newModel("t", "x", render.MonoTheme()), 20, 5)
	for _, key := range keys {
		_, cmd := m.Update(key)
		require.NotNil(t, cmd, key.String())
		assert.Equal(t, tea.QuitMsg{}, cmd(), key.String())
	}
}
