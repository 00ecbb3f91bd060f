// Package viewer shows a rendered table in a scrollable full-screen view.
package viewer

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dkoosis/asciitable/pkg/render"
)

// chrome is the number of lines used by the header and the status bar.
const chrome = 2

// Run launches the viewer and blocks until the user quits or ctx is done.
func Run(ctx context.Context, title, content string, theme render.Theme, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)
	program := tea.NewProgram(newModel(title, content, theme), opts...)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running viewer: %w", err)
	}
	return nil
}

type model struct {
	title    string
	content  string
	theme    render.Theme
	viewport viewport.Model
	ready    bool
	width    int
}

func newModel(title, content string, theme render.Theme) model {
	vp := viewport.New(0, 0)
	vp.SetContent(content)
	return model{title: title, content: content, theme: theme, viewport: vp}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "home", "g":
			m.viewport.GotoTop()
			return m, nil
		case "end", "G":
			m.viewport.GotoBottom()
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.viewport.Width = msg.Width
		m.viewport.Height = max(1, msg.Height-chrome)
		m.viewport.SetContent(m.content)
		m.ready = true
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if !m.ready {
		return "Loading table..."
	}

	name := m.title
	if name == "" {
		name = "asciitable"
	}
	percent := fmt.Sprintf("%3.f%%", m.viewport.ScrollPercent()*100)
	gap := max(1, m.width-lipgloss.Width(name)-lipgloss.Width(percent))
	header := m.theme.Title.Render(name) + strings.Repeat(" ", gap) + m.theme.Muted.Render(percent)

	help := m.theme.Muted.Render("↑/↓ scroll • pgup/pgdn page • q quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, m.viewport.View(), help)
}
