package render

import "github.com/charmbracelet/lipgloss"

// Theme defines the styles applied to each part of a rendered table.
type Theme struct {
	Name    string
	Border  lipgloss.Style // top and bottom rules, separators
	Title   lipgloss.Style
	Heading lipgloss.Style
	Body    lipgloss.Style
	Muted   lipgloss.Style // row separators
}

// DefaultTheme returns a vibrant color theme.
func DefaultTheme() Theme {
	return Theme{
		Name:    "default",
		Border:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")), // blue
		Title:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Heading: lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true), // green
		Body:    lipgloss.NewStyle(),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("242")), // gray
	}
}

// OrcaTheme returns a muted, professional theme.
func OrcaTheme() Theme {
	return Theme{
		Name:    "orca",
		Border:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")), // lighter gray
		Title:   lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true),
		Heading: lipgloss.NewStyle().Foreground(lipgloss.Color("108")), // sage green
		Body:    lipgloss.NewStyle(),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// MonoTheme returns a monochrome theme (no colors).
func MonoTheme() Theme {
	return Theme{
		Name:    "mono",
		Border:  lipgloss.NewStyle(),
		Title:   lipgloss.NewStyle().Bold(true),
		Heading: lipgloss.NewStyle().Bold(true),
		Body:    lipgloss.NewStyle(),
		Muted:   lipgloss.NewStyle(),
	}
}

// ThemeByName returns a theme by name, defaulting to DefaultTheme.
func ThemeByName(name string) Theme {
	switch name {
	case "orca":
		return OrcaTheme()
	case "mono":
		return MonoTheme()
	default:
		return DefaultTheme()
	}
}

// ThemeNames lists the built-in theme names.
func ThemeNames() []string {
	return []string{"default", "orca", "mono"}
}
