package ui

import "github.com/charmbracelet/lipgloss"

// Semantic styles with adaptive colors for light and dark terminals.
var styleRegistry = map[string]lipgloss.Style{
	"Error": lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"}),
	"Warning": lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#AF8700", Dark: "#FFD700"}),
	"Success": lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#008700", Dark: "#5FD75F"}),
	"Muted": lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#6C6C6C", Dark: "#8A8A8A"}),
	"Header": lipgloss.NewStyle().Bold(true).Underline(true),
	"Key":    lipgloss.NewStyle().Bold(true),
}

// GetStyle returns the named style, or an empty style for unknown names.
func GetStyle(name string) lipgloss.Style {
	if s, ok := styleRegistry[name]; ok {
		return s
	}
	return lipgloss.NewStyle()
}
