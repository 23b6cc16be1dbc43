package ui

import "github.com/charmbracelet/lipgloss"

// Styles for the parts of the interface that are colorized. The renderer
// falls back to plain text when colors are disabled in the configuration.
var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// StylePrompt renders the prompt text, colorized if color is true.
func StylePrompt(s string, color bool) string {
	if !color {
		return s
	}
	return promptStyle.Render(s)
}

// StyleError renders an error message, colorized if color is true.
func StyleError(s string, color bool) string {
	if !color {
		return s
	}
	return errorStyle.Render(s)
}
