package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains the style definitions for the checklist UI
type Styles struct {
	Header     lipgloss.Style
	CursorLine lipgloss.Style
	Dim        lipgloss.Style
	Success    lipgloss.Style
	Help       lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		// The focused row is shown in reverse video, like the original tool.
		CursorLine: lipgloss.NewStyle().Reverse(true),
		Dim:        lipgloss.NewStyle().Faint(true),
		Success:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		Help:       lipgloss.NewStyle().Faint(true),
	}
}
