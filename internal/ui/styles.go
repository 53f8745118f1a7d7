package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles used by the summary output.
type Styles struct {
	Title    lipgloss.Style
	Command  lipgloss.Style
	Ratio    lipgloss.Style
	Muted    lipgloss.Style
	ErrorMsg lipgloss.Style
}

// NewRenderer returns a lipgloss renderer for w. Plain forces uncolored
// output regardless of what the terminal supports.
func NewRenderer(w io.Writer, plain bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if plain {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// NewStyles builds the palette on top of r.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4")), // Brand Color
		Command: r.NewStyle().
			Foreground(lipgloss.Color("86")), // Cyan/Teal
		Ratio: r.NewStyle().
			Foreground(lipgloss.Color("46")). // Green
			Bold(true),
		Muted: r.NewStyle().
			Foreground(lipgloss.Color("245")),
		ErrorMsg: r.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true),
	}
}
