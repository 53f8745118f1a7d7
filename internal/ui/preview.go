package ui

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// Preview renders Markdown for display in a terminal. With auto false the
// "notty" style is used, which emits no escape sequences.
func Preview(markdown string, width int, auto bool) (string, error) {
	style := glamour.WithStandardStyle("notty")
	if auto {
		style = glamour.WithAutoStyle()
	}

	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	out, err := renderer.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}
