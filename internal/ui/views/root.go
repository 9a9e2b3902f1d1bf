package views

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Cyclone1070/foliosh/internal/ui/models"
)

// RenderRoot renders the complete UI layout
func RenderRoot(s models.State, styles Styles) string {
	sections := []string{
		s.Viewport.View(),
		RenderInput(s),
	}
	if popup := RenderCandidates(s, styles); popup != "" {
		sections = append(sections, popup)
	}
	if !s.Quitting {
		sections = append(sections, RenderStatus(s, styles))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
