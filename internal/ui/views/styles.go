// Package views renders ui state to strings.
package views

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Cyclone1070/foliosh/internal/config"
)

// Styles are the lipgloss styles for each kind of line.
type Styles struct {
	Prompt    lipgloss.Style
	Command   lipgloss.Style
	Error     lipgloss.Style
	Info      lipgloss.Style
	Directory lipgloss.Style
	Status    lipgloss.Style
	Popup     lipgloss.Style
}

// NewStyles builds styles from the configured colors. An empty color keeps the
// terminal default.
func NewStyles(cfg config.UIConfig) Styles {
	return Styles{
		Prompt:    lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.ColorPrompt)).Bold(true),
		Command:   lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.ColorCommand)),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.ColorError)),
		Info:      lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.ColorInfo)).Italic(true),
		Directory: lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.ColorDirectory)).Bold(true),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.ColorInfo)).Faint(true),
		Popup: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(cfg.ColorDirectory)).
			Padding(0, 1),
	}
}
