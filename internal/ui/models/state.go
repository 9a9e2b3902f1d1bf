// Package models holds the state shared by the ui update loop and its views.
package models

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
)

// State is the renderable state of the terminal.
type State struct {
	Input    textinput.Model
	Viewport viewport.Model

	Width  int
	Height int

	// Candidates from the last ambiguous tab completion.
	Candidates []string

	// Shown in the status bar.
	Cwd      string
	ExitCode int

	Quitting bool
}
