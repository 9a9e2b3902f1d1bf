// Package ui is the interactive terminal for a session, built on Bubble Tea.
package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Cyclone1070/foliosh/internal/config"
	"github.com/Cyclone1070/foliosh/internal/session"
	"github.com/Cyclone1070/foliosh/internal/ui/services"
)

// UI runs a session in the terminal.
type UI struct {
	program *tea.Program
}

// NewUI creates a Bubble Tea program for sess.
func NewUI(sess *session.Session, cfg config.UIConfig, renderer services.MarkdownRenderer, opts ...tea.ProgramOption) *UI {
	fs := sess.FileSystem()
	cwd := func() string { return fs.DisplayPath(fs.CurrentDirectory()) }
	model := newBubbleTeaModel(sess, cwd, cfg, renderer)

	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	return &UI{program: tea.NewProgram(model, opts...)}
}

// Start runs the program until the session exits or the user quits.
func (u *UI) Start() error {
	_, err := u.program.Run()
	return err
}
