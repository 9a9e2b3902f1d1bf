package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Cyclone1070/foliosh/internal/config"
	"github.com/Cyclone1070/foliosh/internal/ui/models"
	"github.com/Cyclone1070/foliosh/internal/ui/services"
	"github.com/Cyclone1070/foliosh/internal/ui/views"
)

// BubbleTeaModel implements tea.Model
type BubbleTeaModel struct {
	state models.State

	// Dependencies
	shell    shell
	renderer services.MarkdownRenderer
	styles   views.Styles
	cfg      config.UIConfig
	cwd      func() string
}

// newBubbleTeaModel creates a new Bubble Tea model
func newBubbleTeaModel(sh shell, cwd func() string, cfg config.UIConfig, renderer services.MarkdownRenderer) BubbleTeaModel {
	styles := views.NewStyles(cfg)

	ti := textinput.New()
	ti.Prompt = sh.Prompt()
	ti.PromptStyle = styles.Prompt
	ti.Placeholder = "type 'help' to get started"
	ti.Focus()

	vp := viewport.New(80, 20)

	m := BubbleTeaModel{
		state: models.State{
			Input:    ti,
			Viewport: vp,
			Cwd:      cwd(),
		},
		shell:    sh,
		renderer: renderer,
		styles:   styles,
		cfg:      cfg,
		cwd:      cwd,
	}
	m.refresh()
	return m
}

// Init initializes the model
func (m BubbleTeaModel) Init() tea.Cmd {
	return textinput.Blink
}

// View renders the UI
func (m BubbleTeaModel) View() string {
	return views.RenderRoot(m.state, m.styles)
}

// Update handles messages
func (m BubbleTeaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.state.Viewport.Width = msg.Width
		m.state.Viewport.Height = max(1, msg.Height-1-m.cfg.ViewportHeightReserve) // input line + reserve
		m.state.Input.Width = max(1, msg.Width-len(m.state.Input.Prompt)-1)
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.state.Input, cmd = m.state.Input.Update(msg)
	return m, cmd
}

// handleKeyPress handles keyboard input
func (m BubbleTeaModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.state.Quitting = true
		return m, tea.Quit

	case tea.KeyEnter:
		return m.submit()

	case tea.KeyTab:
		line, candidates := m.shell.Complete(m.state.Input.Value())
		m.state.Input.SetValue(line)
		m.state.Input.CursorEnd()
		m.state.Candidates = nil
		if len(candidates) > 1 {
			m.state.Candidates = candidates
		}
		return m, nil

	case tea.KeyUp:
		if line, ok := m.shell.History().Previous(); ok {
			m.state.Input.SetValue(line)
			m.state.Input.CursorEnd()
		}
		return m, nil

	case tea.KeyDown:
		if line, ok := m.shell.History().Next(); ok {
			m.state.Input.SetValue(line)
			m.state.Input.CursorEnd()
		}
		return m, nil

	case tea.KeyCtrlL:
		m.shell.Clear()
		m.refresh()
		return m, nil

	case tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		m.state.Viewport, cmd = m.state.Viewport.Update(msg)
		return m, cmd
	}

	m.state.Candidates = nil
	var cmd tea.Cmd
	m.state.Input, cmd = m.state.Input.Update(msg)
	return m, cmd
}

func (m BubbleTeaModel) submit() (tea.Model, tea.Cmd) {
	outcome := m.shell.Submit(m.state.Input.Value())
	m.state.Input.Reset()
	m.state.Candidates = nil
	m.state.ExitCode = outcome.Result.ExitCode
	m.refresh()

	if outcome.Exit {
		m.state.Quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// refresh re-renders the buffer into the viewport and follows the newest line.
func (m *BubbleTeaModel) refresh() {
	m.state.Input.Prompt = m.shell.Prompt()
	m.state.Cwd = m.cwd()
	content := views.FormatOutput(m.shell.Lines(), m.styles, views.FormatOptions{
		Width:          m.state.Viewport.Width,
		RenderMarkdown: m.cfg.RenderMarkdown,
		MarkdownWrap:   m.cfg.MarkdownWrap,
	}, m.renderer)
	m.state.Viewport.SetContent(content)
	m.state.Viewport.GotoBottom()
}
