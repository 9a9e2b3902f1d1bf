package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cyclone1070/foliosh/internal/command"
	"github.com/Cyclone1070/foliosh/internal/config"
	"github.com/Cyclone1070/foliosh/internal/content"
	"github.com/Cyclone1070/foliosh/internal/session"
)

// Mock dependencies
type MockMarkdownRenderer struct {
	RenderFunc func(string, int) (string, error)
}

func (m *MockMarkdownRenderer) Render(content string, width int) (string, error) {
	if m.RenderFunc != nil {
		return m.RenderFunc(content, width)
	}
	return content, nil
}

func createTestModel(t *testing.T) (BubbleTeaModel, *session.Session) {
	t.Helper()
	root, err := content.BuildTree(&content.Profile{
		Name:       "Sam Doe",
		About:      "Hi there.",
		Experience: []content.Job{{Company: "Acme"}},
		Projects:   []content.Project{{Name: "Shell"}},
	})
	require.NoError(t, err)

	exec := command.New(command.Options{
		Identity: command.Identity{User: "guest", Host: "folio"},
		Clock:    func() time.Time { return time.Unix(0, 0).UTC() },
	})
	sess, err := session.New(root, exec)
	require.NoError(t, err)

	fs := sess.FileSystem()
	cwd := func() string { return fs.DisplayPath(fs.CurrentDirectory()) }
	return newBubbleTeaModel(sess, cwd, config.DefaultConfig().UI, &MockMarkdownRenderer{}), sess
}

func typeAndPress(t *testing.T, m BubbleTeaModel, value string, key tea.KeyType) (BubbleTeaModel, tea.Cmd) {
	t.Helper()
	m.state.Input.SetValue(value)
	next, cmd := m.Update(tea.KeyMsg{Type: key})
	return next.(BubbleTeaModel), cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestInit_ReturnsCommand(t *testing.T) {
	m, _ := createTestModel(t)
	assert.NotNil(t, m.Init())
	assert.Equal(t, "guest@folio:~$ ", m.state.Input.Prompt)
}

func TestUpdate_KeyEnter_SubmitsInput(t *testing.T) {
	m, sess := createTestModel(t)

	m, cmd := typeAndPress(t, m, "about", tea.KeyEnter)

	assert.Nil(t, cmd)
	assert.Equal(t, "", m.state.Input.Value())
	require.Len(t, sess.Lines(), 2)
	assert.Contains(t, m.state.Viewport.View(), "Hi there.")
	assert.Equal(t, 0, m.state.ExitCode)
}

func TestUpdate_KeyEnter_UpdatesPromptAndStatus(t *testing.T) {
	m, _ := createTestModel(t)

	m, _ = typeAndPress(t, m, "cd projects", tea.KeyEnter)
	assert.Equal(t, "guest@folio:~/projects$ ", m.state.Input.Prompt)
	assert.Equal(t, "~/projects", m.state.Cwd)

	m, _ = typeAndPress(t, m, "cat nope", tea.KeyEnter)
	assert.Equal(t, 1, m.state.ExitCode)
	assert.Contains(t, m.View(), "exit 1")
}

func TestUpdate_ExitQuits(t *testing.T) {
	for _, line := range []string{"exit", "gui"} {
		t.Run(line, func(t *testing.T) {
			m, sess := createTestModel(t)
			m, cmd := typeAndPress(t, m, line, tea.KeyEnter)
			assert.True(t, isQuit(cmd))
			assert.True(t, m.state.Quitting)
			assert.True(t, sess.Closed())
		})
	}
}

func TestUpdate_CtrlC_Quits(t *testing.T) {
	m, _ := createTestModel(t)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, isQuit(cmd))
	assert.True(t, next.(BubbleTeaModel).state.Quitting)
}

func TestUpdate_Tab_Completes(t *testing.T) {
	m, _ := createTestModel(t)

	m, _ = typeAndPress(t, m, "cat ab", tea.KeyTab)
	assert.Equal(t, "cat about.txt ", m.state.Input.Value())
	assert.Empty(t, m.state.Candidates)

	m, _ = typeAndPress(t, m, "c", tea.KeyTab)
	assert.Equal(t, "c", m.state.Input.Value())
	assert.Equal(t, []string{"cd", "cat", "clear", "contact"}, m.state.Candidates)

	// typing clears the candidates
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	m = next.(BubbleTeaModel)
	assert.Empty(t, m.state.Candidates)
	assert.Equal(t, "cd", m.state.Input.Value())
}

func TestUpdate_History(t *testing.T) {
	m, _ := createTestModel(t)
	m, _ = typeAndPress(t, m, "pwd", tea.KeyEnter)
	m, _ = typeAndPress(t, m, "whoami", tea.KeyEnter)

	m, _ = typeAndPress(t, m, "", tea.KeyUp)
	assert.Equal(t, "whoami", m.state.Input.Value())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(BubbleTeaModel)
	assert.Equal(t, "pwd", m.state.Input.Value())

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(BubbleTeaModel)
	assert.Equal(t, "whoami", m.state.Input.Value())

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(BubbleTeaModel)
	assert.Equal(t, "", m.state.Input.Value())
}

func TestUpdate_ClearCommandAndCtrlL(t *testing.T) {
	m, sess := createTestModel(t)

	m, _ = typeAndPress(t, m, "pwd", tea.KeyEnter)
	require.NotEmpty(t, sess.Lines())
	m, _ = typeAndPress(t, m, "clear", tea.KeyEnter)
	assert.Empty(t, sess.Lines())

	m, _ = typeAndPress(t, m, "pwd", tea.KeyEnter)
	require.NotEmpty(t, sess.Lines())
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	assert.Empty(t, sess.Lines())
	assert.NotContains(t, next.(BubbleTeaModel).state.Viewport.View(), "pwd")
}

func TestUpdate_WindowSize(t *testing.T) {
	m, _ := createTestModel(t)
	next, cmd := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(BubbleTeaModel)

	assert.Nil(t, cmd)
	assert.Equal(t, 100, m.state.Width)
	assert.Equal(t, 100, m.state.Viewport.Width)
	assert.Equal(t, 30-1-config.DefaultConfig().UI.ViewportHeightReserve, m.state.Viewport.Height)
}

func TestUpdate_MarkdownRenderedThroughRenderer(t *testing.T) {
	m, _ := createTestModel(t)
	m.renderer = &MockMarkdownRenderer{RenderFunc: func(s string, _ int) (string, error) {
		return "<<markdown>>", nil
	}}

	m, _ = typeAndPress(t, m, "projects", tea.KeyEnter)
	assert.Contains(t, m.state.Viewport.View(), "<<markdown>>")
}
