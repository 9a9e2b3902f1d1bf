package views

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/stretchr/testify/assert"

	"github.com/Cyclone1070/foliosh/internal/config"
	"github.com/Cyclone1070/foliosh/internal/output"
	"github.com/Cyclone1070/foliosh/internal/ui/models"
)

type MockMarkdownRenderer struct {
	calls int
	width int
}

func (m *MockMarkdownRenderer) Render(content string, width int) (string, error) {
	m.calls++
	m.width = width
	return "RENDERED:" + content, nil
}

func testStyles() Styles {
	return NewStyles(config.DefaultConfig().UI)
}

func createTestViewport() viewport.Model {
	return viewport.New(80, 10)
}

func createTestTextInput(value string) textinput.Model {
	ti := textinput.New()
	ti.SetValue(value)
	return ti
}

func line(kind output.Kind, text string, meta map[string]any) output.Line {
	return output.NewLine(kind, text, time.Time{}, meta)
}

func TestFormatLine_ByKind(t *testing.T) {
	styles := testStyles()
	opts := FormatOptions{Width: 80, RenderMarkdown: true, MarkdownWrap: 60}
	renderer := &MockMarkdownRenderer{}

	assert.Contains(t, FormatLine(line(output.KindCommand, "guest@portfolio:~$ ls", nil), styles, opts, renderer), "guest@portfolio:~$ ls")
	assert.Contains(t, FormatLine(line(output.KindError, "cat: x: No such file or directory", nil), styles, opts, renderer), "No such file")
	assert.Contains(t, FormatLine(line(output.KindInfo, "Goodbye.", nil), styles, opts, renderer), "Goodbye.")
	assert.Contains(t, FormatLine(line(output.KindOutput, "projects/", map[string]any{output.MetaKind: "directory"}), styles, opts, renderer), "projects/")
	assert.Equal(t, 0, renderer.calls)
}

func TestFormatLine_TrimsTrailingNewline(t *testing.T) {
	got := FormatLine(line(output.KindOutput, "Company: Acme\n", nil), testStyles(), FormatOptions{}, nil)
	assert.Equal(t, "Company: Acme", got)
}

func TestFormatLine_Markdown(t *testing.T) {
	md := line(output.KindOutput, "# Shell\n", map[string]any{output.MetaFormat: output.FormatMarkdown})

	t.Run("rendered when enabled", func(t *testing.T) {
		renderer := &MockMarkdownRenderer{}
		got := FormatLine(md, testStyles(), FormatOptions{Width: 50, RenderMarkdown: true, MarkdownWrap: 80}, renderer)
		assert.True(t, strings.HasPrefix(got, "RENDERED:"))
		assert.Equal(t, 50, renderer.width)
	})

	t.Run("plain when disabled", func(t *testing.T) {
		renderer := &MockMarkdownRenderer{}
		got := FormatLine(md, testStyles(), FormatOptions{Width: 50, RenderMarkdown: false}, renderer)
		assert.Equal(t, "# Shell", got)
		assert.Equal(t, 0, renderer.calls)
	})
}

func TestFormatOutput_JoinsLines(t *testing.T) {
	lines := []output.Line{
		line(output.KindOutput, "one", nil),
		line(output.KindOutput, "two", nil),
	}
	assert.Equal(t, "one\ntwo", FormatOutput(lines, testStyles(), FormatOptions{}, nil))
}

func TestRenderRoot(t *testing.T) {
	vp := createTestViewport()
	vp.SetContent("hello from the viewport")

	state := models.State{
		Width:    80,
		Height:   24,
		Input:    createTestTextInput("cat ab"),
		Viewport: vp,
		Cwd:      "~/projects",
	}

	result := RenderRoot(state, testStyles())
	assert.Contains(t, result, "hello from the viewport")
	assert.Contains(t, result, "cat ab")
	assert.Contains(t, result, "~/projects")
	assert.Contains(t, result, "exit 0")

	t.Run("with candidates", func(t *testing.T) {
		state.Candidates = []string{"about.txt", "abacus.md"}
		result := RenderRoot(state, testStyles())
		assert.Contains(t, result, "about.txt")
		assert.Contains(t, result, "abacus.md")
	})

	t.Run("quitting hides status", func(t *testing.T) {
		state.Candidates = nil
		state.Quitting = true
		result := RenderRoot(state, testStyles())
		assert.NotContains(t, result, "exit 0")
	})
}
