// Package services holds the ui's non-visual helpers: markdown rendering and
// metadata hints.
package services

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer renders markdown for a given terminal width.
type MarkdownRenderer interface {
	Render(content string, width int) (string, error)
}

// GlamourRenderer renders markdown with glamour, keeping one renderer per width.
type GlamourRenderer struct {
	style     string
	renderers map[int]*glamour.TermRenderer
}

// NewGlamourRenderer creates a renderer. An empty style detects the terminal
// background; otherwise it names a glamour standard style such as "dark" or
// "notty".
func NewGlamourRenderer(style string) *GlamourRenderer {
	return &GlamourRenderer{
		style:     style,
		renderers: make(map[int]*glamour.TermRenderer),
	}
}

// Render renders content wrapped at width.
func (g *GlamourRenderer) Render(content string, width int) (string, error) {
	r, ok := g.renderers[width]
	if !ok {
		styleOpt := glamour.WithAutoStyle()
		if g.style != "" {
			styleOpt = glamour.WithStandardStyle(g.style)
		}
		var err error
		r, err = glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
		if err != nil {
			return "", err
		}
		g.renderers[width] = r
	}
	return r.Render(content)
}

// RenderMarkdown renders content, falling back to the plain text when no
// renderer is set or rendering fails.
func RenderMarkdown(content string, width int, renderer MarkdownRenderer) string {
	if renderer == nil {
		return content
	}
	rendered, err := renderer.Render(content, width)
	if err != nil {
		return content
	}
	return strings.Trim(rendered, "\n")
}
