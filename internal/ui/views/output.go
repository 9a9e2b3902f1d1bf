package views

import (
	"strings"

	"github.com/Cyclone1070/foliosh/internal/output"
	"github.com/Cyclone1070/foliosh/internal/ui/services"
)

// FormatOptions controls how the output buffer is laid out.
type FormatOptions struct {
	Width          int
	RenderMarkdown bool
	MarkdownWrap   int
}

// FormatOutput formats the session's lines for the viewport.
func FormatOutput(lines []output.Line, styles Styles, opts FormatOptions, renderer services.MarkdownRenderer) string {
	rendered := make([]string, 0, len(lines))
	for _, line := range lines {
		rendered = append(rendered, FormatLine(line, styles, opts, renderer))
	}
	return strings.Join(rendered, "\n")
}

// FormatLine formats one line according to its kind and metadata.
func FormatLine(line output.Line, styles Styles, opts FormatOptions, renderer services.MarkdownRenderer) string {
	text := strings.TrimRight(line.Text, "\n")
	hints := services.DecodeHints(line)

	switch line.Kind {
	case output.KindCommand:
		return styles.Command.Render(text)
	case output.KindError:
		return styles.Error.Render(text)
	case output.KindInfo:
		return styles.Info.Render(text)
	}

	switch {
	case hints.IsDirectory():
		return styles.Directory.Render(text)
	case hints.IsMarkdown() && opts.RenderMarkdown:
		return services.RenderMarkdown(line.Text, wrapWidth(opts), renderer)
	default:
		return text
	}
}

func wrapWidth(opts FormatOptions) int {
	wrap := opts.MarkdownWrap
	if opts.Width > 0 && opts.Width < wrap {
		wrap = opts.Width
	}
	if wrap <= 0 {
		wrap = 80
	}
	return wrap
}
