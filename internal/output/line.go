// Package output defines the values the shell hands to a renderer.
package output

import "time"

// Kind tags a line with how it should be displayed.
type Kind string

const (
	KindCommand Kind = "command" // echo of the typed input
	KindOutput  Kind = "output"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// Exit codes carried by Result.
const (
	ExitSuccess         = 0
	ExitFailure         = 1
	ExitCommandNotFound = 127
)

// Metadata keys understood by renderers.
const (
	MetaAction = "action" // ActionClear or ActionExit
	MetaFormat = "format" // FormatPlain, FormatRecord or FormatMarkdown
	MetaPath   = "path"   // absolute path the payload was read from
	MetaKind   = "kind"   // "directory" or "file" for listing entries
	MetaSource = "source" // SourceValidator for advisory lines
)

// Metadata values.
const (
	ActionClear = "clear"
	ActionExit  = "exit"

	FormatPlain    = "plain"
	FormatRecord   = "record"
	FormatMarkdown = "markdown"

	SourceValidator = "validator"
)

// Line is one unit of displayable output. Lines are values and are not modified
// after creation.
type Line struct {
	Kind      Kind           `json:"kind"`
	Text      string         `json:"text"`
	Timestamp time.Time      `json:"timestamp"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// NewLine creates a line. A nil metadata map is kept nil.
func NewLine(kind Kind, text string, ts time.Time, metadata map[string]any) Line {
	return Line{
		Kind:      kind,
		Text:      text,
		Timestamp: ts,
		Metadata:  metadata,
	}
}

// Action returns the action hint of the line, or "" when there is none.
func (l Line) Action() string {
	if l.Metadata == nil {
		return ""
	}
	action, _ := l.Metadata[MetaAction].(string)
	return action
}

// Result is the outcome of executing one command.
type Result struct {
	Output   []Line `json:"output"`
	ExitCode int    `json:"exit_code"`
	Error    string `json:"error,omitempty"`
}

// OK reports whether the command succeeded.
func (r Result) OK() bool {
	return r.ExitCode == ExitSuccess
}

// HasAction reports whether any line carries the given action hint.
func (r Result) HasAction(action string) bool {
	for _, line := range r.Output {
		if line.Action() == action {
			return true
		}
	}
	return false
}
