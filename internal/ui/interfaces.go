package ui

import (
	"github.com/Cyclone1070/foliosh/internal/output"
	"github.com/Cyclone1070/foliosh/internal/session"
)

// shell is the part of session.Session the terminal drives.
type shell interface {
	Submit(raw string) session.Outcome
	Prompt() string
	Complete(line string) (string, []string)
	Lines() []output.Line
	History() *session.History
	Clear()
	Closed() bool
}
