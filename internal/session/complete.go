package session

import (
	"strings"

	"github.com/Cyclone1070/foliosh/internal/command"
)

// Complete completes the word under the cursor at the end of line. The first
// word completes against command names, later words against paths. A single
// candidate is applied in full; several are applied up to their common prefix
// and returned for display.
func (s *Session) Complete(line string) (string, []string) {
	start := strings.LastIndexByte(line, ' ') + 1
	head, word := line[:start], line[start:]

	var candidates []string
	if strings.TrimSpace(head) == "" {
		for _, name := range command.Strings() {
			if strings.HasPrefix(name, word) {
				candidates = append(candidates, name)
			}
		}
	} else {
		candidates = s.fs.Completions(word)
	}

	switch len(candidates) {
	case 0:
		return line, nil
	case 1:
		completed := candidates[0]
		if !strings.HasSuffix(completed, "/") {
			completed += " "
		}
		return head + completed, candidates
	default:
		return head + commonPrefix(candidates), candidates
	}
}

func commonPrefix(items []string) string {
	prefix := items[0]
	for _, item := range items[1:] {
		for !strings.HasPrefix(item, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}
	return prefix
}
