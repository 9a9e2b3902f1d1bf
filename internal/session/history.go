package session

// History stores submitted lines, oldest first, with a navigation cursor for
// walking back and forth through them.
type History struct {
	entries []string
	limit   int
	cursor  int // len(entries) when not navigating
}

// NewHistory creates a History holding at most limit entries.
func NewHistory(limit int) *History {
	if limit < 1 {
		limit = 1
	}
	return &History{
		entries: make([]string, 0),
		limit:   limit,
	}
}

// Add appends line and resets the cursor. A line equal to the newest entry is
// not stored twice. The oldest entry is dropped once the limit is reached.
func (h *History) Add(line string) {
	if n := len(h.entries); n == 0 || h.entries[n-1] != line {
		h.entries = append(h.entries, line)
		if len(h.entries) > h.limit {
			h.entries = h.entries[len(h.entries)-h.limit:]
		}
	}
	h.ResetCursor()
}

// Entries returns a copy of the stored lines, oldest first.
func (h *History) Entries() []string {
	result := make([]string, len(h.entries))
	copy(result, h.entries)
	return result
}

// Len returns the number of stored lines.
func (h *History) Len() int { return len(h.entries) }

// Previous moves the cursor one entry back. It reports false when there is
// nothing older.
func (h *History) Previous() (string, bool) {
	if h.cursor == 0 {
		return "", false
	}
	h.cursor--
	return h.entries[h.cursor], true
}

// Next moves the cursor one entry forward. Stepping past the newest entry yields
// an empty line; after that it reports false.
func (h *History) Next() (string, bool) {
	if h.cursor >= len(h.entries) {
		return "", false
	}
	h.cursor++
	if h.cursor == len(h.entries) {
		return "", true
	}
	return h.entries[h.cursor], true
}

// ResetCursor ends navigation.
func (h *History) ResetCursor() {
	h.cursor = len(h.entries)
}
