// Package tui provides the full-screen Bubble Tea interface: a scrolling
// narrative, a status bar and a command line with history.
package tui

import "strings"

// History keeps the game commands typed at the prompt, oldest first. It
// feeds Up/Down recall and the "again" shortcut. Repeat words and slash
// commands are never stored, so Last is always a command the engine ran.
type History struct {
	entries []string
	limit   int
	pos     int // len(entries) while not browsing
}

// NewHistory creates a history holding at most limit commands.
func NewHistory(limit int) *History {
	return &History{entries: make([]string, 0, limit), limit: limit}
}

// Record stores cmd in its normalised form and stops any browsing. It
// reports whether cmd was stored. A command equal to the newest entry is
// not stored twice.
func (h *History) Record(cmd string) bool {
	defer h.Rewind()

	cmd = normaliseCommand(cmd)
	if !recordable(cmd) {
		return false
	}
	if n := len(h.entries); n > 0 && h.entries[n-1] == cmd {
		return false
	}
	h.entries = append(h.entries, cmd)
	if len(h.entries) > h.limit {
		h.entries = h.entries[1:]
	}
	return true
}

// Last returns the newest stored command.
func (h *History) Last() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	return h.entries[len(h.entries)-1], true
}

// Older steps back one command. It stays on the oldest entry once there.
func (h *History) Older() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	if h.pos > 0 {
		h.pos--
	}
	return h.entries[h.pos], true
}

// Newer steps forward one command. Stepping past the newest entry ends
// browsing and returns false.
func (h *History) Newer() (string, bool) {
	if h.pos >= len(h.entries)-1 {
		h.Rewind()
		return "", false
	}
	h.pos++
	return h.entries[h.pos], true
}

// Rewind ends browsing; the next Older returns the newest entry.
func (h *History) Rewind() {
	h.pos = len(h.entries)
}

// Len returns the number of stored commands.
func (h *History) Len() int {
	return len(h.entries)
}

// normaliseCommand lowercases cmd and collapses its whitespace, which is
// how the parser reads it anyway.
func normaliseCommand(cmd string) string {
	return strings.ToLower(strings.Join(strings.Fields(cmd), " "))
}

func recordable(cmd string) bool {
	switch cmd {
	case "", "again", "g":
		return false
	}
	return !strings.HasPrefix(cmd, "/")
}
