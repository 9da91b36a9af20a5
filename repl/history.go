package repl

import "sync"

// CommandHistory maintains the history of expressions entered at the
// repl prompt, with up/down navigation the same way a shell history
// buffer works.
type CommandHistory struct {
	mu       sync.RWMutex
	commands []string
	maxSize  int
	position int // current navigation position
}

// NewCommandHistory creates an empty history capped at maxSize entries.
// A maxSize <= 0 falls back to a default of 1000.
func NewCommandHistory(maxSize int) *CommandHistory {
	if maxSize <= 0 {
		maxSize = 1000
	}
	return &CommandHistory{
		commands: make([]string, 0, 64),
		maxSize:  maxSize,
	}
}

// Add appends cmd to the history, unless it is empty or a repeat of the
// immediately preceding entry, and resets the navigation position to
// the end.
func (h *CommandHistory) Add(cmd string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if cmd == "" {
		return
	}
	if len(h.commands) > 0 && h.commands[len(h.commands)-1] == cmd {
		h.position = len(h.commands)
		return
	}

	h.commands = append(h.commands, cmd)
	if len(h.commands) > h.maxSize {
		h.commands = h.commands[len(h.commands)-h.maxSize:]
	}
	h.position = len(h.commands)
}

// Previous moves the navigation cursor back one entry and returns it,
// or "" if already at the start.
func (h *CommandHistory) Previous() string {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.commands) == 0 || h.position == 0 {
		return ""
	}
	h.position--
	return h.commands[h.position]
}

// Next moves the navigation cursor forward one entry and returns it, or
// "" once it reaches the end.
func (h *CommandHistory) Next() string {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.commands) == 0 {
		return ""
	}
	if h.position >= len(h.commands)-1 {
		h.position = len(h.commands)
		return ""
	}
	h.position++
	return h.commands[h.position]
}

// All returns a copy of every entry in history, oldest first.
func (h *CommandHistory) All() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	result := make([]string, len(h.commands))
	copy(result, h.commands)
	return result
}

// Size returns the number of entries currently stored.
func (h *CommandHistory) Size() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.commands)
}

// Clear empties the history and resets the navigation cursor.
func (h *CommandHistory) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.commands = h.commands[:0]
	h.position = 0
}
