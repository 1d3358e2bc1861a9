package chess

// History is the undo stack, oldest snapshot first. There is no redo.
type History struct {
	entries []Snapshot
}

// Record pushes the state as it was right before a move is applied.
func (h *History) Record(b Board, turn Color) {
	h.entries = append(h.entries, Snapshot{Board: b, Turn: turn})
}

// Undo pops the most recent snapshot. ok is false when there is nothing to undo.
func (h *History) Undo() (s Snapshot, ok bool) {
	n := len(h.entries)
	if n == 0 {
		return Snapshot{}, false
	}
	s = h.entries[n-1]
	h.entries = h.entries[:n-1]
	return s, true
}

func (h *History) Len() int { return len(h.entries) }

func (h *History) Reset() { h.entries = nil }
