package world

// History is a bounded stack of scene snapshots for undo
type History struct {
	limit     int
	snapshots [][]byte
}

// NewHistory keeps at most limit snapshots. A limit of 0 disables undo.
func NewHistory(limit int) *History {
	return &History{limit: limit}
}

// Push adds a snapshot, dropping the oldest once the limit is reached.
func (h *History) Push(snapshot []byte) {
	if h.limit <= 0 {
		return
	}
	if len(h.snapshots) >= h.limit {
		// move everything down 1 slot...
		copy(h.snapshots, h.snapshots[1:])
		// ...and override last record
		h.snapshots[len(h.snapshots)-1] = snapshot
		return
	}
	h.snapshots = append(h.snapshots, snapshot)
}

func (h *History) Pop() ([]byte, bool) {
	if len(h.snapshots) == 0 {
		return nil, false
	}
	last := h.snapshots[len(h.snapshots)-1]
	h.snapshots[len(h.snapshots)-1] = nil
	h.snapshots = h.snapshots[:len(h.snapshots)-1]
	return last, true
}

func (h *History) Len() int {
	return len(h.snapshots)
}
