package mastery

// History maps every fact to its learning statistics for one session.
// It is created with the 81 grid facts; facts outside the grid (operand 10
// in the easy preset) are added on first access.
type History struct {
	facts map[FactKey]*FactStats
}

// NewHistory creates a history with all grid facts in the new state.
func NewHistory() *History {
	h := &History{}
	h.Reset()
	return h
}

// Reset discards all statistics and reseeds the grid.
func (h *History) Reset() {
	h.facts = make(map[FactKey]*FactStats, GridSize)
	for _, f := range GridFacts() {
		h.facts[f.Key()] = &FactStats{}
	}
}

// Get returns the statistics for a fact, creating an empty record if the
// fact has not been seen.
func (h *History) Get(f Fact) *FactStats {
	key := f.Key()
	if s, ok := h.facts[key]; ok {
		return s
	}
	s := &FactStats{}
	h.facts[key] = s
	return s
}

// Lookup returns the statistics for key without creating a record.
func (h *History) Lookup(key FactKey) (FactStats, bool) {
	s, ok := h.facts[key]
	if !ok {
		return FactStats{}, false
	}
	return *s, true
}

// Status returns the status of a fact. Unknown facts are new.
func (h *History) Status(f Fact) Status {
	if s, ok := h.facts[f.Key()]; ok {
		return s.Status()
	}
	return StatusNew
}

// MarkAsked counts one presentation of the fact.
func (h *History) MarkAsked(f Fact) {
	h.Get(f).MarkAsked()
}

// MasteredCount returns the number of mastered grid facts, out of GridSize.
func (h *History) MasteredCount() int {
	n := 0
	for _, f := range GridFacts() {
		if h.Status(f) == StatusMastered {
			n++
		}
	}
	return n
}

// CountByStatus tallies grid facts by status.
func (h *History) CountByStatus() map[Status]int {
	counts := make(map[Status]int, 4)
	for _, f := range GridFacts() {
		counts[h.Status(f)]++
	}
	return counts
}

// Len returns the number of tracked facts, including off-grid ones.
func (h *History) Len() int {
	return len(h.facts)
}
