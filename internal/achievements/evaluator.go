package achievements

// Evaluator checks session counters against the catalog and remembers
// which achievements have been earned. Earned ids are never removed.
type Evaluator struct {
	catalog []Achievement
	earned  map[string]bool
	order   []string
}

// NewEvaluator creates an evaluator over the full catalog.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		catalog: Catalog(),
		earned:  make(map[string]bool),
	}
}

// Check returns the achievements newly earned by c, in catalog order, and
// marks them earned. Calling Check again with the same counters returns
// nothing.
func (e *Evaluator) Check(c Counters) []Achievement {
	var fresh []Achievement
	for _, a := range e.catalog {
		if e.earned[a.ID] {
			continue
		}
		if c.Value(a) >= a.Target {
			e.earned[a.ID] = true
			e.order = append(e.order, a.ID)
			fresh = append(fresh, a)
		}
	}
	return fresh
}

// Earned reports whether id has been earned.
func (e *Evaluator) Earned(id string) bool {
	return e.earned[id]
}

// EarnedIDs returns earned ids in the order they were earned.
func (e *Evaluator) EarnedIDs() []string {
	return append([]string(nil), e.order...)
}

// EarnedCount returns how many achievements have been earned.
func (e *Evaluator) EarnedCount() int {
	return len(e.order)
}

// Total returns the catalog size.
func (e *Evaluator) Total() int {
	return len(e.catalog)
}

// Progress returns the current value and target for a, capped at the
// target for display.
func (e *Evaluator) Progress(a Achievement, c Counters) (current, target int) {
	current = c.Value(a)
	if current > a.Target {
		current = a.Target
	}
	return current, a.Target
}

// Reset forgets every earned achievement. Used when a new session starts.
func (e *Evaluator) Reset() {
	e.earned = make(map[string]bool)
	e.order = nil
}
