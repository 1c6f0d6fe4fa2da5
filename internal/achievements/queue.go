package achievements

// QueueState is the badge presentation state.
type QueueState int

const (
	QueueIdle QueueState = iota
	QueuePresenting
)

// String returns the state name.
func (s QueueState) String() string {
	if s == QueuePresenting {
		return "presenting"
	}
	return "idle"
}

// Queue presents newly earned achievements one at a time. Timing belongs to
// the caller: it shows Current and calls Complete when the presentation
// ends.
type Queue struct {
	state   QueueState
	current Achievement
	pending []Achievement
}

// NewQueue creates an idle queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Enqueue adds achievements in order. An idle queue starts presenting the
// first one. It reports whether a presentation started.
func (q *Queue) Enqueue(items ...Achievement) bool {
	if len(items) == 0 {
		return false
	}
	q.pending = append(q.pending, items...)
	if q.state == QueueIdle {
		q.advance()
		return true
	}
	return false
}

// Complete ends the current presentation and moves to the next pending
// achievement, or back to idle. It reports whether another presentation
// started. Complete on an idle queue is a no-op.
func (q *Queue) Complete() bool {
	if q.state == QueueIdle {
		return false
	}
	if len(q.pending) == 0 {
		q.state = QueueIdle
		q.current = Achievement{}
		return false
	}
	q.advance()
	return true
}

func (q *Queue) advance() {
	q.current = q.pending[0]
	q.pending = q.pending[1:]
	q.state = QueuePresenting
}

// State returns the current FSM state.
func (q *Queue) State() QueueState {
	return q.state
}

// Current returns the achievement being presented.
func (q *Queue) Current() (Achievement, bool) {
	if q.state != QueuePresenting {
		return Achievement{}, false
	}
	return q.current, true
}

// Pending returns the number of achievements waiting behind Current.
func (q *Queue) Pending() int {
	return len(q.pending)
}

// Clear drops everything and returns to idle.
func (q *Queue) Clear() {
	q.state = QueueIdle
	q.current = Achievement{}
	q.pending = nil
}
