package problemgen

import "github.com/abhisek/timesmaster/internal/mastery"

// RecentCapacity is the number of recently asked facts kept out of the
// selection pool.
const RecentCapacity = 5

// RecentQueue is a bounded FIFO of recently asked fact keys. Pushing past
// capacity evicts the oldest key.
type RecentQueue struct {
	keys     []mastery.FactKey
	capacity int
}

// NewRecentQueue creates a queue holding at most capacity keys. A
// non-positive capacity uses RecentCapacity.
func NewRecentQueue(capacity int) *RecentQueue {
	if capacity <= 0 {
		capacity = RecentCapacity
	}
	return &RecentQueue{
		keys:     make([]mastery.FactKey, 0, capacity),
		capacity: capacity,
	}
}

// Push appends key, evicting the oldest entry when full.
func (q *RecentQueue) Push(key mastery.FactKey) {
	if len(q.keys) == q.capacity {
		copy(q.keys, q.keys[1:])
		q.keys = q.keys[:len(q.keys)-1]
	}
	q.keys = append(q.keys, key)
}

// Contains reports whether key is in the queue.
func (q *RecentQueue) Contains(key mastery.FactKey) bool {
	for _, k := range q.keys {
		if k == key {
			return true
		}
	}
	return false
}

// Keys returns the queued keys, oldest first.
func (q *RecentQueue) Keys() []mastery.FactKey {
	out := make([]mastery.FactKey, len(q.keys))
	copy(out, q.keys)
	return out
}

// Len returns the number of queued keys.
func (q *RecentQueue) Len() int {
	return len(q.keys)
}

// Clear empties the queue.
func (q *RecentQueue) Clear() {
	q.keys = q.keys[:0]
}
