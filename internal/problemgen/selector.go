package problemgen

import "github.com/abhisek/timesmaster/internal/mastery"

// RandSource is the single source of randomness used for selection.
// *math/rand/v2.Rand satisfies it.
type RandSource interface {
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
	// IntN returns a value in [0, n).
	IntN(n int) int
}

// Selector chooses the next fact to ask.
type Selector interface {
	// Select picks a question from the operand set of the given mode,
	// avoiding recently asked facts when possible.
	Select(d Difficulty, custom []int, history *mastery.History, recent *RecentQueue) Question
}

// bucketRule sends draws below Below to the bucket for Status.
type bucketRule struct {
	Below  float64
	Status mastery.Status
}

// weightedRules gives needs-practice 60%, new 15%, learning 20% and
// mastered 5% of draws. Rules are evaluated in order; a rule only wins
// if its bucket is non-empty.
var weightedRules = []bucketRule{
	{Below: 60, Status: mastery.StatusNeedsPractice},
	{Below: 75, Status: mastery.StatusNew},
	{Below: 95, Status: mastery.StatusLearning},
	{Below: 100, Status: mastery.StatusMastered},
}

// WeightedSelector implements the 60/15/20/5 weighted strategy.
type WeightedSelector struct {
	rand RandSource
}

// NewSelector creates a WeightedSelector drawing from r.
func NewSelector(r RandSource) *WeightedSelector {
	return &WeightedSelector{rand: r}
}

// Select picks the next question. A question is always produced as long as
// the operand set is non-empty.
func (s *WeightedSelector) Select(d Difficulty, custom []int, history *mastery.History, recent *RecentQueue) Question {
	full := CandidatePool(OperandSet(d, custom))
	if len(full) == 0 {
		full = CandidatePool(OperandSet(DifficultyMixed, nil))
	}

	pool := filterRecent(full, recent)
	buckets := Partition(pool, history)

	r := s.rand.Float64() * 100
	return NewQuestion(s.pick(chooseBucket(r, buckets, pool)))
}

func (s *WeightedSelector) pick(facts []mastery.Fact) mastery.Fact {
	return facts[s.rand.IntN(len(facts))]
}

// chooseBucket applies the weighted rules for draw r, then falls back
// through the buckets in priority order, then to the pool itself.
func chooseBucket(r float64, buckets map[mastery.Status][]mastery.Fact, pool []mastery.Fact) []mastery.Fact {
	for _, rule := range weightedRules {
		if r < rule.Below && len(buckets[rule.Status]) > 0 {
			return buckets[rule.Status]
		}
	}
	for _, status := range mastery.AllStatuses() {
		if len(buckets[status]) > 0 {
			return buckets[status]
		}
	}
	return pool
}

// CandidatePool returns every ordered pair drawn from ops, including
// squares and both orders of each pair.
func CandidatePool(ops []int) []mastery.Fact {
	pool := make([]mastery.Fact, 0, len(ops)*len(ops))
	for _, a := range ops {
		for _, b := range ops {
			pool = append(pool, mastery.Fact{A: a, B: b})
		}
	}
	return pool
}

// filterRecent drops recently asked facts. When every candidate is recent
// the full pool is returned unchanged.
func filterRecent(pool []mastery.Fact, recent *RecentQueue) []mastery.Fact {
	if recent == nil || recent.Len() == 0 {
		return pool
	}
	filtered := make([]mastery.Fact, 0, len(pool))
	for _, f := range pool {
		if !recent.Contains(f.Key()) {
			filtered = append(filtered, f)
		}
	}
	if len(filtered) == 0 {
		return pool
	}
	return filtered
}

// Partition groups facts by their current status, preserving pool order.
func Partition(pool []mastery.Fact, history *mastery.History) map[mastery.Status][]mastery.Fact {
	buckets := make(map[mastery.Status][]mastery.Fact, 4)
	for _, f := range pool {
		status := history.Status(f)
		buckets[status] = append(buckets[status], f)
	}
	return buckets
}
