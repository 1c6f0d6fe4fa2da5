package mastery

// Status represents a fact's position in the mastery lifecycle.
type Status string

const (
	StatusNew           Status = "new"
	StatusLearning      Status = "learning"
	StatusNeedsPractice Status = "needs-practice"
	StatusMastered      Status = "mastered"
)

// Mastery thresholds.
const (
	MasteredConsecutive = 3
	MasteredCorrect     = 5
)

// AllStatuses returns every status in selection priority order.
func AllStatuses() []Status {
	return []Status{StatusNeedsPractice, StatusNew, StatusLearning, StatusMastered}
}

// DisplayName returns a human-readable label for the status.
func (s Status) DisplayName() string {
	switch s {
	case StatusNew:
		return "New"
	case StatusLearning:
		return "Learning"
	case StatusNeedsPractice:
		return "Needs practice"
	case StatusMastered:
		return "Mastered"
	default:
		return string(s)
	}
}

// Classify derives the status from a fact's statistics. Rules are checked
// in order and the first match wins.
func Classify(s FactStats) Status {
	switch {
	case s.ConsecutiveCorrect >= MasteredConsecutive && s.Correct >= MasteredCorrect:
		return StatusMastered
	case s.DontKnow > 0 || s.Incorrect > s.Correct:
		return StatusNeedsPractice
	case s.TotalAsked > 0:
		return StatusLearning
	default:
		return StatusNew
	}
}

// StatusChange records a status change caused by an answer, for feedback
// display and event logging.
type StatusChange struct {
	Key  FactKey
	From Status
	To   Status
}
