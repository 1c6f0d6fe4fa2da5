package mastery

// FactStats holds the learning statistics for a single fact.
// The status is never stored; Status() derives it from the counters.
type FactStats struct {
	Correct            int
	Incorrect          int
	DontKnow           int
	ConsecutiveCorrect int
	TotalAsked         int
}

// Status returns the classified status for the current counters.
func (s *FactStats) Status() Status {
	return Classify(*s)
}

// MarkAsked counts one presentation of the fact.
func (s *FactStats) MarkAsked() {
	s.TotalAsked++
}

// RecordCorrect counts a correct answer.
func (s *FactStats) RecordCorrect() {
	s.Correct++
	s.ConsecutiveCorrect++
}

// RecordIncorrect counts a wrong answer and breaks the run of correct answers.
func (s *FactStats) RecordIncorrect() {
	s.Incorrect++
	s.ConsecutiveCorrect = 0
}

// RecordDontKnow counts a "don't know" response and breaks the run of
// correct answers.
func (s *FactStats) RecordDontKnow() {
	s.DontKnow++
	s.ConsecutiveCorrect = 0
}

// Answered returns the number of answers recorded for the fact.
func (s *FactStats) Answered() int {
	return s.Correct + s.Incorrect + s.DontKnow
}

// Accuracy returns the share of answers that were correct.
func (s *FactStats) Accuracy() float64 {
	n := s.Answered()
	if n == 0 {
		return 0.0
	}
	return float64(s.Correct) / float64(n)
}
