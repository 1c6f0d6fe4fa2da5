package problemgen

import (
	"fmt"

	"github.com/abhisek/timesmaster/internal/mastery"
)

// Question represents a multiplication fact ready for display.
type Question struct {
	// Operand1 and Operand2 are the ordered factors. 3×4 and 4×3 are
	// different questions.
	Operand1 int
	Operand2 int

	// Key identifies the fact in the history store.
	Key mastery.FactKey

	// Answer is the product.
	Answer int
}

// NewQuestion builds the question for the ordered fact (a, b).
func NewQuestion(f mastery.Fact) Question {
	return Question{
		Operand1: f.A,
		Operand2: f.B,
		Key:      f.Key(),
		Answer:   f.Product(),
	}
}

// Fact returns the operand pair behind the question.
func (q Question) Fact() mastery.Fact {
	return mastery.Fact{A: q.Operand1, B: q.Operand2}
}

// Text returns the prompt shown to the learner, e.g. "7 × 8 = ?".
func (q Question) Text() string {
	return fmt.Sprintf("%d × %d = ?", q.Operand1, q.Operand2)
}

// IsZero reports whether q is the zero Question (no question asked yet).
func (q Question) IsZero() bool {
	return q.Key == ""
}
