package diagnosis

import (
	"fmt"
	"strconv"
)

// NeighbourFactClassifier flags answers that belong to an adjacent fact,
// e.g. 7×8 answered with 49 (7×7) or 64 (8×8).
type NeighbourFactClassifier struct{}

func (c *NeighbourFactClassifier) Name() string { return "neighbour-fact" }

func (c *NeighbourFactClassifier) Classify(input *ClassifyInput) (ErrorCategory, float64) {
	if _, ok := neighbourOf(input.Question.Operand1, input.Question.Operand2, input.Given); ok {
		return CategoryNeighbourFact, 0.7
	}
	return "", 0
}

// neighbourOf returns the adjacent fact whose product is given.
func neighbourOf(a, b, given int) (string, bool) {
	candidates := [][2]int{{a, b - 1}, {a, b + 1}, {a - 1, b}, {a + 1, b}}
	for _, c := range candidates {
		if c[0] < 1 || c[1] < 1 {
			continue
		}
		if c[0]*c[1] == given && given != a*b {
			return fmt.Sprintf("%d × %d", c[0], c[1]), true
		}
	}
	return "", false
}

// AdditionMixupClassifier flags answers equal to the sum of the operands.
type AdditionMixupClassifier struct{}

func (c *AdditionMixupClassifier) Name() string { return "addition-mixup" }

func (c *AdditionMixupClassifier) Classify(input *ClassifyInput) (ErrorCategory, float64) {
	q := input.Question
	if input.Given == q.Operand1+q.Operand2 && q.Answer != input.Given {
		return CategoryAdditionMixup, 0.85
	}
	return "", 0
}

// DigitSwapClassifier flags two-digit products written with the digits
// reversed, e.g. 54 for 45.
type DigitSwapClassifier struct{}

func (c *DigitSwapClassifier) Name() string { return "digit-swap" }

func (c *DigitSwapClassifier) Classify(input *ClassifyInput) (ErrorCategory, float64) {
	p := input.Question.Answer
	if p < 10 || p > 99 || p%11 == 0 {
		return "", 0
	}
	if input.Given == reverseDigits(p) {
		return CategoryDigitSwap, 0.9
	}
	return "", 0
}

func reverseDigits(n int) int {
	s := []byte(strconv.Itoa(n))
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
	r, _ := strconv.Atoi(string(s))
	return r
}
