package problemgen

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidAnswer is returned when the learner's input is not a whole
// number.
var ErrInvalidAnswer = errors.New("invalid answer")

// ParseAnswer converts the learner's input into an integer.
//
// Surrounding whitespace is trimmed and leading zeros are accepted
// ("042" is 42). Anything else that is not a base-10 integer, including
// "12abc" and "", is rejected with ErrInvalidAnswer.
func ParseAnswer(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidAnswer)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAnswer, raw)
	}
	return n, nil
}

// CheckAnswer parses raw and compares it against the question's product.
func CheckAnswer(raw string, q Question) (given int, correct bool, err error) {
	given, err = ParseAnswer(raw)
	if err != nil {
		return 0, false, err
	}
	return given, given == q.Answer, nil
}
