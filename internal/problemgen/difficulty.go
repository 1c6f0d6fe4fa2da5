package problemgen

import (
	"errors"
	"fmt"
	"strings"
)

// Difficulty selects the operand set questions are drawn from.
type Difficulty string

const (
	DifficultyMixed  Difficulty = "mixed"
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyCustom Difficulty = "custom"
)

// ErrUnknownDifficulty is returned by ParseDifficulty for unrecognised names.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// presets maps each preset mode to its operand set. The easy preset
// includes 10, which lies outside the 1..9 grid.
var presets = map[Difficulty][]int{
	DifficultyMixed:  {1, 2, 3, 4, 5, 6, 7, 8, 9},
	DifficultyEasy:   {2, 5, 10},
	DifficultyMedium: {3, 4, 6, 8},
	DifficultyHard:   {7, 9},
}

// Difficulties returns every mode in menu order.
func Difficulties() []Difficulty {
	return []Difficulty{
		DifficultyMixed,
		DifficultyEasy,
		DifficultyMedium,
		DifficultyHard,
		DifficultyCustom,
	}
}

// ParseDifficulty converts a mode name into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if d == DifficultyCustom {
		return d, nil
	}
	if _, ok := presets[d]; ok {
		return d, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
}

// DisplayName returns a human-readable label for the mode.
func (d Difficulty) DisplayName() string {
	switch d {
	case DifficultyMixed:
		return "Mixed"
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	case DifficultyCustom:
		return "Custom"
	default:
		return string(d)
	}
}

// Description returns the operand list shown next to the mode in menus.
func (d Difficulty) Description() string {
	if d == DifficultyCustom {
		return "Pick your own tables"
	}
	return "Tables " + JoinOperands(OperandSet(d, nil))
}

// OperandSet returns the active operands for a mode. Custom mode uses the
// given operands, or the full 1..9 set when there are none. Unrecognised
// modes use the full set.
func OperandSet(d Difficulty, custom []int) []int {
	if d == DifficultyCustom {
		if len(custom) == 0 {
			return clone(presets[DifficultyMixed])
		}
		return clone(custom)
	}
	if set, ok := presets[d]; ok {
		return clone(set)
	}
	return clone(presets[DifficultyMixed])
}

// JoinOperands formats an operand list as "2, 5, 10".
func JoinOperands(ops []int) string {
	parts := make([]string, len(ops))
	for i, n := range ops {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, ", ")
}

func clone(s []int) []int {
	out := make([]int, len(s))
	copy(out, s)
	return out
}
