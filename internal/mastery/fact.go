package mastery

import "fmt"

// Grid bounds. The full table covers GridMin..GridMax on both sides.
const (
	GridMin  = 1
	GridMax  = 9
	GridSize = (GridMax - GridMin + 1) * (GridMax - GridMin + 1)
)

// FactKey identifies a fact by its ordered operand pair, e.g. "3×4".
// "3×4" and "4×3" are different facts.
type FactKey string

// Key builds the key for the ordered pair (a, b).
func Key(a, b int) FactKey {
	return FactKey(fmt.Sprintf("%d×%d", a, b))
}

// Fact is an ordered operand pair.
type Fact struct {
	A int
	B int
}

// Key returns the fact's key.
func (f Fact) Key() FactKey {
	return Key(f.A, f.B)
}

// Product returns A × B.
func (f Fact) Product() int {
	return f.A * f.B
}

// InGrid reports whether both operands fall inside the 1..9 table.
func (f Fact) InGrid() bool {
	return InGrid(f.A) && InGrid(f.B)
}

// InGrid reports whether n is a table operand in GridMin..GridMax.
func InGrid(n int) bool {
	return n >= GridMin && n <= GridMax
}

// GridFacts returns all grid facts in row-major order (1×1, 1×2, ... 9×9).
func GridFacts() []Fact {
	facts := make([]Fact, 0, GridSize)
	for a := GridMin; a <= GridMax; a++ {
		for b := GridMin; b <= GridMax; b++ {
			facts = append(facts, Fact{A: a, B: b})
		}
	}
	return facts
}
