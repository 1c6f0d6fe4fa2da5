package problemgen

import (
	"fmt"
	"strings"
)

// Dot-picture limits: groups are drawn only when both operands are at
// most DotLimit.
const (
	DotLimit = 5
	dot      = "⚫"
)

// Explain returns the worked breakdown shown after "I don't know", e.g.
//
//	3 × 4 = 12
//	Think of it as: 3 groups of 4
//	⚫⚫⚫⚫  ⚫⚫⚫⚫  ⚫⚫⚫⚫
//
// The dot line is omitted when either operand is larger than DotLimit.
func Explain(q Question) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d × %d = %d\n", q.Operand1, q.Operand2, q.Answer)
	fmt.Fprintf(&b, "Think of it as: %d groups of %d", q.Operand1, q.Operand2)

	if q.Operand1 <= DotLimit && q.Operand2 <= DotLimit && q.Operand1 > 0 && q.Operand2 > 0 {
		group := strings.Repeat(dot, q.Operand2)
		groups := make([]string, q.Operand1)
		for i := range groups {
			groups[i] = group
		}
		b.WriteString("\n")
		b.WriteString(strings.Join(groups, "  "))
	}
	return b.String()
}
