package achievements

// Family identifies which session counter an achievement is measured
// against.
type Family string

const (
	FamilyTable  Family = "table"  // tableProgress[Table]
	FamilyStreak Family = "streak" // maxStreak
	FamilyTotal  Family = "total"  // totalCorrect
)

// AllFamilies returns all families in evaluation and display order.
func AllFamilies() []Family {
	return []Family{FamilyTable, FamilyStreak, FamilyTotal}
}

// DisplayName returns a human-readable label for the family.
func (f Family) DisplayName() string {
	switch f {
	case FamilyTable:
		return "Table Masters"
	case FamilyStreak:
		return "Streaks"
	case FamilyTotal:
		return "Total Correct"
	default:
		return string(f)
	}
}

// Achievement is a fixed milestone that can be earned once per session.
type Achievement struct {
	ID     string
	Icon   string
	Name   string
	Family Family

	// Table is the operand for FamilyTable achievements, 0 otherwise.
	Table int

	// Target is the counter value that earns the achievement.
	Target int
}

// Counters are the session values achievements are checked against.
type Counters struct {
	TotalCorrect  int
	MaxStreak     int
	TableProgress map[int]int
}

// Value returns the counter that a is compared against.
func (c Counters) Value(a Achievement) int {
	switch a.Family {
	case FamilyTable:
		return c.TableProgress[a.Table]
	case FamilyStreak:
		return c.MaxStreak
	case FamilyTotal:
		return c.TotalCorrect
	default:
		return 0
	}
}
