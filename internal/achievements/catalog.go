package achievements

import (
	"fmt"

	"github.com/abhisek/timesmaster/internal/mastery"
)

// TableTarget is the correct-answer count that masters one table.
const TableTarget = 5

var tableIcons = [...]string{"1️⃣", "2️⃣", "3️⃣", "4️⃣", "5️⃣", "6️⃣", "7️⃣", "8️⃣", "9️⃣"}

var streakAchievements = []Achievement{
	{ID: "streak_5", Icon: "🔥", Name: "On Fire", Family: FamilyStreak, Target: 5},
	{ID: "streak_10", Icon: "🔥🔥", Name: "Unstoppable", Family: FamilyStreak, Target: 10},
	{ID: "streak_15", Icon: "🔥🔥🔥", Name: "Legendary Streak", Family: FamilyStreak, Target: 15},
}

var totalAchievements = []Achievement{
	{ID: "total_10", Icon: "⭐", Name: "Quick Learner", Family: FamilyTotal, Target: 10},
	{ID: "total_25", Icon: "⭐⭐", Name: "Math Star", Family: FamilyTotal, Target: 25},
	{ID: "total_50", Icon: "⭐⭐⭐", Name: "Math Wizard", Family: FamilyTotal, Target: 50},
	{ID: "total_100", Icon: "🌟", Name: "Math Champion", Family: FamilyTotal, Target: 100},
}

// TableID returns the achievement id for operand n, e.g. "table_7".
func TableID(n int) string {
	return fmt.Sprintf("table_%d", n)
}

// TableAchievements returns table_1..table_9 in ascending operand order.
func TableAchievements() []Achievement {
	out := make([]Achievement, 0, mastery.GridMax)
	for n := mastery.GridMin; n <= mastery.GridMax; n++ {
		out = append(out, Achievement{
			ID:     TableID(n),
			Icon:   tableIcons[n-1],
			Name:   fmt.Sprintf("Master of %ds", n),
			Family: FamilyTable,
			Table:  n,
			Target: TableTarget,
		})
	}
	return out
}

// StreakAchievements returns the streak family in ascending target order.
func StreakAchievements() []Achievement {
	return append([]Achievement(nil), streakAchievements...)
}

// TotalAchievements returns the total family in ascending target order.
func TotalAchievements() []Achievement {
	return append([]Achievement(nil), totalAchievements...)
}

// ByFamily returns the achievements of one family in evaluation order.
func ByFamily(f Family) []Achievement {
	switch f {
	case FamilyTable:
		return TableAchievements()
	case FamilyStreak:
		return StreakAchievements()
	case FamilyTotal:
		return TotalAchievements()
	default:
		return nil
	}
}

// Catalog returns every achievement in evaluation order: tables, streaks,
// then totals.
func Catalog() []Achievement {
	var all []Achievement
	for _, f := range AllFamilies() {
		all = append(all, ByFamily(f)...)
	}
	return all
}

// Lookup finds an achievement by id.
func Lookup(id string) (Achievement, bool) {
	for _, a := range Catalog() {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}
