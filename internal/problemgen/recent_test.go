package problemgen

import (
	"fmt"
	"slices"
	"testing"

	"github.com/abhisek/timesmaster/internal/mastery"
)

func TestRecentQueue_EvictsOldest(t *testing.T) {
	q := NewRecentQueue(RecentCapacity)
	for i := 1; i <= 7; i++ {
		q.Push(mastery.Key(i, i))
		if q.Len() > RecentCapacity {
			t.Fatalf("Len = %d after %d pushes, exceeds %d", q.Len(), i, RecentCapacity)
		}
	}

	want := []mastery.FactKey{"3×3", "4×4", "5×5", "6×6", "7×7"}
	if got := q.Keys(); !slices.Equal(got, want) {
		t.Errorf("Keys = %v, want %v", got, want)
	}
	if q.Contains("1×1") || q.Contains("2×2") {
		t.Error("evicted keys still present")
	}
	if !q.Contains("7×7") {
		t.Error("newest key missing")
	}
}

func TestRecentQueue_DefaultCapacity(t *testing.T) {
	q := NewRecentQueue(0)
	for i := 0; i < 10; i++ {
		q.Push(mastery.FactKey(fmt.Sprint(i)))
	}
	if q.Len() != RecentCapacity {
		t.Errorf("Len = %d, want %d", q.Len(), RecentCapacity)
	}
}

func TestRecentQueue_Clear(t *testing.T) {
	q := NewRecentQueue(3)
	q.Push("1×2")
	q.Clear()
	if q.Len() != 0 || q.Contains("1×2") {
		t.Error("Clear did not empty the queue")
	}
}
