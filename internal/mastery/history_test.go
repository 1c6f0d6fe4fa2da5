package mastery

import "testing"

func TestKey_Ordered(t *testing.T) {
	if Key(3, 4) == Key(4, 3) {
		t.Error("3×4 and 4×3 must be distinct keys")
	}
	if got := Key(3, 4); got != "3×4" {
		t.Errorf("Key(3, 4) = %q, want %q", got, "3×4")
	}
}

func TestGridFacts(t *testing.T) {
	facts := GridFacts()
	if len(facts) != GridSize {
		t.Fatalf("len = %d, want %d", len(facts), GridSize)
	}
	if facts[0] != (Fact{A: 1, B: 1}) || facts[len(facts)-1] != (Fact{A: 9, B: 9}) {
		t.Errorf("unexpected order: first %v last %v", facts[0], facts[len(facts)-1])
	}
}

func TestNewHistory_AllNew(t *testing.T) {
	h := NewHistory()
	if h.Len() != 81 {
		t.Errorf("Len = %d, want 81", h.Len())
	}
	counts := h.CountByStatus()
	if counts[StatusNew] != 81 {
		t.Errorf("new count = %d, want 81", counts[StatusNew])
	}
	if h.MasteredCount() != 0 {
		t.Errorf("MasteredCount = %d, want 0", h.MasteredCount())
	}
}

func TestHistory_StatusFollowsStats(t *testing.T) {
	h := NewHistory()
	f := Fact{A: 3, B: 4}

	h.MarkAsked(f)
	if got := h.Status(f); got != StatusLearning {
		t.Fatalf("after ask: %s, want learning", got)
	}

	h.Get(f).RecordDontKnow()
	if got := h.Status(f); got != StatusNeedsPractice {
		t.Fatalf("after don't know: %s, want needs-practice", got)
	}

	// Mastery needs five correct with the last three in a row.
	for i := 0; i < 5; i++ {
		h.MarkAsked(f)
		h.Get(f).RecordCorrect()
	}
	if got := h.Status(f); got != StatusMastered {
		t.Fatalf("after five correct: %s, want mastered", got)
	}
	if h.MasteredCount() != 1 {
		t.Errorf("MasteredCount = %d, want 1", h.MasteredCount())
	}

	h.Get(f).RecordIncorrect()
	stats, _ := h.Lookup(f.Key())
	if stats.ConsecutiveCorrect != 0 {
		t.Errorf("ConsecutiveCorrect = %d, want 0", stats.ConsecutiveCorrect)
	}
	if got := h.Status(f); got != StatusNeedsPractice {
		t.Errorf("after miss: %s, want needs-practice (don't-know still counts)", got)
	}
}

func TestHistory_OffGridFactsNotCounted(t *testing.T) {
	h := NewHistory()
	f := Fact{A: 10, B: 5}
	if f.InGrid() {
		t.Fatal("10×5 should be off-grid")
	}
	if got := h.Status(f); got != StatusNew {
		t.Errorf("unknown fact status = %s, want new", got)
	}

	for i := 0; i < 5; i++ {
		h.MarkAsked(f)
		h.Get(f).RecordCorrect()
	}
	if got := h.Status(f); got != StatusMastered {
		t.Errorf("status = %s, want mastered", got)
	}
	if h.MasteredCount() != 0 {
		t.Errorf("MasteredCount = %d, want 0 (off-grid)", h.MasteredCount())
	}
	if h.Len() != 82 {
		t.Errorf("Len = %d, want 82", h.Len())
	}
}

func TestHistory_Reset(t *testing.T) {
	h := NewHistory()
	h.MarkAsked(Fact{A: 2, B: 2})
	h.MarkAsked(Fact{A: 10, B: 10})
	h.Reset()
	if h.Len() != 81 {
		t.Errorf("Len after reset = %d, want 81", h.Len())
	}
	if got := h.Status(Fact{A: 2, B: 2}); got != StatusNew {
		t.Errorf("status after reset = %s, want new", got)
	}
}

func TestFactStats_Accuracy(t *testing.T) {
	s := FactStats{Correct: 3, Incorrect: 1}
	if got := s.Accuracy(); got != 0.75 {
		t.Errorf("Accuracy = %f, want 0.75", got)
	}
	empty := FactStats{}
	if got := empty.Accuracy(); got != 0 {
		t.Errorf("empty Accuracy = %f, want 0", got)
	}
}
