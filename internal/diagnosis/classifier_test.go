package diagnosis

import (
	"testing"

	"github.com/abhisek/timesmaster/internal/mastery"
	"github.com/abhisek/timesmaster/internal/problemgen"
)

func q(a, b int) problemgen.Question {
	return problemgen.NewQuestion(mastery.Fact{A: a, B: b})
}

func TestNeighbourFactClassifier(t *testing.T) {
	c := &NeighbourFactClassifier{}
	tests := []struct {
		given int
		want  ErrorCategory
	}{
		{49, CategoryNeighbourFact}, // 7×7
		{63, CategoryNeighbourFact}, // 7×9
		{48, CategoryNeighbourFact}, // 6×8
		{64, CategoryNeighbourFact}, // 8×8
		{50, ""},
	}
	for _, tc := range tests {
		cat, _ := c.Classify(&ClassifyInput{Question: q(7, 8), Given: tc.given})
		if cat != tc.want {
			t.Errorf("7×8 given %d: got %q, want %q", tc.given, cat, tc.want)
		}
	}
}

func TestNeighbourFactClassifier_NoZeroOperands(t *testing.T) {
	c := &NeighbourFactClassifier{}
	// 1×3 has no 0×3 neighbour, so 0 is not a neighbour answer.
	cat, _ := c.Classify(&ClassifyInput{Question: q(1, 3), Given: 0})
	if cat != "" {
		t.Errorf("got %q, want empty", cat)
	}
}

func TestAdditionMixupClassifier(t *testing.T) {
	c := &AdditionMixupClassifier{}
	cat, conf := c.Classify(&ClassifyInput{Question: q(6, 7), Given: 13})
	if cat != CategoryAdditionMixup {
		t.Errorf("got %q, want %q", cat, CategoryAdditionMixup)
	}
	if conf != 0.85 {
		t.Errorf("got confidence %f, want 0.85", conf)
	}
	if cat, _ := c.Classify(&ClassifyInput{Question: q(6, 7), Given: 14}); cat != "" {
		t.Errorf("got %q for 14, want empty", cat)
	}
}

func TestDigitSwapClassifier(t *testing.T) {
	c := &DigitSwapClassifier{}
	tests := []struct {
		name  string
		q     problemgen.Question
		given int
		want  ErrorCategory
	}{
		{"45 as 54", q(5, 9), 54, CategoryDigitSwap},
		{"63 as 36", q(7, 9), 36, CategoryDigitSwap},
		{"single digit product", q(2, 3), 6, ""},
		{"palindrome product", q(1, 11), 11, ""},
		{"unrelated", q(5, 9), 44, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cat, _ := c.Classify(&ClassifyInput{Question: tc.q, Given: tc.given})
			if cat != tc.want {
				t.Errorf("got %q, want %q", cat, tc.want)
			}
		})
	}
}

func TestSpeedRushClassifier(t *testing.T) {
	c := &SpeedRushClassifier{}
	tests := []struct {
		ms   int
		want ErrorCategory
	}{
		{0, CategorySpeedRush},
		{1000, CategorySpeedRush},
		{SpeedRushThresholdMs, ""},
		{5000, ""},
		{-1, ""},
	}
	for _, tc := range tests {
		cat, _ := c.Classify(&ClassifyInput{ResponseTimeMs: tc.ms})
		if cat != tc.want {
			t.Errorf("%dms: got %q, want %q", tc.ms, cat, tc.want)
		}
	}
}

func TestCarelessClassifier(t *testing.T) {
	c := &CarelessClassifier{}
	tests := []struct {
		acc  float64
		want ErrorCategory
	}{
		{0.85, CategoryCareless},
		{0.80, ""},
		{0.60, ""},
	}
	for _, tc := range tests {
		cat, _ := c.Classify(&ClassifyInput{FactAccuracy: tc.acc})
		if cat != tc.want {
			t.Errorf("accuracy %.2f: got %q, want %q", tc.acc, cat, tc.want)
		}
	}
}

func TestRunClassifiers_PatternBeatsTiming(t *testing.T) {
	input := &ClassifyInput{
		Question:       q(6, 7),
		Given:          13,
		ResponseTimeMs: 300,
		FactAccuracy:   0.9,
	}
	cat, _, name := RunClassifiers(DefaultClassifiers(), input)
	if cat != CategoryAdditionMixup {
		t.Errorf("got %q, want %q", cat, CategoryAdditionMixup)
	}
	if name != "addition-mixup" {
		t.Errorf("got classifier %q", name)
	}
}

func TestRunClassifiers_NoMatch(t *testing.T) {
	input := &ClassifyInput{
		Question:       q(6, 7),
		Given:          50,
		ResponseTimeMs: 5000,
		FactAccuracy:   0.5,
	}
	cat, conf, name := RunClassifiers(DefaultClassifiers(), input)
	if cat != "" || conf != 0 || name != "" {
		t.Errorf("got (%q, %f, %q), want no match", cat, conf, name)
	}
}

func TestDefaultClassifiers_Order(t *testing.T) {
	want := []string{"digit-swap", "addition-mixup", "neighbour-fact", "speed-rush", "careless"}
	got := DefaultClassifiers()
	if len(got) != len(want) {
		t.Fatalf("got %d classifiers, want %d", len(got), len(want))
	}
	for i, c := range got {
		if c.Name() != want[i] {
			t.Errorf("classifier %d is %q, want %q", i, c.Name(), want[i])
		}
	}
}
