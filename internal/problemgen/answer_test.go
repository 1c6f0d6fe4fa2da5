package problemgen

import (
	"errors"
	"testing"

	"github.com/abhisek/timesmaster/internal/mastery"
)

func TestParseAnswer(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"42", 42, false},
		{" 42 ", 42, false},
		{"042", 42, false},
		{"-3", -3, false},
		{"", 0, true},
		{"   ", 0, true},
		{"abc", 0, true},
		{"12abc", 0, true},
		{"4.5", 0, true},
	}

	for _, tc := range tests {
		got, err := ParseAnswer(tc.input)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidAnswer) {
				t.Errorf("ParseAnswer(%q) error = %v, want ErrInvalidAnswer", tc.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseAnswer(%q) unexpected error: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseAnswer(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestCheckAnswer(t *testing.T) {
	q := NewQuestion(mastery.Fact{A: 7, B: 8})

	given, ok, err := CheckAnswer("56", q)
	if err != nil || !ok || given != 56 {
		t.Errorf("CheckAnswer(56) = %d, %v, %v; want 56, true, nil", given, ok, err)
	}

	given, ok, err = CheckAnswer("54", q)
	if err != nil || ok || given != 54 {
		t.Errorf("CheckAnswer(54) = %d, %v, %v; want 54, false, nil", given, ok, err)
	}

	if _, _, err := CheckAnswer("fifty", q); !errors.Is(err, ErrInvalidAnswer) {
		t.Errorf("CheckAnswer(fifty) error = %v, want ErrInvalidAnswer", err)
	}
}

func TestExplain_WithDots(t *testing.T) {
	got := Explain(NewQuestion(mastery.Fact{A: 3, B: 2}))
	want := "3 × 2 = 6\nThink of it as: 3 groups of 2\n⚫⚫  ⚫⚫  ⚫⚫"
	if got != want {
		t.Errorf("Explain(3×2) =\n%s\nwant\n%s", got, want)
	}
}

func TestExplain_NoDotsForLargeOperands(t *testing.T) {
	tests := []mastery.Fact{{A: 6, B: 2}, {A: 2, B: 6}, {A: 9, B: 9}}
	for _, f := range tests {
		got := Explain(NewQuestion(f))
		if countLines(got) != 2 {
			t.Errorf("Explain(%v) has %d lines, want 2:\n%s", f, countLines(got), got)
		}
	}
}

func countLines(s string) int {
	n := 1
	for _, r := range s {
		if r == '\n' {
			n++
		}
	}
	return n
}
