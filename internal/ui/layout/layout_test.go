package layout

import (
	"strings"
	"testing"
)

func TestIsTooSmall(t *testing.T) {
	if !IsTooSmall(79, 30) {
		t.Error("79 wide should be too small")
	}
	if !IsTooSmall(100, 23) {
		t.Error("23 high should be too small")
	}
	if IsTooSmall(MinWidth, MinHeight) {
		t.Error("minimum size should fit")
	}
}

func TestContentHeight(t *testing.T) {
	if got := ContentHeight(30); got != 24 {
		t.Errorf("ContentHeight(30) = %d, want 24", got)
	}
	if got := ContentHeight(2); got != 0 {
		t.Errorf("ContentHeight(2) = %d, want 0", got)
	}
}

func TestRenderHeader_ShowsStats(t *testing.T) {
	out := RenderHeader("Drill", HeaderStats{Mastered: 12, Total: 81, Streak: 4}, 100)
	for _, want := range []string{"TimesMaster", "Drill", "12/81", "4"} {
		if !strings.Contains(out, want) {
			t.Errorf("header missing %q:\n%s", want, out)
		}
	}
}

func TestRenderFooter_ShowsHints(t *testing.T) {
	out := RenderFooter([]KeyHint{{Key: "Enter", Description: "Submit"}, {Key: "?", Description: "Don't know"}}, 100)
	if !strings.Contains(out, "Enter") || !strings.Contains(out, "Don't know") {
		t.Errorf("footer missing hints:\n%s", out)
	}
}

func TestFrame_Render(t *testing.T) {
	f := Frame{
		Title: "Progress",
		Stats: HeaderStats{Mastered: 3, Total: 81, Streak: 2},
		Hints: []KeyHint{{Key: "Esc", Description: "Back"}},
	}

	var gotW, gotH int
	out := f.Render(100, 30, func(w, h int) string {
		gotW, gotH = w, h
		return "grid goes here"
	})

	if gotW != 100 || gotH != ContentHeight(30) {
		t.Errorf("body got %dx%d, want 100x%d", gotW, gotH, ContentHeight(30))
	}
	for _, want := range []string{"Progress", "3/81", "grid goes here", "Back"} {
		if !strings.Contains(out, want) {
			t.Errorf("frame missing %q", want)
		}
	}
}

func TestFrame_TooSmall(t *testing.T) {
	called := false
	out := Frame{Title: "Drill"}.Render(60, 20, func(w, h int) string {
		called = true
		return ""
	})
	if called {
		t.Error("body should not render in a tiny terminal")
	}
	if !strings.Contains(out, "Terminal too small!") {
		t.Errorf("missing size warning:\n%s", out)
	}
}
