package drill

// advanceMsg fires when the feedback delay for question seq has passed.
type advanceMsg struct {
	owner *DrillScreen
	seq   int
}

// badgeDoneMsg fires when popup seq has been on screen long enough.
type badgeDoneMsg struct {
	owner *DrillScreen
	seq   int
}
