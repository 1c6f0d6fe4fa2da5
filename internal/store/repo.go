package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	SessionID string    // only events of this session ("" = all)
	Limit     int       // max results (0 = unlimited)
	After     int64     // sequence > After
	Before    int64     // sequence < Before
	From      time.Time // timestamp >= From
	To        time.Time // timestamp <= To
	Newest    bool      // newest first instead of oldest first
}

// Outcome names stored in answer_events.outcome.
const (
	OutcomeCorrect   = "correct"
	OutcomeIncorrect = "incorrect"
	OutcomeDontKnow  = "dont_know"
)

// AnswerEventData captures one answered question.
type AnswerEventData struct {
	SessionID     string
	Difficulty    string
	Operand1      int
	Operand2      int
	FactKey       string
	Outcome       string
	CorrectAnswer int
	LearnerAnswer *int // nil for "don't know"
	TimeMs        int64
	StatusBefore  string
	StatusAfter   string
	Diagnosis     string
}

// AnswerEventRecord is a stored answer event.
type AnswerEventRecord struct {
	AnswerEventData
	Sequence  int64
	Timestamp time.Time
}

// AchievementEventData captures one earned achievement.
type AchievementEventData struct {
	SessionID     string
	AchievementID string
	Name          string
	Family        string
}

// AchievementEventRecord is a stored achievement event.
type AchievementEventRecord struct {
	AchievementEventData
	Sequence  int64
	Timestamp time.Time
}

// Session actions.
const (
	SessionStart = "start"
	SessionEnd   = "end"
)

// SessionEventData marks the start or end of a session.
type SessionEventData struct {
	SessionID         string
	Action            string
	Difficulty        string
	QuestionsAnswered int
	CorrectAnswers    int
	DurationSecs      int
}

// SessionEventRecord is a stored session event.
type SessionEventRecord struct {
	SessionEventData
	Sequence  int64
	Timestamp time.Time
}

// TableStats aggregates answers for one times table.
type TableStats struct {
	Table    int
	Answered int
	Correct  int
}

// Accuracy returns Correct / Answered, or 0 when nothing was answered.
func (t TableStats) Accuracy() float64 {
	if t.Answered == 0 {
		return 0
	}
	return float64(t.Correct) / float64(t.Answered)
}

// EventRepo provides append and query access to session events.
type EventRepo interface {
	// AppendAnswerEvent records an answered question.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// QueryAnswerEvents returns answer events matching opts.
	QueryAnswerEvents(ctx context.Context, opts QueryOpts) ([]AnswerEventRecord, error)

	// TableAccuracy aggregates answers per operand. An answer counts once
	// for each distinct operand, so 4×4 counts once for table 4.
	TableAccuracy(ctx context.Context, sessionID string) (map[int]TableStats, error)

	// AppendAchievementEvent records an earned achievement.
	AppendAchievementEvent(ctx context.Context, data AchievementEventData) error

	// QueryAchievementEvents returns achievement events matching opts.
	QueryAchievementEvents(ctx context.Context, opts QueryOpts) ([]AchievementEventRecord, error)

	// AppendSessionEvent records a session start or end marker.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// QuerySessionEvents returns session events matching opts.
	QuerySessionEvents(ctx context.Context, opts QueryOpts) ([]SessionEventRecord, error)
}
