package store

import (
	"context"
	"database/sql"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

var answerColumns = []string{
	"session_id", "difficulty", "operand1", "operand2", "fact_key", "outcome",
	"correct_answer", "learner_answer", "time_ms", "status_before",
	"status_after", "diagnosis",
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	var learner any
	if data.LearnerAnswer != nil {
		learner = *data.LearnerAnswer
	}
	err := r.insert(ctx, "answer_events", answerColumns, []any{
		data.SessionID,
		data.Difficulty,
		data.Operand1,
		data.Operand2,
		data.FactKey,
		data.Outcome,
		data.CorrectAnswer,
		learner,
		data.TimeMs,
		data.StatusBefore,
		data.StatusAfter,
		data.Diagnosis,
	})
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryAnswerEvents(ctx context.Context, opts QueryOpts) ([]AnswerEventRecord, error) {
	sel := selectEvents("answer_events", opts, answerColumns...)

	var records []AnswerEventRecord
	err := r.queryRows(ctx, sel, func(rows *entsql.Rows) error {
		var (
			rec     AnswerEventRecord
			ts      int64
			learner sql.NullInt64
		)
		if err := rows.Scan(
			&rec.Sequence, &ts,
			&rec.SessionID, &rec.Difficulty, &rec.Operand1, &rec.Operand2,
			&rec.FactKey, &rec.Outcome, &rec.CorrectAnswer, &learner,
			&rec.TimeMs, &rec.StatusBefore, &rec.StatusAfter, &rec.Diagnosis,
		); err != nil {
			return err
		}
		rec.Timestamp = fromMillis(ts)
		if learner.Valid {
			v := int(learner.Int64)
			rec.LearnerAnswer = &v
		}
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}
	return records, nil
}

func (r *eventRepo) TableAccuracy(ctx context.Context, sessionID string) (map[int]TableStats, error) {
	events, err := r.QueryAnswerEvents(ctx, QueryOpts{SessionID: sessionID})
	if err != nil {
		return nil, fmt.Errorf("table accuracy: %w", err)
	}

	stats := make(map[int]TableStats)
	credit := func(table int, correct bool) {
		ts := stats[table]
		ts.Table = table
		ts.Answered++
		if correct {
			ts.Correct++
		}
		stats[table] = ts
	}
	for _, e := range events {
		correct := e.Outcome == OutcomeCorrect
		credit(e.Operand1, correct)
		if e.Operand2 != e.Operand1 {
			credit(e.Operand2, correct)
		}
	}
	return stats, nil
}
