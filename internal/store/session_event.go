package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

var sessionColumns = []string{
	"session_id", "action", "difficulty", "questions_answered",
	"correct_answers", "duration_secs",
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	err := r.insert(ctx, "session_events", sessionColumns, []any{
		data.SessionID,
		data.Action,
		data.Difficulty,
		data.QuestionsAnswered,
		data.CorrectAnswers,
		data.DurationSecs,
	})
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessionEvents(ctx context.Context, opts QueryOpts) ([]SessionEventRecord, error) {
	sel := selectEvents("session_events", opts, sessionColumns...)

	var records []SessionEventRecord
	err := r.queryRows(ctx, sel, func(rows *entsql.Rows) error {
		var (
			rec SessionEventRecord
			ts  int64
		)
		if err := rows.Scan(
			&rec.Sequence, &ts, &rec.SessionID, &rec.Action, &rec.Difficulty,
			&rec.QuestionsAnswered, &rec.CorrectAnswers, &rec.DurationSecs,
		); err != nil {
			return err
		}
		rec.Timestamp = fromMillis(ts)
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}
	return records, nil
}
