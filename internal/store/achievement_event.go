package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

var achievementColumns = []string{"session_id", "achievement_id", "name", "family"}

func (r *eventRepo) AppendAchievementEvent(ctx context.Context, data AchievementEventData) error {
	err := r.insert(ctx, "achievement_events", achievementColumns, []any{
		data.SessionID,
		data.AchievementID,
		data.Name,
		data.Family,
	})
	if err != nil {
		return fmt.Errorf("save achievement event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryAchievementEvents(ctx context.Context, opts QueryOpts) ([]AchievementEventRecord, error) {
	sel := selectEvents("achievement_events", opts, achievementColumns...)

	var records []AchievementEventRecord
	err := r.queryRows(ctx, sel, func(rows *entsql.Rows) error {
		var (
			rec AchievementEventRecord
			ts  int64
		)
		if err := rows.Scan(&rec.Sequence, &ts, &rec.SessionID, &rec.AchievementID, &rec.Name, &rec.Family); err != nil {
			return err
		}
		rec.Timestamp = fromMillis(ts)
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query achievement events: %w", err)
	}
	return records, nil
}
