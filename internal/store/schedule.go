package store

import (
	"context"
	"time"

	"fittrack-backend-go/internal/models"
)

// ListScheduleBlocks returns the weekly template for one day name, or every
// day when day is empty, ordered by day then start time.
func (p *Postgres) ListScheduleBlocks(ctx context.Context, day string) ([]models.ScheduleBlock, error) {
	items := []models.ScheduleBlock{}
	var err error
	if day == "" {
		err = p.db.SelectContext(ctx, &items, `
SELECT id, day, start_time, end_time, title, type
FROM schedule_blocks
ORDER BY day ASC, start_time ASC, id ASC
`)
	} else {
		err = p.db.SelectContext(ctx, &items, `
SELECT id, day, start_time, end_time, title, type
FROM schedule_blocks
WHERE day = $1
ORDER BY start_time ASC, id ASC
`, day)
	}
	return items, classify("list schedule blocks", err)
}

// UpsertScheduleCompletion keeps one row per (user, block, day); the last write wins.
func (p *Postgres) UpsertScheduleCompletion(ctx context.Context, c models.ScheduleCompletion) error {
	_, err := p.db.ExecContext(ctx, `
INSERT INTO schedule_completions (user_id, block_id, date, completed)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user_id, block_id, date) DO UPDATE SET completed = EXCLUDED.completed
`, c.UserID, c.BlockID, dayKey(c.Date), c.Completed)
	return classify("upsert schedule completion", err)
}

func (p *Postgres) ListScheduleCompletions(ctx context.Context, userID int64, day time.Time) ([]models.ScheduleCompletion, error) {
	items := []models.ScheduleCompletion{}
	err := p.db.SelectContext(ctx, &items, `
SELECT id, user_id, block_id, date, completed
FROM schedule_completions
WHERE user_id = $1 AND date = $2
ORDER BY block_id ASC
`, userID, dayKey(day))
	return items, classify("list schedule completions", err)
}
