package services

import (
	"context"

	"fittrack-backend-go/internal/models"
)

type ScheduleToggleInput struct {
	BlockID   int64  `json:"blockId"`
	Date      string `json:"date"`
	Completed *bool  `json:"completed"`
}

// ToggleScheduleBlock marks a block done or not done for a day. The last
// write for a (user, block, day) wins.
func (t *Tracker) ToggleScheduleBlock(ctx context.Context, userID int64, in ScheduleToggleInput) error {
	if err := requireID("blockId", in.BlockID); err != nil {
		return err
	}
	if in.Completed == nil {
		return ErrBadRequest("completed is required")
	}
	day, err := t.ParseDay(in.Date)
	if err != nil {
		return err
	}
	if err := t.Repo.UpsertScheduleCompletion(ctx, models.ScheduleCompletion{
		UserID:    userID,
		BlockID:   in.BlockID,
		Date:      day,
		Completed: *in.Completed,
	}); err != nil {
		return storeError(err, "toggle schedule block")
	}
	t.notify(EventScheduleToggled, userID)
	return nil
}
