package services

import (
	"context"
	"strings"
	"time"

	"fittrack-backend-go/internal/config"
)

const (
	ProgramVersion  = "A"
	TrendWindow     = 30
	LabResultsLimit = 20
)

// Tracker runs the tracker's reads and writes for one configured store.
type Tracker struct {
	Repo     Repository
	Targets  config.Targets
	Location *time.Location
	Now      func() time.Time
	Events   *EventsHub
}

func NewTracker(repo Repository, targets config.Targets, loc *time.Location, events *EventsHub) *Tracker {
	if loc == nil {
		loc = time.Local
	}
	return &Tracker{
		Repo:     repo,
		Targets:  targets,
		Location: loc,
		Now:      time.Now,
		Events:   events,
	}
}

// Clock is the current time in the tracker's location.
func (t *Tracker) Clock() time.Time {
	now := time.Now
	if t.Now != nil {
		now = t.Now
	}
	loc := t.Location
	if loc == nil {
		loc = time.Local
	}
	return now().In(loc)
}

func (t *Tracker) Today() time.Time {
	return StartOfDay(t.Clock())
}

// ParseDay normalizes a client date to local midnight. It accepts an empty
// string (today), YYYY-MM-DD or RFC3339.
func (t *Tracker) ParseDay(raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return t.Today(), nil
	}
	loc := t.Clock().Location()
	if day, err := time.ParseInLocation("2006-01-02", value, loc); err == nil {
		return day, nil
	}
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, ErrBadRequest("date must be YYYY-MM-DD or RFC3339")
	}
	return StartOfDay(ts.In(loc)), nil
}

// RequireUser fails closed when userID does not name a stored user.
func (t *Tracker) RequireUser(ctx context.Context, userID int64) error {
	if userID <= 0 {
		return ErrUnauthorized("missing user identity")
	}
	ok, err := t.Repo.UserExists(ctx, userID)
	if err != nil {
		return storeError(err, "lookup user")
	}
	if !ok {
		return ErrUnauthorized("unknown user")
	}
	return nil
}

func (t *Tracker) notify(kind string, userID int64) {
	if t.Events == nil {
		return
	}
	t.Events.Publish(NewEvent(kind, userID, t.Clock()))
}
