package services

import (
	"context"

	"fittrack-backend-go/internal/models"
)

type SetInput struct {
	ExerciseID int64    `json:"exerciseId"`
	SetNumber  int      `json:"setNumber"`
	Weight     *float64 `json:"weight"`
	Reps       *int     `json:"reps"`
}

type CompleteWorkoutInput struct {
	WorkoutID int64      `json:"workoutId"`
	Notes     *string    `json:"notes"`
	Sets      []SetInput `json:"sets"`
}

// CompleteWorkout stores a finished session with its sets. Every call creates
// a new session.
func (t *Tracker) CompleteWorkout(ctx context.Context, userID int64, in CompleteWorkoutInput) (int64, error) {
	if err := requireID("workoutId", in.WorkoutID); err != nil {
		return 0, err
	}
	sets, err := completedSets(in.Sets)
	if err != nil {
		return 0, err
	}
	now := t.Clock()
	for i := range sets {
		sets[i].CreatedAt = now
	}
	id, err := t.Repo.CreateWorkoutLog(ctx, models.WorkoutLog{
		UserID:    userID,
		WorkoutID: in.WorkoutID,
		Date:      now,
		Completed: true,
		Notes:     optionalText(in.Notes),
	}, sets)
	if err != nil {
		return 0, storeError(err, "complete workout")
	}
	t.notify(EventWorkoutCompleted, userID)
	return id, nil
}

// completedSets drops entries missing a weight or reps and renumbers the
// rest 1..n per exercise in submission order.
func completedSets(in []SetInput) ([]models.SetLog, error) {
	sets := make([]models.SetLog, 0, len(in))
	next := map[int64]int{}
	for _, s := range in {
		if s.Weight == nil || s.Reps == nil {
			continue
		}
		if err := requireID("exerciseId", s.ExerciseID); err != nil {
			return nil, err
		}
		weight, err := checkNumber("weight", *s.Weight)
		if err != nil {
			return nil, err
		}
		if *s.Reps < 0 {
			return nil, ErrBadRequest("reps must not be negative")
		}
		next[s.ExerciseID]++
		sets = append(sets, models.SetLog{
			ExerciseID: s.ExerciseID,
			SetNumber:  next[s.ExerciseID],
			Weight:     weight,
			Reps:       *s.Reps,
		})
	}
	return sets, nil
}
