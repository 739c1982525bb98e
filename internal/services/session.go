package services

import (
	"context"
	"errors"
	"net/http"

	"fittrack-backend-go/internal/models"
)

var (
	ErrLastExercise     = errors.New("already on the last exercise")
	ErrSessionSubmitted = errors.New("session already submitted")
	ErrEmptyWorkout     = errors.New("workout has no exercises")
	ErrSetOutOfRange    = errors.New("set index out of range")
	ErrNotInWorkout     = errors.New("exercise is not part of this workout")
)

// SessionSet is one editable set row. Nil weight or reps marks it incomplete.
type SessionSet struct {
	SetNumber int      `json:"setNumber"`
	Weight    *float64 `json:"weight"`
	Reps      *int     `json:"reps"`
	Done      bool     `json:"done"`
}

type SessionExercise struct {
	models.WorkoutExercise
	Sets []SessionSet `json:"sets"`
}

// WorkoutSession walks through a workout's exercises one at a time and is
// submitted exactly once. Edits are not persisted before Complete.
type WorkoutSession struct {
	WorkoutID int64             `json:"workoutId"`
	Exercises []SessionExercise `json:"exercises"`
	Notes     string            `json:"notes"`

	index     int
	submitted bool
}

// NewWorkoutSession builds target-set rows per exercise, pre-filled from the
// previous session's set with the same set number.
func NewWorkoutSession(workout models.Workout, last *models.WorkoutLog) (*WorkoutSession, error) {
	if len(workout.Exercises) == 0 {
		return nil, ErrEmptyWorkout
	}
	previous := map[int64]map[int]models.SetLog{}
	if last != nil {
		for _, s := range last.SetLogs {
			if previous[s.ExerciseID] == nil {
				previous[s.ExerciseID] = map[int]models.SetLog{}
			}
			previous[s.ExerciseID][s.SetNumber] = s
		}
	}
	session := &WorkoutSession{WorkoutID: workout.ID}
	for _, we := range workout.Exercises {
		sets := make([]SessionSet, we.TargetSets)
		for i := range sets {
			sets[i].SetNumber = i + 1
			if prev, ok := previous[we.ExerciseID][i+1]; ok {
				weight, reps := prev.Weight, prev.Reps
				sets[i].Weight = &weight
				sets[i].Reps = &reps
			}
		}
		session.Exercises = append(session.Exercises, SessionExercise{WorkoutExercise: we, Sets: sets})
	}
	return session, nil
}

func (s *WorkoutSession) Index() int      { return s.index }
func (s *WorkoutSession) Submitted() bool { return s.submitted }

func (s *WorkoutSession) IsLast() bool {
	return s.index == len(s.Exercises)-1
}

func (s *WorkoutSession) Current() SessionExercise {
	return s.Exercises[s.index]
}

// IndexOf returns the position of exerciseID in the session, or -1.
func (s *WorkoutSession) IndexOf(exerciseID int64) int {
	for i, ex := range s.Exercises {
		if ex.ExerciseID == exerciseID {
			return i
		}
	}
	return -1
}

// Next advances one exercise. From the last exercise the only move is Complete.
func (s *WorkoutSession) Next() error {
	if s.submitted {
		return ErrSessionSubmitted
	}
	if s.IsLast() {
		return ErrLastExercise
	}
	s.index++
	return nil
}

// Previous steps back one exercise, staying on the first.
func (s *WorkoutSession) Previous() error {
	if s.submitted {
		return ErrSessionSubmitted
	}
	if s.index > 0 {
		s.index--
	}
	return nil
}

// Select jumps to exercise i, clamped to the valid range.
func (s *WorkoutSession) Select(i int) error {
	if s.submitted {
		return ErrSessionSubmitted
	}
	switch {
	case i < 0:
		i = 0
	case i >= len(s.Exercises):
		i = len(s.Exercises) - 1
	}
	s.index = i
	return nil
}

// UpdateSet edits a set of the current exercise.
func (s *WorkoutSession) UpdateSet(setIndex int, weight *float64, reps *int, done bool) error {
	if s.submitted {
		return ErrSessionSubmitted
	}
	sets := s.Exercises[s.index].Sets
	if setIndex < 0 || setIndex >= len(sets) {
		return ErrSetOutOfRange
	}
	sets[setIndex].Weight = weight
	sets[setIndex].Reps = reps
	sets[setIndex].Done = done
	return nil
}

func (s *WorkoutSession) SetNotes(notes string) error {
	if s.submitted {
		return ErrSessionSubmitted
	}
	s.Notes = notes
	return nil
}

// Complete moves the session to submitted and returns the payload for
// CompleteWorkout, one entry per set row. CompleteWorkout drops the rows that
// are missing a weight or reps.
func (s *WorkoutSession) Complete() (CompleteWorkoutInput, error) {
	if s.submitted {
		return CompleteWorkoutInput{}, ErrSessionSubmitted
	}
	in := CompleteWorkoutInput{WorkoutID: s.WorkoutID, Sets: []SetInput{}}
	if s.Notes != "" {
		notes := s.Notes
		in.Notes = &notes
	}
	for _, ex := range s.Exercises {
		for _, set := range ex.Sets {
			in.Sets = append(in.Sets, SetInput{
				ExerciseID: ex.ExerciseID,
				SetNumber:  set.SetNumber,
				Weight:     set.Weight,
				Reps:       set.Reps,
			})
		}
	}
	s.submitted = true
	return in, nil
}

// Progress reports done sets over total sets for each exercise.
func (s *WorkoutSession) Progress() []SetProgress {
	items := make([]SetProgress, len(s.Exercises))
	for i, ex := range s.Exercises {
		items[i].Total = len(ex.Sets)
		for _, set := range ex.Sets {
			if set.Done {
				items[i].Done++
			}
		}
	}
	return items
}

type SetProgress struct {
	Done  int `json:"done"`
	Total int `json:"total"`
}

// StartWorkoutSession loads a workout for userID. With prefill the set rows
// carry the weights and reps of the user's last session of it.
func (t *Tracker) StartWorkoutSession(ctx context.Context, userID, workoutID int64, prefill bool) (*WorkoutSession, error) {
	if err := requireID("workoutId", workoutID); err != nil {
		return nil, err
	}
	workout, err := t.Repo.GetWorkout(ctx, workoutID)
	if err != nil {
		return nil, storeError(err, "load workout")
	}
	var last *models.WorkoutLog
	if prefill {
		if last, err = t.Repo.LastWorkoutLog(ctx, userID, workoutID); err != nil {
			return nil, storeError(err, "load last session")
		}
	}
	session, err := NewWorkoutSession(workout, last)
	if err != nil {
		return nil, SessionError(err)
	}
	return session, nil
}

// SubmitWorkoutSession completes the session and stores it.
func (t *Tracker) SubmitWorkoutSession(ctx context.Context, userID int64, session *WorkoutSession) (int64, error) {
	in, err := session.Complete()
	if err != nil {
		return 0, SessionError(err)
	}
	return t.CompleteWorkout(ctx, userID, in)
}

// SessionError tags a workout session error as a validation failure.
func SessionError(err error) error {
	if err == nil {
		return nil
	}
	return ServiceError{Kind: KindValidation, Status: http.StatusBadRequest, Message: err.Error(), Err: err}
}
