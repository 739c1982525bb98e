package store

import (
	"context"
	"errors"
	"time"

	"fittrack-backend-go/internal/models"

	"github.com/jmoiron/sqlx"
)

type prescriptionRow struct {
	models.WorkoutExercise
	ExerciseName        string  `db:"exercise_name"`
	ExerciseMuscleGroup string  `db:"exercise_muscle_group"`
	ExerciseMethod      string  `db:"exercise_method"`
	ExerciseNotes       *string `db:"exercise_notes"`
}

func (r prescriptionRow) toModel() models.WorkoutExercise {
	we := r.WorkoutExercise
	we.Exercise = models.Exercise{
		ID:          r.ExerciseID,
		Name:        r.ExerciseName,
		MuscleGroup: r.ExerciseMuscleGroup,
		Method:      r.ExerciseMethod,
		Notes:       r.ExerciseNotes,
	}
	return we
}

// ListWorkouts returns the workouts of one program version with their
// prescriptions in order.
func (p *Postgres) ListWorkouts(ctx context.Context, version string) ([]models.Workout, error) {
	workouts := []models.Workout{}
	if err := p.db.SelectContext(ctx, &workouts, `
SELECT id, name, version, description
FROM workouts
WHERE version = $1
ORDER BY id ASC
`, version); err != nil {
		return nil, classify("list workouts", err)
	}
	if len(workouts) == 0 {
		return workouts, nil
	}
	ids := make([]int64, 0, len(workouts))
	for _, w := range workouts {
		ids = append(ids, w.ID)
	}
	byWorkout, err := p.prescriptions(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range workouts {
		workouts[i].Exercises = byWorkout[workouts[i].ID]
	}
	return workouts, nil
}

func (p *Postgres) GetWorkout(ctx context.Context, id int64) (models.Workout, error) {
	var workout models.Workout
	if err := p.db.GetContext(ctx, &workout, `
SELECT id, name, version, description
FROM workouts
WHERE id = $1
`, id); err != nil {
		return models.Workout{}, classify("get workout", err)
	}
	byWorkout, err := p.prescriptions(ctx, []int64{id})
	if err != nil {
		return models.Workout{}, err
	}
	workout.Exercises = byWorkout[id]
	return workout, nil
}

func (p *Postgres) prescriptions(ctx context.Context, workoutIDs []int64) (map[int64][]models.WorkoutExercise, error) {
	query, args, err := sqlx.In(`
SELECT we.id, we.workout_id, we.exercise_id, we.order_index, we.target_sets,
       we.target_reps_min, we.target_reps_max, we.rest_seconds,
       e.name AS exercise_name, e.muscle_group AS exercise_muscle_group,
       e.method AS exercise_method, e.notes AS exercise_notes
FROM workout_exercises we
JOIN exercises e ON e.id = we.exercise_id
WHERE we.workout_id IN (?)
ORDER BY we.workout_id ASC, we.order_index ASC, we.id ASC
`, workoutIDs)
	if err != nil {
		return nil, classify("list prescriptions", err)
	}
	rows := []prescriptionRow{}
	if err := p.db.SelectContext(ctx, &rows, p.db.Rebind(query), args...); err != nil {
		return nil, classify("list prescriptions", err)
	}
	byWorkout := map[int64][]models.WorkoutExercise{}
	for _, row := range rows {
		byWorkout[row.WorkoutID] = append(byWorkout[row.WorkoutID], row.toModel())
	}
	return byWorkout, nil
}

// LastWorkoutLog returns the user's most recent completed session of a
// workout with its set logs, or nil when there is none.
func (p *Postgres) LastWorkoutLog(ctx context.Context, userID, workoutID int64) (*models.WorkoutLog, error) {
	var entry models.WorkoutLog
	err := p.db.GetContext(ctx, &entry, `
SELECT id, user_id, workout_id, date, completed, notes
FROM workout_logs
WHERE user_id = $1 AND workout_id = $2 AND completed = true
ORDER BY date DESC, id DESC
LIMIT 1
`, userID, workoutID)
	if err != nil {
		err = classify("last workout log", err)
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	sets := []models.SetLog{}
	if err := p.db.SelectContext(ctx, &sets, `
SELECT id, workout_log_id, exercise_id, set_number, weight, reps, created_at
FROM set_logs
WHERE workout_log_id = $1
ORDER BY exercise_id ASC, set_number ASC, id ASC
`, entry.ID); err != nil {
		return nil, classify("last workout sets", err)
	}
	entry.SetLogs = sets
	return &entry, nil
}

// CountWorkoutLogs counts completed sessions dated at or after since; a zero
// since counts every session.
func (p *Postgres) CountWorkoutLogs(ctx context.Context, userID int64, since time.Time) (int, error) {
	var count int
	var err error
	if since.IsZero() {
		err = p.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM workout_logs WHERE user_id = $1 AND completed = true`, userID)
	} else {
		err = p.db.GetContext(ctx, &count, `
SELECT COUNT(*) FROM workout_logs
WHERE user_id = $1 AND completed = true AND date >= $2
`, userID, since)
	}
	return count, classify("count workout logs", err)
}

// ListSetLogs returns every set the user logged for the given exercises,
// newest first.
func (p *Postgres) ListSetLogs(ctx context.Context, userID int64, exerciseIDs []int64) ([]models.SetLog, error) {
	items := []models.SetLog{}
	if len(exerciseIDs) == 0 {
		return items, nil
	}
	query, args, err := sqlx.In(`
SELECT s.id, s.workout_log_id, s.exercise_id, s.set_number, s.weight, s.reps, s.created_at
FROM set_logs s
JOIN workout_logs w ON w.id = s.workout_log_id
WHERE w.user_id = ? AND s.exercise_id IN (?)
ORDER BY s.created_at DESC, s.id DESC
`, userID, exerciseIDs)
	if err != nil {
		return nil, classify("list set logs", err)
	}
	err = p.db.SelectContext(ctx, &items, p.db.Rebind(query), args...)
	return items, classify("list set logs", err)
}

// CreateWorkoutLog inserts the session and all of its sets atomically.
func (p *Postgres) CreateWorkoutLog(ctx context.Context, entry models.WorkoutLog, sets []models.SetLog) (int64, error) {
	var id int64
	err := p.withTx(ctx, func(tx *sqlx.Tx) error {
		if err := tx.QueryRowxContext(ctx, `
INSERT INTO workout_logs (user_id, workout_id, date, completed, notes)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`, entry.UserID, entry.WorkoutID, entry.Date, entry.Completed, entry.Notes).Scan(&id); err != nil {
			return err
		}
		if len(sets) == 0 {
			return nil
		}
		rows := make([]models.SetLog, len(sets))
		for i, set := range sets {
			set.WorkoutLogID = id
			if set.CreatedAt.IsZero() {
				set.CreatedAt = entry.Date
			}
			rows[i] = set
		}
		_, err := tx.NamedExecContext(ctx, `
INSERT INTO set_logs (workout_log_id, exercise_id, set_number, weight, reps, created_at)
VALUES (:workout_log_id, :exercise_id, :set_number, :weight, :reps, :created_at)
`, rows)
		return err
	})
	if err != nil {
		return 0, classify("create workout log", err)
	}
	return id, nil
}
