package store

import (
	"context"
	"fmt"
	"time"

	"fittrack-backend-go/internal/models"

	"github.com/jmoiron/sqlx"
)

const truncateAll = `
TRUNCATE TABLE schedule_completions, medication_logs, set_logs, workout_logs,
  nutrition_logs, health_metrics, workout_exercises, workouts, exercises,
  meals, medications, schedule_blocks, users
RESTART IDENTITY CASCADE
`

// Reseed wipes every tracker table and writes the catalog in one transaction.
// It returns the id of the catalog's user.
func (p *Postgres) Reseed(ctx context.Context, catalog models.Catalog) (int64, error) {
	var userID int64
	err := p.withTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, truncateAll); err != nil {
			return fmt.Errorf("truncate: %w", err)
		}
		if err := tx.QueryRowxContext(ctx, `INSERT INTO users (name) VALUES ($1) RETURNING id`, catalog.UserName).Scan(&userID); err != nil {
			return fmt.Errorf("user: %w", err)
		}

		exerciseIDs := make(map[string]int64, len(catalog.Exercises))
		for _, e := range catalog.Exercises {
			var id int64
			if err := tx.QueryRowxContext(ctx, `
INSERT INTO exercises (name, muscle_group, method, notes)
VALUES ($1, $2, $3, $4)
RETURNING id
`, e.Name, e.MuscleGroup, e.Method, e.Notes).Scan(&id); err != nil {
				return fmt.Errorf("exercise %q: %w", e.Name, err)
			}
			exerciseIDs[e.Name] = id
		}

		for _, cw := range catalog.Workouts {
			var workoutID int64
			if err := tx.QueryRowxContext(ctx, `
INSERT INTO workouts (name, version, description)
VALUES ($1, $2, $3)
RETURNING id
`, cw.Workout.Name, cw.Workout.Version, cw.Workout.Description).Scan(&workoutID); err != nil {
				return fmt.Errorf("workout %q: %w", cw.Workout.Name, err)
			}
			for i, pr := range cw.Prescriptions {
				exerciseID, ok := exerciseIDs[pr.ExerciseName]
				if !ok {
					return fmt.Errorf("workout %q: unknown exercise %q: %w", cw.Workout.Name, pr.ExerciseName, ErrReference)
				}
				if _, err := tx.ExecContext(ctx, `
INSERT INTO workout_exercises (workout_id, exercise_id, order_index, target_sets, target_reps_min, target_reps_max, rest_seconds)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`, workoutID, exerciseID, i+1, pr.TargetSets, pr.TargetRepsMin, pr.TargetRepsMax, pr.RestSeconds); err != nil {
					return fmt.Errorf("prescription %q: %w", pr.ExerciseName, err)
				}
			}
		}

		if len(catalog.Medications) > 0 {
			if _, err := tx.NamedExecContext(ctx, `
INSERT INTO medications (name, dose, timing, type)
VALUES (:name, :dose, :timing, :type)
`, catalog.Medications); err != nil {
				return fmt.Errorf("medications: %w", err)
			}
		}
		if len(catalog.Meals) > 0 {
			if _, err := tx.NamedExecContext(ctx, `
INSERT INTO meals (name, calories, protein, carbs, fats, category)
VALUES (:name, :calories, :protein, :carbs, :fats, :category)
`, catalog.Meals); err != nil {
				return fmt.Errorf("meals: %w", err)
			}
		}
		if len(catalog.ScheduleBlocks) > 0 {
			if _, err := tx.NamedExecContext(ctx, `
INSERT INTO schedule_blocks (day, start_time, end_time, title, type)
VALUES (:day, :start_time, :end_time, :title, :type)
`, catalog.ScheduleBlocks); err != nil {
				return fmt.Errorf("schedule blocks: %w", err)
			}
		}
		for _, m := range catalog.Metrics {
			if m.Date.IsZero() {
				m.Date = time.Now()
			}
			if _, err := tx.ExecContext(ctx, `
INSERT INTO health_metrics (user_id, type, value, unit, notes, date)
VALUES ($1, $2, $3, $4, $5, $6)
`, userID, m.Type, m.Value, m.Unit, m.Notes, m.Date); err != nil {
				return fmt.Errorf("metric %q: %w", m.Type, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, classify("reseed", err)
	}
	return userID, nil
}
