package services

import (
	"context"
	"time"

	"fittrack-backend-go/internal/models"
)

// Repository is the storage surface the tracker needs. store.Postgres and
// store.Memory both satisfy it.
type Repository interface {
	Ping(ctx context.Context) error

	CreateUser(ctx context.Context, name string) (int64, error)
	UserExists(ctx context.Context, userID int64) (bool, error)

	CreateHealthMetric(ctx context.Context, m models.HealthMetric) (int64, error)
	ListHealthMetrics(ctx context.Context, userID int64, metricType string, limit int) ([]models.HealthMetric, error)
	ListLabMetrics(ctx context.Context, userID int64, exclude []string, limit int) ([]models.HealthMetric, error)
	ListMedications(ctx context.Context) ([]models.Medication, error)
	UpsertMedicationLog(ctx context.Context, entry models.MedicationLog) error
	ListMedicationLogs(ctx context.Context, userID int64, day time.Time) ([]models.MedicationLog, error)

	ListMeals(ctx context.Context) ([]models.Meal, error)
	CreateNutritionLog(ctx context.Context, entry models.NutritionLog) (int64, error)
	QuickAddMeal(ctx context.Context, meal models.Meal, entry models.NutritionLog) (mealID, logID int64, err error)
	ListNutritionEntries(ctx context.Context, userID int64, from, to time.Time) ([]models.NutritionEntry, error)

	ListScheduleBlocks(ctx context.Context, day string) ([]models.ScheduleBlock, error)
	UpsertScheduleCompletion(ctx context.Context, c models.ScheduleCompletion) error
	ListScheduleCompletions(ctx context.Context, userID int64, day time.Time) ([]models.ScheduleCompletion, error)

	ListWorkouts(ctx context.Context, version string) ([]models.Workout, error)
	GetWorkout(ctx context.Context, id int64) (models.Workout, error)
	LastWorkoutLog(ctx context.Context, userID, workoutID int64) (*models.WorkoutLog, error)
	CountWorkoutLogs(ctx context.Context, userID int64, since time.Time) (int, error)
	ListSetLogs(ctx context.Context, userID int64, exerciseIDs []int64) ([]models.SetLog, error)
	CreateWorkoutLog(ctx context.Context, entry models.WorkoutLog, sets []models.SetLog) (int64, error)

	Reseed(ctx context.Context, catalog models.Catalog) (int64, error)
}
