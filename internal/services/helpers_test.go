package services

import (
	"context"
	"testing"
	"time"

	"fittrack-backend-go/internal/config"
	"fittrack-backend-go/internal/models"
	"fittrack-backend-go/internal/store"

	"github.com/stretchr/testify/require"
)

// fixedNow is a Wednesday.
var fixedNow = time.Date(2024, 3, 6, 9, 15, 0, 0, time.UTC)

func fixtureCatalog() models.Catalog {
	return models.Catalog{
		UserName: "Tester",
		Exercises: []models.Exercise{
			{Name: "Bench Press", MuscleGroup: "Chest", Method: "RPT"},
			{Name: "Chin-ups", MuscleGroup: "Back", Method: "RPT"},
		},
		Workouts: []models.CatalogWorkout{
			{
				Workout: models.Workout{Name: "Workout A #1", Version: ProgramVersion},
				Prescriptions: []models.Prescription{
					{ExerciseName: "Bench Press", TargetSets: 3, TargetRepsMin: 5, TargetRepsMax: 8, RestSeconds: 180},
					{ExerciseName: "Chin-ups", TargetSets: 2, TargetRepsMin: 6, TargetRepsMax: 10, RestSeconds: 90},
				},
			},
		},
		Medications: []models.Medication{
			{Name: "Sertraline", Dose: "50mg", Timing: "morning", Type: models.MedicationTypeMedication},
			{Name: "Vitamin D3", Dose: "5000 IU", Timing: "morning", Type: models.MedicationTypeSupplement},
		},
		Meals: []models.Meal{
			{Name: "Greek Yogurt Bowl", Calories: 350, Protein: 30, Carbs: 40, Fats: 8, Category: "breakfast"},
			{Name: "Chicken Rice Bowl", Calories: 600, Protein: 50, Carbs: 70, Fats: 12, Category: "lunch"},
		},
		ScheduleBlocks: []models.ScheduleBlock{
			{Day: "Wednesday", StartTime: models.MustTimeOfDay("13:00"), EndTime: models.MustTimeOfDay("14:00"), Title: "Gym", Type: "workout"},
			{Day: "Wednesday", StartTime: models.MustTimeOfDay("08:00"), EndTime: models.MustTimeOfDay("12:00"), Title: "Deep Work", Type: "work"},
			{Day: "Thursday", StartTime: models.MustTimeOfDay("08:00"), EndTime: models.MustTimeOfDay("09:00"), Title: "Class", Type: "class"},
		},
		Metrics: []models.HealthMetric{
			{Type: models.MetricWeight, Value: 195, Unit: "lbs", Date: fixedNow.AddDate(0, 0, -10)},
		},
	}
}

type fixture struct {
	tracker *Tracker
	repo    *store.Memory
	userID  int64
	catalog models.Catalog
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	repo := store.NewMemory()
	catalog := fixtureCatalog()
	userID, err := repo.Reseed(context.Background(), catalog)
	require.NoError(t, err)
	tracker := NewTracker(repo, config.DefaultTargets(), time.UTC, nil)
	tracker.Now = func() time.Time { return fixedNow }
	return fixture{tracker: tracker, repo: repo, userID: userID, catalog: catalog}
}

func (f fixture) meal(t *testing.T, name string) models.Meal {
	t.Helper()
	meals, err := f.repo.ListMeals(context.Background())
	require.NoError(t, err)
	for _, m := range meals {
		if m.Name == name {
			return m
		}
	}
	t.Fatalf("meal %q not found", name)
	return models.Meal{}
}

func (f fixture) workout(t *testing.T) models.Workout {
	t.Helper()
	workouts, err := f.repo.ListWorkouts(context.Background(), ProgramVersion)
	require.NoError(t, err)
	require.NotEmpty(t, workouts)
	return workouts[0]
}

func ptrFloat(v float64) *float64 { return &v }
func ptrInt(v int) *int           { return &v }
func ptrBool(v bool) *bool        { return &v }
func ptrString(v string) *string  { return &v }
