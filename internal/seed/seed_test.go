package seed

import (
	"context"
	"testing"
	"time"

	"fittrack-backend-go/internal/models"
	"fittrack-backend-go/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogShape(t *testing.T) {
	c := Catalog()
	assert.Equal(t, "Sonny", c.UserName)
	assert.Len(t, c.Exercises, 17)
	assert.Len(t, c.Workouts, 4)
	assert.Len(t, c.Medications, 9)
	assert.Len(t, c.Meals, 10)
	assert.Len(t, c.ScheduleBlocks, 37)
	assert.Len(t, c.Metrics, 2)

	names := map[string]bool{}
	for _, e := range c.Exercises {
		assert.False(t, names[e.Name], "duplicate exercise %s", e.Name)
		names[e.Name] = true
	}
	for _, w := range c.Workouts {
		assert.Equal(t, "A", w.Workout.Version)
		assert.Len(t, w.Prescriptions, 5)
		for _, p := range w.Prescriptions {
			assert.True(t, names[p.ExerciseName], "%s references unknown exercise %s", w.Workout.Name, p.ExerciseName)
			assert.LessOrEqual(t, p.TargetRepsMin, p.TargetRepsMax)
		}
	}
	for _, b := range c.ScheduleBlocks {
		assert.Less(t, b.StartTime, b.EndTime, "%s %s", b.Day, b.Title)
	}
}

func TestCatalogSupplementSplit(t *testing.T) {
	counts := map[string]int{}
	for _, m := range Catalog().Medications {
		counts[m.Type]++
	}
	assert.Equal(t, 4, counts[models.MedicationTypeMedication])
	assert.Equal(t, 5, counts[models.MedicationTypeSupplement])
}

func TestRunIsDestructive(t *testing.T) {
	ctx := context.Background()
	repo := store.NewMemory()
	now := time.Date(2024, 3, 6, 9, 0, 0, 0, time.UTC)

	userID, err := Run(ctx, repo, now)
	require.NoError(t, err)
	_, err = repo.CreateHealthMetric(ctx, models.HealthMetric{UserID: userID, Type: "weight", Value: 190, Unit: "lbs", Date: now})
	require.NoError(t, err)

	userID, err = Run(ctx, repo, now)
	require.NoError(t, err)
	weights, err := repo.ListHealthMetrics(ctx, userID, models.MetricWeight, 30)
	require.NoError(t, err)
	require.Len(t, weights, 1)
	assert.Equal(t, 195.0, weights[0].Value)
	assert.Equal(t, now, weights[0].Date)

	workouts, err := repo.ListWorkouts(ctx, "A")
	require.NoError(t, err)
	require.Len(t, workouts, 4)
	assert.Equal(t, "Incline Barbell Press", workouts[0].Exercises[0].Exercise.Name)

	monday, err := repo.ListScheduleBlocks(ctx, "Monday")
	require.NoError(t, err)
	assert.Len(t, monday, 6)
}
