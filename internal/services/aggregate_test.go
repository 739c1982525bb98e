package services

import (
	"testing"
	"time"

	"fittrack-backend-go/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumMacrosScalesByServings(t *testing.T) {
	meal := models.Meal{Calories: 300, Protein: 20, Carbs: 30, Fats: 10}
	entries := []models.NutritionEntry{
		{NutritionLog: models.NutritionLog{Servings: 1.5}, Meal: meal},
		{NutritionLog: models.NutritionLog{Servings: 2}, Meal: models.Meal{Calories: 100, Protein: 5}},
	}
	got := SumMacros(entries)
	assert.InDelta(t, 650, got.Calories, 1e-9)
	assert.InDelta(t, 40, got.Protein, 1e-9)
	assert.InDelta(t, 45, got.Carbs, 1e-9)
	assert.InDelta(t, 15, got.Fats, 1e-9)

	assert.Equal(t, Macros{}, SumMacros(nil))
}

func TestTakenSetIgnoresUntaken(t *testing.T) {
	taken := TakenSet([]models.MedicationLog{
		{MedicationID: 1, Taken: true},
		{MedicationID: 2, Taken: false},
		{MedicationID: 3, Taken: true},
	})
	assert.Equal(t, map[int64]bool{1: true, 3: true}, taken)
}

func TestChronologicalReversesWindow(t *testing.T) {
	newestFirst := []models.HealthMetric{{ID: 3, Value: 190}, {ID: 2, Value: 192}, {ID: 1, Value: 195}}
	trend := Chronological(newestFirst)
	require.Len(t, trend.Points, 3)
	assert.Equal(t, int64(1), trend.Points[0].ID)
	assert.Equal(t, int64(3), trend.Points[2].ID)
	require.NotNil(t, trend.Current)
	assert.Equal(t, 190.0, *trend.Current)
	assert.Equal(t, int64(3), newestFirst[0].ID)

	empty := Chronological(nil)
	assert.Empty(t, empty.Points)
	assert.Nil(t, empty.Current)
}

func TestPersonalRecordsFirstSeenMaxWins(t *testing.T) {
	sets := []models.SetLog{
		{ExerciseID: 1, Weight: 100, Reps: 8},
		{ExerciseID: 1, Weight: 120, Reps: 5},
		{ExerciseID: 1, Weight: 90, Reps: 10},
		{ExerciseID: 1, Weight: 120, Reps: 7},
		{ExerciseID: 2, Weight: 40, Reps: 12},
	}
	prs := PersonalRecords(sets)
	assert.Equal(t, PersonalRecord{Weight: 120, Reps: 5}, prs[1])
	assert.Equal(t, PersonalRecord{Weight: 40, Reps: 12}, prs[2])
	assert.Len(t, prs, 2)
}

func TestResolveBlocks(t *testing.T) {
	blocks := []models.ScheduleBlock{
		{ID: 2, StartTime: models.MustTimeOfDay("13:00"), EndTime: models.MustTimeOfDay("14:00"), Title: "afternoon"},
		{ID: 1, StartTime: models.MustTimeOfDay("08:00"), EndTime: models.MustTimeOfDay("12:00"), Title: "morning"},
	}

	current, next := ResolveBlocks(blocks, models.MustTimeOfDay("09:15"))
	require.NotNil(t, current)
	require.NotNil(t, next)
	assert.Equal(t, int64(1), current.ID)
	assert.Equal(t, int64(2), next.ID)

	current, next = ResolveBlocks(blocks, models.MustTimeOfDay("12:30"))
	assert.Nil(t, current)
	require.NotNil(t, next)
	assert.Equal(t, int64(2), next.ID)

	current, next = ResolveBlocks(blocks, models.MustTimeOfDay("12:00"))
	assert.Nil(t, current, "end is exclusive")
	require.NotNil(t, next)

	current, next = ResolveBlocks(blocks, models.MustTimeOfDay("23:00"))
	assert.Nil(t, current)
	assert.Nil(t, next)
}

func TestResolveBlocksOverlapPicksEarliestStart(t *testing.T) {
	blocks := []models.ScheduleBlock{
		{ID: 1, StartTime: models.MustTimeOfDay("09:00"), EndTime: models.MustTimeOfDay("11:00")},
		{ID: 2, StartTime: models.MustTimeOfDay("08:00"), EndTime: models.MustTimeOfDay("10:00")},
	}
	current, _ := ResolveBlocks(blocks, models.MustTimeOfDay("09:30"))
	require.NotNil(t, current)
	assert.Equal(t, int64(2), current.ID)
}

func TestProgressTowards(t *testing.T) {
	p := ProgressTowards(1225, 2450)
	assert.InDelta(t, 50, p.Percent, 1e-9)
	assert.InDelta(t, 1225, p.Remaining, 1e-9)
	assert.False(t, p.Reached)

	p = ProgressTowards(3000, 2450)
	assert.Equal(t, 100.0, p.Percent)
	assert.Equal(t, 0.0, p.Remaining)
	assert.True(t, p.Reached)

	p = ProgressTowards(10, 0)
	assert.Equal(t, 0.0, p.Percent)
}

func TestDayBoundaries(t *testing.T) {
	ts := time.Date(2024, 3, 6, 9, 15, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC), StartOfDay(ts))
	assert.Equal(t, time.Date(2024, 3, 6, 23, 59, 59, 999999999, time.UTC), EndOfDay(ts))
	assert.Equal(t, time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC), WeekStart(ts))

	sunday := time.Date(2024, 3, 3, 18, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC), WeekStart(sunday))
}

func TestRestLabel(t *testing.T) {
	assert.Equal(t, "3:00", RestLabel(180))
	assert.Equal(t, "1:30", RestLabel(90))
	assert.Equal(t, "0:45", RestLabel(45))
}
