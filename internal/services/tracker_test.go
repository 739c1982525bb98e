package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"fittrack-backend-go/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireKind(t *testing.T, err error, kind ErrorKind) ServiceError {
	t.Helper()
	require.Error(t, err)
	svcErr, ok := AsServiceError(err)
	require.True(t, ok, "expected ServiceError, got %T: %v", err, err)
	assert.Equal(t, kind, svcErr.Kind)
	return svcErr
}

func TestParseDay(t *testing.T) {
	f := newFixture(t)
	today := time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)

	day, err := f.tracker.ParseDay("")
	require.NoError(t, err)
	assert.Equal(t, today, day)

	day, err = f.tracker.ParseDay("2024-03-06")
	require.NoError(t, err)
	assert.Equal(t, today, day)

	day, err = f.tracker.ParseDay("2024-03-06T17:45:00.000Z")
	require.NoError(t, err)
	assert.Equal(t, today, day)

	_, err = f.tracker.ParseDay("yesterday")
	requireKind(t, err, KindValidation)
}

func TestRequireUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.tracker.RequireUser(ctx, f.userID))

	svcErr := requireKind(t, f.tracker.RequireUser(ctx, 0), KindUnauthorized)
	assert.Equal(t, http.StatusUnauthorized, svcErr.Status)
	requireKind(t, f.tracker.RequireUser(ctx, 9999), KindUnauthorized)
}

func TestLogMetricAppends(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	in := LogMetricInput{Type: "weight", Value: ptrFloat(193.4), Unit: "lbs", Notes: ptrString("  ")}

	first, err := f.tracker.LogMetric(ctx, f.userID, in)
	require.NoError(t, err)
	second, err := f.tracker.LogMetric(ctx, f.userID, in)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	metrics, err := f.repo.ListHealthMetrics(ctx, f.userID, "weight", 30)
	require.NoError(t, err)
	assert.Len(t, metrics, 3)
	assert.Nil(t, metrics[0].Notes)
	assert.Equal(t, fixedNow, metrics[0].Date)
}

func TestLogMetricValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cases := []LogMetricInput{
		{Value: ptrFloat(1), Unit: "lbs"},
		{Type: "weight", Unit: "lbs"},
		{Type: "weight", Value: ptrFloat(-1), Unit: "lbs"},
		{Type: "weight", Value: ptrFloat(1)},
	}
	for _, in := range cases {
		_, err := f.tracker.LogMetric(ctx, f.userID, in)
		requireKind(t, err, KindValidation)
	}
}

func TestToggleMedicationConverges(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	meds, err := f.repo.ListMedications(ctx)
	require.NoError(t, err)
	medID := meds[0].ID

	require.NoError(t, f.tracker.ToggleMedication(ctx, f.userID, MedicationToggleInput{MedicationID: medID, Date: "2024-03-06", Taken: ptrBool(true)}))
	require.NoError(t, f.tracker.ToggleMedication(ctx, f.userID, MedicationToggleInput{MedicationID: medID, Date: "2024-03-06T15:00:00Z", Taken: ptrBool(false)}))

	logs, err := f.repo.ListMedicationLogs(ctx, f.userID, time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.False(t, logs[0].Taken)
}

func TestToggleMedicationErrors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	err := f.tracker.ToggleMedication(ctx, f.userID, MedicationToggleInput{MedicationID: 1})
	requireKind(t, err, KindValidation)

	err = f.tracker.ToggleMedication(ctx, f.userID, MedicationToggleInput{MedicationID: 9999, Taken: ptrBool(true)})
	svcErr := requireKind(t, err, KindValidation)
	assert.Equal(t, http.StatusBadRequest, svcErr.Status)
}

func TestLogMeal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	meal := f.meal(t, "Chicken Rice Bowl")

	_, err := f.tracker.LogMeal(ctx, f.userID, NutritionLogInput{MealID: meal.ID, Servings: ptrFloat(0.5)})
	require.NoError(t, err)
	_, err = f.tracker.LogMeal(ctx, f.userID, NutritionLogInput{MealID: meal.ID})
	require.NoError(t, err)

	view, err := f.tracker.Nutrition(ctx, f.userID)
	require.NoError(t, err)
	assert.Len(t, view.Entries, 2)
	assert.InDelta(t, 900, view.Totals.Calories, 1e-9)

	_, err = f.tracker.LogMeal(ctx, f.userID, NutritionLogInput{MealID: meal.ID, Servings: ptrFloat(0)})
	requireKind(t, err, KindValidation)
	_, err = f.tracker.LogMeal(ctx, f.userID, NutritionLogInput{MealID: 9999, Servings: ptrFloat(1)})
	requireKind(t, err, KindValidation)
}

func TestDailyMacrosUseInclusiveDayWindow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	meal := f.meal(t, "Greek Yogurt Bowl")
	day := time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)

	for _, at := range []time.Time{
		day,
		EndOfDay(day),
		day.Add(-time.Nanosecond),
		EndOfDay(day).Add(time.Nanosecond),
	} {
		_, err := f.repo.CreateNutritionLog(ctx, models.NutritionLog{UserID: f.userID, MealID: meal.ID, Servings: 1, Date: at})
		require.NoError(t, err)
	}

	view, err := f.tracker.Nutrition(ctx, f.userID)
	require.NoError(t, err)
	assert.Len(t, view.Entries, 2)
	assert.InDelta(t, 700, view.Totals.Calories, 1e-9)
	assert.InDelta(t, 60, view.Totals.Protein, 1e-9)
}

func TestQuickAddMealCreatesFreshCatalogRows(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	in := QuickAddInput{Name: "Test Snack", Calories: ptrFloat(300), Protein: ptrFloat(20), Carbs: ptrFloat(30), Fats: ptrFloat(10)}

	first, err := f.tracker.QuickAddMeal(ctx, f.userID, in)
	require.NoError(t, err)
	second, err := f.tracker.QuickAddMeal(ctx, f.userID, in)
	require.NoError(t, err)
	assert.NotEqual(t, first.MealID, second.MealID)

	meals, err := f.repo.ListMeals(ctx)
	require.NoError(t, err)
	custom := 0
	for _, m := range meals {
		if m.Name == "Test Snack" {
			custom++
			assert.Equal(t, models.MealCategoryCustom, m.Category)
		}
	}
	assert.Equal(t, 2, custom)

	entries, err := f.repo.ListNutritionEntries(ctx, f.userID, StartOfDay(fixedNow), EndOfDay(fixedNow))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, 1.0, e.Servings)
	}
	assert.Equal(t, second.LogID, entries[0].ID)
	assert.Equal(t, second.MealID, entries[0].MealID)
}

func TestQuickAddMealValidation(t *testing.T) {
	f := newFixture(t)
	_, err := f.tracker.QuickAddMeal(context.Background(), f.userID, QuickAddInput{Calories: ptrFloat(1)})
	requireKind(t, err, KindValidation)
	_, err = f.tracker.QuickAddMeal(context.Background(), f.userID, QuickAddInput{Name: "x"})
	requireKind(t, err, KindValidation)
	_, err = f.tracker.QuickAddMeal(context.Background(), f.userID, QuickAddInput{Name: "x", Calories: ptrFloat(1), Fats: ptrFloat(-2)})
	requireKind(t, err, KindValidation)
}

func TestToggleScheduleBlock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	blocks, err := f.repo.ListScheduleBlocks(ctx, "Wednesday")
	require.NoError(t, err)
	blockID := blocks[0].ID

	for _, done := range []bool{true, true, false, true} {
		require.NoError(t, f.tracker.ToggleScheduleBlock(ctx, f.userID, ScheduleToggleInput{BlockID: blockID, Completed: ptrBool(done)}))
	}
	completions, err := f.repo.ListScheduleCompletions(ctx, f.userID, f.tracker.Today())
	require.NoError(t, err)
	require.Len(t, completions, 1)
	assert.True(t, completions[0].Completed)

	err = f.tracker.ToggleScheduleBlock(ctx, f.userID, ScheduleToggleInput{BlockID: blockID})
	requireKind(t, err, KindValidation)
	err = f.tracker.ToggleScheduleBlock(ctx, f.userID, ScheduleToggleInput{BlockID: blockID, Date: "not-a-date", Completed: ptrBool(true)})
	requireKind(t, err, KindValidation)
}

func TestCompleteWorkoutDropsIncompleteSetsAndRenumbers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	w := f.workout(t)
	bench := w.Exercises[0].ExerciseID
	chin := w.Exercises[1].ExerciseID

	id, err := f.tracker.CompleteWorkout(ctx, f.userID, CompleteWorkoutInput{
		WorkoutID: w.ID,
		Notes:     ptrString("felt strong"),
		Sets: []SetInput{
			{ExerciseID: bench, SetNumber: 1, Weight: ptrFloat(185), Reps: ptrInt(6)},
			{ExerciseID: bench, SetNumber: 2, Weight: ptrFloat(165)},
			{ExerciseID: bench, SetNumber: 3, Weight: ptrFloat(150), Reps: ptrInt(9)},
			{ExerciseID: chin, SetNumber: 1, Reps: ptrInt(8)},
			{ExerciseID: chin, SetNumber: 2, Weight: ptrFloat(0), Reps: ptrInt(7)},
		},
	})
	require.NoError(t, err)

	last, err := f.repo.LastWorkoutLog(ctx, f.userID, w.ID)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, id, last.ID)
	assert.True(t, last.Completed)
	require.NotNil(t, last.Notes)
	assert.Equal(t, "felt strong", *last.Notes)
	require.Len(t, last.SetLogs, 3)

	byExercise := map[int64][]models.SetLog{}
	for _, s := range last.SetLogs {
		byExercise[s.ExerciseID] = append(byExercise[s.ExerciseID], s)
	}
	require.Len(t, byExercise[bench], 2)
	assert.Equal(t, 1, byExercise[bench][0].SetNumber)
	assert.Equal(t, 185.0, byExercise[bench][0].Weight)
	assert.Equal(t, 2, byExercise[bench][1].SetNumber)
	assert.Equal(t, 150.0, byExercise[bench][1].Weight)
	require.Len(t, byExercise[chin], 1)
	assert.Equal(t, 1, byExercise[chin][0].SetNumber)
}

func TestCompleteWorkoutIsNotIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	w := f.workout(t)
	in := CompleteWorkoutInput{WorkoutID: w.ID}

	first, err := f.tracker.CompleteWorkout(ctx, f.userID, in)
	require.NoError(t, err)
	second, err := f.tracker.CompleteWorkout(ctx, f.userID, in)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	count, err := f.repo.CountWorkoutLogs(ctx, f.userID, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestCompleteWorkoutErrors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.tracker.CompleteWorkout(ctx, f.userID, CompleteWorkoutInput{})
	requireKind(t, err, KindValidation)

	_, err = f.tracker.CompleteWorkout(ctx, f.userID, CompleteWorkoutInput{WorkoutID: 9999})
	requireKind(t, err, KindValidation)

	w := f.workout(t)
	_, err = f.tracker.CompleteWorkout(ctx, f.userID, CompleteWorkoutInput{
		WorkoutID: w.ID,
		Sets:      []SetInput{{ExerciseID: w.Exercises[0].ExerciseID, Weight: ptrFloat(100), Reps: ptrInt(-1)}},
	})
	requireKind(t, err, KindValidation)

	count, err := f.repo.CountWorkoutLogs(ctx, f.userID, time.Time{})
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestMutationsPublishEvents(t *testing.T) {
	f := newFixture(t)
	hub := NewEventsHub()
	f.tracker.Events = hub

	_, err := f.tracker.LogMetric(context.Background(), f.userID, LogMetricInput{Type: "waist", Value: ptrFloat(33.5), Unit: "inches"})
	require.NoError(t, err)

	select {
	case event := <-hub.ch:
		assert.Equal(t, EventMetricLogged, event.Kind)
		assert.Equal(t, f.userID, event.UserID)
		assert.NotEmpty(t, event.ID)
	default:
		t.Fatal("expected an event")
	}
}
