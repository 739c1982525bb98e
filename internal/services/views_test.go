package services

import (
	"context"
	"testing"
	"time"

	"fittrack-backend-go/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardView(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	w := f.workout(t)

	lastWeek := fixedNow.AddDate(0, 0, -7)
	_, err := f.repo.CreateWorkoutLog(ctx, models.WorkoutLog{UserID: f.userID, WorkoutID: w.ID, Date: lastWeek, Completed: true}, nil)
	require.NoError(t, err)
	_, err = f.tracker.CompleteWorkout(ctx, f.userID, CompleteWorkoutInput{WorkoutID: w.ID})
	require.NoError(t, err)
	_, err = f.tracker.LogMeal(ctx, f.userID, NutritionLogInput{MealID: f.meal(t, "Chicken Rice Bowl").ID, Servings: ptrFloat(2)})
	require.NoError(t, err)

	view, err := f.tracker.Dashboard(ctx, f.userID)
	require.NoError(t, err)
	assert.Equal(t, "Wednesday", view.DayName)
	require.NotNil(t, view.CurrentBlock)
	assert.Equal(t, "Deep Work", view.CurrentBlock.Title)
	require.NotNil(t, view.NextBlock)
	assert.Equal(t, "Gym", view.NextBlock.Title)
	assert.Equal(t, "1:00 PM", view.NextBlock.StartLabel)

	require.Len(t, view.Schedule, 2)
	assert.True(t, view.Schedule[0].Current)
	assert.False(t, view.Schedule[1].Past)
	assert.False(t, view.MoreBlocks)

	assert.Equal(t, 1, view.WeeklyWorkouts)
	assert.Equal(t, 3, view.WorkoutsRemaining)
	assert.InDelta(t, 1200, view.Calories.Current, 1e-9)
	assert.InDelta(t, 100, view.Protein.Current, 1e-9)
	require.NotNil(t, view.LatestWeight)
	assert.Equal(t, 195.0, view.LatestWeight.Value)
	assert.Len(t, view.Workouts, 1)
}

func TestDashboardScheduleSnippet(t *testing.T) {
	f := newFixture(t)
	f.tracker.Targets.ScheduleSnippet = 1
	view, err := f.tracker.Dashboard(context.Background(), f.userID)
	require.NoError(t, err)
	assert.Len(t, view.Schedule, 1)
	assert.True(t, view.MoreBlocks)
}

func TestHealthView(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.tracker.LogMetric(ctx, f.userID, LogMetricInput{Type: models.MetricWeight, Value: ptrFloat(190), Unit: "lbs"})
	require.NoError(t, err)
	_, err = f.tracker.LogMetric(ctx, f.userID, LogMetricInput{Type: "vitamin_d", Value: ptrFloat(42), Unit: "ng/mL"})
	require.NoError(t, err)

	meds, err := f.repo.ListMedications(ctx)
	require.NoError(t, err)
	for _, m := range meds {
		if m.Type == models.MedicationTypeSupplement {
			require.NoError(t, f.tracker.ToggleMedication(ctx, f.userID, MedicationToggleInput{MedicationID: m.ID, Taken: ptrBool(true)}))
		}
	}
	// Yesterday's log must not count for today.
	require.NoError(t, f.repo.UpsertMedicationLog(ctx, models.MedicationLog{
		UserID: f.userID, MedicationID: meds[0].ID, Date: f.tracker.Today().AddDate(0, 0, -1), Taken: true,
	}))

	view, err := f.tracker.Health(ctx, f.userID)
	require.NoError(t, err)
	require.Len(t, view.Weight.Points, 2)
	assert.Equal(t, 195.0, view.Weight.Points[0].Value)
	require.NotNil(t, view.Weight.Current)
	assert.Equal(t, 190.0, *view.Weight.Current)
	assert.Nil(t, view.Waist.Current)

	require.Len(t, view.Labs, 1)
	assert.Equal(t, "vitamin_d", view.Labs[0].Type)

	assert.Len(t, view.Medications, 1)
	assert.Len(t, view.Supplements, 1)
	assert.Equal(t, 0, view.MedicationsTaken)
	assert.Equal(t, 1, view.SupplementsTaken)

	require.Len(t, view.DailySchedule, 4)
	assert.Equal(t, "Morning", view.DailySchedule[0].Label)
	assert.Len(t, view.DailySchedule[0].Items, 2)
	assert.Empty(t, view.DailySchedule[3].Items)

	assert.Equal(t, 187.5, view.WeightGoal)
	require.NotNil(t, view.WeightDelta)
	assert.InDelta(t, 2.5, *view.WeightDelta, 1e-9)
	assert.Equal(t, "2.5 lbs above target", view.WeightDeltaLabel())
}

func TestNutritionViewTargets(t *testing.T) {
	f := newFixture(t)
	view, err := f.tracker.Nutrition(context.Background(), f.userID)
	require.NoError(t, err)
	require.Len(t, view.Macros, 4)
	assert.Equal(t, "Calories", view.Macros[0].Name)
	assert.Equal(t, 2450.0, view.Macros[0].Target)
	assert.Equal(t, 82.0, view.Macros[3].Target)
	assert.Empty(t, view.Entries)
	require.Len(t, view.Meals, 2)
	assert.Equal(t, "breakfast", view.Meals[0].Category)
}

func TestScheduleViewGroupsByWeekday(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	blocks, err := f.repo.ListScheduleBlocks(ctx, "Wednesday")
	require.NoError(t, err)
	require.NoError(t, f.tracker.ToggleScheduleBlock(ctx, f.userID, ScheduleToggleInput{BlockID: blocks[0].ID, Completed: ptrBool(true)}))

	view, err := f.tracker.Schedule(ctx, f.userID)
	require.NoError(t, err)
	require.Len(t, view.Days, 7)
	assert.Equal(t, "Monday", view.Days[0].Day)
	assert.Equal(t, "Sunday", view.Days[6].Day)

	wednesday := view.Days[2]
	assert.True(t, wednesday.Today)
	require.Len(t, wednesday.Blocks, 2)
	assert.Equal(t, "Deep Work", wednesday.Blocks[0].Title)
	assert.True(t, wednesday.Blocks[0].Completed)
	assert.False(t, wednesday.Blocks[1].Completed)

	assert.Len(t, view.Days[3].Blocks, 1)
	assert.Empty(t, view.Days[0].Blocks)
}

func TestWorkoutsView(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	w := f.workout(t)

	view, err := f.tracker.Workouts(ctx, f.userID)
	require.NoError(t, err)
	require.Len(t, view.Workouts, 1)
	assert.Nil(t, view.Workouts[0].LastCompleted)
	assert.Len(t, view.Workouts[0].Exercises, 2)

	_, err = f.repo.CreateWorkoutLog(ctx, models.WorkoutLog{UserID: f.userID, WorkoutID: w.ID, Date: fixedNow.AddDate(0, 0, -14), Completed: true}, nil)
	require.NoError(t, err)
	_, err = f.tracker.CompleteWorkout(ctx, f.userID, CompleteWorkoutInput{WorkoutID: w.ID})
	require.NoError(t, err)

	view, err = f.tracker.Workouts(ctx, f.userID)
	require.NoError(t, err)
	assert.Equal(t, 2, view.TotalWorkouts)
	assert.Equal(t, 1, view.WeeklyWorkouts)
	require.NotNil(t, view.Workouts[0].LastCompleted)
	assert.True(t, view.Workouts[0].LastCompleted.Equal(fixedNow))
}

func TestWorkoutDetailView(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	w := f.workout(t)
	bench := w.Exercises[0].ExerciseID

	for i, weights := range [][]float64{{100, 120}, {90, 120}} {
		sets := []SetInput{}
		for _, wt := range weights {
			sets = append(sets, SetInput{ExerciseID: bench, Weight: ptrFloat(wt), Reps: ptrInt(5 + i)})
		}
		f.tracker.Now = func() time.Time { return fixedNow.Add(time.Duration(i) * time.Hour) }
		_, err := f.tracker.CompleteWorkout(ctx, f.userID, CompleteWorkoutInput{WorkoutID: w.ID, Sets: sets})
		require.NoError(t, err)
	}

	view, err := f.tracker.WorkoutDetail(ctx, f.userID, w.ID)
	require.NoError(t, err)
	require.Len(t, view.Exercises, 2)
	require.NotNil(t, view.Exercises[0].PR)
	// Newest first: the later session's 120 x 6 is seen before the earlier 120 x 5.
	assert.Equal(t, PersonalRecord{Weight: 120, Reps: 6}, *view.Exercises[0].PR)
	assert.Nil(t, view.Exercises[1].PR)
	assert.Equal(t, "3:00", view.Exercises[0].RestLabel)
	require.NotNil(t, view.LastSession)
	require.NotNil(t, view.Session)
	assert.Equal(t, 90.0, *view.Session.Exercises[0].Sets[0].Weight)

	_, err = f.tracker.WorkoutDetail(ctx, f.userID, 9999)
	requireKind(t, err, KindNotFound)
}

func TestSummary(t *testing.T) {
	f := newFixture(t)
	summary, err := f.tracker.Summary(context.Background(), f.userID)
	require.NoError(t, err)
	assert.Equal(t, "Wednesday", summary.DayName)
	assert.Equal(t, 1, summary.MedicationsTotal)
	assert.Equal(t, 1, summary.SupplementsTotal)
	require.NotNil(t, summary.CurrentBlock)
	assert.Len(t, summary.Macros, 4)
	assert.Equal(t, 4, summary.WeeklyTarget)
}

func TestGroupByTiming(t *testing.T) {
	item := func(name, timing string) MedicationItem {
		return MedicationItem{Medication: models.Medication{Name: name, Timing: timing}}
	}
	items := []MedicationItem{
		item("Melatonin", "before_bed"),
		item("Magnesium", "evening"),
		item("Iron", "as_needed"),
		item("Sertraline", "morning"),
		item("Fish Oil", "with_food"),
		item("Vitamin D3", "morning"),
	}

	groups := GroupByTiming(items)
	require.Len(t, groups, 5)
	var order []string
	for _, g := range groups {
		order = append(order, g.Timing)
	}
	assert.Equal(t, []string{"morning", "with_food", "evening", "before_bed", "as_needed"}, order)
	assert.Equal(t, "Sertraline", groups[0].Items[0].Name)
	assert.Equal(t, "Vitamin D3", groups[0].Items[1].Name)
	assert.Equal(t, "Before Bed", groups[3].Label)
	assert.Equal(t, "as_needed", groups[4].Label)

	sortByDosing(items)
	assert.Equal(t, "Sertraline", items[0].Name)
	assert.Equal(t, "Melatonin", items[4].Name)
	assert.Equal(t, "Iron", items[5].Name)
}
