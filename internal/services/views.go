package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"fittrack-backend-go/internal/models"
)

// Weekdays is the display order of the weekly schedule.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

type BlockView struct {
	models.ScheduleBlock
	StartLabel string `json:"startLabel"`
	EndLabel   string `json:"endLabel"`
	Past       bool   `json:"past"`
	Current    bool   `json:"current"`
	Completed  bool   `json:"completed"`
}

func newBlockView(b models.ScheduleBlock) BlockView {
	return BlockView{ScheduleBlock: b, StartLabel: b.StartTime.Clock(), EndLabel: b.EndTime.Clock()}
}

type DashboardView struct {
	Date              time.Time            `json:"date"`
	DayName           string               `json:"dayName"`
	Now               models.TimeOfDay     `json:"now"`
	CurrentBlock      *BlockView           `json:"currentBlock"`
	NextBlock         *BlockView           `json:"nextBlock"`
	LatestWeight      *models.HealthMetric `json:"latestWeight"`
	WeightMin         float64              `json:"weightMin"`
	WeightMax         float64              `json:"weightMax"`
	WeightUnit        string               `json:"weightUnit"`
	WeeklyWorkouts    int                  `json:"weeklyWorkouts"`
	WeeklyTarget      int                  `json:"weeklyTarget"`
	WorkoutsRemaining int                  `json:"workoutsRemaining"`
	Macros            Macros               `json:"macros"`
	Calories          Progress             `json:"calories"`
	Protein           Progress             `json:"protein"`
	Schedule          []BlockView          `json:"schedule"`
	MoreBlocks        bool                 `json:"moreBlocks"`
	Workouts          []models.Workout     `json:"workouts"`
}

func (t *Tracker) Dashboard(ctx context.Context, userID int64) (DashboardView, error) {
	now := t.Clock()
	start, end := StartOfDay(now), EndOfDay(now)
	dayName := now.Weekday().String()
	clock := models.TimeOfDayAt(now)

	blocks, err := t.Repo.ListScheduleBlocks(ctx, dayName)
	if err != nil {
		return DashboardView{}, storeError(err, "load schedule")
	}
	entries, err := t.Repo.ListNutritionEntries(ctx, userID, start, end)
	if err != nil {
		return DashboardView{}, storeError(err, "load nutrition")
	}
	weights, err := t.Repo.ListHealthMetrics(ctx, userID, models.MetricWeight, 1)
	if err != nil {
		return DashboardView{}, storeError(err, "load weight")
	}
	workouts, err := t.Repo.ListWorkouts(ctx, ProgramVersion)
	if err != nil {
		return DashboardView{}, storeError(err, "load workouts")
	}
	weekly, err := t.Repo.CountWorkoutLogs(ctx, userID, WeekStart(now))
	if err != nil {
		return DashboardView{}, storeError(err, "count workouts")
	}

	view := DashboardView{
		Date:           start,
		DayName:        dayName,
		Now:            clock,
		WeightMin:      t.Targets.WeightMin,
		WeightMax:      t.Targets.WeightMax,
		WeightUnit:     t.Targets.WeightUnit,
		WeeklyWorkouts: weekly,
		WeeklyTarget:   t.Targets.WeeklyWorkouts,
		Workouts:       workouts,
	}
	if len(weights) > 0 {
		view.LatestWeight = &weights[0]
	}
	if remaining := t.Targets.WeeklyWorkouts - weekly; remaining > 0 {
		view.WorkoutsRemaining = remaining
	}
	view.Macros = SumMacros(entries)
	view.Calories = ProgressTowards(view.Macros.Calories, t.Targets.Calories)
	view.Protein = ProgressTowards(view.Macros.Protein, t.Targets.Protein)

	current, next := ResolveBlocks(blocks, clock)
	if current != nil {
		bv := newBlockView(*current)
		bv.Current = true
		view.CurrentBlock = &bv
	}
	if next != nil {
		bv := newBlockView(*next)
		view.NextBlock = &bv
	}
	limit := t.Targets.ScheduleSnippet
	if limit <= 0 || limit > len(blocks) {
		limit = len(blocks)
	}
	view.MoreBlocks = len(blocks) > limit
	view.Schedule = make([]BlockView, 0, limit)
	for _, b := range blocks[:limit] {
		bv := newBlockView(b)
		bv.Current = current != nil && current.ID == b.ID
		bv.Past = b.EndTime < clock
		view.Schedule = append(view.Schedule, bv)
	}
	return view, nil
}

type MedicationItem struct {
	models.Medication
	Taken bool `json:"taken"`
}

// DosingSlots is the order of the day's dosing times.
var DosingSlots = []string{"morning", "with_food", "evening", "before_bed"}

var dosingLabels = map[string]string{
	"morning":    "Morning",
	"with_food":  "With Food",
	"evening":    "Evening",
	"before_bed": "Before Bed",
}

type DosingGroup struct {
	Timing string           `json:"timing"`
	Label  string           `json:"label"`
	Items  []MedicationItem `json:"items"`
}

func dosingRank(timing string) int {
	for i, slot := range DosingSlots {
		if slot == timing {
			return i
		}
	}
	return len(DosingSlots)
}

// GroupByTiming buckets items into the dosing slots in day order, keeping
// empty slots. Unknown timings follow in first-seen order.
func GroupByTiming(items []MedicationItem) []DosingGroup {
	groups := make([]DosingGroup, 0, len(DosingSlots))
	index := map[string]int{}
	for _, slot := range DosingSlots {
		index[slot] = len(groups)
		groups = append(groups, DosingGroup{Timing: slot, Label: dosingLabels[slot], Items: []MedicationItem{}})
	}
	for _, item := range items {
		i, ok := index[item.Timing]
		if !ok {
			i = len(groups)
			index[item.Timing] = i
			groups = append(groups, DosingGroup{Timing: item.Timing, Label: item.Timing, Items: []MedicationItem{}})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}

func sortByDosing(items []MedicationItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return dosingRank(items[i].Timing) < dosingRank(items[j].Timing)
	})
}

type HealthView struct {
	Today            time.Time             `json:"today"`
	Weight           Trend                 `json:"weight"`
	Waist            Trend                 `json:"waist"`
	Labs             []models.HealthMetric `json:"labs"`
	Medications      []MedicationItem      `json:"medications"`
	Supplements      []MedicationItem      `json:"supplements"`
	DailySchedule    []DosingGroup         `json:"dailySchedule"`
	MedicationsTaken int                   `json:"medicationsTaken"`
	SupplementsTaken int                   `json:"supplementsTaken"`
	WeightGoal       float64               `json:"weightGoal"`
	WeightUnit       string                `json:"weightUnit"`
	// WeightDelta is current weight minus goal; positive is above target.
	WeightDelta *float64 `json:"weightDelta"`
}

func (v HealthView) WeightDeltaLabel() string {
	if v.WeightDelta == nil {
		return ""
	}
	d := *v.WeightDelta
	if d > 0 {
		return fmt.Sprintf("%.1f %s above target", d, v.WeightUnit)
	}
	return fmt.Sprintf("%.1f %s below target", -d, v.WeightUnit)
}

func (t *Tracker) Health(ctx context.Context, userID int64) (HealthView, error) {
	today := t.Today()
	weights, err := t.Repo.ListHealthMetrics(ctx, userID, models.MetricWeight, TrendWindow)
	if err != nil {
		return HealthView{}, storeError(err, "load weight")
	}
	waists, err := t.Repo.ListHealthMetrics(ctx, userID, models.MetricWaist, TrendWindow)
	if err != nil {
		return HealthView{}, storeError(err, "load waist")
	}
	labs, err := t.Repo.ListLabMetrics(ctx, userID, []string{models.MetricWeight, models.MetricWaist}, LabResultsLimit)
	if err != nil {
		return HealthView{}, storeError(err, "load labs")
	}
	meds, err := t.Repo.ListMedications(ctx)
	if err != nil {
		return HealthView{}, storeError(err, "load medications")
	}
	logs, err := t.Repo.ListMedicationLogs(ctx, userID, today)
	if err != nil {
		return HealthView{}, storeError(err, "load medication logs")
	}

	taken := TakenSet(logs)
	view := HealthView{
		Today:       today,
		Weight:      Chronological(weights),
		Waist:       Chronological(waists),
		Labs:        labs,
		Medications: []MedicationItem{},
		Supplements: []MedicationItem{},
		WeightGoal:  t.Targets.WeightGoal(),
		WeightUnit:  t.Targets.WeightUnit,
	}
	for _, m := range meds {
		item := MedicationItem{Medication: m, Taken: taken[m.ID]}
		if m.Type == models.MedicationTypeSupplement {
			view.Supplements = append(view.Supplements, item)
			if item.Taken {
				view.SupplementsTaken++
			}
			continue
		}
		view.Medications = append(view.Medications, item)
		if item.Taken {
			view.MedicationsTaken++
		}
	}
	sortByDosing(view.Medications)
	sortByDosing(view.Supplements)
	all := append(append([]MedicationItem{}, view.Medications...), view.Supplements...)
	view.DailySchedule = GroupByTiming(all)
	if view.Weight.Current != nil {
		d := *view.Weight.Current - view.WeightGoal
		view.WeightDelta = &d
	}
	return view, nil
}

type MacroProgress struct {
	Name string `json:"name"`
	Unit string `json:"unit"`
	Progress
}

type NutritionView struct {
	Today   time.Time               `json:"today"`
	Totals  Macros                  `json:"totals"`
	Macros  []MacroProgress         `json:"macros"`
	Entries []models.NutritionEntry `json:"entries"`
	Meals   []models.Meal           `json:"meals"`
}

func (t *Tracker) Nutrition(ctx context.Context, userID int64) (NutritionView, error) {
	now := t.Clock()
	entries, err := t.Repo.ListNutritionEntries(ctx, userID, StartOfDay(now), EndOfDay(now))
	if err != nil {
		return NutritionView{}, storeError(err, "load nutrition")
	}
	meals, err := t.Repo.ListMeals(ctx)
	if err != nil {
		return NutritionView{}, storeError(err, "load meals")
	}
	totals := SumMacros(entries)
	return NutritionView{
		Today:  StartOfDay(now),
		Totals: totals,
		Macros: []MacroProgress{
			{Name: "Calories", Unit: "cal", Progress: ProgressTowards(totals.Calories, t.Targets.Calories)},
			{Name: "Protein", Unit: "g", Progress: ProgressTowards(totals.Protein, t.Targets.Protein)},
			{Name: "Carbs", Unit: "g", Progress: ProgressTowards(totals.Carbs, t.Targets.Carbs)},
			{Name: "Fats", Unit: "g", Progress: ProgressTowards(totals.Fats, t.Targets.Fats)},
		},
		Entries: entries,
		Meals:   meals,
	}, nil
}

type ScheduleDay struct {
	Day    string      `json:"day"`
	Today  bool        `json:"today"`
	Blocks []BlockView `json:"blocks"`
}

type ScheduleView struct {
	Today     time.Time     `json:"today"`
	TodayName string        `json:"todayName"`
	Days      []ScheduleDay `json:"days"`
}

func (t *Tracker) Schedule(ctx context.Context, userID int64) (ScheduleView, error) {
	today := t.Today()
	blocks, err := t.Repo.ListScheduleBlocks(ctx, "")
	if err != nil {
		return ScheduleView{}, storeError(err, "load schedule")
	}
	completions, err := t.Repo.ListScheduleCompletions(ctx, userID, today)
	if err != nil {
		return ScheduleView{}, storeError(err, "load completions")
	}
	done := make(map[int64]bool, len(completions))
	for _, c := range completions {
		done[c.BlockID] = c.Completed
	}
	view := ScheduleView{Today: today, TodayName: today.Weekday().String()}
	for _, day := range Weekdays {
		sd := ScheduleDay{Day: day, Today: day == view.TodayName, Blocks: []BlockView{}}
		for _, b := range blocks {
			if b.Day != day {
				continue
			}
			bv := newBlockView(b)
			if sd.Today {
				bv.Completed = done[b.ID]
			}
			sd.Blocks = append(sd.Blocks, bv)
		}
		view.Days = append(view.Days, sd)
	}
	return view, nil
}

type WorkoutSummary struct {
	models.Workout
	LastCompleted *time.Time `json:"lastCompleted"`
}

type WorkoutsView struct {
	Workouts       []WorkoutSummary `json:"workouts"`
	TotalWorkouts  int              `json:"totalWorkouts"`
	WeeklyWorkouts int              `json:"weeklyWorkouts"`
	WeeklyTarget   int              `json:"weeklyTarget"`
}

func (t *Tracker) Workouts(ctx context.Context, userID int64) (WorkoutsView, error) {
	workouts, err := t.Repo.ListWorkouts(ctx, ProgramVersion)
	if err != nil {
		return WorkoutsView{}, storeError(err, "load workouts")
	}
	total, err := t.Repo.CountWorkoutLogs(ctx, userID, time.Time{})
	if err != nil {
		return WorkoutsView{}, storeError(err, "count workouts")
	}
	weekly, err := t.Repo.CountWorkoutLogs(ctx, userID, WeekStart(t.Clock()))
	if err != nil {
		return WorkoutsView{}, storeError(err, "count workouts")
	}
	view := WorkoutsView{
		Workouts:       make([]WorkoutSummary, 0, len(workouts)),
		TotalWorkouts:  total,
		WeeklyWorkouts: weekly,
		WeeklyTarget:   t.Targets.WeeklyWorkouts,
	}
	for _, w := range workouts {
		last, err := t.Repo.LastWorkoutLog(ctx, userID, w.ID)
		if err != nil {
			return WorkoutsView{}, storeError(err, "load last session")
		}
		summary := WorkoutSummary{Workout: w}
		if last != nil {
			date := last.Date
			summary.LastCompleted = &date
		}
		view.Workouts = append(view.Workouts, summary)
	}
	return view, nil
}

type ExerciseDetail struct {
	models.WorkoutExercise
	PR        *PersonalRecord `json:"pr"`
	RestLabel string          `json:"restLabel"`
}

type WorkoutDetailView struct {
	Workout     models.Workout     `json:"workout"`
	Exercises   []ExerciseDetail   `json:"exercises"`
	LastSession *models.WorkoutLog `json:"lastSession"`
	Session     *WorkoutSession    `json:"session"`
}

// WorkoutDetail loads one workout with PRs and a fresh session. An unknown
// id is a NotFound error.
func (t *Tracker) WorkoutDetail(ctx context.Context, userID, workoutID int64) (WorkoutDetailView, error) {
	workout, err := t.Repo.GetWorkout(ctx, workoutID)
	if err != nil {
		return WorkoutDetailView{}, storeError(err, "load workout")
	}
	exerciseIDs := make([]int64, 0, len(workout.Exercises))
	for _, we := range workout.Exercises {
		exerciseIDs = append(exerciseIDs, we.ExerciseID)
	}
	history, err := t.Repo.ListSetLogs(ctx, userID, exerciseIDs)
	if err != nil {
		return WorkoutDetailView{}, storeError(err, "load set history")
	}
	last, err := t.Repo.LastWorkoutLog(ctx, userID, workoutID)
	if err != nil {
		return WorkoutDetailView{}, storeError(err, "load last session")
	}

	prs := PersonalRecords(history)
	view := WorkoutDetailView{Workout: workout, LastSession: last, Exercises: make([]ExerciseDetail, 0, len(workout.Exercises))}
	for _, we := range workout.Exercises {
		detail := ExerciseDetail{WorkoutExercise: we, RestLabel: RestLabel(we.RestSeconds)}
		if pr, ok := prs[we.ExerciseID]; ok {
			detail.PR = &pr
		}
		view.Exercises = append(view.Exercises, detail)
	}
	if session, err := NewWorkoutSession(workout, last); err == nil {
		view.Session = session
	}
	return view, nil
}

// RestLabel renders rest seconds as M:SS.
func RestLabel(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
