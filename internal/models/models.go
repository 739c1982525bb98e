package models

import "time"

const (
	MetricWeight = "weight"
	MetricWaist  = "waist"

	MedicationTypeMedication = "medication"
	MedicationTypeSupplement = "supplement"

	MealCategoryCustom = "custom"
)

type User struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

type Exercise struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	MuscleGroup string  `db:"muscle_group" json:"muscleGroup"`
	Method      string  `db:"method" json:"method"`
	Notes       *string `db:"notes" json:"notes"`
}

type Workout struct {
	ID          int64             `db:"id" json:"id"`
	Name        string            `db:"name" json:"name"`
	Version     string            `db:"version" json:"version"`
	Description *string           `db:"description" json:"description"`
	Exercises   []WorkoutExercise `db:"-" json:"exercises"`
}

// WorkoutExercise is one prescription line of a workout program.
type WorkoutExercise struct {
	ID            int64    `db:"id" json:"id"`
	WorkoutID     int64    `db:"workout_id" json:"workoutId"`
	ExerciseID    int64    `db:"exercise_id" json:"exerciseId"`
	OrderIndex    int      `db:"order_index" json:"orderIndex"`
	TargetSets    int      `db:"target_sets" json:"targetSets"`
	TargetRepsMin int      `db:"target_reps_min" json:"targetRepsMin"`
	TargetRepsMax int      `db:"target_reps_max" json:"targetRepsMax"`
	RestSeconds   int      `db:"rest_seconds" json:"restSeconds"`
	Exercise      Exercise `db:"-" json:"exercise"`
}

type WorkoutLog struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"userId"`
	WorkoutID int64     `db:"workout_id" json:"workoutId"`
	Date      time.Time `db:"date" json:"date"`
	Completed bool      `db:"completed" json:"completed"`
	Notes     *string   `db:"notes" json:"notes"`
	SetLogs   []SetLog  `db:"-" json:"setLogs"`
}

type SetLog struct {
	ID           int64     `db:"id" json:"id"`
	WorkoutLogID int64     `db:"workout_log_id" json:"workoutLogId"`
	ExerciseID   int64     `db:"exercise_id" json:"exerciseId"`
	SetNumber    int       `db:"set_number" json:"setNumber"`
	Weight       float64   `db:"weight" json:"weight"`
	Reps         int       `db:"reps" json:"reps"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

type Meal struct {
	ID       int64   `db:"id" json:"id"`
	Name     string  `db:"name" json:"name"`
	Calories float64 `db:"calories" json:"calories"`
	Protein  float64 `db:"protein" json:"protein"`
	Carbs    float64 `db:"carbs" json:"carbs"`
	Fats     float64 `db:"fats" json:"fats"`
	Category string  `db:"category" json:"category"`
}

// NutritionLog stores servings only; macros are derived from the meal at read time.
type NutritionLog struct {
	ID       int64     `db:"id" json:"id"`
	UserID   int64     `db:"user_id" json:"userId"`
	MealID   int64     `db:"meal_id" json:"mealId"`
	Servings float64   `db:"servings" json:"servings"`
	Date     time.Time `db:"date" json:"date"`
}

// NutritionEntry is a nutrition log joined with its meal.
type NutritionEntry struct {
	NutritionLog
	Meal Meal `json:"meal"`
}

type HealthMetric struct {
	ID     int64     `db:"id" json:"id"`
	UserID int64     `db:"user_id" json:"userId"`
	Type   string    `db:"type" json:"type"`
	Value  float64   `db:"value" json:"value"`
	Unit   string    `db:"unit" json:"unit"`
	Notes  *string   `db:"notes" json:"notes"`
	Date   time.Time `db:"date" json:"date"`
}

type Medication struct {
	ID     int64  `db:"id" json:"id"`
	Name   string `db:"name" json:"name"`
	Dose   string `db:"dose" json:"dose"`
	Timing string `db:"timing" json:"timing"`
	Type   string `db:"type" json:"type"`
}

// MedicationLog is unique per (user, medication, date); Date is a calendar day.
type MedicationLog struct {
	ID           int64     `db:"id" json:"id"`
	UserID       int64     `db:"user_id" json:"userId"`
	MedicationID int64     `db:"medication_id" json:"medicationId"`
	Date         time.Time `db:"date" json:"date"`
	Taken        bool      `db:"taken" json:"taken"`
}

type ScheduleBlock struct {
	ID        int64     `db:"id" json:"id"`
	Day       string    `db:"day" json:"day"`
	StartTime TimeOfDay `db:"start_time" json:"startTime"`
	EndTime   TimeOfDay `db:"end_time" json:"endTime"`
	Title     string    `db:"title" json:"title"`
	Type      string    `db:"type" json:"type"`
}

// ScheduleCompletion is unique per (user, block, date); Date is a calendar day.
type ScheduleCompletion struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"userId"`
	BlockID   int64     `db:"block_id" json:"blockId"`
	Date      time.Time `db:"date" json:"date"`
	Completed bool      `db:"completed" json:"completed"`
}

// Catalog is the static data written by a reseed.
type Catalog struct {
	UserName       string
	Exercises      []Exercise
	Workouts       []CatalogWorkout
	Medications    []Medication
	Meals          []Meal
	ScheduleBlocks []ScheduleBlock
	Metrics        []HealthMetric
}

// CatalogWorkout references its exercises by name so the catalog can be
// declared before any ids exist.
type CatalogWorkout struct {
	Workout       Workout
	Prescriptions []Prescription
}

type Prescription struct {
	ExerciseName  string
	TargetSets    int
	TargetRepsMin int
	TargetRepsMax int
	RestSeconds   int
}
