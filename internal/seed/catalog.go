package seed

import "fittrack-backend-go/internal/models"

const UserName = "Sonny"

func exercise(name, muscleGroup, method, notes string) models.Exercise {
	return models.Exercise{Name: name, MuscleGroup: muscleGroup, Method: method, Notes: &notes}
}

func workout(name, description string, prescriptions ...models.Prescription) models.CatalogWorkout {
	return models.CatalogWorkout{
		Workout:       models.Workout{Name: name, Version: "A", Description: &description},
		Prescriptions: prescriptions,
	}
}

func rx(exercise string, sets, repsMin, repsMax, rest int) models.Prescription {
	return models.Prescription{ExerciseName: exercise, TargetSets: sets, TargetRepsMin: repsMin, TargetRepsMax: repsMax, RestSeconds: rest}
}

func block(day, start, end, title, kind string) models.ScheduleBlock {
	return models.ScheduleBlock{
		Day:       day,
		StartTime: models.MustTimeOfDay(start),
		EndTime:   models.MustTimeOfDay(end),
		Title:     title,
		Type:      kind,
	}
}

func note(s string) *string { return &s }

// Catalog is the static program, pantry, medication list and weekly template.
func Catalog() models.Catalog {
	return models.Catalog{
		UserName: UserName,
		Exercises: []models.Exercise{
			exercise("Incline Barbell Press", "chest", "RPT", "30-degree incline, 4-6 reps top set, drop 10% each set"),
			exercise("Flat Dumbbell Press", "chest", "RPT", "6-8 reps top set"),
			exercise("Cable Flyes", "chest", "KinoRep", "12-15 reps, rest-pause to 20-25 total"),
			exercise("Standing Barbell Press", "shoulders", "RPT", "4-6 reps top set"),
			exercise("Lateral Raises", "shoulders", "KinoRep", "12-15 reps, rest-pause to failure"),
			exercise("Face Pulls", "shoulders", "Standard", "15-20 reps for rear delts"),
			exercise("Weighted Chin-ups", "back", "RPT", "4-6 reps top set, underhand grip"),
			exercise("Cable Rows", "back", "RPT", "6-8 reps top set"),
			exercise("Lat Pulldown", "back", "KinoRep", "10-12 reps, rest-pause"),
			exercise("Incline Dumbbell Curls", "biceps", "KinoRep", "6-8 reps, rest-pause to 12-15 total"),
			exercise("Hammer Curls", "biceps", "RestPause", "8-10 reps, rest-pause set"),
			exercise("Rope Pushdowns", "triceps", "KinoRep", "10-12 reps, rest-pause"),
			exercise("Overhead Tricep Extension", "triceps", "RestPause", "10-12 reps"),
			exercise("Bulgarian Split Squats", "legs", "RPT", "6-8 reps each leg"),
			exercise("Romanian Deadlift", "legs", "RPT", "6-8 reps"),
			exercise("Leg Curls", "legs", "KinoRep", "10-12 reps"),
			exercise("Calf Raises", "legs", "Standard", "12-15 reps, full stretch"),
		},
		Workouts: []models.CatalogWorkout{
			workout("Workout #1", "Chest & Shoulders focus",
				rx("Incline Barbell Press", 3, 4, 6, 180),
				rx("Flat Dumbbell Press", 3, 6, 8, 150),
				rx("Standing Barbell Press", 3, 4, 6, 180),
				rx("Lateral Raises", 2, 12, 15, 60),
				rx("Rope Pushdowns", 2, 10, 12, 60),
			),
			workout("Workout #2", "Back & Arms focus",
				rx("Weighted Chin-ups", 3, 4, 6, 180),
				rx("Cable Rows", 3, 6, 8, 150),
				rx("Face Pulls", 2, 15, 20, 60),
				rx("Incline Dumbbell Curls", 2, 6, 8, 90),
				rx("Hammer Curls", 2, 8, 10, 60),
			),
			workout("Workout #3", "Legs & Shoulders",
				rx("Bulgarian Split Squats", 3, 6, 8, 120),
				rx("Romanian Deadlift", 3, 6, 8, 150),
				rx("Leg Curls", 2, 10, 12, 60),
				rx("Calf Raises", 3, 12, 15, 60),
				rx("Lateral Raises", 2, 12, 15, 60),
			),
			workout("Workout #4", "Full Upper Body",
				rx("Incline Barbell Press", 2, 4, 6, 180),
				rx("Weighted Chin-ups", 2, 4, 6, 180),
				rx("Standing Barbell Press", 2, 4, 6, 180),
				rx("Cable Flyes", 1, 12, 15, 60),
				rx("Lat Pulldown", 1, 10, 12, 60),
			),
		},
		Medications: []models.Medication{
			{Name: "Sertraline", Dose: "50mg", Timing: "morning", Type: models.MedicationTypeMedication},
			{Name: "Allopurinol", Dose: "300mg", Timing: "morning", Type: models.MedicationTypeMedication},
			{Name: "Colchicine", Dose: "0.6mg", Timing: "morning", Type: models.MedicationTypeMedication},
			{Name: "Melatonin", Dose: "3mg", Timing: "before_bed", Type: models.MedicationTypeMedication},
			{Name: "Vitamin D3", Dose: "5000 IU", Timing: "with_food", Type: models.MedicationTypeSupplement},
			{Name: "Methylfolate", Dose: "1000mcg", Timing: "morning", Type: models.MedicationTypeSupplement},
			{Name: "Omega-3 Fish Oil", Dose: "2000mg", Timing: "with_food", Type: models.MedicationTypeSupplement},
			{Name: "Magnesium Glycinate", Dose: "400mg", Timing: "evening", Type: models.MedicationTypeSupplement},
			{Name: "Tart Cherry Extract", Dose: "500mg", Timing: "evening", Type: models.MedicationTypeSupplement},
		},
		Meals: []models.Meal{
			{Name: "Greek Yogurt with Berries", Calories: 250, Protein: 20, Carbs: 30, Fats: 5, Category: "breakfast"},
			{Name: "Protein Shake", Calories: 200, Protein: 40, Carbs: 5, Fats: 3, Category: "snack"},
			{Name: "Chicken Breast (6oz)", Calories: 280, Protein: 52, Carbs: 0, Fats: 6, Category: "dinner"},
			{Name: "Salmon Fillet (6oz)", Calories: 350, Protein: 40, Carbs: 0, Fats: 20, Category: "dinner"},
			{Name: "Brown Rice (1 cup cooked)", Calories: 215, Protein: 5, Carbs: 45, Fats: 2, Category: "dinner"},
			{Name: "Mixed Vegetables (1 cup)", Calories: 50, Protein: 2, Carbs: 10, Fats: 0, Category: "dinner"},
			{Name: "Eggs (2 whole)", Calories: 140, Protein: 12, Carbs: 1, Fats: 10, Category: "breakfast"},
			{Name: "Oatmeal (1 cup)", Calories: 300, Protein: 10, Carbs: 54, Fats: 5, Category: "breakfast"},
			{Name: "Steak (8oz ribeye)", Calories: 600, Protein: 50, Carbs: 0, Fats: 44, Category: "dinner"},
			{Name: "Sweet Potato (medium)", Calories: 115, Protein: 2, Carbs: 27, Fats: 0, Category: "dinner"},
		},
		ScheduleBlocks: weeklyTemplate(),
		Metrics: []models.HealthMetric{
			{Type: models.MetricWeight, Value: 195, Unit: "lbs", Notes: note("Starting weight")},
			{Type: models.MetricWaist, Value: 34, Unit: "inches", Notes: note("Starting measurement")},
		},
	}
}

func weeklyTemplate() []models.ScheduleBlock {
	blocks := []models.ScheduleBlock{}
	workday := func(day, workout string) {
		blocks = append(blocks,
			block(day, "06:30", "07:30", "Morning Routine", "personal"),
			block(day, "08:00", "12:00", "Motus Deep Work", "work"),
			block(day, "12:00", "13:00", "Meal 1", "meal"),
			block(day, "13:00", "14:00", workout, "workout"),
			block(day, "14:30", "17:30", "Motus Afternoon", "work"),
			block(day, "18:00", "19:00", "Dinner Feast", "meal"),
		)
	}
	classDay := func(day string) {
		blocks = append(blocks,
			block(day, "06:30", "07:30", "Morning Routine", "personal"),
			block(day, "08:00", "12:00", "Motus Deep Work", "work"),
			block(day, "12:00", "13:00", "Meal 1", "meal"),
			block(day, "13:00", "17:00", "Motus Afternoon", "work"),
			block(day, "17:30", "19:00", "Zoom Class", "class"),
			block(day, "19:30", "20:30", "Dinner Feast", "meal"),
		)
	}
	workday("Monday", "Workout #1")
	classDay("Tuesday")
	workday("Wednesday", "Workout #2")
	classDay("Thursday")
	workday("Friday", "Workout #3")
	blocks = append(blocks,
		block("Saturday", "08:00", "09:00", "Morning Routine", "personal"),
		block("Saturday", "10:00", "11:00", "Workout #4", "workout"),
		block("Saturday", "12:00", "13:00", "Meal 1", "meal"),
		block("Saturday", "18:00", "19:00", "Dinner Feast", "meal"),
		block("Sunday", "08:00", "09:00", "Morning Routine", "personal"),
		block("Sunday", "12:00", "13:00", "Meal 1", "meal"),
		block("Sunday", "18:00", "19:00", "Dinner Feast", "meal"),
	)
	return blocks
}
