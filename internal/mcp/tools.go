package mcp

import (
	"context"
	"fmt"

	"fittrack-backend-go/internal/models"
	"fittrack-backend-go/internal/services"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_metric",
		Description: "Record a health metric: weight, waist, or any lab result by name",
	}, s.handleLogMetric)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_meal",
		Description: "Log servings of a catalog meal for today",
	}, s.handleLogMeal)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "quick_add_meal",
		Description: "Create a custom meal and log one serving of it",
	}, s.handleQuickAddMeal)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "toggle_medication",
		Description: "Mark a medication or supplement as taken or not taken for a day",
	}, s.handleToggleMedication)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "toggle_schedule_block",
		Description: "Mark a schedule block as completed or not for a day",
	}, s.handleToggleScheduleBlock)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "complete_workout",
		Description: "Store a finished workout session with its sets in one call; sets missing weight or reps are dropped",
	}, s.handleCompleteWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "daily_summary",
		Description: "Today's macros, medication adherence, schedule position and weekly workouts",
	}, s.handleDailySummary)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_catalog",
		Description: "List meal, medication, workout and today's schedule block ids",
	}, s.handleListCatalog)

	s.registerSessionTools()
}

type logMetricInput struct {
	Type  string  `json:"type" jsonschema:"metric type, e.g. weight, waist or a lab name"`
	Value float64 `json:"value" jsonschema:"the measured value"`
	Unit  string  `json:"unit" jsonschema:"unit such as lbs, inches or mg/dL"`
	Notes string  `json:"notes,omitempty" jsonschema:"optional notes"`
}

type logMealInput struct {
	MealID   int64   `json:"meal_id" jsonschema:"catalog meal id"`
	Servings float64 `json:"servings,omitempty" jsonschema:"servings eaten, defaults to 1"`
}

type quickAddInput struct {
	Name     string  `json:"name" jsonschema:"meal name"`
	Calories float64 `json:"calories" jsonschema:"calories per serving"`
	Protein  float64 `json:"protein,omitempty" jsonschema:"grams of protein"`
	Carbs    float64 `json:"carbs,omitempty" jsonschema:"grams of carbohydrate"`
	Fats     float64 `json:"fats,omitempty" jsonschema:"grams of fat"`
}

type toggleMedicationInput struct {
	MedicationID int64  `json:"medication_id" jsonschema:"medication id"`
	Date         string `json:"date,omitempty" jsonschema:"day as YYYY-MM-DD, defaults to today"`
	Taken        bool   `json:"taken" jsonschema:"whether it was taken"`
}

type toggleScheduleInput struct {
	BlockID   int64  `json:"block_id" jsonschema:"schedule block id"`
	Date      string `json:"date,omitempty" jsonschema:"day as YYYY-MM-DD, defaults to today"`
	Completed bool   `json:"completed" jsonschema:"whether the block was completed"`
}

type setInput struct {
	ExerciseID int64    `json:"exercise_id" jsonschema:"exercise id"`
	SetNumber  int      `json:"set_number,omitempty" jsonschema:"1-based set number within the exercise, defaults to the next unfilled set"`
	Weight     *float64 `json:"weight,omitempty" jsonschema:"weight lifted"`
	Reps       *int     `json:"reps,omitempty" jsonschema:"repetitions"`
}

type completeWorkoutInput struct {
	WorkoutID int64      `json:"workout_id" jsonschema:"workout id"`
	Notes     string     `json:"notes,omitempty" jsonschema:"session notes"`
	Sets      []setInput `json:"sets,omitempty" jsonschema:"sets performed"`
}

type emptyInput struct{}

type idOutput struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type quickAddOutput struct {
	MealID  int64  `json:"meal_id"`
	LogID   int64  `json:"log_id"`
	Message string `json:"message"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type catalogOutput struct {
	Meals       []models.Meal          `json:"meals"`
	Medications []models.Medication    `json:"medications"`
	Workouts    []models.Workout       `json:"workouts"`
	Today       []models.ScheduleBlock `json:"today"`
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (s *Server) handleLogMetric(ctx context.Context, req *mcp.CallToolRequest, input logMetricInput) (*mcp.CallToolResult, idOutput, error) {
	value := input.Value
	id, err := s.tracker.LogMetric(ctx, s.userID, services.LogMetricInput{
		Type:  input.Type,
		Value: &value,
		Unit:  input.Unit,
		Notes: optional(input.Notes),
	})
	if err != nil {
		return nil, idOutput{}, fmt.Errorf("log metric: %w", err)
	}
	return nil, idOutput{ID: id, Message: fmt.Sprintf("Logged %s: %g %s", input.Type, input.Value, input.Unit)}, nil
}

func (s *Server) handleLogMeal(ctx context.Context, req *mcp.CallToolRequest, input logMealInput) (*mcp.CallToolResult, idOutput, error) {
	in := services.NutritionLogInput{MealID: input.MealID}
	if input.Servings != 0 {
		servings := input.Servings
		in.Servings = &servings
	}
	id, err := s.tracker.LogMeal(ctx, s.userID, in)
	if err != nil {
		return nil, idOutput{}, fmt.Errorf("log meal: %w", err)
	}
	return nil, idOutput{ID: id, Message: fmt.Sprintf("Logged meal %d", input.MealID)}, nil
}

func (s *Server) handleQuickAddMeal(ctx context.Context, req *mcp.CallToolRequest, input quickAddInput) (*mcp.CallToolResult, quickAddOutput, error) {
	calories, protein, carbs, fats := input.Calories, input.Protein, input.Carbs, input.Fats
	result, err := s.tracker.QuickAddMeal(ctx, s.userID, services.QuickAddInput{
		Name:     input.Name,
		Calories: &calories,
		Protein:  &protein,
		Carbs:    &carbs,
		Fats:     &fats,
	})
	if err != nil {
		return nil, quickAddOutput{}, fmt.Errorf("quick add: %w", err)
	}
	return nil, quickAddOutput{
		MealID:  result.MealID,
		LogID:   result.LogID,
		Message: fmt.Sprintf("Added %s (%g cal)", input.Name, input.Calories),
	}, nil
}

func (s *Server) handleToggleMedication(ctx context.Context, req *mcp.CallToolRequest, input toggleMedicationInput) (*mcp.CallToolResult, simpleOutput, error) {
	taken := input.Taken
	err := s.tracker.ToggleMedication(ctx, s.userID, services.MedicationToggleInput{
		MedicationID: input.MedicationID,
		Date:         input.Date,
		Taken:        &taken,
	})
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("toggle medication: %w", err)
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Medication %d taken=%t", input.MedicationID, input.Taken)}, nil
}

func (s *Server) handleToggleScheduleBlock(ctx context.Context, req *mcp.CallToolRequest, input toggleScheduleInput) (*mcp.CallToolResult, simpleOutput, error) {
	completed := input.Completed
	err := s.tracker.ToggleScheduleBlock(ctx, s.userID, services.ScheduleToggleInput{
		BlockID:   input.BlockID,
		Date:      input.Date,
		Completed: &completed,
	})
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("toggle schedule block: %w", err)
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Block %d completed=%t", input.BlockID, input.Completed)}, nil
}

func (s *Server) handleCompleteWorkout(ctx context.Context, req *mcp.CallToolRequest, input completeWorkoutInput) (*mcp.CallToolResult, idOutput, error) {
	session, err := s.tracker.StartWorkoutSession(ctx, s.userID, input.WorkoutID, false)
	if err != nil {
		return nil, idOutput{}, fmt.Errorf("complete workout: %w", err)
	}
	if err := fillSession(session, input.Sets); err != nil {
		return nil, idOutput{}, fmt.Errorf("complete workout: %w", err)
	}
	if err := session.SetNotes(input.Notes); err != nil {
		return nil, idOutput{}, fmt.Errorf("complete workout: %w", services.SessionError(err))
	}
	id, err := s.tracker.SubmitWorkoutSession(ctx, s.userID, session)
	if err != nil {
		return nil, idOutput{}, fmt.Errorf("complete workout: %w", err)
	}
	return nil, idOutput{ID: id, Message: fmt.Sprintf("Stored workout session %d", id)}, nil
}

// Schedule times serialize as "HH:MM", so the summary and catalog tools
// return untyped output and carry no inferred output schema.
func (s *Server) handleDailySummary(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	summary, err := s.tracker.Summary(ctx, s.userID)
	if err != nil {
		return nil, nil, fmt.Errorf("summary: %w", err)
	}
	return nil, summary, nil
}

func (s *Server) handleListCatalog(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	repo := s.tracker.Repo
	meals, err := repo.ListMeals(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list meals: %w", err)
	}
	meds, err := repo.ListMedications(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list medications: %w", err)
	}
	workouts, err := repo.ListWorkouts(ctx, services.ProgramVersion)
	if err != nil {
		return nil, nil, fmt.Errorf("list workouts: %w", err)
	}
	blocks, err := repo.ListScheduleBlocks(ctx, s.tracker.Clock().Weekday().String())
	if err != nil {
		return nil, nil, fmt.Errorf("list schedule: %w", err)
	}
	return nil, catalogOutput{Meals: meals, Medications: meds, Workouts: workouts, Today: blocks}, nil
}
