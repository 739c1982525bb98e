package services

import (
	"context"

	"fittrack-backend-go/internal/models"
)

type NutritionLogInput struct {
	MealID   int64    `json:"mealId"`
	Servings *float64 `json:"servings"`
}

// LogMeal appends a nutrition log; servings defaults to 1 and must be positive.
func (t *Tracker) LogMeal(ctx context.Context, userID int64, in NutritionLogInput) (int64, error) {
	if err := requireID("mealId", in.MealID); err != nil {
		return 0, err
	}
	servings, err := optionalNumber("servings", in.Servings, 1)
	if err != nil {
		return 0, err
	}
	if servings == 0 {
		return 0, ErrBadRequest("servings must be positive")
	}
	id, err := t.Repo.CreateNutritionLog(ctx, models.NutritionLog{
		UserID:   userID,
		MealID:   in.MealID,
		Servings: servings,
		Date:     t.Clock(),
	})
	if err != nil {
		return 0, storeError(err, "log meal")
	}
	t.notify(EventMealLogged, userID)
	return id, nil
}

type QuickAddInput struct {
	Name     string   `json:"name"`
	Calories *float64 `json:"calories"`
	Protein  *float64 `json:"protein"`
	Carbs    *float64 `json:"carbs"`
	Fats     *float64 `json:"fats"`
}

type QuickAddResult struct {
	MealID int64 `json:"mealId"`
	LogID  int64 `json:"logId"`
}

// QuickAddMeal creates a custom catalog meal and logs one serving of it.
// Meals are never deduplicated by name.
func (t *Tracker) QuickAddMeal(ctx context.Context, userID int64, in QuickAddInput) (QuickAddResult, error) {
	name, err := requireText("name", in.Name)
	if err != nil {
		return QuickAddResult{}, err
	}
	calories, err := requireNumber("calories", in.Calories)
	if err != nil {
		return QuickAddResult{}, err
	}
	protein, err := optionalNumber("protein", in.Protein, 0)
	if err != nil {
		return QuickAddResult{}, err
	}
	carbs, err := optionalNumber("carbs", in.Carbs, 0)
	if err != nil {
		return QuickAddResult{}, err
	}
	fats, err := optionalNumber("fats", in.Fats, 0)
	if err != nil {
		return QuickAddResult{}, err
	}
	mealID, logID, err := t.Repo.QuickAddMeal(ctx, models.Meal{
		Name:     name,
		Calories: calories,
		Protein:  protein,
		Carbs:    carbs,
		Fats:     fats,
		Category: models.MealCategoryCustom,
	}, models.NutritionLog{
		UserID:   userID,
		Servings: 1,
		Date:     t.Clock(),
	})
	if err != nil {
		return QuickAddResult{}, storeError(err, "quick add meal")
	}
	t.notify(EventMealQuickAdded, userID)
	return QuickAddResult{MealID: mealID, LogID: logID}, nil
}
