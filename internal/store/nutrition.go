package store

import (
	"context"
	"time"

	"fittrack-backend-go/internal/models"

	"github.com/jmoiron/sqlx"
)

func (p *Postgres) ListMeals(ctx context.Context) ([]models.Meal, error) {
	items := []models.Meal{}
	err := p.db.SelectContext(ctx, &items, `
SELECT id, name, calories, protein, carbs, fats, category
FROM meals
ORDER BY category ASC, name ASC, id ASC
`)
	return items, classify("list meals", err)
}

func (p *Postgres) CreateNutritionLog(ctx context.Context, entry models.NutritionLog) (int64, error) {
	id, err := insertNutritionLog(ctx, p.db, entry)
	return id, classify("create nutrition log", err)
}

// QuickAddMeal creates a catalog meal and logs it in one transaction.
func (p *Postgres) QuickAddMeal(ctx context.Context, meal models.Meal, entry models.NutritionLog) (int64, int64, error) {
	var mealID, logID int64
	err := p.withTx(ctx, func(tx *sqlx.Tx) error {
		id, err := insertMeal(ctx, tx, meal)
		if err != nil {
			return err
		}
		mealID = id
		entry.MealID = id
		logID, err = insertNutritionLog(ctx, tx, entry)
		return err
	})
	if err != nil {
		return 0, 0, classify("quick add meal", err)
	}
	return mealID, logID, nil
}

// ListNutritionEntries returns the user's logs with date in [from, to], newest first.
func (p *Postgres) ListNutritionEntries(ctx context.Context, userID int64, from, to time.Time) ([]models.NutritionEntry, error) {
	rows := []struct {
		models.NutritionLog
		MealName     string  `db:"meal_name"`
		MealCalories float64 `db:"meal_calories"`
		MealProtein  float64 `db:"meal_protein"`
		MealCarbs    float64 `db:"meal_carbs"`
		MealFats     float64 `db:"meal_fats"`
		MealCategory string  `db:"meal_category"`
	}{}
	err := p.db.SelectContext(ctx, &rows, `
SELECT n.id, n.user_id, n.meal_id, n.servings, n.date,
       m.name AS meal_name, m.calories AS meal_calories, m.protein AS meal_protein,
       m.carbs AS meal_carbs, m.fats AS meal_fats, m.category AS meal_category
FROM nutrition_logs n
JOIN meals m ON m.id = n.meal_id
WHERE n.user_id = $1 AND n.date >= $2 AND n.date <= $3
ORDER BY n.date DESC, n.id DESC
`, userID, from, to)
	if err != nil {
		return nil, classify("list nutrition entries", err)
	}
	items := make([]models.NutritionEntry, 0, len(rows))
	for _, row := range rows {
		items = append(items, models.NutritionEntry{
			NutritionLog: row.NutritionLog,
			Meal: models.Meal{
				ID:       row.MealID,
				Name:     row.MealName,
				Calories: row.MealCalories,
				Protein:  row.MealProtein,
				Carbs:    row.MealCarbs,
				Fats:     row.MealFats,
				Category: row.MealCategory,
			},
		})
	}
	return items, nil
}

func insertMeal(ctx context.Context, q sqlx.QueryerContext, meal models.Meal) (int64, error) {
	var id int64
	err := q.QueryRowxContext(ctx, `
INSERT INTO meals (name, calories, protein, carbs, fats, category)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id
`, meal.Name, meal.Calories, meal.Protein, meal.Carbs, meal.Fats, meal.Category).Scan(&id)
	return id, err
}

func insertNutritionLog(ctx context.Context, q sqlx.QueryerContext, entry models.NutritionLog) (int64, error) {
	var id int64
	err := q.QueryRowxContext(ctx, `
INSERT INTO nutrition_logs (user_id, meal_id, servings, date)
VALUES ($1, $2, $3, $4)
RETURNING id
`, entry.UserID, entry.MealID, entry.Servings, entry.Date).Scan(&id)
	return id, err
}
