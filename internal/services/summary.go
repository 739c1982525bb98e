package services

import (
	"context"
	"time"

	"fittrack-backend-go/internal/models"
)

// DailySummary is the compact day overview used by the CLI and MCP tools.
type DailySummary struct {
	Date             time.Time            `json:"date"`
	DayName          string               `json:"dayName"`
	Macros           []MacroProgress      `json:"macros"`
	MedicationsTaken int                  `json:"medicationsTaken"`
	MedicationsTotal int                  `json:"medicationsTotal"`
	SupplementsTaken int                  `json:"supplementsTaken"`
	SupplementsTotal int                  `json:"supplementsTotal"`
	CurrentBlock     *BlockView           `json:"currentBlock"`
	NextBlock        *BlockView           `json:"nextBlock"`
	WeeklyWorkouts   int                  `json:"weeklyWorkouts"`
	WeeklyTarget     int                  `json:"weeklyTarget"`
	LatestWeight     *models.HealthMetric `json:"latestWeight"`
}

func (t *Tracker) Summary(ctx context.Context, userID int64) (DailySummary, error) {
	dash, err := t.Dashboard(ctx, userID)
	if err != nil {
		return DailySummary{}, err
	}
	health, err := t.Health(ctx, userID)
	if err != nil {
		return DailySummary{}, err
	}
	nutrition, err := t.Nutrition(ctx, userID)
	if err != nil {
		return DailySummary{}, err
	}
	return DailySummary{
		Date:             dash.Date,
		DayName:          dash.DayName,
		Macros:           nutrition.Macros,
		MedicationsTaken: health.MedicationsTaken,
		MedicationsTotal: len(health.Medications),
		SupplementsTaken: health.SupplementsTaken,
		SupplementsTotal: len(health.Supplements),
		CurrentBlock:     dash.CurrentBlock,
		NextBlock:        dash.NextBlock,
		WeeklyWorkouts:   dash.WeeklyWorkouts,
		WeeklyTarget:     dash.WeeklyTarget,
		LatestWeight:     dash.LatestWeight,
	}, nil
}
