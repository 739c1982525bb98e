package services

import (
	"context"

	"fittrack-backend-go/internal/models"
)

type LogMetricInput struct {
	Type  string   `json:"type"`
	Value *float64 `json:"value"`
	Unit  string   `json:"unit"`
	Notes *string  `json:"notes,omitempty"`
}

// LogMetric appends one health metric reading. Repeated calls append.
func (t *Tracker) LogMetric(ctx context.Context, userID int64, in LogMetricInput) (int64, error) {
	metricType, err := requireText("type", in.Type)
	if err != nil {
		return 0, err
	}
	value, err := requireNumber("value", in.Value)
	if err != nil {
		return 0, err
	}
	unit, err := requireText("unit", in.Unit)
	if err != nil {
		return 0, err
	}
	id, err := t.Repo.CreateHealthMetric(ctx, models.HealthMetric{
		UserID: userID,
		Type:   metricType,
		Value:  value,
		Unit:   unit,
		Notes:  optionalText(in.Notes),
		Date:   t.Clock(),
	})
	if err != nil {
		return 0, storeError(err, "log metric")
	}
	t.notify(EventMetricLogged, userID)
	return id, nil
}

type MedicationToggleInput struct {
	MedicationID int64  `json:"medicationId"`
	Date         string `json:"date"`
	Taken        *bool  `json:"taken"`
}

// ToggleMedication records whether a medication was taken on a day. The last
// write for a (user, medication, day) wins.
func (t *Tracker) ToggleMedication(ctx context.Context, userID int64, in MedicationToggleInput) error {
	if err := requireID("medicationId", in.MedicationID); err != nil {
		return err
	}
	if in.Taken == nil {
		return ErrBadRequest("taken is required")
	}
	day, err := t.ParseDay(in.Date)
	if err != nil {
		return err
	}
	if err := t.Repo.UpsertMedicationLog(ctx, models.MedicationLog{
		UserID:       userID,
		MedicationID: in.MedicationID,
		Date:         day,
		Taken:        *in.Taken,
	}); err != nil {
		return storeError(err, "toggle medication")
	}
	t.notify(EventMedicationToggled, userID)
	return nil
}
