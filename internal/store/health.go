package store

import (
	"context"
	"time"

	"fittrack-backend-go/internal/models"

	"github.com/jmoiron/sqlx"
)

func (p *Postgres) CreateHealthMetric(ctx context.Context, m models.HealthMetric) (int64, error) {
	var id int64
	err := p.db.QueryRowxContext(ctx, `
INSERT INTO health_metrics (user_id, type, value, unit, notes, date)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id
`, m.UserID, m.Type, m.Value, m.Unit, m.Notes, m.Date).Scan(&id)
	return id, classify("create health metric", err)
}

// ListHealthMetrics returns the latest entries of one metric type, newest first.
func (p *Postgres) ListHealthMetrics(ctx context.Context, userID int64, metricType string, limit int) ([]models.HealthMetric, error) {
	items := []models.HealthMetric{}
	err := p.db.SelectContext(ctx, &items, `
SELECT id, user_id, type, value, unit, notes, date
FROM health_metrics
WHERE user_id = $1 AND type = $2
ORDER BY date DESC, id DESC
LIMIT $3
`, userID, metricType, limit)
	return items, classify("list health metrics", err)
}

// ListLabMetrics returns the latest entries whose type is not in exclude, newest first.
func (p *Postgres) ListLabMetrics(ctx context.Context, userID int64, exclude []string, limit int) ([]models.HealthMetric, error) {
	items := []models.HealthMetric{}
	if len(exclude) == 0 {
		err := p.db.SelectContext(ctx, &items, `
SELECT id, user_id, type, value, unit, notes, date
FROM health_metrics
WHERE user_id = $1
ORDER BY date DESC, id DESC
LIMIT $2
`, userID, limit)
		return items, classify("list lab metrics", err)
	}
	query, args, err := sqlx.In(`
SELECT id, user_id, type, value, unit, notes, date
FROM health_metrics
WHERE user_id = ? AND type NOT IN (?)
ORDER BY date DESC, id DESC
LIMIT ?
`, userID, exclude, limit)
	if err != nil {
		return nil, classify("list lab metrics", err)
	}
	err = p.db.SelectContext(ctx, &items, p.db.Rebind(query), args...)
	return items, classify("list lab metrics", err)
}

func (p *Postgres) ListMedications(ctx context.Context) ([]models.Medication, error) {
	items := []models.Medication{}
	err := p.db.SelectContext(ctx, &items, `
SELECT id, name, dose, timing, type
FROM medications
ORDER BY type ASC, timing ASC, id ASC
`)
	return items, classify("list medications", err)
}

// UpsertMedicationLog keeps one row per (user, medication, day); the last write wins.
func (p *Postgres) UpsertMedicationLog(ctx context.Context, entry models.MedicationLog) error {
	_, err := p.db.ExecContext(ctx, `
INSERT INTO medication_logs (user_id, medication_id, date, taken)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user_id, medication_id, date) DO UPDATE SET taken = EXCLUDED.taken
`, entry.UserID, entry.MedicationID, dayKey(entry.Date), entry.Taken)
	return classify("upsert medication log", err)
}

func (p *Postgres) ListMedicationLogs(ctx context.Context, userID int64, day time.Time) ([]models.MedicationLog, error) {
	items := []models.MedicationLog{}
	err := p.db.SelectContext(ctx, &items, `
SELECT id, user_id, medication_id, date, taken
FROM medication_logs
WHERE user_id = $1 AND date = $2
ORDER BY medication_id ASC
`, userID, dayKey(day))
	return items, classify("list medication logs", err)
}
