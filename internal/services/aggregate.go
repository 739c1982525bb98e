package services

import (
	"math"
	"sort"
	"time"

	"fittrack-backend-go/internal/models"
)

type Macros struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// SumMacros totals meal macros scaled by servings.
func SumMacros(entries []models.NutritionEntry) Macros {
	var total Macros
	for _, e := range entries {
		total.Calories += e.Meal.Calories * e.Servings
		total.Protein += e.Meal.Protein * e.Servings
		total.Carbs += e.Meal.Carbs * e.Servings
		total.Fats += e.Meal.Fats * e.Servings
	}
	return total
}

// TakenSet returns the medication ids logged as taken.
func TakenSet(logs []models.MedicationLog) map[int64]bool {
	taken := make(map[int64]bool, len(logs))
	for _, l := range logs {
		if l.Taken {
			taken[l.MedicationID] = true
		}
	}
	return taken
}

type Trend struct {
	Points  []models.HealthMetric `json:"points"`
	Current *float64              `json:"current"`
}

// Chronological turns a newest-first window into a chart series. Current is
// the value of the last point.
func Chronological(newestFirst []models.HealthMetric) Trend {
	points := make([]models.HealthMetric, len(newestFirst))
	for i, m := range newestFirst {
		points[len(newestFirst)-1-i] = m
	}
	trend := Trend{Points: points}
	if len(points) > 0 {
		v := points[len(points)-1].Value
		trend.Current = &v
	}
	return trend
}

type PersonalRecord struct {
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
}

// PersonalRecords keeps the heaviest set per exercise in scan order; a later
// set only replaces the record when strictly heavier.
func PersonalRecords(sets []models.SetLog) map[int64]PersonalRecord {
	prs := map[int64]PersonalRecord{}
	for _, s := range sets {
		existing, ok := prs[s.ExerciseID]
		if !ok || s.Weight > existing.Weight {
			prs[s.ExerciseID] = PersonalRecord{Weight: s.Weight, Reps: s.Reps}
		}
	}
	return prs
}

// ResolveBlocks finds the block in progress at now and the next one to start.
// Overlaps resolve to the earliest start.
func ResolveBlocks(blocks []models.ScheduleBlock, now models.TimeOfDay) (current, next *models.ScheduleBlock) {
	ordered := append([]models.ScheduleBlock{}, blocks...)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].StartTime < ordered[j].StartTime })
	for i := range ordered {
		b := ordered[i]
		if current == nil && b.StartTime <= now && now < b.EndTime {
			current = &b
		}
		if next == nil && b.StartTime > now {
			next = &b
		}
		if current != nil && next != nil {
			break
		}
	}
	return current, next
}

type Progress struct {
	Current   float64 `json:"current"`
	Target    float64 `json:"target"`
	Percent   float64 `json:"percent"`
	Remaining float64 `json:"remaining"`
	Reached   bool    `json:"reached"`
}

// ProgressTowards reports current against target, with Percent capped at 100.
func ProgressTowards(current, target float64) Progress {
	p := Progress{Current: current, Target: target}
	if target > 0 {
		p.Percent = math.Min(current/target*100, 100)
	}
	p.Remaining = math.Max(target-current, 0)
	p.Reached = target-current <= 0
	return p
}

func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay is the last representable instant of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// WeekStart is Sunday 00:00 of t's week.
func WeekStart(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, -int(t.Weekday()))
}
