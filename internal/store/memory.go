package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"fittrack-backend-go/internal/models"
)

// Memory is a process-local store selected with DATABASE_URL=memory.
// Data is lost on restart.
type Memory struct {
	mu     sync.RWMutex
	nextID int64
	now    func() time.Time

	users          map[int64]models.User
	exercises      []models.Exercise
	workouts       []models.Workout
	workoutLogs    []models.WorkoutLog
	setLogs        []models.SetLog
	meals          []models.Meal
	nutritionLogs  []models.NutritionLog
	healthMetrics  []models.HealthMetric
	medications    []models.Medication
	medicationLogs []models.MedicationLog
	scheduleBlocks []models.ScheduleBlock
	completions    []models.ScheduleCompletion
}

func NewMemory() *Memory {
	m := &Memory{now: time.Now}
	m.reset()
	return m
}

func (m *Memory) reset() {
	m.nextID = 0
	m.users = map[int64]models.User{}
	m.exercises = nil
	m.workouts = nil
	m.workoutLogs = nil
	m.setLogs = nil
	m.meals = nil
	m.nutritionLogs = nil
	m.healthMetrics = nil
	m.medications = nil
	m.medicationLogs = nil
	m.scheduleBlocks = nil
	m.completions = nil
}

func (m *Memory) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *Memory) Ping(context.Context) error { return nil }

func (m *Memory) Close() error { return nil }

func (m *Memory) CreateUser(_ context.Context, name string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u := models.User{ID: m.id(), Name: name, CreatedAt: m.now()}
	m.users[u.ID] = u
	return u.ID, nil
}

func (m *Memory) UserExists(_ context.Context, userID int64) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.users[userID]
	return ok, nil
}

func (m *Memory) requireUser(op string, userID int64) error {
	if _, ok := m.users[userID]; !ok {
		return fmt.Errorf("%s: user %d: %w", op, userID, ErrReference)
	}
	return nil
}

func (m *Memory) mealByID(id int64) (models.Meal, bool) {
	for _, meal := range m.meals {
		if meal.ID == id {
			return meal, true
		}
	}
	return models.Meal{}, false
}

func (m *Memory) exerciseByID(id int64) (models.Exercise, bool) {
	for _, e := range m.exercises {
		if e.ID == id {
			return e, true
		}
	}
	return models.Exercise{}, false
}

func (m *Memory) workoutByID(id int64) (models.Workout, bool) {
	for _, w := range m.workouts {
		if w.ID == id {
			return w, true
		}
	}
	return models.Workout{}, false
}

// health

func (m *Memory) CreateHealthMetric(_ context.Context, metric models.HealthMetric) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.requireUser("create health metric", metric.UserID); err != nil {
		return 0, err
	}
	metric.ID = m.id()
	m.healthMetrics = append(m.healthMetrics, metric)
	return metric.ID, nil
}

func (m *Memory) ListHealthMetrics(_ context.Context, userID int64, metricType string, limit int) ([]models.HealthMetric, error) {
	return m.filterMetrics(userID, limit, func(h models.HealthMetric) bool { return h.Type == metricType }), nil
}

func (m *Memory) ListLabMetrics(_ context.Context, userID int64, exclude []string, limit int) ([]models.HealthMetric, error) {
	skip := make(map[string]bool, len(exclude))
	for _, t := range exclude {
		skip[t] = true
	}
	return m.filterMetrics(userID, limit, func(h models.HealthMetric) bool { return !skip[h.Type] }), nil
}

func (m *Memory) filterMetrics(userID int64, limit int, keep func(models.HealthMetric) bool) []models.HealthMetric {
	m.mu.RLock()
	defer m.mu.RUnlock()
	items := []models.HealthMetric{}
	for _, h := range m.healthMetrics {
		if h.UserID == userID && keep(h) {
			items = append(items, h)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return newer(items[i].Date, items[i].ID, items[j].Date, items[j].ID)
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}

func (m *Memory) ListMedications(context.Context) ([]models.Medication, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	items := append([]models.Medication{}, m.medications...)
	sort.Slice(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.Type != b.Type {
			return a.Type < b.Type
		}
		if a.Timing != b.Timing {
			return a.Timing < b.Timing
		}
		return a.ID < b.ID
	})
	return items, nil
}

func (m *Memory) UpsertMedicationLog(_ context.Context, entry models.MedicationLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.requireUser("upsert medication log", entry.UserID); err != nil {
		return err
	}
	found := false
	for _, med := range m.medications {
		if med.ID == entry.MedicationID {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("upsert medication log: medication %d: %w", entry.MedicationID, ErrReference)
	}
	key := dayKey(entry.Date)
	for i, existing := range m.medicationLogs {
		if existing.UserID == entry.UserID && existing.MedicationID == entry.MedicationID && dayKey(existing.Date) == key {
			m.medicationLogs[i].Taken = entry.Taken
			return nil
		}
	}
	entry.ID = m.id()
	m.medicationLogs = append(m.medicationLogs, entry)
	return nil
}

func (m *Memory) ListMedicationLogs(_ context.Context, userID int64, day time.Time) ([]models.MedicationLog, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	key := dayKey(day)
	items := []models.MedicationLog{}
	for _, l := range m.medicationLogs {
		if l.UserID == userID && dayKey(l.Date) == key {
			items = append(items, l)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].MedicationID < items[j].MedicationID })
	return items, nil
}

// nutrition

func (m *Memory) ListMeals(context.Context) ([]models.Meal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	items := append([]models.Meal{}, m.meals...)
	sort.Slice(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.ID < b.ID
	})
	return items, nil
}

func (m *Memory) CreateNutritionLog(_ context.Context, entry models.NutritionLog) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkNutritionLog("create nutrition log", entry); err != nil {
		return 0, err
	}
	entry.ID = m.id()
	m.nutritionLogs = append(m.nutritionLogs, entry)
	return entry.ID, nil
}

func (m *Memory) checkNutritionLog(op string, entry models.NutritionLog) error {
	if err := m.requireUser(op, entry.UserID); err != nil {
		return err
	}
	if _, ok := m.mealByID(entry.MealID); !ok {
		return fmt.Errorf("%s: meal %d: %w", op, entry.MealID, ErrReference)
	}
	if entry.Servings < 0 {
		return fmt.Errorf("%s: negative servings", op)
	}
	return nil
}

func (m *Memory) QuickAddMeal(_ context.Context, meal models.Meal, entry models.NutritionLog) (int64, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.requireUser("quick add meal", entry.UserID); err != nil {
		return 0, 0, err
	}
	if entry.Servings < 0 {
		return 0, 0, fmt.Errorf("quick add meal: negative servings")
	}
	meal.ID = m.id()
	m.meals = append(m.meals, meal)
	entry.MealID = meal.ID
	entry.ID = m.id()
	m.nutritionLogs = append(m.nutritionLogs, entry)
	return meal.ID, entry.ID, nil
}

func (m *Memory) ListNutritionEntries(_ context.Context, userID int64, from, to time.Time) ([]models.NutritionEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	items := []models.NutritionEntry{}
	for _, l := range m.nutritionLogs {
		if l.UserID != userID || l.Date.Before(from) || l.Date.After(to) {
			continue
		}
		meal, _ := m.mealByID(l.MealID)
		items = append(items, models.NutritionEntry{NutritionLog: l, Meal: meal})
	}
	sort.Slice(items, func(i, j int) bool {
		return newer(items[i].Date, items[i].ID, items[j].Date, items[j].ID)
	})
	return items, nil
}

// schedule

func (m *Memory) ListScheduleBlocks(_ context.Context, day string) ([]models.ScheduleBlock, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	items := []models.ScheduleBlock{}
	for _, b := range m.scheduleBlocks {
		if day == "" || b.Day == day {
			items = append(items, b)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.Day != b.Day {
			return a.Day < b.Day
		}
		if a.StartTime != b.StartTime {
			return a.StartTime < b.StartTime
		}
		return a.ID < b.ID
	})
	return items, nil
}

func (m *Memory) UpsertScheduleCompletion(_ context.Context, c models.ScheduleCompletion) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.requireUser("upsert schedule completion", c.UserID); err != nil {
		return err
	}
	found := false
	for _, b := range m.scheduleBlocks {
		if b.ID == c.BlockID {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("upsert schedule completion: block %d: %w", c.BlockID, ErrReference)
	}
	key := dayKey(c.Date)
	for i, existing := range m.completions {
		if existing.UserID == c.UserID && existing.BlockID == c.BlockID && dayKey(existing.Date) == key {
			m.completions[i].Completed = c.Completed
			return nil
		}
	}
	c.ID = m.id()
	m.completions = append(m.completions, c)
	return nil
}

func (m *Memory) ListScheduleCompletions(_ context.Context, userID int64, day time.Time) ([]models.ScheduleCompletion, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	key := dayKey(day)
	items := []models.ScheduleCompletion{}
	for _, c := range m.completions {
		if c.UserID == userID && dayKey(c.Date) == key {
			items = append(items, c)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].BlockID < items[j].BlockID })
	return items, nil
}

// workouts

func (m *Memory) ListWorkouts(_ context.Context, version string) ([]models.Workout, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	items := []models.Workout{}
	for _, w := range m.workouts {
		if w.Version == version {
			items = append(items, copyWorkout(w))
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (m *Memory) GetWorkout(_ context.Context, id int64) (models.Workout, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	w, ok := m.workoutByID(id)
	if !ok {
		return models.Workout{}, fmt.Errorf("get workout: %w", ErrNotFound)
	}
	return copyWorkout(w), nil
}

func copyWorkout(w models.Workout) models.Workout {
	w.Exercises = append([]models.WorkoutExercise{}, w.Exercises...)
	return w
}

func (m *Memory) LastWorkoutLog(_ context.Context, userID, workoutID int64) (*models.WorkoutLog, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var last *models.WorkoutLog
	for i := range m.workoutLogs {
		l := m.workoutLogs[i]
		if l.UserID != userID || l.WorkoutID != workoutID || !l.Completed {
			continue
		}
		if last == nil || newer(l.Date, l.ID, last.Date, last.ID) {
			last = &l
		}
	}
	if last == nil {
		return nil, nil
	}
	entry := *last
	entry.SetLogs = []models.SetLog{}
	for _, s := range m.setLogs {
		if s.WorkoutLogID == entry.ID {
			entry.SetLogs = append(entry.SetLogs, s)
		}
	}
	sort.Slice(entry.SetLogs, func(i, j int) bool {
		a, b := entry.SetLogs[i], entry.SetLogs[j]
		if a.ExerciseID != b.ExerciseID {
			return a.ExerciseID < b.ExerciseID
		}
		if a.SetNumber != b.SetNumber {
			return a.SetNumber < b.SetNumber
		}
		return a.ID < b.ID
	})
	return &entry, nil
}

func (m *Memory) CountWorkoutLogs(_ context.Context, userID int64, since time.Time) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	count := 0
	for _, l := range m.workoutLogs {
		if l.UserID != userID || !l.Completed {
			continue
		}
		if !since.IsZero() && l.Date.Before(since) {
			continue
		}
		count++
	}
	return count, nil
}

func (m *Memory) ListSetLogs(_ context.Context, userID int64, exerciseIDs []int64) ([]models.SetLog, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	owned := map[int64]bool{}
	for _, l := range m.workoutLogs {
		if l.UserID == userID {
			owned[l.ID] = true
		}
	}
	wanted := make(map[int64]bool, len(exerciseIDs))
	for _, id := range exerciseIDs {
		wanted[id] = true
	}
	items := []models.SetLog{}
	for _, s := range m.setLogs {
		if owned[s.WorkoutLogID] && wanted[s.ExerciseID] {
			items = append(items, s)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return newer(items[i].CreatedAt, items[i].ID, items[j].CreatedAt, items[j].ID)
	})
	return items, nil
}

func (m *Memory) CreateWorkoutLog(_ context.Context, entry models.WorkoutLog, sets []models.SetLog) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.requireUser("create workout log", entry.UserID); err != nil {
		return 0, err
	}
	if _, ok := m.workoutByID(entry.WorkoutID); !ok {
		return 0, fmt.Errorf("create workout log: workout %d: %w", entry.WorkoutID, ErrReference)
	}
	for _, s := range sets {
		if _, ok := m.exerciseByID(s.ExerciseID); !ok {
			return 0, fmt.Errorf("create workout log: exercise %d: %w", s.ExerciseID, ErrReference)
		}
	}
	entry.ID = m.id()
	entry.SetLogs = nil
	m.workoutLogs = append(m.workoutLogs, entry)
	for _, s := range sets {
		s.ID = m.id()
		s.WorkoutLogID = entry.ID
		if s.CreatedAt.IsZero() {
			s.CreatedAt = entry.Date
		}
		m.setLogs = append(m.setLogs, s)
	}
	return entry.ID, nil
}

// Reseed replaces all data with the catalog. Ids restart from 1.
func (m *Memory) Reseed(_ context.Context, catalog models.Catalog) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reset()

	user := models.User{ID: m.id(), Name: catalog.UserName, CreatedAt: m.now()}
	m.users[user.ID] = user

	byName := make(map[string]models.Exercise, len(catalog.Exercises))
	for _, e := range catalog.Exercises {
		e.ID = m.id()
		m.exercises = append(m.exercises, e)
		byName[e.Name] = e
	}
	for _, cw := range catalog.Workouts {
		w := cw.Workout
		w.ID = m.id()
		w.Exercises = nil
		for i, pr := range cw.Prescriptions {
			e, ok := byName[pr.ExerciseName]
			if !ok {
				m.reset()
				return 0, fmt.Errorf("reseed: workout %q: unknown exercise %q: %w", w.Name, pr.ExerciseName, ErrReference)
			}
			w.Exercises = append(w.Exercises, models.WorkoutExercise{
				ID:            m.id(),
				WorkoutID:     w.ID,
				ExerciseID:    e.ID,
				OrderIndex:    i + 1,
				TargetSets:    pr.TargetSets,
				TargetRepsMin: pr.TargetRepsMin,
				TargetRepsMax: pr.TargetRepsMax,
				RestSeconds:   pr.RestSeconds,
				Exercise:      e,
			})
		}
		m.workouts = append(m.workouts, w)
	}
	for _, med := range catalog.Medications {
		med.ID = m.id()
		m.medications = append(m.medications, med)
	}
	for _, meal := range catalog.Meals {
		meal.ID = m.id()
		m.meals = append(m.meals, meal)
	}
	for _, b := range catalog.ScheduleBlocks {
		b.ID = m.id()
		m.scheduleBlocks = append(m.scheduleBlocks, b)
	}
	for _, metric := range catalog.Metrics {
		metric.ID = m.id()
		metric.UserID = user.ID
		if metric.Date.IsZero() {
			metric.Date = m.now()
		}
		m.healthMetrics = append(m.healthMetrics, metric)
	}
	return user.ID, nil
}

// newer orders by date descending with id as the tiebreaker.
func newer(aDate time.Time, aID int64, bDate time.Time, bID int64) bool {
	if !aDate.Equal(bDate) {
		return aDate.After(bDate)
	}
	return aID > bID
}
