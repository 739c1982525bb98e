package httpapi

import (
	"net/http"
	"strconv"

	"fittrack-backend-go/internal/services"

	"github.com/go-chi/chi/v5"
)

func (s *Server) DashboardJSON(w http.ResponseWriter, r *http.Request) {
	view, err := s.Tracker.Dashboard(r.Context(), CurrentUserID(r))
	writeView(w, r, view, err)
}

func (s *Server) HealthJSON(w http.ResponseWriter, r *http.Request) {
	view, err := s.Tracker.Health(r.Context(), CurrentUserID(r))
	writeView(w, r, view, err)
}

func (s *Server) NutritionJSON(w http.ResponseWriter, r *http.Request) {
	view, err := s.Tracker.Nutrition(r.Context(), CurrentUserID(r))
	writeView(w, r, view, err)
}

func (s *Server) ScheduleJSON(w http.ResponseWriter, r *http.Request) {
	view, err := s.Tracker.Schedule(r.Context(), CurrentUserID(r))
	writeView(w, r, view, err)
}

func (s *Server) WorkoutsJSON(w http.ResponseWriter, r *http.Request) {
	view, err := s.Tracker.Workouts(r.Context(), CurrentUserID(r))
	writeView(w, r, view, err)
}

func (s *Server) WorkoutDetailJSON(w http.ResponseWriter, r *http.Request) {
	workoutID, err := workoutIDParam(r)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	view, err := s.Tracker.WorkoutDetail(r.Context(), CurrentUserID(r), workoutID)
	writeView(w, r, view, err)
}

func (s *Server) SummaryJSON(w http.ResponseWriter, r *http.Request) {
	summary, err := s.Tracker.Summary(r.Context(), CurrentUserID(r))
	writeView(w, r, summary, err)
}

func writeView(w http.ResponseWriter, r *http.Request, view interface{}, err error) {
	if err != nil {
		WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, view)
}

// workoutIDParam rejects ids that are not positive integers as not found.
func workoutIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "workoutId")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, services.ErrNotFound("Workout not found")
	}
	return id, nil
}
