package httpapi

import (
	"bytes"
	"log"
	"net/http"

	"fittrack-backend-go/internal/services"
	"fittrack-backend-go/internal/web"
)

func (s *Server) DashboardPage(w http.ResponseWriter, r *http.Request) {
	view, err := s.Tracker.Dashboard(r.Context(), CurrentUserID(r))
	s.page(w, r, "dashboard", "Dashboard", view, err)
}

func (s *Server) HealthPage(w http.ResponseWriter, r *http.Request) {
	view, err := s.Tracker.Health(r.Context(), CurrentUserID(r))
	s.page(w, r, "health", "Health", view, err)
}

func (s *Server) NutritionPage(w http.ResponseWriter, r *http.Request) {
	view, err := s.Tracker.Nutrition(r.Context(), CurrentUserID(r))
	s.page(w, r, "nutrition", "Nutrition", view, err)
}

func (s *Server) SchedulePage(w http.ResponseWriter, r *http.Request) {
	view, err := s.Tracker.Schedule(r.Context(), CurrentUserID(r))
	s.page(w, r, "schedule", "Schedule", view, err)
}

func (s *Server) WorkoutsPage(w http.ResponseWriter, r *http.Request) {
	view, err := s.Tracker.Workouts(r.Context(), CurrentUserID(r))
	s.page(w, r, "workouts", "Workouts", view, err)
}

func (s *Server) WorkoutDetailPage(w http.ResponseWriter, r *http.Request) {
	workoutID, err := workoutIDParam(r)
	if err != nil {
		s.NotFoundPage(w, r)
		return
	}
	view, err := s.Tracker.WorkoutDetail(r.Context(), CurrentUserID(r), workoutID)
	if svcErr, ok := services.AsServiceError(err); ok && svcErr.Kind == services.KindNotFound {
		s.NotFoundPage(w, r)
		return
	}
	s.renderView(w, r, "workout", view.Workout.Name, "workouts", view, err)
}

func (s *Server) NotFoundPage(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, http.StatusNotFound, "notfound", "Not found", "", "Nothing lives at "+r.URL.Path+".")
}

func (s *Server) page(w http.ResponseWriter, r *http.Request, name, title string, view interface{}, err error) {
	s.renderView(w, r, name, title, name, view, err)
}

func (s *Server) renderView(w http.ResponseWriter, r *http.Request, name, title, active string, view interface{}, err error) {
	if err != nil {
		log.Printf("%s %s: %v", r.Method, r.URL.Path, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	s.renderPage(w, r, http.StatusOK, name, title, active, view)
}

// renderPage buffers the template so a failed render never sends a partial page.
func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, status int, name, title, active string, data interface{}) {
	var buf bytes.Buffer
	if err := s.Pages.Render(&buf, name, web.Page{Title: title, Active: active, Data: data}); err != nil {
		log.Printf("render %s: %v", name, err)
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
