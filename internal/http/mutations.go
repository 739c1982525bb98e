package httpapi

import (
	"net/http"

	"fittrack-backend-go/internal/services"
)

func (s *Server) LogMetric(w http.ResponseWriter, r *http.Request) {
	var req services.LogMetricInput
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, r, err)
		return
	}
	id, err := s.Tracker.LogMetric(r.Context(), CurrentUserID(r), req)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, IDResponse{Success: true, ID: id})
}

func (s *Server) ToggleMedication(w http.ResponseWriter, r *http.Request) {
	var req services.MedicationToggleInput
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, r, err)
		return
	}
	if err := s.Tracker.ToggleMedication(r.Context(), CurrentUserID(r), req); err != nil {
		WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, SuccessResponse{Success: true})
}

func (s *Server) LogMeal(w http.ResponseWriter, r *http.Request) {
	var req services.NutritionLogInput
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, r, err)
		return
	}
	id, err := s.Tracker.LogMeal(r.Context(), CurrentUserID(r), req)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, IDResponse{Success: true, ID: id})
}

func (s *Server) QuickAddMeal(w http.ResponseWriter, r *http.Request) {
	var req services.QuickAddInput
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, r, err)
		return
	}
	result, err := s.Tracker.QuickAddMeal(r.Context(), CurrentUserID(r), req)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, QuickAddResponse{Success: true, MealID: result.MealID, LogID: result.LogID})
}

func (s *Server) ToggleScheduleBlock(w http.ResponseWriter, r *http.Request) {
	var req services.ScheduleToggleInput
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, r, err)
		return
	}
	if err := s.Tracker.ToggleScheduleBlock(r.Context(), CurrentUserID(r), req); err != nil {
		WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, SuccessResponse{Success: true})
}

func (s *Server) CompleteWorkout(w http.ResponseWriter, r *http.Request) {
	var req services.CompleteWorkoutInput
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, r, err)
		return
	}
	id, err := s.Tracker.CompleteWorkout(r.Context(), CurrentUserID(r), req)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, WorkoutLogResponse{Success: true, WorkoutLogID: id})
}
