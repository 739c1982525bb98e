package httpapi

import (
	"encoding/json"
	"log"
	"net/http"

	"fittrack-backend-go/internal/services"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type IDResponse struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id"`
}

type QuickAddResponse struct {
	Success bool  `json:"success"`
	MealID  int64 `json:"mealId"`
	LogID   int64 `json:"logId"`
}

type WorkoutLogResponse struct {
	Success      bool  `json:"success"`
	WorkoutLogID int64 `json:"workoutLogId"`
}

func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func WriteMessage(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorResponse{Error: message})
}

// WriteError logs err and answers with its tagged status. Untagged errors
// are treated as persistence failures.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	svcErr, ok := services.AsServiceError(err)
	if !ok {
		svcErr = services.ServiceError{Kind: services.KindPersistence, Status: http.StatusInternalServerError, Message: "Internal server error", Err: err}
	}
	log.Printf("%s %s: %s (%s)", r.Method, r.URL.Path, svcErr.Kind, err)
	message := svcErr.Message
	if svcErr.Kind == services.KindPersistence {
		message = "Internal server error"
	}
	WriteMessage(w, svcErr.Status, message)
}

func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return services.ErrBadRequest("Invalid payload")
	}
	return nil
}
