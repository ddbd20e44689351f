package utils

import (
	"encoding/json"
	"net/http"

	"github.com/foldik/course-admin/internal/models"
	"github.com/google/uuid"
)

func GenerateID() string {
	return uuid.NewString()
}

// WriteJSON marshals v before touching the response so a marshal failure
// can still become a clean 500.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}

func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, models.ErrorResponse{Error: message})
}
