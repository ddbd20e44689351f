package api

import (
	"net/http"
	"time"

	"github.com/foldik/course-admin/internal/models"
	"github.com/foldik/course-admin/internal/utils"
)

func HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, http.StatusOK, models.Envelope[models.HealthStatus]{Data: models.HealthStatus{
			Status: "ok",
			Time:   time.Now().UTC().Format(time.RFC3339),
		}})
	}
}
