package api

import (
	"net/http"

	"github.com/foldik/course-admin/internal/auth"
	"github.com/foldik/course-admin/internal/models"
	"github.com/foldik/course-admin/internal/utils"
)

type SessionHandler struct{}

func NewSessionHandler() *SessionHandler {
	return &SessionHandler{}
}

// GET /api/session (also /api/me)
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	current := auth.GetUserFromCtx(r.Context())
	if current == nil {
		utils.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	utils.WriteJSON(w, http.StatusOK, models.Envelope[models.UserProfile]{Data: *current})
}
