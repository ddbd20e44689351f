package service

import (
	"github.com/foldik/course-admin/internal/models"
)

// SessionService resolves the user behind a request. There is no login yet,
// so every request belongs to the same fixed admin.
type SessionService struct{}

func NewSessionService() *SessionService {
	return &SessionService{}
}

func (s *SessionService) CurrentUser() models.UserProfile {
	return models.UserProfile{
		Username:  "foldik",
		FirstName: "Földi",
		LastName:  "Kristóf",
		Role:      models.RoleAdmin,
	}
}
