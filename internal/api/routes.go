package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/foldik/course-admin/internal/auth"
	"github.com/foldik/course-admin/internal/models"
	"github.com/foldik/course-admin/internal/service"
)

type API struct {
	sessions *service.SessionService
	courses  *service.CourseService
}

func NewAPI(sessions *service.SessionService, courses *service.CourseService) *API {
	return &API{sessions: sessions, courses: courses}
}

// Register mounts the /api and /admin groups on r. Set r's NotFound handler
// first so the groups inherit it.
func (a *API) Register(r chi.Router) {
	sessionH := NewSessionHandler()
	courseH := NewCourseHandler(a.courses)

	r.Route("/api", func(r chi.Router) {
		r.Use(auth.SessionMiddleware(a.sessions))
		r.Get("/", Index)
		r.Get("/2", Index2)
		r.Get("/session", sessionH.GetSession)
		r.Get("/me", sessionH.GetSession)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(auth.SessionMiddleware(a.sessions))
		r.Use(auth.RoleMiddleware(models.RoleAdmin))
		r.Get("/courses", courseH.ListCourses)
	})

	r.Get("/health", HealthHandler())
}
