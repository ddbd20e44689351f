package api

import (
	"net/http"

	"github.com/foldik/course-admin/internal/service"
	"github.com/foldik/course-admin/internal/utils"
)

type CourseHandler struct {
	courses *service.CourseService
}

func NewCourseHandler(courses *service.CourseService) *CourseHandler {
	return &CourseHandler{courses: courses}
}

// GET /admin/courses?page=&limit=
func (h *CourseHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	req, err := ParsePageRequest(r.URL.Query())
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.WriteJSON(w, http.StatusOK, h.courses.ListCourses(req))
}
