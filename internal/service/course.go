package service

import (
	"github.com/foldik/course-admin/internal/models"
)

// MaxCourses is the total-count bound reported on every course page.
const MaxCourses uint32 = 101

type CourseService struct{}

func NewCourseService() *CourseService {
	return &CourseService{}
}

// ListCourses echoes the requested page and limit. The result set is fixed
// and is not sliced by either value.
func (c *CourseService) ListCourses(req models.PageRequest) models.Page[models.CourseSummary] {
	return models.Page[models.CourseSummary]{
		Page:  req.Page,
		Limit: req.Limit,
		Max:   MaxCourses,
		Data: []models.CourseSummary{
			{
				ID:               10,
				Title:            "Hello World",
				ShortDescription: "Hello World Short description",
				LastUpdate:       1551303867,
				Status:           models.CoursePublished,
			},
		},
	}
}
