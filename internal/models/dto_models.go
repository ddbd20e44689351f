package models

type UserProfile struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      Role   `json:"role"`
}

type CourseSummary struct {
	ID               uint32       `json:"id"`
	Title            string       `json:"title"`
	ShortDescription string       `json:"short_description"`
	LastUpdate       uint64       `json:"last_update"` // unix seconds
	Status           CourseStatus `json:"status"`
}

type HealthStatus struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}
