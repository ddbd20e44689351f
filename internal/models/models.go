package models

// Envelope wraps a single payload as {"data": ...}.
type Envelope[T any] struct {
	Data T `json:"data"`
}

// Page is a paginated list response. Max is the total-count upper bound.
type Page[T any] struct {
	Page  uint32 `json:"page"`
	Limit uint32 `json:"limit"`
	Max   uint32 `json:"max"`
	Data  []T    `json:"data"`
}

// PageRequest carries the page/limit query parameters. Bounds are not checked.
type PageRequest struct {
	Page  uint32
	Limit uint32
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleMentor  Role = "Mentor"
	RoleStudent Role = "Student"
)

type CourseStatus string

const (
	CourseDraft     CourseStatus = "Draft"
	CoursePublished CourseStatus = "Published"
	CoursePublic    CourseStatus = "Public"
)
