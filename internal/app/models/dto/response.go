package dto

// Plain-text bodies returned by POST /students
const (
	MessageStudentAdded         = "Student added"
	MessageStudentAddedWithFile = "Student added with file"
)

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
