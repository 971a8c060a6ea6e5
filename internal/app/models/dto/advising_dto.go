package dto

import (
	"github.com/emre/advisehub/internal/engine"
)

// UploadCatalogRequest carries one catalog table upload
type UploadCatalogRequest struct {
	Name    string             `json:"name" binding:"required" example:"2026-2027 CS Curriculum"`
	Courses []engine.CourseRow `json:"courses" binding:"required,min=1"`
}

// UploadProgressRequest carries one progress table upload for a catalog
type UploadProgressRequest struct {
	Students []*engine.StudentProgress `json:"students" binding:"required,min=1"`
}

// CreatePeriodRequest creates a named advising period
type CreatePeriodRequest struct {
	Name string `json:"name" binding:"required" validate:"min=3,max=100" example:"2026 Fall"`
}

// SaveSelectionRequest replaces a student's selection for a period
type SaveSelectionRequest struct {
	Advised  []string `json:"advised"`
	Optional []string `json:"optional"`
	Repeat   []string `json:"repeat"`
	Note     string   `json:"note" validate:"max=2000"`
}

// GrantBypassRequest grants a requisite bypass for one course. Advisor is
// optional; the identity middleware's token claim takes precedence.
type GrantBypassRequest struct {
	CourseCode string `json:"courseCode" binding:"required"`
	Note       string `json:"note" validate:"max=2000"`
	Advisor    string `json:"advisor"`
}

// EligibilityResponse is one course's eligibility decision for a student
type EligibilityResponse struct {
	CourseCode    string `json:"courseCode"`
	Status        string `json:"status"`
	Justification string `json:"justification"`
}

// GraphNode is one course in the dependency graph view
type GraphNode struct {
	Code            string  `json:"code"`
	Title           string  `json:"title"`
	Credits         float64 `json:"credits"`
	Offered         bool    `json:"offered"`
	BottleneckScore float64 `json:"bottleneckScore"`
	DependentCount  int     `json:"dependentCount"`
}

// GraphResponse is the dependency graph visualization payload
type GraphResponse struct {
	CatalogID string        `json:"catalogId"`
	Nodes     []GraphNode   `json:"nodes"`
	Edges     []engine.Edge `json:"edges"`
}

// ProjectionResponse is a student's semester projection
type ProjectionResponse struct {
	StudentID          string            `json:"studentId"`
	Plan               map[string]string `json:"plan"`
	RemainingSemesters int               `json:"remainingSemesters"`
}

// ForecastResponse is the cohort demand matrix
type ForecastResponse struct {
	Horizon   int              `json:"horizon"`
	Semesters []map[string]int `json:"semesters"`
}
