package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/emre/advisehub/internal/engine"
)

// CatalogSnapshot is one uploaded course table, stored immutably. The
// dependency graph and mutual-pair map are derived from it per request and
// never persisted.
type CatalogSnapshot struct {
	ID        uuid.UUID          `json:"id" db:"id"`
	Name      string             `json:"name" db:"name"`
	CreatedAt time.Time          `json:"createdAt" db:"created_at"`
	Courses   []engine.CourseRow `json:"courses,omitempty" db:"payload"`
}

// ProgressSnapshot is one uploaded student progress table, tied to the
// catalog whose course columns it carries.
type ProgressSnapshot struct {
	ID        uuid.UUID                 `json:"id" db:"id"`
	CatalogID uuid.UUID                 `json:"catalogId" db:"catalog_id"`
	CreatedAt time.Time                 `json:"createdAt" db:"created_at"`
	Students  []*engine.StudentProgress `json:"students,omitempty" db:"payload"`
}

// FindStudent returns the progress row for a student ID, if present.
func (s *ProgressSnapshot) FindStudent(studentID string) (*engine.StudentProgress, bool) {
	for _, student := range s.Students {
		if student.ID == studentID {
			return student, true
		}
	}
	return nil, false
}
