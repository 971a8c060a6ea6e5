package models

import (
	"time"

	"github.com/google/uuid"
)

// AdvisingPeriod is a named advising term (e.g. "2026 Fall").
type AdvisingPeriod struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// AdvisingSelection is one student's course selection within a period.
// The three code lists are sets by convention; the service deduplicates
// them on write, the engine does not enforce exclusivity.
type AdvisingSelection struct {
	PeriodID  uuid.UUID `json:"periodId" db:"period_id"`
	StudentID string    `json:"studentId" db:"student_id"`
	Advised   []string  `json:"advised" db:"advised"`
	Optional  []string  `json:"optional" db:"optional"`
	Repeat    []string  `json:"repeat" db:"repeat"`
	Note      string    `json:"note" db:"note"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// StudentBypass is an advisor-granted exemption from requisite checks.
type StudentBypass struct {
	StudentID  string    `json:"studentId" db:"student_id"`
	CourseCode string    `json:"courseCode" db:"course_code"`
	Note       string    `json:"note" db:"note"`
	Advisor    string    `json:"advisor" db:"advisor"`
	GrantedAt  time.Time `json:"grantedAt" db:"granted_at"`
}
