package engine

import "strings"

// CourseStatus is a student's progress state for one course.
type CourseStatus int

const (
	StatusNotCompleted CourseStatus = iota
	StatusRegistered
	StatusCompleted
)

// String returns the display name of the status.
func (s CourseStatus) String() string {
	switch s {
	case StatusCompleted:
		return "Completed"
	case StatusRegistered:
		return "Registered"
	default:
		return "NotCompleted"
	}
}

// ClassifyStatus normalizes a raw progress cell. A blank cell means the
// student is currently registered for the course, not that the value is
// unknown. Unrecognized tokens resolve to NotCompleted so that dirty data
// never grants eligibility credit.
func ClassifyStatus(cell string) CourseStatus {
	switch strings.ToLower(strings.TrimSpace(cell)) {
	case "":
		return StatusRegistered
	case "c":
		return StatusCompleted
	case "cr", "reg":
		return StatusRegistered
	default:
		return StatusNotCompleted
	}
}

// StudentProgress is one row of an uploaded progress table. Courses maps
// course code to the raw status cell; a missing key is equivalent to a
// blank cell.
type StudentProgress struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	CreditsCompleted  float64           `json:"creditsCompleted"`
	CreditsRegistered float64           `json:"creditsRegistered"`
	Courses           map[string]string `json:"courses"`
}

// StatusOf classifies the student's progress cell for a course code.
func (s *StudentProgress) StatusOf(code string) CourseStatus {
	return ClassifyStatus(s.Courses[code])
}

// Standing returns the student's current standing tier, counting both
// completed and in-progress credits.
func (s *StudentProgress) Standing() Standing {
	return StandingFromCredits(s.CreditsCompleted + s.CreditsRegistered)
}

// UncompletedCourses lists catalog courses the student has neither completed
// nor registered for, in catalog order.
func (s *StudentProgress) UncompletedCourses(c *Catalog) []string {
	var out []string
	for _, code := range c.Codes() {
		if s.StatusOf(code) == StatusNotCompleted {
			out = append(out, code)
		}
	}
	return out
}
