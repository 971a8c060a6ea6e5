package engine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Catalog load errors
var (
	ErrEmptyCatalog        = errors.New("catalog has no courses")
	ErrMissingCourseCode   = errors.New("course row is missing a course code")
	ErrDuplicateCourseCode = errors.New("duplicate course code in catalog")
)

// DefaultCredits is the fallback credit value used when a course row carries
// a non-numeric credits cell.
const DefaultCredits = 3

// CourseRow is one raw row of an uploaded catalog table. All cells are
// free text exactly as they arrive from the upload.
type CourseRow struct {
	Code         string `json:"code"`
	Title        string `json:"title"`
	Credits      string `json:"credits"`
	Type         string `json:"type"`
	Offered      string `json:"offered"`
	Prerequisite string `json:"prerequisite"`
	Concurrent   string `json:"concurrent"`
	Corequisite  string `json:"corequisite"`
}

// Course is a validated catalog entry.
type Course struct {
	Code         string
	Title        string
	Credits      float64
	Type         string
	Offered      string
	Prerequisite string
	Concurrent   string
	Corequisite  string
}

// IsOffered reports whether the course is flagged as offered this term.
func (c Course) IsOffered() bool {
	return strings.EqualFold(strings.TrimSpace(c.Offered), "yes")
}

// Catalog is an immutable snapshot of the course table, indexed by code.
// Derived views (dependency graph, mutual pairs) must be rebuilt whenever a
// new catalog is loaded.
type Catalog struct {
	codes  []string
	byCode map[string]Course
}

// LoadCatalog validates raw catalog rows into a Catalog. A missing or
// duplicate course code is the one fatal condition: everything else (bad
// credits, unparseable requirement text) degrades to defaults.
func LoadCatalog(rows []CourseRow) (*Catalog, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyCatalog
	}

	cat := &Catalog{
		codes:  make([]string, 0, len(rows)),
		byCode: make(map[string]Course, len(rows)),
	}

	for i, row := range rows {
		code := strings.TrimSpace(row.Code)
		if code == "" {
			return nil, fmt.Errorf("%w (row %d)", ErrMissingCourseCode, i+1)
		}
		if _, exists := cat.byCode[code]; exists {
			return nil, fmt.Errorf("%w: %s (row %d)", ErrDuplicateCourseCode, code, i+1)
		}

		credits, err := strconv.ParseFloat(strings.TrimSpace(row.Credits), 64)
		if err != nil || credits < 0 {
			credits = DefaultCredits
		}

		cat.codes = append(cat.codes, code)
		cat.byCode[code] = Course{
			Code:         code,
			Title:        strings.TrimSpace(row.Title),
			Credits:      credits,
			Type:         strings.TrimSpace(row.Type),
			Offered:      row.Offered,
			Prerequisite: row.Prerequisite,
			Concurrent:   row.Concurrent,
			Corequisite:  row.Corequisite,
		}
	}

	return cat, nil
}

// Course returns the course for a code, if present.
func (c *Catalog) Course(code string) (Course, bool) {
	course, ok := c.byCode[code]
	return course, ok
}

// Codes returns course codes in upload order.
func (c *Catalog) Codes() []string {
	return c.codes
}

// Len returns the number of courses in the snapshot.
func (c *Catalog) Len() int {
	return len(c.codes)
}
