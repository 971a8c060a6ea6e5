package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		cell string
		want CourseStatus
	}{
		{"", StatusRegistered},
		{"   ", StatusRegistered},
		{"c", StatusCompleted},
		{"C", StatusCompleted},
		{" c ", StatusCompleted},
		{"cr", StatusRegistered},
		{"reg", StatusRegistered},
		{"nc", StatusNotCompleted},
		{"completed", StatusNotCompleted}, // only the exact token counts
		{"x", StatusNotCompleted},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyStatus(tt.cell), "cell=%q", tt.cell)
	}
}

func TestStudentStatusOf(t *testing.T) {
	student := &StudentProgress{Courses: map[string]string{
		"CS101": "c",
		"CS102": "cr",
		"CS103": "nc",
	}}

	assert.Equal(t, StatusCompleted, student.StatusOf("CS101"))
	assert.Equal(t, StatusRegistered, student.StatusOf("CS102"))
	assert.Equal(t, StatusNotCompleted, student.StatusOf("CS103"))
	// A missing cell is the blank-cell convention: currently registered.
	assert.Equal(t, StatusRegistered, student.StatusOf("CS999"))
}

func TestUncompletedCourses(t *testing.T) {
	cat := mustCatalog(t,
		course("CS101", "3", "", "", ""),
		course("CS102", "3", "", "", ""),
		course("CS103", "3", "", "", ""),
	)
	student := &StudentProgress{Courses: map[string]string{
		"CS101": "c",
		"CS102": "nc",
		"CS103": "nc",
	}}
	assert.Equal(t, []string{"CS102", "CS103"}, student.UncompletedCourses(cat))
}
