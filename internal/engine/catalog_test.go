package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustCatalog builds a catalog for tests, failing on invalid rows.
func mustCatalog(t *testing.T, rows ...CourseRow) *Catalog {
	t.Helper()
	cat, err := LoadCatalog(rows)
	require.NoError(t, err)
	return cat
}

// course is shorthand for an offered course row.
func course(code, credits, prereq, concurrent, coreq string) CourseRow {
	return CourseRow{
		Code:         code,
		Title:        code + " title",
		Credits:      credits,
		Offered:      "Yes",
		Prerequisite: prereq,
		Concurrent:   concurrent,
		Corequisite:  coreq,
	}
}

func TestLoadCatalog(t *testing.T) {
	t.Run("valid rows", func(t *testing.T) {
		cat := mustCatalog(t,
			course("CS101", "3", "", "", ""),
			course("CS201", "4", "CS101", "", ""),
		)
		assert.Equal(t, 2, cat.Len())
		assert.Equal(t, []string{"CS101", "CS201"}, cat.Codes())

		c, ok := cat.Course("CS201")
		require.True(t, ok)
		assert.Equal(t, 4.0, c.Credits)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := LoadCatalog(nil)
		assert.ErrorIs(t, err, ErrEmptyCatalog)
	})

	t.Run("missing course code", func(t *testing.T) {
		_, err := LoadCatalog([]CourseRow{{Code: "  ", Credits: "3"}})
		assert.ErrorIs(t, err, ErrMissingCourseCode)
	})

	t.Run("duplicate course code", func(t *testing.T) {
		_, err := LoadCatalog([]CourseRow{
			course("CS101", "3", "", "", ""),
			course("CS101", "4", "", "", ""),
		})
		assert.ErrorIs(t, err, ErrDuplicateCourseCode)
	})

	t.Run("non-numeric credits fall back to default", func(t *testing.T) {
		cat := mustCatalog(t, course("CS101", "three", "", "", ""))
		c, _ := cat.Course("CS101")
		assert.Equal(t, float64(DefaultCredits), c.Credits)
	})
}

func TestCourseIsOffered(t *testing.T) {
	tests := []struct {
		offered string
		want    bool
	}{
		{"Yes", true},
		{"yes", true},
		{" YES ", true},
		{"No", false},
		{"", false},
		{"maybe", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Course{Offered: tt.offered}.IsOffered(), "offered=%q", tt.offered)
	}
}
