package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeCodesTrimsAndDeduplicates(t *testing.T) {
	taken := make(map[string]bool)

	got := dedupeCodes([]string{" CS101 ", "CS101", "", "MAT201"}, taken)
	assert.Equal(t, []string{"CS101", "MAT201"}, got)
}

func TestDedupeCodesSkipsHigherPriorityClaims(t *testing.T) {
	// SaveSelection runs the lists through one shared map in priority
	// order, so a code advised and also marked optional or repeat stays
	// only in the advised list.
	taken := make(map[string]bool)

	advised := dedupeCodes([]string{"CS101", "CS201"}, taken)
	optional := dedupeCodes([]string{"CS101", "PHY101"}, taken)
	repeat := dedupeCodes([]string{"CS201", "PHY101", "MAT101"}, taken)

	assert.Equal(t, []string{"CS101", "CS201"}, advised)
	assert.Equal(t, []string{"PHY101"}, optional)
	assert.Equal(t, []string{"MAT101"}, repeat)
}

func TestDedupeCodesEmptyInput(t *testing.T) {
	taken := make(map[string]bool)
	assert.Nil(t, dedupeCodes(nil, taken))
	assert.Nil(t, dedupeCodes([]string{"", "  "}, taken))
}
