package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRequirements(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty", "", nil},
		{"whitespace only", "   ", nil},
		{"not applicable", "N/A", nil},
		{"not applicable lowercase", "n/a", nil},
		{"single code", "CS101", []string{"CS101"}},
		{"comma separated", "CS101, CS102", []string{"CS101", "CS102"}},
		{"semicolon separated", "CS101; CS102", []string{"CS101", "CS102"}},
		{"and separated", "CS101 and CS102", []string{"CS101", "CS102"}},
		{"mixed separators", "CS101, CS102 and CS103; CS104", []string{"CS101", "CS102", "CS103", "CS104"}},
		{"empty tokens dropped", "CS101,, ,CS102", []string{"CS101", "CS102"}},
		{"standing phrase kept", "CS101, Junior standing", []string{"CS101", "Junior standing"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRequirements(tt.raw))
		})
	}
}

func TestIsStandingPhrase(t *testing.T) {
	assert.True(t, IsStandingPhrase("Junior standing"))
	assert.True(t, IsStandingPhrase("Senior Standing"))
	assert.False(t, IsStandingPhrase("CS101"))
	assert.False(t, IsStandingPhrase(""))
}
