package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStandingFromCredits(t *testing.T) {
	tests := []struct {
		credits float64
		want    Standing
	}{
		{0, StandingSophomore},
		{29.5, StandingSophomore},
		{30, StandingJunior},
		{59, StandingJunior},
		{60, StandingSenior},
		{120, StandingSenior},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StandingFromCredits(tt.credits), "credits=%v", tt.credits)
	}
}

func TestStandingSatisfies(t *testing.T) {
	tests := []struct {
		phrase   string
		standing Standing
		want     bool
	}{
		{"Senior standing", StandingSenior, true},
		{"Senior standing", StandingJunior, false},
		{"Junior standing", StandingSenior, true},
		{"Junior standing", StandingJunior, true},
		{"Junior standing", StandingSophomore, false},
		{"Sophomore standing", StandingSophomore, true},
		{"Sophomore standing", StandingSenior, true},
		{"Graduate standing", StandingSenior, false}, // unrecognized phrase
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, standingSatisfies(tt.phrase, tt.standing),
			"phrase=%q standing=%v", tt.phrase, tt.standing)
	}
}
