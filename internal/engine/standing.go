package engine

import "strings"

// Standing is a coarse academic-progress tier derived from credit totals.
type Standing int

const (
	StandingSophomore Standing = iota
	StandingJunior
	StandingSenior
)

// String returns the display name of the standing tier.
func (s Standing) String() string {
	switch s {
	case StandingSenior:
		return "Senior"
	case StandingJunior:
		return "Junior"
	default:
		return "Sophomore"
	}
}

// StandingFromCredits maps an accumulated credit total to a standing tier.
// There is no Freshman tier: anything under 30 credits is Sophomore. The
// source data has always worked this way, so the table is preserved as-is
// rather than inventing a fourth threshold.
func StandingFromCredits(total float64) Standing {
	switch {
	case total >= 60:
		return StandingSenior
	case total >= 30:
		return StandingJunior
	default:
		return StandingSophomore
	}
}

// standingSatisfies reports whether a standing requirement phrase is met by
// the student's current tier. A senior phrase demands Senior exactly, a
// junior phrase accepts Junior or above, a sophomore phrase accepts any
// tier, and an unrecognized phrase is never satisfied.
func standingSatisfies(phrase string, standing Standing) bool {
	lower := strings.ToLower(phrase)
	switch {
	case strings.Contains(lower, "senior"):
		return standing == StandingSenior
	case strings.Contains(lower, "junior"):
		return standing >= StandingJunior
	case strings.Contains(lower, "sophomore"):
		return true
	default:
		return false
	}
}
