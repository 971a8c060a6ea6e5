package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func student(cells map[string]string) *StudentProgress {
	return &StudentProgress{ID: "2021001", Name: "Test Student", Courses: cells}
}

func TestEvaluateCompletedShortCircuits(t *testing.T) {
	cat := mustCatalog(t,
		course("CS101", "3", "", "", ""),
		course("CS201", "3", "CS101", "", ""),
	)
	// CS201's prerequisite is unmet, but completion wins regardless.
	s := student(map[string]string{"CS101": "nc", "CS201": "c"})

	res := Evaluate(s, "CS201", cat, EvalOptions{})
	assert.Equal(t, StatusAlreadyCompleted, res.Status)
	assert.Equal(t, "Already completed.", res.Justification)
}

func TestEvaluateRegisteredShortCircuits(t *testing.T) {
	cat := mustCatalog(t, course("CS201", "3", "CS999", "", ""))
	s := student(map[string]string{"CS201": "cr", "CS999": "nc"})

	res := Evaluate(s, "CS201", cat, EvalOptions{})
	assert.Equal(t, StatusAlreadyRegistered, res.Status)
	assert.Equal(t, "Already registered for this course.", res.Justification)
}

func TestEvaluateCourseNotFound(t *testing.T) {
	cat := mustCatalog(t, course("CS101", "3", "", "", ""))
	s := student(map[string]string{"CS404": "nc"})

	res := Evaluate(s, "CS404", cat, EvalOptions{})
	assert.Equal(t, StatusNotEligible, res.Status)
	assert.Equal(t, "Course not found in courses table.", res.Justification)
}

func TestEvaluatePrerequisiteCompleted(t *testing.T) {
	cat := mustCatalog(t,
		course("CS101", "3", "", "", ""),
		course("CS201", "3", "CS101", "", ""),
	)
	s := student(map[string]string{"CS101": "c", "CS201": "nc"})

	res := Evaluate(s, "CS201", cat, EvalOptions{})
	assert.Equal(t, StatusEligible, res.Status)
	assert.Equal(t, "All requirements met.", res.Justification)
}

func TestEvaluatePrerequisiteSatisfiedByRegistration(t *testing.T) {
	cat := mustCatalog(t,
		course("CS101", "3", "", "", ""),
		course("CS201", "3", "CS101", "", ""),
	)
	// Blank cell: currently registered for CS101.
	s := student(map[string]string{"CS101": "", "CS201": "nc"})

	res := Evaluate(s, "CS201", cat, EvalOptions{})
	assert.Equal(t, StatusEligible, res.Status)
	assert.Contains(t, res.Justification, "satisfied by current registration")
}

func TestEvaluatePrerequisiteUnmet(t *testing.T) {
	cat := mustCatalog(t,
		course("CS101", "3", "", "", ""),
		course("CS201", "3", "CS101", "", ""),
	)
	s := student(map[string]string{"CS101": "nc", "CS201": "nc"})

	res := Evaluate(s, "CS201", cat, EvalOptions{})
	assert.Equal(t, StatusNotEligible, res.Status)
	assert.Contains(t, res.Justification, "Prerequisite 'CS101' not satisfied.")
}

func TestEvaluateAdvisedDoesNotSatisfyPrerequisite(t *testing.T) {
	cat := mustCatalog(t,
		course("CS101", "3", "", "", ""),
		course("CS201", "3", "CS101", "", ""),
	)
	s := student(map[string]string{"CS101": "nc", "CS201": "nc"})

	res := Evaluate(s, "CS201", cat, EvalOptions{Advised: []string{"CS101"}})
	assert.Equal(t, StatusNotEligible, res.Status)
}

func TestEvaluateAdvisedSatisfiesConcurrent(t *testing.T) {
	cat := mustCatalog(t,
		course("MAT201", "3", "", "", ""),
		course("PHY201", "4", "", "MAT201", ""),
	)
	s := student(map[string]string{"MAT201": "nc", "PHY201": "nc"})

	res := Evaluate(s, "PHY201", cat, EvalOptions{})
	assert.Equal(t, StatusNotEligible, res.Status)

	res = Evaluate(s, "PHY201", cat, EvalOptions{Advised: []string{"MAT201"}})
	assert.Equal(t, StatusEligible, res.Status)
}

func TestEvaluateStandingPrerequisite(t *testing.T) {
	cat := mustCatalog(t, course("CS401", "3", "Senior standing", "", ""))

	junior := student(map[string]string{"CS401": "nc"})
	junior.CreditsCompleted = 45
	res := Evaluate(junior, "CS401", cat, EvalOptions{})
	assert.Equal(t, StatusNotEligible, res.Status)

	senior := student(map[string]string{"CS401": "nc"})
	senior.CreditsCompleted = 75
	res = Evaluate(senior, "CS401", cat, EvalOptions{})
	assert.Equal(t, StatusEligible, res.Status)
}

func TestEvaluateMutualPair(t *testing.T) {
	cat := mustCatalog(t,
		course("PHY201", "4", "", "MAT201", ""),
		course("MAT201", "3", "", "PHY201", ""),
	)
	s := student(map[string]string{"PHY201": "nc", "MAT201": "nc"})
	pairs := MutualPairs(cat)

	// Without the pair map the two deadlock.
	res := Evaluate(s, "PHY201", cat, EvalOptions{})
	assert.Equal(t, StatusNotEligible, res.Status)

	res = Evaluate(s, "PHY201", cat, EvalOptions{MutualPairs: pairs})
	assert.Equal(t, StatusEligible, res.Status)
	assert.Equal(t, "Must be taken with: MAT201.", res.Justification)
}

func TestEvaluateNotOffered(t *testing.T) {
	row := course("CS101", "3", "", "", "")
	row.Offered = "No"
	cat := mustCatalog(t, row)
	s := student(map[string]string{"CS101": "nc"})

	res := Evaluate(s, "CS101", cat, EvalOptions{})
	assert.Equal(t, StatusNotEligible, res.Status)
	assert.Contains(t, res.Justification, "Course not offered.")

	res = Evaluate(s, "CS101", cat, EvalOptions{IgnoreOffered: true})
	assert.Equal(t, StatusEligible, res.Status)
}

func TestEvaluateBypass(t *testing.T) {
	cat := mustCatalog(t,
		course("CS101", "3", "", "", ""),
		course("CS301", "3", "CS101", "", ""),
	)
	s := student(map[string]string{"CS101": "nc", "CS301": "nc"})
	bypasses := map[string]Bypass{
		"CS301": {Note: "advisor override", Advisor: "Dr. Kaya", GrantedAt: time.Now()},
	}

	res := Evaluate(s, "CS301", cat, EvalOptions{Bypasses: bypasses})
	assert.Equal(t, StatusEligibleBypass, res.Status)
	assert.Contains(t, res.Justification, "Bypass granted")
	assert.Contains(t, res.Justification, "Dr. Kaya")
	assert.Contains(t, res.Justification, "advisor override")
}

func TestEvaluateBypassStillChecksOffered(t *testing.T) {
	row := course("CS301", "3", "CS101", "", "")
	row.Offered = "No"
	cat := mustCatalog(t, row)
	s := student(map[string]string{"CS301": "nc"})
	bypasses := map[string]Bypass{"CS301": {Note: "override"}}

	res := Evaluate(s, "CS301", cat, EvalOptions{Bypasses: bypasses})
	assert.Equal(t, StatusNotEligible, res.Status)
	assert.Contains(t, res.Justification, "Course not offered.")
	assert.Contains(t, res.Justification, "Bypass granted")

	res = Evaluate(s, "CS301", cat, EvalOptions{Bypasses: bypasses, IgnoreOffered: true})
	assert.Equal(t, StatusEligibleBypass, res.Status)
}

func TestEvaluateIdempotent(t *testing.T) {
	cat := mustCatalog(t,
		course("CS101", "3", "", "", ""),
		course("CS201", "3", "CS101, Junior standing", "", ""),
	)
	s := student(map[string]string{"CS101": "", "CS201": "nc"})
	s.CreditsCompleted = 40
	opts := EvalOptions{MutualPairs: MutualPairs(cat)}

	first := Evaluate(s, "CS201", cat, opts)
	second := Evaluate(s, "CS201", cat, opts)
	assert.Equal(t, first, second)
}

func TestEvaluateMultipleUnmetReasons(t *testing.T) {
	row := course("CS301", "3", "CS101 and CS201", "", "")
	row.Offered = "No"
	cat := mustCatalog(t,
		course("CS101", "3", "", "", ""),
		course("CS201", "3", "", "", ""),
		row,
	)
	s := student(map[string]string{"CS101": "nc", "CS201": "nc", "CS301": "nc"})

	res := Evaluate(s, "CS301", cat, EvalOptions{})
	assert.Equal(t, StatusNotEligible, res.Status)
	assert.Equal(t,
		"Prerequisite 'CS101' not satisfied.; Prerequisite 'CS201' not satisfied.; Course not offered.",
		res.Justification)
}
