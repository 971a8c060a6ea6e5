package engine

import (
	"fmt"
	"strings"
	"time"
)

// EligibilityStatus is the outcome of an eligibility check.
type EligibilityStatus string

const (
	StatusEligible          EligibilityStatus = "Eligible"
	StatusEligibleBypass    EligibilityStatus = "Eligible (Bypass)"
	StatusNotEligible       EligibilityStatus = "Not Eligible"
	StatusAlreadyCompleted  EligibilityStatus = "Completed"
	StatusAlreadyRegistered EligibilityStatus = "Registered"
)

// Bypass is an advisor-granted exemption from requisite checks for one
// course of one student.
type Bypass struct {
	Note      string    `json:"note"`
	Advisor   string    `json:"advisor"`
	GrantedAt time.Time `json:"grantedAt"`
}

// Result is an eligibility decision with its human-readable justification.
type Result struct {
	Status        EligibilityStatus `json:"status"`
	Justification string            `json:"justification"`
}

// EvalOptions carries the advising context for one evaluation. All fields
// are optional; the zero value checks raw requisites against the catalog.
type EvalOptions struct {
	// Advised are course codes selected for the student in the current
	// planning pass. They satisfy concurrent and corequisite requirements
	// but never prerequisites.
	Advised []string
	// Simulated are codes treated as registered for what-if evaluation.
	Simulated []string
	// IgnoreOffered skips the offered-this-term check. Planning callers
	// (scheduler, forecaster) set it; live advising does not.
	IgnoreOffered bool
	// MutualPairs is the catalog's mutual-requirement map (see MutualPairs).
	MutualPairs map[string][]string
	// Bypasses maps course code to an advisor-granted override for this
	// student. A bypass short-circuits all requisite checks.
	Bypasses map[string]Bypass
}

// Evaluate decides whether a student may take a course. It is a pure
// function over its inputs and never fails: data-quality problems resolve
// to Not Eligible with an explanatory justification.
func Evaluate(student *StudentProgress, code string, catalog *Catalog, opts EvalOptions) Result {
	// Completion and registration short-circuit everything else, including
	// the course's own requisites.
	switch student.StatusOf(code) {
	case StatusCompleted:
		return Result{StatusAlreadyCompleted, "Already completed."}
	case StatusRegistered:
		return Result{StatusAlreadyRegistered, "Already registered for this course."}
	}

	course, found := catalog.Course(code)
	if !found {
		return Result{StatusNotEligible, "Course not found in courses table."}
	}

	if bypass, ok := opts.Bypasses[code]; ok {
		justification := bypassJustification(bypass)
		if !opts.IgnoreOffered && !course.IsOffered() {
			return Result{StatusNotEligible, "Course not offered. " + justification}
		}
		return Result{StatusEligibleBypass, justification}
	}

	standing := student.Standing()
	advised := toSet(opts.Advised)
	simulated := toSet(opts.Simulated)
	partners := toSet(opts.MutualPairs[code])

	var reasons []string
	var notes []string
	var mutualWith []string

	for _, token := range ParseRequirements(course.Prerequisite) {
		if IsStandingPhrase(token) {
			if !standingSatisfies(token, standing) {
				reasons = append(reasons, fmt.Sprintf("Prerequisite '%s' not satisfied.", token))
			}
			continue
		}
		switch student.StatusOf(token) {
		case StatusCompleted:
			// satisfied
		case StatusRegistered:
			notes = append(notes, fmt.Sprintf("Prerequisite '%s' satisfied by current registration.", token))
		default:
			reasons = append(reasons, fmt.Sprintf("Prerequisite '%s' not satisfied.", token))
		}
	}

	checkCorequisites := func(label, raw string) {
		for _, token := range ParseRequirements(raw) {
			if IsStandingPhrase(token) {
				if !standingSatisfies(token, standing) {
					reasons = append(reasons, fmt.Sprintf("%s requirement '%s' not satisfied.", label, token))
				}
				continue
			}
			status := student.StatusOf(token)
			if status == StatusCompleted || status == StatusRegistered || advised[token] || simulated[token] {
				continue
			}
			// A mutual partner can never become eligible first; assume the
			// pair is scheduled together instead of deadlocking.
			if partners[token] {
				mutualWith = append(mutualWith, token)
				continue
			}
			reasons = append(reasons, fmt.Sprintf("%s requirement '%s' not satisfied.", label, token))
		}
	}
	checkCorequisites("Concurrent", course.Concurrent)
	checkCorequisites("Corequisite", course.Corequisite)

	if !opts.IgnoreOffered && !course.IsOffered() {
		reasons = append(reasons, "Course not offered.")
	}

	if len(reasons) > 0 {
		justification := strings.Join(reasons, "; ")
		if len(notes) > 0 {
			justification += " " + strings.Join(notes, " ")
		}
		return Result{StatusNotEligible, justification}
	}

	justification := "All requirements met."
	if len(mutualWith) > 0 {
		justification = fmt.Sprintf("Must be taken with: %s.", strings.Join(mutualWith, ", "))
	}
	if len(notes) > 0 {
		justification += " " + strings.Join(notes, " ")
	}
	return Result{StatusEligible, justification}
}

func bypassJustification(b Bypass) string {
	var sb strings.Builder
	sb.WriteString("Bypass granted")
	if b.Advisor != "" {
		sb.WriteString(" by " + b.Advisor)
	}
	if b.Note != "" {
		sb.WriteString(": " + b.Note)
	}
	sb.WriteString(".")
	return sb.String()
}

func toSet(list []string) map[string]bool {
	if len(list) == 0 {
		return nil
	}
	set := make(map[string]bool, len(list))
	for _, item := range list {
		set[item] = true
	}
	return set
}
