package engine

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/emre/advisehub/internal/pkg/logger"
)

// Limits are the credit constraints for semester packing and simulation.
type Limits struct {
	// MaxSemesterCredits is the hard per-semester cap.
	MaxSemesterCredits float64
	// TypicalSemesterCredits is the lower cap used when deferring overflow
	// into a later semester.
	TypicalSemesterCredits float64
	// DeferHorizon is how many future semesters to scan for spare capacity
	// before marking a course flexible.
	DeferHorizon int
}

// DefaultLimits returns the standard advising limits.
func DefaultLimits() Limits {
	return Limits{
		MaxSemesterCredits:     18,
		TypicalSemesterCredits: 15,
		DeferHorizon:           10,
	}
}

// Plan sentinels for courses that do not get a numeric semester.
const (
	PlanCompleted  = "c"
	PlanRegistered = "r"
	PlanAdvised    = "a"
	PlanNotFound   = "-"
)

// ProjectSchedule projects, for one student, which semester each catalog
// course can earliest be taken in, then packs courses into semesters under
// the credit limits. The returned map holds, per course code, either a
// sentinel ("c" completed, "r" registered, "a" advised this term), a
// numeric semester, or a flexible "N/N+1/N+2" range.
func ProjectSchedule(student *StudentProgress, catalog *Catalog, advised []string, lim Limits) map[string]string {
	graph := BuildGraph(catalog)
	proj := &projection{
		student:  student,
		catalog:  catalog,
		advised:  toSet(advised),
		memo:     make(map[string]int),
		visiting: make(map[string]bool),
	}

	plan := make(map[string]string, catalog.Len())
	buckets := make(map[int][]string)
	for _, code := range catalog.Codes() {
		if label, ok := proj.sentinel(code); ok {
			plan[code] = label
			continue
		}
		sem, _ := proj.earliest(code)
		buckets[sem] = append(buckets[sem], code)
	}

	semesters := make([]int, 0, len(buckets))
	for sem := range buckets {
		semesters = append(semesters, sem)
	}
	sort.Ints(semesters)

	// Greedy packing: critical courses first, overflow deferred forward.
	assigned := make(map[int]float64)
	placement := make(map[string]int)
	for _, sem := range semesters {
		bucket := buckets[sem]
		sort.SliceStable(bucket, func(i, j int) bool {
			di, dj := graph.DependentCount(bucket[i]), graph.DependentCount(bucket[j])
			if di != dj {
				return di > dj
			}
			return bucket[i] < bucket[j]
		})

		for _, code := range bucket {
			course, _ := catalog.Course(code)
			if assigned[sem]+course.Credits <= lim.MaxSemesterCredits {
				assigned[sem] += course.Credits
				placement[code] = sem
				plan[code] = strconv.Itoa(sem)
				continue
			}

			deferred := false
			for target := sem + 1; target <= sem+lim.DeferHorizon; target++ {
				if assigned[target]+course.Credits <= lim.TypicalSemesterCredits {
					assigned[target] += course.Credits
					placement[code] = target
					plan[code] = strconv.Itoa(target)
					deferred = true
					break
				}
			}
			if !deferred {
				plan[code] = flexibleLabel(sem)
			}
		}
	}

	// Courses nothing depends on have scheduling slack; surface that to the
	// advisor even when they got a firm slot.
	for code, sem := range placement {
		if graph.DependentCount(code) == 0 {
			plan[code] = flexibleLabel(sem)
		}
	}

	return plan
}

// LongestPath is a convenience wrapper: the chain-length lower bound on the
// student's remaining semesters.
func LongestPath(student *StudentProgress, catalog *Catalog) int {
	graph := BuildGraph(catalog)
	return graph.LongestRemainingPath(student.UncompletedCourses(catalog))
}

type projection struct {
	student  *StudentProgress
	catalog  *Catalog
	advised  map[string]bool
	memo     map[string]int
	visiting map[string]bool
}

// sentinel returns the non-numeric label for a course, if one applies.
func (p *projection) sentinel(code string) (string, bool) {
	switch p.student.StatusOf(code) {
	case StatusCompleted:
		return PlanCompleted, true
	case StatusRegistered:
		return PlanRegistered, true
	}
	if p.advised[code] {
		return PlanAdvised, true
	}
	if _, ok := p.catalog.Course(code); !ok {
		return PlanNotFound, true
	}
	return "", false
}

// earliest computes the earliest feasible semester for a course. The second
// return is false when the course resolves to a sentinel instead of a
// number (already completed, registered, advised, or unknown).
func (p *projection) earliest(code string) (int, bool) {
	if _, ok := p.sentinel(code); ok {
		return 0, false
	}
	if sem, ok := p.memo[code]; ok {
		return sem, true
	}
	if p.visiting[code] {
		logger.Warn().Str("course", code).Msg("Circular prerequisite chain, defaulting to first semester")
		return 1, true
	}
	p.visiting[code] = true

	course, _ := p.catalog.Course(code)
	maxPrereq := 0
	for _, token := range ParseRequirements(course.Prerequisite) {
		if IsStandingPhrase(token) {
			if offset := standingOffset(token); offset > maxPrereq {
				maxPrereq = offset
			}
			continue
		}
		if sem, numeric := p.earliest(token); numeric && sem > maxPrereq {
			maxPrereq = sem
		}
	}

	delete(p.visiting, code)
	sem := 1 + maxPrereq
	p.memo[code] = sem
	return sem, true
}

// standingOffset approximates how many semesters it takes to reach a
// standing tier.
func standingOffset(phrase string) int {
	lower := strings.ToLower(phrase)
	switch {
	case strings.Contains(lower, "senior"):
		return 4
	case strings.Contains(lower, "junior"):
		return 2
	default:
		return 1
	}
}

func flexibleLabel(sem int) string {
	return fmt.Sprintf("%d/%d/%d", sem, sem+1, sem+2)
}
