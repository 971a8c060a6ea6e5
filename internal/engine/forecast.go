package engine

import (
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
)

// ForecastDemand projects aggregate per-course demand over future
// semesters. Each student independently walks a greedy path through the
// curriculum: take the eligible courses with the highest bottleneck scores
// up to the credit cap, mark them completed, repeat. The result maps
// semester index to course code to the number of students projected to
// take it then.
//
// Student simulations are independent, so they run in parallel with
// per-student state; the shared graph scores and mutual pairs are computed
// once up front and only read afterwards.
func ForecastDemand(catalog *Catalog, students []*StudentProgress, horizon int, lim Limits) []map[string]int {
	if horizon <= 0 || len(students) == 0 {
		return nil
	}

	graph := BuildGraph(catalog)
	scores := graph.BottleneckScores()
	pairs := MutualPairs(catalog)

	perStudent := make([][][]string, len(students))
	var group errgroup.Group
	group.SetLimit(runtime.GOMAXPROCS(0))
	for i, student := range students {
		i, student := i, student
		group.Go(func() error {
			perStudent[i] = simulatePath(student, catalog, scores, pairs, horizon, lim)
			return nil
		})
	}
	_ = group.Wait() // simulations never fail

	demand := make([]map[string]int, horizon)
	used := 0
	for _, path := range perStudent {
		for sem, chosen := range path {
			if demand[sem] == nil {
				demand[sem] = make(map[string]int)
			}
			for _, code := range chosen {
				demand[sem][code]++
			}
			if sem+1 > used {
				used = sem + 1
			}
		}
	}
	return demand[:used]
}

// simulatePath runs one student's greedy multi-semester simulation and
// returns the chosen course codes per semester.
func simulatePath(student *StudentProgress, catalog *Catalog, scores map[string]float64, pairs map[string][]string, horizon int, lim Limits) [][]string {
	sim := &StudentProgress{
		ID:                student.ID,
		Name:              student.Name,
		CreditsCompleted:  student.CreditsCompleted,
		CreditsRegistered: student.CreditsRegistered,
		Courses:           make(map[string]string, len(student.Courses)),
	}
	for code, cell := range student.Courses {
		sim.Courses[code] = cell
	}

	opts := EvalOptions{IgnoreOffered: true, MutualPairs: pairs}

	var path [][]string
	for sem := 0; sem < horizon; sem++ {
		var eligible []string
		for _, code := range catalog.Codes() {
			if Evaluate(sim, code, catalog, opts).Status == StatusEligible {
				eligible = append(eligible, code)
			}
		}
		if len(eligible) == 0 {
			break
		}

		sort.SliceStable(eligible, func(i, j int) bool {
			if scores[eligible[i]] != scores[eligible[j]] {
				return scores[eligible[i]] > scores[eligible[j]]
			}
			return eligible[i] < eligible[j]
		})

		var chosen []string
		credits := 0.0
		for _, code := range eligible {
			course, _ := catalog.Course(code)
			if credits+course.Credits > lim.MaxSemesterCredits {
				continue
			}
			credits += course.Credits
			chosen = append(chosen, code)
		}
		if len(chosen) == 0 {
			break
		}

		for _, code := range chosen {
			course, _ := catalog.Course(code)
			sim.Courses[code] = "c"
			sim.CreditsCompleted += course.Credits
		}
		path = append(path, chosen)
	}
	return path
}
