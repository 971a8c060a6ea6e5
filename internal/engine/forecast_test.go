package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func forecastCatalog(t *testing.T) *Catalog {
	t.Helper()
	return mustCatalog(t,
		course("CS101", "3", "", "", ""),
		course("CS201", "3", "CS101", "", ""),
		course("CS301", "3", "CS201", "", ""),
	)
}

func TestForecastDemandChain(t *testing.T) {
	cat := forecastCatalog(t)
	s := student(map[string]string{"CS101": "nc", "CS201": "nc", "CS301": "nc"})

	demand := ForecastDemand(cat, []*StudentProgress{s}, 8, DefaultLimits())
	require.Len(t, demand, 3)
	assert.Equal(t, map[string]int{"CS101": 1}, demand[0])
	assert.Equal(t, map[string]int{"CS201": 1}, demand[1])
	assert.Equal(t, map[string]int{"CS301": 1}, demand[2])
}

func TestForecastDemandAggregatesCohort(t *testing.T) {
	cat := forecastCatalog(t)
	fresh := student(map[string]string{"CS101": "nc", "CS201": "nc", "CS301": "nc"})
	ahead := &StudentProgress{
		ID:      "2021002",
		Courses: map[string]string{"CS101": "c", "CS201": "nc", "CS301": "nc"},
	}

	demand := ForecastDemand(cat, []*StudentProgress{fresh, ahead}, 8, DefaultLimits())
	require.Len(t, demand, 3)
	assert.Equal(t, map[string]int{"CS101": 1, "CS201": 1}, demand[0])
	assert.Equal(t, map[string]int{"CS201": 1, "CS301": 1}, demand[1])
	assert.Equal(t, map[string]int{"CS301": 1}, demand[2])
}

func TestForecastDemandHonorsHorizon(t *testing.T) {
	cat := forecastCatalog(t)
	s := student(map[string]string{"CS101": "nc", "CS201": "nc", "CS301": "nc"})

	demand := ForecastDemand(cat, []*StudentProgress{s}, 2, DefaultLimits())
	assert.Len(t, demand, 2)
}

func TestForecastDemandIgnoresOfferedFlag(t *testing.T) {
	row := course("CS101", "3", "", "", "")
	row.Offered = "No"
	cat := mustCatalog(t, row)
	s := student(map[string]string{"CS101": "nc"})

	// Planning simulations look past the current term's offerings.
	demand := ForecastDemand(cat, []*StudentProgress{s}, 4, DefaultLimits())
	require.Len(t, demand, 1)
	assert.Equal(t, map[string]int{"CS101": 1}, demand[0])
}

func TestForecastDemandDeterministic(t *testing.T) {
	cat := mustCatalog(t,
		course("CS101", "3", "", "", ""),
		course("CS102", "3", "", "", ""),
		course("CS201", "3", "CS101", "", ""),
		course("MAT101", "4", "", "", ""),
		course("PHY101", "4", "MAT101", "", ""),
	)
	var students []*StudentProgress
	for _, id := range []string{"s1", "s2", "s3", "s4"} {
		students = append(students, &StudentProgress{
			ID: id,
			Courses: map[string]string{
				"CS101": "nc", "CS102": "nc", "CS201": "nc",
				"MAT101": "nc", "PHY101": "nc",
			},
		})
	}

	// Sequential reference: one student at a time, merged in order.
	graph := BuildGraph(cat)
	scores := graph.BottleneckScores()
	pairs := MutualPairs(cat)
	reference := make([]map[string]int, 6)
	used := 0
	for _, s := range students {
		for sem, chosen := range simulatePath(s, cat, scores, pairs, 6, DefaultLimits()) {
			if reference[sem] == nil {
				reference[sem] = make(map[string]int)
			}
			for _, code := range chosen {
				reference[sem][code]++
			}
			if sem+1 > used {
				used = sem + 1
			}
		}
	}
	reference = reference[:used]

	first := ForecastDemand(cat, students, 6, DefaultLimits())
	second := ForecastDemand(cat, students, 6, DefaultLimits())
	assert.Equal(t, reference, first)
	assert.Equal(t, first, second)
}

func TestForecastDemandEmptyInputs(t *testing.T) {
	cat := forecastCatalog(t)
	assert.Nil(t, ForecastDemand(cat, nil, 8, DefaultLimits()))
	s := student(map[string]string{"CS101": "nc"})
	assert.Nil(t, ForecastDemand(cat, []*StudentProgress{s}, 0, DefaultLimits()))
}
