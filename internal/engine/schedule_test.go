package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectScheduleSentinels(t *testing.T) {
	cat := mustCatalog(t,
		course("CS101", "3", "", "", ""),
		course("CS102", "3", "", "", ""),
		course("CS103", "3", "", "", ""),
		course("CS104", "3", "", "", ""),
	)
	s := student(map[string]string{
		"CS101": "c",
		"CS102": "cr",
		"CS103": "nc",
		"CS104": "nc",
	})

	plan := ProjectSchedule(s, cat, []string{"CS103"}, DefaultLimits())
	assert.Equal(t, PlanCompleted, plan["CS101"])
	assert.Equal(t, PlanRegistered, plan["CS102"])
	assert.Equal(t, PlanAdvised, plan["CS103"])
	// CS104 has no prerequisites and no dependents: flexible first slot.
	assert.Equal(t, "1/2/3", plan["CS104"])
}

func TestProjectScheduleChain(t *testing.T) {
	cat := mustCatalog(t,
		course("CS101", "3", "", "", ""),
		course("CS201", "3", "CS101", "", ""),
		course("CS301", "3", "CS201", "", ""),
	)
	s := student(map[string]string{"CS101": "nc", "CS201": "nc", "CS301": "nc"})

	plan := ProjectSchedule(s, cat, nil, DefaultLimits())
	assert.Equal(t, "1", plan["CS101"])
	assert.Equal(t, "2", plan["CS201"])
	// End of the chain carries no dependents, so it is flexible.
	assert.Equal(t, "3/4/5", plan["CS301"])
}

func TestProjectScheduleCompletedPrerequisiteAdvancesChain(t *testing.T) {
	cat := mustCatalog(t,
		course("CS101", "3", "", "", ""),
		course("CS201", "3", "CS101", "", ""),
		course("CS301", "3", "CS201", "", ""),
	)
	s := student(map[string]string{"CS101": "c", "CS201": "nc", "CS301": "nc"})

	plan := ProjectSchedule(s, cat, nil, DefaultLimits())
	assert.Equal(t, PlanCompleted, plan["CS101"])
	// Prerequisite already done: CS201 can start immediately.
	assert.Equal(t, "1", plan["CS201"])
	assert.Equal(t, "2/3/4", plan["CS301"])
}

func TestProjectScheduleStandingOffset(t *testing.T) {
	cat := mustCatalog(t,
		course("CS300", "3", "Junior standing", "", ""),
		course("CS400", "3", "Senior standing", "", ""),
		course("CS450", "3", "CS300", "", ""),
	)
	s := student(map[string]string{"CS300": "nc", "CS400": "nc", "CS450": "nc"})

	plan := ProjectSchedule(s, cat, nil, DefaultLimits())
	assert.Equal(t, "3", plan["CS300"])
	assert.Equal(t, "5/6/7", plan["CS400"]) // no dependents
	assert.Equal(t, "4/5/6", plan["CS450"])
}

func TestProjectScheduleCreditOverflowDefers(t *testing.T) {
	rows := []CourseRow{
		course("CS-A", "3", "", "", ""),
		course("CS-B", "3", "", "", ""),
		course("CS-C", "3", "", "", ""),
		course("CS-D", "3", "", "", ""),
		course("CS-E", "3", "", "", ""),
		course("CS-F", "3", "", "", ""),
		course("CS-G", "3", "", "", ""),
		course("CS-H", "3", "CS-A", "", ""),
	}
	cat, err := LoadCatalog(rows)
	require.NoError(t, err)

	cells := make(map[string]string)
	for _, row := range rows {
		cells[row.Code] = "nc"
	}
	plan := ProjectSchedule(student(cells), cat, nil, DefaultLimits())

	// CS-A leads the first bucket (it has a dependent) and keeps a firm slot.
	assert.Equal(t, "1", plan["CS-A"])
	// Seven 3-credit courses exceed the 18-credit cap: the last by sort
	// order spills into semester 2's typical capacity.
	assert.Equal(t, "2/3/4", plan["CS-G"])
	for _, code := range []string{"CS-B", "CS-C", "CS-D", "CS-E", "CS-F"} {
		assert.Equal(t, "1/2/3", plan[code], "course %s", code)
	}
	assert.Equal(t, "2/3/4", plan["CS-H"])
}

func TestProjectScheduleCycleTerminates(t *testing.T) {
	cat := mustCatalog(t,
		course("A1", "3", "B1", "", ""),
		course("B1", "3", "A1", "", ""),
	)
	s := student(map[string]string{"A1": "nc", "B1": "nc"})

	var plan map[string]string
	require.NotPanics(t, func() { plan = ProjectSchedule(s, cat, nil, DefaultLimits()) })
	assert.Len(t, plan, 2)
	assert.NotEmpty(t, plan["A1"])
	assert.NotEmpty(t, plan["B1"])
}
