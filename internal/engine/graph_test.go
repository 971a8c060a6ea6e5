package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGraphAdjacency(t *testing.T) {
	cat := mustCatalog(t,
		course("CS101", "3", "", "", ""),
		course("CS201", "3", "CS101", "", ""),
		course("CS301", "3", "CS201 and Junior standing", "", ""),
	)
	g := BuildGraph(cat)

	assert.Empty(t, g.Upstream("CS101"))
	assert.Equal(t, []string{"CS101"}, g.Upstream("CS201"))
	// Standing phrases are not graph nodes.
	assert.Equal(t, []string{"CS201"}, g.Upstream("CS301"))
	assert.Equal(t, []string{"CS201"}, g.Downstream("CS101"))

	assert.Equal(t, []Edge{
		{Source: "CS101", Target: "CS201"},
		{Source: "CS201", Target: "CS301"},
	}, g.Edges())
}

func TestBottleneckScores(t *testing.T) {
	cat := mustCatalog(t,
		course("CS101", "3", "", "", ""),
		course("CS201", "4", "CS101", "", ""),
		course("CS202", "3", "CS101", "", ""),
		course("CS301", "3", "CS201", "", ""),
	)
	g := BuildGraph(cat)
	scores := g.BottleneckScores()

	// Leaf weight equals its own credits.
	assert.Equal(t, 3.0, scores["CS301"])
	assert.Equal(t, 3.0, scores["CS202"])
	// CS201 unlocks CS301.
	assert.Equal(t, 7.0, scores["CS201"])
	// CS101 unlocks everything.
	assert.Equal(t, 13.0, scores["CS101"])
}

func TestBottleneckScoresCycleSafe(t *testing.T) {
	cat := mustCatalog(t,
		course("A1", "3", "C1", "", ""),
		course("B1", "3", "A1", "", ""),
		course("C1", "3", "B1", "", ""),
	)
	g := BuildGraph(cat)

	var scores map[string]float64
	require.NotPanics(t, func() { scores = g.BottleneckScores() })
	for _, code := range []string{"A1", "B1", "C1"} {
		assert.Contains(t, scores, code)
		assert.GreaterOrEqual(t, scores[code], 3.0)
	}
}

func TestDependentCount(t *testing.T) {
	cat := mustCatalog(t,
		course("CS101", "3", "", "", ""),
		course("CS201", "3", "CS101", "", ""),
		course("CS301", "3", "CS201", "", ""),
	)
	g := BuildGraph(cat)

	assert.Equal(t, 0, g.DependentCount("CS301"))
	assert.Equal(t, 1, g.DependentCount("CS201"))
	assert.Equal(t, 2, g.DependentCount("CS101"))
}

func TestLongestRemainingPath(t *testing.T) {
	cat := mustCatalog(t,
		course("CS101", "3", "", "", ""),
		course("CS201", "3", "CS101", "", ""),
		course("CS301", "3", "CS201", "", ""),
		course("ART10", "3", "", "", ""),
	)
	g := BuildGraph(cat)

	assert.Equal(t, 3, g.LongestRemainingPath([]string{"CS101", "CS201", "CS301", "ART10"}))
	// Chain head completed: remaining chain is two long.
	assert.Equal(t, 2, g.LongestRemainingPath([]string{"CS201", "CS301"}))
	assert.Equal(t, 1, g.LongestRemainingPath([]string{"ART10"}))
	assert.Equal(t, 0, g.LongestRemainingPath(nil))
}

func TestLongestRemainingPathCycleSafe(t *testing.T) {
	cat := mustCatalog(t,
		course("A1", "3", "B1", "", ""),
		course("B1", "3", "A1", "", ""),
	)
	g := BuildGraph(cat)

	var depth int
	require.NotPanics(t, func() { depth = g.LongestRemainingPath([]string{"A1", "B1"}) })
	assert.GreaterOrEqual(t, depth, 1)
}
