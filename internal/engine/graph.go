package engine

// Graph is the curriculum dependency graph derived from a catalog's
// prerequisite fields. It owns its memo tables, so it must be rebuilt with
// BuildGraph whenever the catalog changes. Cyclic prerequisite data is bad
// data but must be tolerated: every traversal carries an on-stack guard and
// falls back to a safe value instead of recursing forever.
type Graph struct {
	catalog    *Catalog
	upstream   map[string][]string
	downstream map[string][]string

	weights   map[string]float64
	depCounts map[string]int
}

// BuildGraph constructs the dependency graph for a catalog snapshot.
// Standing phrases are not graph nodes and are discarded. A prerequisite
// code that is not itself in the catalog is kept as a dangling downstream
// key so that references to it still resolve.
func BuildGraph(c *Catalog) *Graph {
	g := &Graph{
		catalog:    c,
		upstream:   make(map[string][]string),
		downstream: make(map[string][]string),
		weights:    make(map[string]float64),
		depCounts:  make(map[string]int),
	}

	for _, code := range c.Codes() {
		course, _ := c.Course(code)
		for _, token := range ParseRequirements(course.Prerequisite) {
			if IsStandingPhrase(token) {
				continue
			}
			g.upstream[code] = append(g.upstream[code], token)
			g.downstream[token] = append(g.downstream[token], code)
		}
	}
	return g
}

// Upstream returns the direct prerequisites of a course.
func (g *Graph) Upstream(code string) []string {
	return g.upstream[code]
}

// Downstream returns the courses that list this course as a prerequisite.
func (g *Graph) Downstream(code string) []string {
	return g.downstream[code]
}

// Edge is one prerequisite relation, pointing from the prerequisite to the
// course that requires it.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// Edges lists all prerequisite relations in catalog order.
func (g *Graph) Edges() []Edge {
	var edges []Edge
	for _, code := range g.catalog.Codes() {
		for _, prereq := range g.upstream[code] {
			edges = append(edges, Edge{Source: prereq, Target: code})
		}
	}
	return edges
}

// BottleneckScores computes the unlock weight of every catalog course: its
// own credits plus the weights of everything downstream of it. A high score
// marks a course whose completion unlocks a large share of the curriculum.
func (g *Graph) BottleneckScores() map[string]float64 {
	scores := make(map[string]float64, g.catalog.Len())
	onStack := make(map[string]bool)
	for _, code := range g.catalog.Codes() {
		scores[code] = g.weight(code, onStack)
	}
	return scores
}

// weight is a memoized post-order recursion. The onStack set is shared with
// push/pop discipline; a node re-entered while on the stack contributes
// zero, which breaks prerequisite cycles.
func (g *Graph) weight(code string, onStack map[string]bool) float64 {
	if w, ok := g.weights[code]; ok {
		return w
	}
	if onStack[code] {
		return 0
	}
	onStack[code] = true

	w := float64(DefaultCredits)
	if course, ok := g.catalog.Course(code); ok {
		w = course.Credits
	}
	for _, child := range g.downstream[code] {
		w += g.weight(child, onStack)
	}

	delete(onStack, code)
	g.weights[code] = w
	return w
}

// DependentCount counts the courses transitively unlocked by completing a
// course. Diamond-shaped dependencies count once per path, matching the
// weight computation.
func (g *Graph) DependentCount(code string) int {
	return g.dependents(code, make(map[string]bool))
}

func (g *Graph) dependents(code string, onStack map[string]bool) int {
	if n, ok := g.depCounts[code]; ok {
		return n
	}
	if onStack[code] {
		return 0
	}
	onStack[code] = true

	count := 0
	for _, child := range g.downstream[code] {
		count += 1 + g.dependents(child, onStack)
	}

	delete(onStack, code)
	g.depCounts[code] = count
	return count
}

// LongestRemainingPath estimates a lower bound on the semesters a student
// still needs, driven purely by prerequisite chain length among the given
// uncompleted courses. Credit limits are ignored.
func (g *Graph) LongestRemainingPath(uncompleted []string) int {
	remaining := toSet(uncompleted)
	memo := make(map[string]int, len(uncompleted))
	onStack := make(map[string]bool)

	var depth func(code string) int
	depth = func(code string) int {
		if d, ok := memo[code]; ok {
			return d
		}
		if onStack[code] {
			return 1
		}
		onStack[code] = true

		d := 1
		for _, child := range g.downstream[code] {
			if !remaining[child] {
				continue
			}
			if cd := 1 + depth(child); cd > d {
				d = cd
			}
		}

		delete(onStack, code)
		memo[code] = d
		return d
	}

	longest := 0
	for _, code := range uncompleted {
		if d := depth(code); d > longest {
			longest = d
		}
	}
	return longest
}
