package engine

// MutualPairs finds course pairs that require each other concurrently or as
// corequisites. The map lists, for each course, the partners it must be
// scheduled together with. Derived from the catalog, never stored: rebuild
// whenever the catalog changes.
func MutualPairs(c *Catalog) map[string][]string {
	requires := make(map[string][]string, c.Len())
	for _, code := range c.Codes() {
		course, _ := c.Course(code)
		tokens := ParseRequirements(course.Concurrent)
		tokens = append(tokens, ParseRequirements(course.Corequisite)...)
		requires[code] = tokens
	}

	contains := func(list []string, target string) bool {
		for _, item := range list {
			if item == target {
				return true
			}
		}
		return false
	}

	pairs := make(map[string][]string)
	for _, code := range c.Codes() {
		for _, other := range requires[code] {
			if other == code {
				continue
			}
			if contains(requires[other], code) && !contains(pairs[code], other) {
				pairs[code] = append(pairs[code], other)
			}
		}
	}
	return pairs
}
