package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMutualPairs(t *testing.T) {
	t.Run("mutual concurrent pair", func(t *testing.T) {
		cat := mustCatalog(t,
			course("PHY201", "4", "", "MAT201", ""),
			course("MAT201", "3", "", "PHY201", ""),
			course("CS101", "3", "", "", ""),
		)
		pairs := MutualPairs(cat)
		assert.Equal(t, []string{"MAT201"}, pairs["PHY201"])
		assert.Equal(t, []string{"PHY201"}, pairs["MAT201"])
		assert.Empty(t, pairs["CS101"])
	})

	t.Run("one-way requirement is not a pair", func(t *testing.T) {
		cat := mustCatalog(t,
			course("PHY201", "4", "", "MAT201", ""),
			course("MAT201", "3", "", "", ""),
		)
		pairs := MutualPairs(cat)
		assert.Empty(t, pairs)
	})

	t.Run("corequisite column participates", func(t *testing.T) {
		cat := mustCatalog(t,
			course("CHM101", "4", "", "", "CHM101L"),
			course("CHM101L", "1", "", "CHM101", ""),
		)
		pairs := MutualPairs(cat)
		assert.Equal(t, []string{"CHM101L"}, pairs["CHM101"])
		assert.Equal(t, []string{"CHM101"}, pairs["CHM101L"])
	})

	t.Run("symmetry", func(t *testing.T) {
		cat := mustCatalog(t,
			course("A1", "3", "", "B1, C1", ""),
			course("B1", "3", "", "A1", ""),
			course("C1", "3", "", "A1", ""),
		)
		pairs := MutualPairs(cat)
		for code, partners := range pairs {
			for _, partner := range partners {
				assert.Contains(t, pairs[partner], code,
					"pair %s-%s must be symmetric", code, partner)
			}
		}
	})
}
