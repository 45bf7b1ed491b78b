package coef_test

import (
	"slices"
	"testing"

	"github.com/RaviSriTejaKuriseti/MasseyRamanujan/coef"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestProduct_Order verifies odometer order: first axis slowest.
func TestProduct_Order(t *testing.T) {
	rs := coef.Ranges{{Min: 0, Max: 1}, {Min: 5, Max: 6}}
	got := slices.Collect(coef.Product(rs))
	want := []coef.Tuple{{0, 5}, {0, 6}, {1, 5}, {1, 6}}
	assert.Equal(t, want, got)
}

// TestProduct_CountMatchesCardinality checks a mixed-width grid.
func TestProduct_CountMatchesCardinality(t *testing.T) {
	rs := coef.Ranges{{Min: -1, Max: 1}, {Min: 0, Max: 0}, {Min: 2, Max: 5}, {Min: -3, Max: -2}}
	n, err := rs.Cardinality()
	require.NoError(t, err)

	count := int64(0)
	seen := make(map[string]bool)
	for tup := range coef.Product(rs) {
		require.Len(t, tup, len(rs))
		for i, x := range tup {
			require.True(t, rs[i].Contains(x), "axis %d out of range: %d", i, x)
		}
		seen[tup.String()] = true
		count++
	}
	assert.Equal(t, n, count)
	assert.Len(t, seen, int(n), "no duplicates")
}

// TestProduct_Empty yields nothing for empty grids.
func TestProduct_Empty(t *testing.T) {
	assert.Empty(t, slices.Collect(coef.Product(nil)))
	assert.Empty(t, slices.Collect(coef.Product(coef.Ranges{{Min: 0, Max: 2}, {Min: 1, Max: 0}})))
}

// TestProduct_FreshTuples ensures yielded tuples are not aliased.
func TestProduct_FreshTuples(t *testing.T) {
	var kept []coef.Tuple
	for tup := range coef.Product(coef.Ranges{{Min: 0, Max: 2}}) {
		kept = append(kept, tup)
	}
	kept[0][0] = 99
	assert.Equal(t, []coef.Tuple{{99}, {1}, {2}}, kept)
}

// TestProduct_EarlyBreakAndRerun stops early, then walks again from the start.
func TestProduct_EarlyBreakAndRerun(t *testing.T) {
	seq := coef.Product(coef.Ranges{{Min: 0, Max: 9}})
	var first []int64
	for tup := range seq {
		first = append(first, tup[0])
		if len(first) == 3 {
			break
		}
	}
	assert.Equal(t, []int64{0, 1, 2}, first)
	assert.Len(t, slices.Collect(seq), 10)
}

// TestProduct_DetachedFromCaller ignores later mutation of the input slice.
func TestProduct_DetachedFromCaller(t *testing.T) {
	rs := coef.Ranges{{Min: 0, Max: 1}}
	seq := coef.Product(rs)
	rs[0].Max = 5
	assert.Len(t, slices.Collect(seq), 2)
}
