package coef_test

import (
	"math"
	"slices"
	"testing"

	"github.com/RaviSriTejaKuriseti/MasseyRamanujan/coef"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRange_Len covers regular, single-point, empty and int64-edge intervals.
func TestRange_Len(t *testing.T) {
	cases := []struct {
		name   string
		r      coef.Range
		want   int64
		wantOK bool
		empty  bool
	}{
		{"regular", coef.Range{Min: -2, Max: 2}, 5, true, false},
		{"single", coef.Range{Min: 7, Max: 7}, 1, true, false},
		{"empty", coef.Range{Min: 1, Max: 0}, 0, true, true},
		{"largest countable", coef.Range{Min: math.MinInt64, Max: -2}, math.MaxInt64, true, false},
		{"lower half", coef.Range{Min: math.MinInt64, Max: -1}, 0, false, false},
		{"min to zero", coef.Range{Min: math.MinInt64, Max: 0}, 0, false, false},
		{"full int64", coef.Range{Min: math.MinInt64, Max: math.MaxInt64}, 0, false, false},
		{"wide symmetric", coef.Range{Min: -(1 << 62), Max: 1 << 62}, 0, false, false},
		{"wide symmetric fits", coef.Range{Min: -(1 << 62), Max: 1<<62 - 2}, math.MaxInt64, true, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n, ok := tc.r.Len()
			assert.Equal(t, tc.want, n)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.empty, tc.r.Empty())
		})
	}
}

// TestRange_Values checks ascending order and the MaxInt64 upper edge.
func TestRange_Values(t *testing.T) {
	got := slices.Collect(coef.Range{Min: -1, Max: 2}.Values())
	assert.Equal(t, []int64{-1, 0, 1, 2}, got)

	assert.Empty(t, slices.Collect(coef.Range{Min: 3, Max: 2}.Values()))

	edge := slices.Collect(coef.Range{Min: math.MaxInt64 - 1, Max: math.MaxInt64}.Values())
	assert.Equal(t, []int64{math.MaxInt64 - 1, math.MaxInt64}, edge, "must not wrap at MaxInt64")
}

// TestRange_Contains verifies inclusive bounds.
func TestRange_Contains(t *testing.T) {
	r := coef.Range{Min: -1, Max: 1}
	assert.True(t, r.Contains(-1))
	assert.True(t, r.Contains(1))
	assert.False(t, r.Contains(2))
}

// TestRanges_Cardinality multiplies axis lengths and treats empty axes as zero.
func TestRanges_Cardinality(t *testing.T) {
	n, err := coef.Ranges{{Min: 0, Max: 1}, {Min: -1, Max: 1}, {Min: 5, Max: 5}}.Cardinality()
	require.NoError(t, err)
	assert.Equal(t, int64(6), n)

	n, err = coef.Ranges{{Min: 0, Max: 3}, {Min: 1, Max: 0}}.Cardinality()
	require.NoError(t, err)
	assert.Zero(t, n, "an empty axis empties the grid")

	n, err = coef.Ranges{}.Cardinality()
	require.NoError(t, err)
	assert.Zero(t, n, "no axes means no grid points")
}

// TestRanges_CardinalityOverflow detects products and single axes beyond int64.
func TestRanges_CardinalityOverflow(t *testing.T) {
	wide := coef.Range{Min: 0, Max: math.MaxInt32}
	_, err := coef.Ranges{wide, wide, wide}.Cardinality()
	assert.ErrorIs(t, err, coef.ErrOverflow)

	cases := []struct {
		name string
		rs   coef.Ranges
	}{
		{"full int64", coef.Ranges{{Min: math.MinInt64, Max: math.MaxInt64}}},
		{"min to zero", coef.Ranges{{Min: math.MinInt64, Max: 0}}},
		{"wide symmetric", coef.Ranges{{Min: -(1 << 62), Max: 1 << 62}}},
		{"after a regular axis", coef.Ranges{{Min: 0, Max: 1}, {Min: math.MinInt64, Max: math.MaxInt64}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var n int64
			require.NotPanics(t, func() { n, err = tc.rs.Cardinality() })
			assert.ErrorIs(t, err, coef.ErrOverflow)
			assert.Zero(t, n)
		})
	}

	n, err := coef.Ranges{{Min: -(1 << 62), Max: 1<<62 - 2}}.Cardinality()
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), n)
}

// TestRanges_Clone makes sure the copy is detached from the original.
func TestRanges_Clone(t *testing.T) {
	rs := coef.Ranges{{Min: 0, Max: 1}}
	cp := rs.Clone()
	cp[0].Max = 9
	assert.Equal(t, int64(1), rs[0].Max)
	assert.Nil(t, coef.Ranges(nil).Clone())
}

// TestTuple_EqualCloneString exercises the small Tuple helpers.
func TestTuple_EqualCloneString(t *testing.T) {
	a := coef.Tuple{1, 0, -1, 3}
	b := a.Clone()
	assert.True(t, a.Equal(b))
	b[0] = 2
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(a[:2]))
	assert.Equal(t, "(1, 0, -1, 3)", a.String())
	assert.Equal(t, "()", coef.Tuple{}.String())
}

// TestRanges_Validate walks every validation class in priority order.
func TestRanges_Validate(t *testing.T) {
	ok := coef.Ranges{{Min: -2, Max: 2}, {Min: 0, Max: 1}}
	assert.NoError(t, ok.Validate(2, false))

	assert.ErrorIs(t, ok.Validate(3, false), coef.ErrArity)

	inverted := coef.Ranges{{Min: 1, Max: 0}}
	assert.ErrorIs(t, inverted.Validate(1, false), coef.ErrInvertedRange)
	assert.NoError(t, inverted.Validate(1, true), "inverted is legal when empty axes are allowed")

	huge := coef.Ranges{{Min: 0, Max: coef.MaxMagnitude + 1}}
	assert.ErrorIs(t, huge.Validate(1, false), coef.ErrMagnitude)

	edge := coef.Ranges{{Min: -coef.MaxMagnitude, Max: coef.MaxMagnitude}}
	assert.NoError(t, edge.Validate(1, false))
}

// TestCheckTuple enforces exact arity.
func TestCheckTuple(t *testing.T) {
	assert.NoError(t, coef.CheckTuple(coef.Tuple{1, 2}, 2))
	assert.ErrorIs(t, coef.CheckTuple(coef.Tuple{1}, 2), coef.ErrArity)
}
