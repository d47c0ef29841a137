package lowerbound_test

import (
	"testing"

	"github.com/sebschmi/tsalign-go/cost"
	"github.com/sebschmi/tsalign-go/lowerbound"
	"github.com/stretchr/testify/require"
)

func TestGapAffineLowerBounds_AllowAllMatches(t *testing.T) {
	// Spec §8 scenario 6: max_n=4, sub=2, open=3, extend=1, allow_all_matches.
	sub := cost.FromUint[int32](2)
	open := cost.FromUint[int32](3)
	extend := cost.FromUint[int32](1)

	lb, err := lowerbound.NewGapAffineLowerBounds(4, sub, open, extend, true)
	require.NoError(t, err)

	for a := 0; a <= 4; a++ {
		for b := 0; b <= 4; b++ {
			diff := a - b
			if diff < 0 {
				diff = -diff
			}

			var want cost.Value[int32]
			if diff == 0 {
				want = cost.Zero[int32]()
			} else {
				want = open.Add(cost.FromUint[int32](uint64(diff - 1)))
			}

			require.Equalf(t, want, lb.PrimaryLowerBound(a, b), "table[%d][%d]", a, b)
			require.Equal(t, lb.PrimaryLowerBound(a, b), lb.PrimaryLowerBound(b, a), "symmetry (%d,%d)", a, b)
		}
	}
}

func TestGapAffineLowerBounds_StandardVariantChargesSubstitution(t *testing.T) {
	sub := cost.FromUint[int32](2)
	open := cost.FromUint[int32](4)
	extend := cost.FromUint[int32](1)

	lb, err := lowerbound.NewGapAffineLowerBounds(2, sub, open, extend, false)
	require.NoError(t, err)

	require.True(t, lb.PrimaryLowerBound(0, 0).IsZero())
	require.Equal(t, cost.FromUint[int32](2), lb.PrimaryLowerBound(1, 1)) // one substitution
	require.Equal(t, cost.FromUint[int32](4), lb.PrimaryLowerBound(2, 2)) // two substitutions beats a gap round trip
}

func TestGapAffineLowerBounds_VariableGap2(t *testing.T) {
	sub := cost.FromUint[int32](2)
	open := cost.FromUint[int32](3)
	extend := cost.FromUint[int32](1)

	lb, err := lowerbound.NewGapAffineLowerBounds(4, sub, open, extend, true)
	require.NoError(t, err)

	// variable_gap2_lower_bound[g] = min_b table[g,b]; since table[g,g]=0,
	// the minimum over b is always 0 for every g in range.
	for g := 0; g <= 4; g++ {
		require.True(t, lb.VariableGap2LowerBound(g).IsZero())
	}
}

func TestGapAffineLowerBounds_RejectsNegativeMaxN(t *testing.T) {
	_, err := lowerbound.NewGapAffineLowerBounds(-1, cost.Zero[int32](), cost.Zero[int32](), cost.Zero[int32](), true)
	require.Error(t, err)
}
