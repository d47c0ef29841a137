package anchor_test

import (
	"math"
	"testing"

	"github.com/sebschmi/tsalign-go/anchor"
	"github.com/sebschmi/tsalign-go/cost"
	"github.com/sebschmi/tsalign-go/costmodel"
	"github.com/sebschmi/tsalign-go/lowerbound"
	"github.com/sebschmi/tsalign-go/tsalign"
	"github.com/stretchr/testify/require"
)

func constantStepFunction(t *testing.T, v cost.Value[int32]) costmodel.StepFunction[int32, int32] {
	t.Helper()
	f, err := costmodel.NewStepFunction[int32, int32]([]int32{math.MinInt32}, []cost.Value[int32]{v})
	require.NoError(t, err)

	return f
}

func buildCostsAndBounds(t *testing.T, reference, query []byte) (tsalign.Costs[int32], tsalign.LowerBounds[int32]) {
	t.Helper()

	primary, err := costmodel.NewBaseAgnostic[int32](costmodel.DNA, cost.FromUint[int32](0), cost.FromUint[int32](2), cost.FromUint[int32](4), cost.FromUint[int32](1))
	require.NoError(t, err)

	maxN := len(reference)
	if len(query) > maxN {
		maxN = len(query)
	}

	gapAffine, err := lowerbound.NewGapAffineLowerBounds[int32](maxN, primary.MinSubstitution(), primary.MinGapOpen(), primary.MinGapExtend(), false)
	require.NoError(t, err)

	varGap := make([]cost.Value[int32], maxN+1)
	for g := 0; g <= maxN; g++ {
		varGap[g] = gapAffine.VariableGap2LowerBound(g)
	}
	tsJump := lowerbound.NewTsJumpLowerBounds(varGap, varGap, cost.Zero[int32]())

	costs := tsalign.Costs[int32]{
		Primary:            primary,
		Secondary:          primary,
		LeftFlank:          primary,
		RightFlank:         primary,
		LeftFlankLength:    0,
		RightFlankLength:   0,
		MinSecondaryLength: 1,
		BaseCost: tsalign.BaseCost[int32]{
			RR: cost.FromUint[int32](100),
			RQ: cost.FromUint[int32](100),
			QR: cost.FromUint[int32](100),
			QQ: cost.FromUint[int32](100),
		},
		Offset:           constantStepFunction(t, cost.Zero[int32]()),
		Length:           constantStepFunction(t, cost.Zero[int32]()),
		LengthDifference: constantStepFunction(t, cost.Zero[int32]()),
		AntiPrimaryGap:   constantStepFunction(t, cost.Zero[int32]()),
	}

	return costs, tsalign.LowerBounds[int32]{GapAffine: gapAffine, TsJump: tsJump}
}

func TestChain_ConnectsSequencesThroughAnchors(t *testing.T) {
	reference := []byte("ACGTACGTACGTACGT")
	query := []byte("ACGTACGTACGTACGT")

	costs, bounds := buildCostsAndBounds(t, reference, query)
	lists := anchor.BuildAnchorLists(reference, query, 6)
	require.NotEmpty(t, lists.Primary)

	chain, chainCost, _, err := anchor.Chain[int32](reference, query, lists.Primary, costs, bounds, anchor.DefaultOptions())
	require.NoError(t, err)
	require.NotEmpty(t, chain)
	require.True(t, chainCost.IsZero(), "identical sequences should chain at zero cost")
}

func TestAlign_IdenticalSequencesIsZeroCost(t *testing.T) {
	reference := []byte("ACGTACGTACGTACGTACGTACGT")
	query := []byte("ACGTACGTACGTACGTACGTACGT")

	costs, bounds := buildCostsAndBounds(t, reference, query)

	result, err := anchor.Align[int32](reference, query, costs, bounds, tsalign.PrimaryOnlyStrategies(), anchor.NewOptions(anchor.WithK(6)))
	require.NoError(t, err)
	require.Equal(t, "found_target", result.Status)
	require.Equal(t, uint64(0), result.Stats.Cost)
}

func TestAlign_NoAnchorsStillFillsWithSingleGap(t *testing.T) {
	reference := []byte("AAAAAAAA")
	query := []byte("TTTTTTTT")

	costs, bounds := buildCostsAndBounds(t, reference, query)

	result, err := anchor.Align[int32](reference, query, costs, bounds, tsalign.PrimaryOnlyStrategies(), anchor.NewOptions(anchor.WithK(4)))
	require.NoError(t, err)
	require.Equal(t, "found_target", result.Status)
	require.NotZero(t, result.Stats.Cost)
}
