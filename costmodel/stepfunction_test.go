package costmodel_test

import (
	"testing"

	"github.com/sebschmi/tsalign-go/cost"
	"github.com/sebschmi/tsalign-go/costmodel"
	"github.com/stretchr/testify/require"
)

func TestStepFunction_Evaluate(t *testing.T) {
	// V-shaped: cost 3 at very negative offsets, 1 near zero on the negative
	// side, 0 at zero, 1 at positive offsets, 3 from +3 onward.
	breakpoints := []int32{-1 << 31, -2, 0, 1, 3}
	costs := []cost.Value[int32]{
		cost.FromUint[int32](3),
		cost.FromUint[int32](1),
		cost.FromUint[int32](0),
		cost.FromUint[int32](1),
		cost.FromUint[int32](3),
	}
	f, err := costmodel.NewStepFunction(breakpoints, costs)
	require.NoError(t, err)
	require.True(t, f.IsVShaped())

	require.Equal(t, cost.FromUint[int32](0), f.Evaluate(0))
	require.Equal(t, cost.FromUint[int32](1), f.Evaluate(1))
	require.Equal(t, cost.FromUint[int32](1), f.Evaluate(2))
	require.Equal(t, cost.FromUint[int32](3), f.Evaluate(3))
	require.Equal(t, cost.FromUint[int32](1), f.Evaluate(-2))
	require.Equal(t, cost.FromUint[int32](3), f.Evaluate(-1000))
}

func TestStepFunction_RejectsNonIncreasingBreakpoints(t *testing.T) {
	breakpoints := []int32{-1 << 31, 0, 0}
	costs := []cost.Value[int32]{cost.FromUint[int32](1), cost.FromUint[int32](0), cost.FromUint[int32](0)}
	_, err := costmodel.NewStepFunction(breakpoints, costs)
	require.ErrorIs(t, err, costmodel.ErrNotStrictlyIncreasing)
}

func TestStepFunction_RejectsMissingDomainMinimum(t *testing.T) {
	breakpoints := []int32{-5, 0}
	costs := []cost.Value[int32]{cost.FromUint[int32](1), cost.FromUint[int32](0)}
	_, err := costmodel.NewStepFunction(breakpoints, costs)
	require.ErrorIs(t, err, costmodel.ErrMissingMinBreakpoint)
}

func TestStepFunction_NotVShaped(t *testing.T) {
	// Cost dips back down after rising: not V-shaped.
	breakpoints := []int32{-1 << 31, 0, 1, 2}
	costs := []cost.Value[int32]{
		cost.FromUint[int32](0),
		cost.FromUint[int32](0),
		cost.FromUint[int32](5),
		cost.FromUint[int32](1),
	}
	f, err := costmodel.NewStepFunction(breakpoints, costs)
	require.NoError(t, err)
	require.False(t, f.IsVShaped())
}

func TestStepFunction_FiniteDomain(t *testing.T) {
	breakpoints := []int32{-1 << 31, -1, 0, 1, 2}
	max := cost.Max[int32]()
	costs := []cost.Value[int32]{max, cost.FromUint[int32](2), cost.FromUint[int32](0), cost.FromUint[int32](2), max}
	f, err := costmodel.NewStepFunction(breakpoints, costs)
	require.NoError(t, err)

	xs := f.FiniteDomain(-5, 5)
	require.Equal(t, []int32{-1, 0, 1}, xs)
}
