package lowerbound_test

import (
	"testing"

	"github.com/sebschmi/tsalign-go/cost"
	"github.com/sebschmi/tsalign-go/lowerbound"
	"github.com/stretchr/testify/require"
)

func TestTsJumpLowerBounds_Convolution(t *testing.T) {
	primary := []cost.Value[int32]{cost.FromUint[int32](0), cost.FromUint[int32](3), cost.FromUint[int32](4)}
	secondary := []cost.Value[int32]{cost.FromUint[int32](0), cost.FromUint[int32](2), cost.FromUint[int32](3)}
	base := cost.FromUint[int32](5)

	tj := lowerbound.NewTsJumpLowerBounds(primary, secondary, base)

	// g=0: only p=0,s=0 -> 0+base+0
	require.Equal(t, base, tj.Lb12(0))
	require.True(t, tj.Lb34(0).IsZero())

	// g=2: min(p=0,s=2 -> 3; p=1,s=1 -> 3+2=5; p=2,s=0 -> 4) = 3
	require.Equal(t, cost.FromUint[int32](3), tj.Lb34(2))
	require.Equal(t, cost.FromUint[int32](8), tj.Lb12(2))
}

func TestTsJumpLowerBounds_OutOfRange(t *testing.T) {
	tj := lowerbound.NewTsJumpLowerBounds(
		[]cost.Value[int32]{cost.Zero[int32]()},
		[]cost.Value[int32]{cost.Zero[int32]()},
		cost.Zero[int32](),
	)

	require.True(t, tj.Lb12(-1).IsMax())
	require.True(t, tj.Lb34(5).IsMax())
}
