package lowerbound_test

import (
	"bytes"
	"testing"

	"github.com/sebschmi/tsalign-go/cost"
	"github.com/sebschmi/tsalign-go/lowerbound"
	"github.com/stretchr/testify/require"
)

func TestWriteReadTable_RoundTrip(t *testing.T) {
	table := [][]cost.Value[int32]{
		{cost.FromUint[int32](0), cost.FromUint[int32](3), cost.FromUint[int32](4)},
		{cost.FromUint[int32](3), cost.FromUint[int32](0), cost.FromUint[int32](3)},
		{cost.FromUint[int32](4), cost.FromUint[int32](3), cost.FromUint[int32](0)},
	}

	var buf bytes.Buffer
	require.NoError(t, lowerbound.WriteTable(&buf, table))

	got, err := lowerbound.ReadTable[int32](&buf)
	require.NoError(t, err)
	require.Equal(t, table, got)
}

func TestWriteReadTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, lowerbound.WriteTable[int32](&buf, nil))

	got, err := lowerbound.ReadTable[int32](&buf)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestChecksumCostConfig_Deterministic(t *testing.T) {
	a := lowerbound.ChecksumCostConfig([]byte("cost-config-v1"))
	b := lowerbound.ChecksumCostConfig([]byte("cost-config-v1"))
	c := lowerbound.ChecksumCostConfig([]byte("cost-config-v2"))

	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
}
