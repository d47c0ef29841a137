package tsalign_test

import (
	"testing"

	"github.com/sebschmi/tsalign-go/costmodel"
	"github.com/sebschmi/tsalign-go/tsalign"
	"github.com/stretchr/testify/require"
)

func TestNewByteSequence_RejectsUnknownSymbol(t *testing.T) {
	_, err := tsalign.NewByteSequence([]byte("ACGX"), costmodel.DNA)
	require.Error(t, err)
}

func TestNewByteSequence_AcceptsValidSequence(t *testing.T) {
	seq, err := tsalign.NewByteSequence([]byte("ACGT"), costmodel.DNA)
	require.NoError(t, err)
	require.Equal(t, 4, seq.Len())
	require.Equal(t, byte('G'), seq.At(2))
	require.Equal(t, []byte("ACGT"), seq.Bytes())
}
