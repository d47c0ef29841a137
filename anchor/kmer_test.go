package anchor_test

import (
	"testing"

	"github.com/sebschmi/tsalign-go/anchor"
	"github.com/stretchr/testify/require"
)

func TestBuildAnchorLists_PrimaryFindsExactMatch(t *testing.T) {
	reference := []byte("ACGTACGTAC")
	query := []byte("TTACGTACGTTT")

	lists := anchor.BuildAnchorLists(reference, query, 4)
	require.NotEmpty(t, lists.Primary)

	found := false
	for _, a := range lists.Primary {
		if a.R0 == 0 && a.Q0 == 2 {
			found = true
			require.Equal(t, 4, a.Len())
		}
	}
	require.True(t, found, "expected an anchor at reference offset 0 / query offset 2")
}

func TestBuildAnchorLists_NoMatchesForDisjointAlphabetRuns(t *testing.T) {
	reference := []byte("AAAAAAAA")
	query := []byte("TTTTTTTT")

	lists := anchor.BuildAnchorLists(reference, query, 4)
	require.Empty(t, lists.Primary)
}

func TestBuildAnchorLists_ShortSequenceYieldsNoKmers(t *testing.T) {
	lists := anchor.BuildAnchorLists([]byte("AC"), []byte("ACGTACGT"), 4)
	require.Empty(t, lists.Primary)
}
