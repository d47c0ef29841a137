package alignresult_test

import (
	"testing"
	"time"

	"github.com/sebschmi/tsalign-go/alignresult"
	"github.com/sebschmi/tsalign-go/astar"
	"github.com/sebschmi/tsalign-go/cost"
	"github.com/sebschmi/tsalign-go/tsalign"
	"github.com/stretchr/testify/require"
)

func TestCompact_DropsInternalAndMerges(t *testing.T) {
	trace := tsalign.Trace{
		tsalign.StepRoot,
		tsalign.StepDeletion,
		tsalign.StepMatch,
		tsalign.StepMatch,
		tsalign.StepInsertion,
		tsalign.StepInsertion,
	}

	got := alignresult.Compact(trace)
	require.Len(t, got, 3)
	require.Equal(t, "D", got[0].Step)
	require.Equal(t, 1, got[0].Count)
	require.Equal(t, "M", got[1].Step)
	require.Equal(t, 2, got[1].Count)
	require.Equal(t, "I", got[2].Step)
	require.Equal(t, 2, got[2].Count)
}

func TestCompact_IdempotentRoundTrip(t *testing.T) {
	trace := tsalign.Trace{tsalign.StepMatch, tsalign.StepMatch, tsalign.StepDeletion, tsalign.StepMatch}
	compacted := alignresult.Compact(trace)
	expanded := alignresult.Expand(compacted)
	recompacted := alignresult.Compact(expanded)
	require.Equal(t, compacted, recompacted)
}

func TestBuild_FoundTarget(t *testing.T) {
	outcome := tsalign.Outcome[int32]{
		Status: astar.StatusFoundTarget,
		Cost:   cost.FromUint[int32](9),
		Trace: tsalign.Trace{
			tsalign.StepDeletion, tsalign.StepMatch, tsalign.StepMatch, tsalign.StepInsertion, tsalign.StepInsertion,
		},
		Counters: astar.Counters{Opened: 10, Closed: 7, SuboptimalOpened: 1},
	}

	result := alignresult.Build(outcome, []byte("AGT"), []byte("GTCC"), tsalign.Range{R0: 0, R1: 3, Q0: 0, Q1: 4}, 2*time.Millisecond)
	require.Equal(t, "found_target", result.Status)
	require.Equal(t, uint64(9), result.Stats.Cost)
	require.Len(t, result.Alignment, 3)
	require.Equal(t, "AGT", result.Reference)
	require.Equal(t, "GTCC", result.Query)

	out, err := result.WriteTOML()
	require.NoError(t, err)
	require.Contains(t, string(out), "cost = 9")
}

func TestBuild_NotFound(t *testing.T) {
	outcome := tsalign.Outcome[int32]{Status: astar.StatusNoTarget, Counters: astar.Counters{Opened: 3, Closed: 3}}
	result := alignresult.Build(outcome, []byte("A"), []byte("A"), tsalign.Range{R0: 0, R1: 1, Q0: 0, Q1: 1}, time.Millisecond)
	require.Equal(t, "no_target", result.Status)
	require.Empty(t, result.Alignment)
}
