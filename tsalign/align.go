package tsalign

import (
	"github.com/sebschmi/tsalign-go/astar"
	"github.com/sebschmi/tsalign-go/cost"
)

// Trace is the raw, uncompacted predecessor-edge sequence from root to
// target, in root-to-target order. Package alignresult compacts it into
// run-length (count, step) pairs and drops internal bookkeeping steps.
type Trace []Step

// Outcome is everything a caller needs to build a result: the search
// status, the optimal cost (meaningful only when Status is
// astar.StatusFoundTarget), the trace, and the engine's counters.
type Outcome[T cost.Integer] struct {
	Status   astar.Status
	Cost     cost.Value[T]
	Trace    Trace
	Counters astar.Counters
}

// Align runs the A* engine over ctx to completion using a binary-heap open
// list (spec §4.3's default), per the alignment API in spec §6.
func Align[T cost.Integer](ctx *Context[T]) (Outcome[T], error) {
	search := astar.New[Identifier, cost.Value[T], Step](ctx, astar.NewBinaryHeap[Identifier, cost.Value[T], Step]())
	result := search.Run()

	if result.Status != astar.StatusFoundTarget {
		return Outcome[T]{Status: result.Status, Counters: result.Counters}, nil
	}

	trace, err := search.Backtrack(result.Identifier)
	if err != nil {
		return Outcome[T]{}, err
	}

	return Outcome[T]{Status: result.Status, Cost: result.Cost, Trace: trace, Counters: result.Counters}, nil
}

// AlignWithBucketQueue is the same as Align but uses the bucket/linear-heap
// open list instead of the binary heap, per spec §4.3's second
// implementation with an identical contract.
func AlignWithBucketQueue[T cost.Integer](ctx *Context[T]) (Outcome[T], error) {
	search := astar.New[Identifier, cost.Value[T], Step](ctx, astar.NewBucketQueue[Identifier, cost.Value[T], Step]())
	result := search.Run()

	if result.Status != astar.StatusFoundTarget {
		return Outcome[T]{Status: result.Status, Counters: result.Counters}, nil
	}

	trace, err := search.Backtrack(result.Identifier)
	if err != nil {
		return Outcome[T]{}, err
	}

	return Outcome[T]{Status: result.Status, Cost: result.Cost, Trace: trace, Counters: result.Counters}, nil
}
