package astar_test

import (
	"testing"

	"github.com/sebschmi/tsalign-go/astar"
	"github.com/sebschmi/tsalign-go/cost"
	"github.com/stretchr/testify/require"
)

// gridNode is a minimal Node implementation over a 1-D line graph 0..n,
// used to exercise the generic engine end-to-end without pulling in the
// alignment domain.
type gridNode struct {
	pos        int
	n          int
	c          cost.Value[int32]
	pred       int
	hasPred    bool
	edge       string
	targetDist int
}

func (g gridNode) Identifier() int               { return g.pos }
func (g gridNode) NodeCost() cost.Value[int32]    { return g.c }
func (g gridNode) LowerBound() cost.Value[int32]  { return cost.FromUint[int32](uint64(g.n - g.pos)) }
func (g gridNode) SecondaryScore() int64          { return 0 }
func (g gridNode) Predecessor() (int, bool)       { return g.pred, g.hasPred }
func (g gridNode) PredecessorEdge() string        { return g.edge }

type gridContext struct {
	n int
}

func (c gridContext) CreateRoot() astar.Node[int, cost.Value[int32], string] {
	return gridNode{pos: 0, n: c.n}
}

func (c gridContext) GenerateSuccessors(n astar.Node[int, cost.Value[int32], string], emit func(astar.Node[int, cost.Value[int32], string])) {
	pos := n.Identifier()
	if pos >= c.n {
		return
	}
	// Step of 1 costs 1; step of 2 (when available) costs 3 -- a worse
	// shortcut included to exercise that the optimum (all 1-steps) wins.
	if pos+1 <= c.n {
		emit(gridNode{pos: pos + 1, n: c.n, c: n.NodeCost().Add(cost.FromUint[int32](1)), pred: pos, hasPred: true, edge: "step1"})
	}
	if pos+2 <= c.n {
		emit(gridNode{pos: pos + 2, n: c.n, c: n.NodeCost().Add(cost.FromUint[int32](3)), pred: pos, hasPred: true, edge: "step2"})
	}
}

func (c gridContext) IsTarget(n astar.Node[int, cost.Value[int32], string]) bool {
	return n.Identifier() == c.n
}

func (c gridContext) CostLimit() (cost.Value[int32], bool)   { return cost.Value[int32]{}, false }
func (c gridContext) MemoryLimit() (int, bool)                { return 0, false }
func (c gridContext) IsLabelSetting() bool                    { return true }

func TestSearch_FindsOptimalPath(t *testing.T) {
	ctx := gridContext{n: 5}
	open := astar.NewBinaryHeap[int, cost.Value[int32], string]()
	s := astar.New[int, cost.Value[int32], string](ctx, open)

	result := s.Run()
	require.Equal(t, astar.StatusFoundTarget, result.Status)
	require.Equal(t, cost.FromUint[int32](5), result.Cost) // 5 steps of cost 1, not e.g. two 2-steps + one 1-step (cost 7)

	trace, err := s.Backtrack(result.Identifier)
	require.NoError(t, err)
	require.Len(t, trace, 5)
	for _, e := range trace {
		require.Equal(t, "step1", e)
	}
}

func TestSearch_BucketQueueAgreesWithBinaryHeap(t *testing.T) {
	ctx := gridContext{n: 9}

	binResult := astar.New[int, cost.Value[int32], string](ctx, astar.NewBinaryHeap[int, cost.Value[int32], string]()).Run()
	bucketResult := astar.New[int, cost.Value[int32], string](ctx, astar.NewBucketQueue[int, cost.Value[int32], string]()).Run()

	require.Equal(t, binResult.Status, bucketResult.Status)
	require.Equal(t, binResult.Cost, bucketResult.Cost)
}

func TestSearch_Reset(t *testing.T) {
	ctx := gridContext{n: 3}
	open := astar.NewBinaryHeap[int, cost.Value[int32], string]()
	s := astar.New[int, cost.Value[int32], string](ctx, open)

	first := s.Run()
	require.Equal(t, astar.StatusFoundTarget, first.Status)

	s.Reset()
	second := s.Run()
	require.Equal(t, first.Cost, second.Cost)
}

func TestSearch_NoTargetWhenUnreachable(t *testing.T) {
	ctx := unreachableContext{}
	open := astar.NewBinaryHeap[int, cost.Value[int32], string]()
	s := astar.New[int, cost.Value[int32], string](ctx, open)
	result := s.Run()
	require.Equal(t, astar.StatusNoTarget, result.Status)
}

type unreachableContext struct{}

func (unreachableContext) CreateRoot() astar.Node[int, cost.Value[int32], string] {
	return gridNode{pos: 0, n: 10}
}
func (unreachableContext) GenerateSuccessors(astar.Node[int, cost.Value[int32], string], func(astar.Node[int, cost.Value[int32], string])) {
}
func (unreachableContext) IsTarget(astar.Node[int, cost.Value[int32], string]) bool { return false }
func (unreachableContext) CostLimit() (cost.Value[int32], bool)                     { return cost.Value[int32]{}, false }
func (unreachableContext) MemoryLimit() (int, bool)                                 { return 0, false }
func (unreachableContext) IsLabelSetting() bool                                     { return true }
