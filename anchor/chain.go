package anchor

import (
	"github.com/sebschmi/tsalign-go/astar"
	"github.com/sebschmi/tsalign-go/cost"
	"github.com/sebschmi/tsalign-go/tsalign"
)

// Chain vertex identifiers: -1 is Start, -2 is End, and every non-negative
// value is an index into the anchors slice, per spec §4.6's "Start, one per
// primary anchor, End" chaining DAG.
const (
	startID = -1
	endID   = -2
)

// chainNode is the astar.Node implementation for chain-A*, over the plain
// int identifier space above.
type chainNode[T cost.Integer] struct {
	id         int
	nodeCost   cost.Value[T]
	lowerBound cost.Value[T]
	predID     int
	hasPred    bool
}

func (n chainNode[T]) Identifier() int           { return n.id }
func (n chainNode[T]) NodeCost() cost.Value[T]   { return n.nodeCost }
func (n chainNode[T]) LowerBound() cost.Value[T] { return n.lowerBound }
func (n chainNode[T]) SecondaryScore() int64     { return 0 }
func (n chainNode[T]) Predecessor() (int, bool)  { return n.predID, n.hasPred }

// PredecessorEdge reports this node's own identifier, so that
// astar.Search.Backtrack returns the root-to-target sequence of chain
// vertices directly (rather than a separate edge label).
func (n chainNode[T]) PredecessorEdge() int { return n.id }

type edgeKey struct{ from, to int }

type edgeCost[T cost.Integer] struct {
	value cost.Value[T]
	exact bool
}

// ChainingCostFunction is the lazy edge-cost oracle of spec §4.6: an edge's
// cost starts as the chaining lower bound and is only replaced by the true
// optimal gap-affine alignment cost (a sub-A* over the gap between the two
// anchors' facing endpoints) when ForceExact is called on it.
type ChainingCostFunction[T cost.Integer] struct {
	anchors          []Anchor
	reference, query []byte
	costs            tsalign.Costs[T]
	bounds           tsalign.LowerBounds[T]

	cache map[edgeKey]edgeCost[T]
}

// NewChainingCostFunction constructs a cost function over anchors for the
// given sequences, costs, and lower bounds.
func NewChainingCostFunction[T cost.Integer](anchors []Anchor, reference, query []byte, costs tsalign.Costs[T], bounds tsalign.LowerBounds[T]) *ChainingCostFunction[T] {
	return &ChainingCostFunction[T]{
		anchors:   anchors,
		reference: reference,
		query:     query,
		costs:     costs,
		bounds:    bounds,
		cache:     make(map[edgeKey]edgeCost[T]),
	}
}

// Estimate returns the admissible chaining lower bound for the gap between
// (fromR1,fromQ1) and (toR0,toQ0): the gap-affine lower bound indexed by the
// gap's reference and query extents, per spec §4.4/§4.6.
func (f *ChainingCostFunction[T]) Estimate(fromR1, fromQ1, toR0, toQ0 int) cost.Value[T] {
	gapR := toR0 - fromR1
	gapQ := toQ0 - fromQ1
	if gapR < 0 || gapQ < 0 {
		return cost.Max[T]()
	}

	return f.bounds.GapAffine.PrimaryLowerBound(gapR, gapQ)
}

// Exact computes the true optimal primary-alignment cost of the gap between
// (fromR1,fromQ1) and (toR0,toQ0), by running a sub-A* (tsalign.Align) over
// that rectangle, per spec §4.6: "the true cost is computed by a sub-A* on
// the gap-affine alignment matrix between the endpoints". An empty gap
// costs zero without invoking the sub-search.
func (f *ChainingCostFunction[T]) Exact(fromR1, fromQ1, toR0, toQ0 int) (cost.Value[T], error) {
	if fromR1 == toR0 && fromQ1 == toQ0 {
		return cost.Zero[T](), nil
	}

	rng := tsalign.Range{R0: fromR1, R1: toR0, Q0: fromQ1, Q1: toQ0}
	ctx, err := tsalign.New[T](f.reference, f.query, rng, f.costs, f.bounds, tsalign.PrimaryOnlyStrategies())
	if err != nil {
		return cost.Value[T]{}, err
	}

	outcome, err := tsalign.Align[T](ctx)
	if err != nil {
		return cost.Value[T]{}, err
	}
	if outcome.Status != astar.StatusFoundTarget {
		return cost.Max[T](), nil
	}

	return outcome.Cost, nil
}

// Lookup returns edge's currently cached cost, computing and caching an
// estimate on first access.
func (f *ChainingCostFunction[T]) Lookup(edge edgeKey, fromR1, fromQ1, toR0, toQ0 int) cost.Value[T] {
	if c, ok := f.cache[edge]; ok {
		return c.value
	}

	v := f.Estimate(fromR1, fromQ1, toR0, toQ0)
	f.cache[edge] = edgeCost[T]{value: v}

	return v
}

// ForceExact recomputes edge's true cost and marks it exact. It reports
// whether the exact cost differs from whatever value was cached before (an
// already-exact edge is never recomputed), per spec §4.6's refinement
// termination condition: "the chain is still optimal once all its edges are
// exact".
func (f *ChainingCostFunction[T]) ForceExact(edge edgeKey, fromR1, fromQ1, toR0, toQ0 int) (changed bool, err error) {
	prior, known := f.cache[edge]
	if known && prior.exact {
		return false, nil
	}

	exact, err := f.Exact(fromR1, fromQ1, toR0, toQ0)
	if err != nil {
		return false, err
	}
	f.cache[edge] = edgeCost[T]{value: exact, exact: true}

	return !known || exact != prior.value, nil
}

// chainContext is the astar.Context for the chaining DAG.
type chainContext[T cost.Integer] struct {
	anchors       []Anchor
	costFn        *ChainingCostFunction[T]
	refLen, qryLen int
	maxSuccessors int
}

func (c *chainContext[T]) endpoint(id int) (r1, q1 int) {
	if id == startID {
		return 0, 0
	}

	a := c.anchors[id]

	return a.R1, a.Q1
}

func (c *chainContext[T]) CreateRoot() astar.Node[int, cost.Value[T], int] {
	return chainNode[T]{id: startID, nodeCost: cost.Zero[T](), lowerBound: cost.Zero[T]()}
}

func (c *chainContext[T]) IsTarget(n astar.Node[int, cost.Value[T], int]) bool {
	return n.Identifier() == endID
}

func (c *chainContext[T]) CostLimit() (cost.Value[T], bool) { return cost.Value[T]{}, false }
func (c *chainContext[T]) MemoryLimit() (int, bool)         { return 0, false }
func (c *chainContext[T]) IsLabelSetting() bool             { return true }

// GenerateSuccessors emits an edge to every anchor strictly right of the
// source in both sequences (capped at maxSuccessors, nearest-first since
// anchors are sorted by position), plus one edge to End, per spec §4.6.
func (c *chainContext[T]) GenerateSuccessors(n astar.Node[int, cost.Value[T], int], emit func(astar.Node[int, cost.Value[T], int])) {
	id := n.Identifier()
	if id == endID {
		return
	}

	fromR1, fromQ1 := c.endpoint(id)
	base := n.NodeCost()

	emitted := 0
	for i, a := range c.anchors {
		if i == id || a.R0 < fromR1 || a.Q0 < fromQ1 {
			continue
		}
		if c.maxSuccessors > 0 && emitted >= c.maxSuccessors {
			break
		}

		edgeC := c.costFn.Lookup(edgeKey{id, i}, fromR1, fromQ1, a.R0, a.Q0)
		if edgeC.IsMax() {
			continue
		}
		nc, ok := base.CheckedAdd(edgeC)
		if !ok {
			continue
		}

		lb := c.costFn.Estimate(a.R1, a.Q1, c.refLen, c.qryLen)
		emit(chainNode[T]{id: i, nodeCost: nc, lowerBound: lb, predID: id, hasPred: true})
		emitted++
	}

	endC := c.costFn.Lookup(edgeKey{id, endID}, fromR1, fromQ1, c.refLen, c.qryLen)
	if !endC.IsMax() {
		if nc, ok := base.CheckedAdd(endC); ok {
			emit(chainNode[T]{id: endID, nodeCost: nc, lowerBound: cost.Zero[T](), predID: id, hasPred: true})
		}
	}
}

// Chain runs the lazy chain-A* refinement loop of spec §4.6: solve chain-A*
// with whatever edge costs are cached (initially chaining lower bounds);
// for every edge on the winning chain, force its cost to be computed
// exactly; if any of those exact costs differ from the value that won,
// the chain may no longer be optimal, so the engine is Reset and run again.
// Returns the winning chain in left-to-right order (excluding Start/End),
// its total cost, and the final run's counters.
func Chain[T cost.Integer](reference, query []byte, anchors []Anchor, costs tsalign.Costs[T], bounds tsalign.LowerBounds[T], opts Options) ([]Anchor, cost.Value[T], astar.Counters, error) {
	costFn := NewChainingCostFunction[T](anchors, reference, query, costs, bounds)
	ctx := &chainContext[T]{anchors: anchors, costFn: costFn, refLen: len(reference), qryLen: len(query), maxSuccessors: opts.MaxChainingSuccessors}

	var open astar.OpenList[int, cost.Value[T], int]
	if opts.ChainingOpenList == OpenListBucketQueue {
		open = astar.NewBucketQueue[int, cost.Value[T], int]()
	} else {
		open = astar.NewBinaryHeap[int, cost.Value[T], int]()
	}
	search := astar.New[int, cost.Value[T], int](ctx, open)

	for {
		search.Reset()
		result := search.Run()
		if result.Status != astar.StatusFoundTarget {
			return nil, cost.Value[T]{}, result.Counters, ErrNoChain
		}

		chainIDs, err := search.Backtrack(result.Identifier)
		if err != nil {
			return nil, cost.Value[T]{}, result.Counters, err
		}

		changedAny := false
		prevID := startID
		for _, id := range chainIDs {
			fromR1, fromQ1 := ctx.endpoint(prevID)
			var toR0, toQ0 int
			if id == endID {
				toR0, toQ0 = ctx.refLen, ctx.qryLen
			} else {
				toR0, toQ0 = anchors[id].R0, anchors[id].Q0
			}

			changed, err := costFn.ForceExact(edgeKey{prevID, id}, fromR1, fromQ1, toR0, toQ0)
			if err != nil {
				return nil, cost.Value[T]{}, result.Counters, err
			}
			changedAny = changedAny || changed
			prevID = id
		}

		if !changedAny {
			chain := make([]Anchor, 0, len(chainIDs))
			for _, id := range chainIDs {
				if id != endID {
					chain = append(chain, anchors[id])
				}
			}

			return chain, result.Cost, result.Counters, nil
		}
	}
}
