// Package lowerbound fills the admissible heuristic tables consumed by
// package astar's priority function, per spec §4.4. Every table here is
// built by running the A* engine against a simplified cost model in which
// the real cost model is only weakened, never strengthened, so the result
// is pointwise no larger than the true optimal cost -- the admissibility
// argument that lets package tsalign use these tables as lower bounds.
package lowerbound

import (
	"fmt"

	"github.com/sebschmi/tsalign-go/astar"
	"github.com/sebschmi/tsalign-go/cost"
)

// runState tracks which kind of step last reached a (a, b) coordinate, so
// the affine gap-open/gap-extend distinction can be applied correctly: a
// run of horizontal (or vertical) steps pays gap-open once and gap-extend
// for every step after the first.
type runState uint8

const (
	runNone runState = iota
	runDiagonal
	runHorizontal
	runVertical
)

type gapAffineID struct {
	a, b int
	run  runState
}

type gapAffineNode[T cost.Integer] struct {
	id   gapAffineID
	cost cost.Value[T]
}

func (n gapAffineNode[T]) Identifier() gapAffineID           { return n.id }
func (n gapAffineNode[T]) NodeCost() cost.Value[T]           { return n.cost }
func (n gapAffineNode[T]) LowerBound() cost.Value[T]         { return cost.Zero[T]() }
func (n gapAffineNode[T]) SecondaryScore() int64             { return 0 }
func (n gapAffineNode[T]) Predecessor() (gapAffineID, bool)  { return gapAffineID{}, false }
func (n gapAffineNode[T]) PredecessorEdge() struct{}         { return struct{}{} }

// gapAffineContext fills the table for one (standard vs. allow-all-matches)
// variant. IsTarget always returns false: the search runs to exhaustion
// over the bounded (a, b, run) state space and ClosedObserver.OnClose
// records the per-(a,b) minimum as each state settles.
type gapAffineContext[T cost.Integer] struct {
	maxN           int
	minSubstitution cost.Value[T]
	minGapOpen      cost.Value[T]
	minGapExtend    cost.Value[T]
	diagCost        cost.Value[T]
	table           [][]cost.Value[T]
}

func newGapAffineContext[T cost.Integer](maxN int, minSub, minOpen, minExtend cost.Value[T], allowAllMatches bool) *gapAffineContext[T] {
	diag := minSub
	if allowAllMatches {
		diag = cost.Zero[T]()
	}

	table := make([][]cost.Value[T], maxN+1)
	for i := range table {
		table[i] = make([]cost.Value[T], maxN+1)
		for j := range table[i] {
			table[i][j] = cost.Max[T]()
		}
	}

	return &gapAffineContext[T]{
		maxN:            maxN,
		minSubstitution: minSub,
		minGapOpen:      minOpen,
		minGapExtend:    minExtend,
		diagCost:        diag,
		table:           table,
	}
}

func (c *gapAffineContext[T]) CreateRoot() astar.Node[gapAffineID, cost.Value[T], struct{}] {
	return gapAffineNode[T]{id: gapAffineID{0, 0, runNone}, cost: cost.Zero[T]()}
}

func (c *gapAffineContext[T]) GenerateSuccessors(n astar.Node[gapAffineID, cost.Value[T], struct{}], emit func(astar.Node[gapAffineID, cost.Value[T], struct{}])) {
	id := n.Identifier()
	base := n.NodeCost()

	if id.a < c.maxN && id.b < c.maxN {
		emit(gapAffineNode[T]{id: gapAffineID{id.a + 1, id.b + 1, runDiagonal}, cost: base.Add(c.diagCost)})
	}
	if id.a < c.maxN {
		step := c.minGapOpen
		if id.run == runHorizontal {
			step = c.minGapExtend
		}
		emit(gapAffineNode[T]{id: gapAffineID{id.a + 1, id.b, runHorizontal}, cost: base.Add(step)})
	}
	if id.b < c.maxN {
		step := c.minGapOpen
		if id.run == runVertical {
			step = c.minGapExtend
		}
		emit(gapAffineNode[T]{id: gapAffineID{id.a, id.b + 1, runVertical}, cost: base.Add(step)})
	}
}

func (c *gapAffineContext[T]) IsTarget(astar.Node[gapAffineID, cost.Value[T], struct{}]) bool { return false }

func (c *gapAffineContext[T]) CostLimit() (cost.Value[T], bool) { return cost.Value[T]{}, false }
func (c *gapAffineContext[T]) MemoryLimit() (int, bool)         { return 0, false }
func (c *gapAffineContext[T]) IsLabelSetting() bool             { return true }

// OnClose implements astar.ClosedObserver: every coordinate's minimum cost
// over all run states is the table entry.
func (c *gapAffineContext[T]) OnClose(n astar.Node[gapAffineID, cost.Value[T], struct{}]) {
	id := n.Identifier()
	if n.NodeCost().Less(c.table[id.a][id.b]) {
		c.table[id.a][id.b] = n.NodeCost()
	}
}

// GapAffineLowerBounds is the 2-D table described in spec §4.4: indexed by
// (gap_in_a, gap_in_b) up to max_n, plus its 1-D variable_gap2_lower_bound
// reduction.
type GapAffineLowerBounds[T cost.Integer] struct {
	maxN            int
	allowAllMatches bool
	table           [][]cost.Value[T]
	variableGap2    []cost.Value[T]
}

// NewGapAffineLowerBounds fills the table by running the A* engine against
// the simplified cost model described by the given minima. Set
// allowAllMatches to build the variant used as a component of the TS-jump
// bound, in which diagonal steps are free.
func NewGapAffineLowerBounds[T cost.Integer](maxN int, minSubstitution, minGapOpen, minGapExtend cost.Value[T], allowAllMatches bool) (*GapAffineLowerBounds[T], error) {
	if maxN < 0 {
		return nil, fmt.Errorf("lowerbound: negative max_n %d", maxN)
	}

	ctx := newGapAffineContext(maxN, minSubstitution, minGapOpen, minGapExtend, allowAllMatches)
	search := astar.New[gapAffineID, cost.Value[T], struct{}](ctx, astar.NewBinaryHeap[gapAffineID, cost.Value[T], struct{}]())
	result := search.Run()
	if result.Status != astar.StatusNoTarget {
		return nil, fmt.Errorf("lowerbound: unexpected fill status %v", result.Status)
	}

	variableGap2 := make([]cost.Value[T], maxN+1)
	for a := 0; a <= maxN; a++ {
		min := cost.Max[T]()
		for b := 0; b <= maxN; b++ {
			if ctx.table[a][b].Less(min) {
				min = ctx.table[a][b]
			}
		}
		variableGap2[a] = min
	}

	return &GapAffineLowerBounds[T]{
		maxN:            maxN,
		allowAllMatches: allowAllMatches,
		table:           ctx.table,
		variableGap2:    variableGap2,
	}, nil
}

// PrimaryLowerBound returns the table entry for (gapInA, gapInB), or Zero if
// either index is negative or exceeds max_n (the caller's region exceeds what
// was precomputed -- still admissible, just uninformative).
func (g *GapAffineLowerBounds[T]) PrimaryLowerBound(gapInA, gapInB int) cost.Value[T] {
	if gapInA < 0 || gapInB < 0 || gapInA > g.maxN || gapInB > g.maxN {
		return cost.Zero[T]()
	}

	return g.table[gapInA][gapInB]
}

// VariableGap2LowerBound returns variable_gap2_lower_bound[g] = min_b table[g,b].
func (g *GapAffineLowerBounds[T]) VariableGap2LowerBound(gap int) cost.Value[T] {
	if gap < 0 || gap > g.maxN {
		return cost.Zero[T]()
	}

	return g.variableGap2[gap]
}

// Table returns the dense (maxN+1)x(maxN+1) table backing this bound, for
// persistence via WriteTable (spec §6's lower-bound cache file).
func (g *GapAffineLowerBounds[T]) Table() [][]cost.Value[T] { return g.table }

// MaxN returns the table's precomputed range.
func (g *GapAffineLowerBounds[T]) MaxN() int { return g.maxN }

// AllowAllMatches reports which variant this table is.
func (g *GapAffineLowerBounds[T]) AllowAllMatches() bool { return g.allowAllMatches }
