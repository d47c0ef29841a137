// Package astar implements a generic best-first search (A*) engine, per
// spec §4.3: an open list ordered by (cost + lower_bound), a closed list
// that keeps at most one representative node per identifier, expansion via
// a caller-supplied Context, and backtracking from target to root.
//
// The engine is deliberately generic over the identifier type, the cost
// algebra, and the edge/step type recorded on each node, so that the same
// engine drives both the template-switch alignment search (package tsalign)
// and the anchor-chaining search (package anchor), exactly as spec §1
// describes: "a generic best-first search (A*) framework and two
// cost-driven search problems built on it."
package astar

import "errors"

// Cost is the algebra a search's cost type must support: summing edge costs
// along a path (Add), ordering two costs (Less), and recognising the
// additive identity (IsZero). See package cost for the concrete
// implementations (cost.Value[T], cost.Pair[A,B]) used by tsalign and
// anchor.
type Cost[C any] interface {
	Add(C) C
	Less(C) bool
	IsZero() bool
}

// Node is a single vertex in the search graph, per spec §3.5: an
// identifier, predecessor identifier, and cost, plus an admissible lower
// bound and a secondary (maximised) tie-break score.
type Node[ID comparable, C any, E any] interface {
	// Identifier returns this node's graph vertex identity. Two nodes with
	// equal identifiers are the same graph vertex for closed-list purposes.
	Identifier() ID

	// NodeCost returns the accumulated cost from the root to this node.
	NodeCost() C

	// LowerBound returns an admissible heuristic (>= 0) estimating the
	// remaining cost to any target; the open list orders by Cost + LowerBound.
	LowerBound() C

	// SecondaryScore breaks ties between equal-priority nodes; the open
	// list prefers the higher score.
	SecondaryScore() int64

	// Predecessor returns the identifier this node was reached from, and
	// false if this is the root.
	Predecessor() (ID, bool)

	// PredecessorEdge returns the step type of the edge that produced this
	// node from its predecessor. Meaningless (zero value) for the root.
	PredecessorEdge() E
}

// Context supplies everything the engine needs to run a search, per spec
// §4.3: how to construct the root, how to expand a node, how to recognise a
// target, and optional cost/memory limits.
type Context[ID comparable, C any, E any] interface {
	CreateRoot() Node[ID, C, E]

	// GenerateSuccessors calls emit once per successor of n.
	GenerateSuccessors(n Node[ID, C, E], emit func(Node[ID, C, E]))

	IsTarget(n Node[ID, C, E]) bool

	// CostLimit returns a cost ceiling and true if one is configured.
	CostLimit() (C, bool)

	// MemoryLimit returns a combined open+closed list size ceiling and true
	// if one is configured.
	MemoryLimit() (int, bool)

	// IsLabelSetting reports whether the heuristic is monotone and node cost
	// is non-decreasing along any optimal path (spec §4.3's label-setting
	// mode). When false, the closed list runs in label-correcting mode.
	IsLabelSetting() bool
}

// Status is the outcome of a completed or aborted search.
type Status int

const (
	// StatusFoundTarget means the search reached a target node optimally.
	StatusFoundTarget Status = iota
	// StatusExceededCostLimit means the popped node's cost exceeded CostLimit.
	StatusExceededCostLimit
	// StatusExceededMemoryLimit means open+closed exceeded MemoryLimit.
	StatusExceededMemoryLimit
	// StatusNoTarget means the open list emptied before any target was found.
	StatusNoTarget
)

// Counters tracks search performance, per spec §4.3 and §4.7.
type Counters struct {
	Opened            int
	Closed            int
	SuboptimalOpened int
}

// Result is the outcome of Search.Run.
type Result[ID comparable, C any] struct {
	Status     Status
	Identifier ID // valid only when Status == StatusFoundTarget
	Cost       C  // valid only when Status == StatusFoundTarget
	Counters   Counters
}


// ErrNoRoot is returned by Backtrack if called before a successful Run.
var ErrNoRoot = errors.New("astar: backtrack requires a completed search that found a target")

// closedEntry is what the closed list stores per identifier.
type closedEntry[ID comparable, C any, E any] struct {
	node Node[ID, C, E]
}

// Search owns one A* run's open list, closed list, and memoization. It
// exclusively owns its Context for the duration of a search, per spec §3.9,
// and relinquishes it to the caller for inspection once the search
// completes.
type Search[ID comparable, C Cost[C], E any] struct {
	context Context[ID, C, E]

	open   OpenList[ID, C, E]
	closed map[ID]closedEntry[ID, C, E]

	counters Counters
}

// New constructs a Search over ctx using open as the open-list
// implementation (BinaryHeap or BucketQueue).
func New[ID comparable, C Cost[C], E any](ctx Context[ID, C, E], open OpenList[ID, C, E]) *Search[ID, C, E] {
	return &Search[ID, C, E]{
		context: ctx,
		open:    open,
		closed:  make(map[ID]closedEntry[ID, C, E]),
	}
}

// Reset clears the open and closed lists and re-initialises performance
// counters, without freeing allocated capacity, per spec §4.3's "Reset":
// used when a caller (e.g. package anchor's chain-edge refinement loop)
// solves many independent sub-problems by reusing one engine instance.
func (s *Search[ID, C, E]) Reset() {
	s.open.Reset()
	for k := range s.closed {
		delete(s.closed, k)
	}
	s.counters = Counters{}
}

// Context returns the Context this Search owns, for inspection after a run.
func (s *Search[ID, C, E]) Context() Context[ID, C, E] {
	return s.context
}

// Counters returns the performance counters accumulated so far.
func (s *Search[ID, C, E]) Counters() Counters {
	return s.counters
}

// priority computes cost + lowerBound for a node.
func priority[ID comparable, C Cost[C], E any](n Node[ID, C, E]) C {
	return n.NodeCost().Add(n.LowerBound())
}

// Run executes the main A* loop described in spec §4.3: repeatedly pop the
// minimum open node; if closed, discard; if target, stop; otherwise close it
// and expand successors into the open list.
func (s *Search[ID, C, E]) Run() Result[ID, C] {
	root := s.context.CreateRoot()
	s.open.Push(root)
	s.counters.Opened++

	for {
		if limit, ok := s.context.MemoryLimit(); ok {
			if s.open.Len()+len(s.closed) > limit {
				return Result[ID, C]{Status: StatusExceededMemoryLimit, Counters: s.counters}
			}
		}

		n, ok := s.open.Pop()
		if !ok {
			return Result[ID, C]{Status: StatusNoTarget, Counters: s.counters}
		}

		if limit, hasLimit := s.context.CostLimit(); hasLimit {
			if limit.Less(n.NodeCost()) {
				return Result[ID, C]{Status: StatusExceededCostLimit, Counters: s.counters}
			}
		}

		id := n.Identifier()
		if entry, isClosed := s.closed[id]; isClosed {
			if !s.context.IsLabelSetting() {
				// Label-correcting: replace if strictly better.
				if priority[ID, C, E](n).Less(priority[ID, C, E](entry.node)) {
					s.closed[id] = closedEntry[ID, C, E]{node: n}
					s.expand(n)
				} else {
					s.counters.SuboptimalOpened++
				}
			} else {
				s.counters.SuboptimalOpened++
			}
			continue
		}

		if s.context.IsTarget(n) {
			s.closed[id] = closedEntry[ID, C, E]{node: n}
			return Result[ID, C]{Status: StatusFoundTarget, Identifier: id, Cost: n.NodeCost(), Counters: s.counters}
		}

		s.closed[id] = closedEntry[ID, C, E]{node: n}
		s.counters.Closed++
		if obs, ok := s.context.(ClosedObserver[ID, C, E]); ok {
			obs.OnClose(n)
		}
		s.expand(n)
	}
}

// ClosedObserver is an optional capability a Context can implement to be
// notified every time a node is settled (moved to the closed list), before
// its successors are expanded. Used by lower-bound table fills (spec §4.4),
// which run A* with IsTarget always false and no open-list target, recording
// the minimum cost seen for every coordinate instead of returning one path.
type ClosedObserver[ID comparable, C any, E any] interface {
	OnClose(n Node[ID, C, E])
}

func (s *Search[ID, C, E]) expand(n Node[ID, C, E]) {
	s.context.GenerateSuccessors(n, func(succ Node[ID, C, E]) {
		s.open.Push(succ)
		s.counters.Opened++
	})
}

// Backtrack walks predecessor pointers from target back to the root,
// returning the sequence of edge types in root-to-target order. It requires
// the identifier of a node that is present in the closed list (normally the
// target identifier returned by a StatusFoundTarget Result).
func (s *Search[ID, C, E]) Backtrack(target ID) ([]E, error) {
	var reversed []E
	id := target
	for {
		entry, ok := s.closed[id]
		if !ok {
			return nil, ErrNoRoot
		}
		pred, hasPred := entry.node.Predecessor()
		if !hasPred {
			break
		}
		reversed = append(reversed, entry.node.PredecessorEdge())
		id = pred
	}

	// Reverse into root-to-target order.
	out := make([]E, len(reversed))
	for i, e := range reversed {
		out[len(reversed)-1-i] = e
	}

	return out, nil
}
