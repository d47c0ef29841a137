package tsalign

import "github.com/sebschmi/tsalign-go/cost"

// node is the concrete astar.Node implementation for this package's search
// graph: per spec §9, it borrows nothing from its predecessor but the
// predecessor's Identifier, so backtracking is a closed-list lookup loop.
type node[T cost.Integer] struct {
	id        Identifier
	nodeCost  cost.Value[T]
	lowerBound cost.Value[T]
	secondary int64
	predID    Identifier
	hasPred   bool
	edge      Step
}

func (n node[T]) Identifier() Identifier          { return n.id }
func (n node[T]) NodeCost() cost.Value[T]         { return n.nodeCost }
func (n node[T]) LowerBound() cost.Value[T]       { return n.lowerBound }
func (n node[T]) SecondaryScore() int64           { return n.secondary }
func (n node[T]) Predecessor() (Identifier, bool) { return n.predID, n.hasPred }
func (n node[T]) PredecessorEdge() Step           { return n.edge }
