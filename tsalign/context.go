package tsalign

import (
	"github.com/sebschmi/tsalign-go/astar"
	"github.com/sebschmi/tsalign-go/cost"
	"github.com/sebschmi/tsalign-go/costmodel"
	"github.com/sebschmi/tsalign-go/lowerbound"
)

// Range restricts the search to a rectangular window of the two sequences,
// per spec §8 scenario 4: "[r0, r1) x [q0, q1)".
type Range struct {
	R0, R1 int
	Q0, Q1 int
}

// BaseCost is the fixed cost of entering a template switch at one of the
// four (primary_side, secondary_side) corners, per spec §3.3's "Base Cost"
// section: rr, rq, qr, qq.
type BaseCost[T cost.Integer] struct {
	RR, RQ, QR, QQ cost.Value[T]
}

// Get returns the base cost for the corner named by primary/secondary.
func (b BaseCost[T]) Get(primary, secondary Side) cost.Value[T] {
	switch {
	case primary == SideR && secondary == SideR:
		return b.RR
	case primary == SideR && secondary == SideQ:
		return b.RQ
	case primary == SideQ && secondary == SideR:
		return b.QR
	default:
		return b.QQ
	}
}

// Costs bundles every per-region cost table and step function a Context
// needs to price both the ordinary primary alignment and a template-switch
// detour, per spec §3.3's TemplateSwitchConfig.
type Costs[T cost.Integer] struct {
	Primary    *costmodel.AffineGapCosts[T]
	Secondary  *costmodel.AffineGapCosts[T]
	LeftFlank  *costmodel.AffineGapCosts[T]
	RightFlank *costmodel.AffineGapCosts[T]

	LeftFlankLength    int
	RightFlankLength   int
	MinSecondaryLength int

	BaseCost BaseCost[T]

	Offset           costmodel.StepFunction[int32, T]
	Length           costmodel.StepFunction[int32, T]
	LengthDifference costmodel.StepFunction[int32, T]
	AntiPrimaryGap   costmodel.StepFunction[int32, T]
}

// LowerBounds bundles the precomputed admissible heuristic tables consumed
// by Context.heuristic, per spec §4.4/§4.6.
type LowerBounds[T cost.Integer] struct {
	GapAffine *lowerbound.GapAffineLowerBounds[T]
	TsJump    *lowerbound.TsJumpLowerBounds[T]
}

// Context is the astar.Context over the template-switch alignment graph
// described in spec §4.5-§4.7.
type Context[T cost.Integer] struct {
	reference, query []byte
	rng              Range

	costs  Costs[T]
	bounds LowerBounds[T]
	strat  Strategies

	costLimit    cost.Value[T]
	hasCostLimit bool
	memoryLimit  int
	hasMemLimit  bool
	labelSetting bool
}

// New constructs a Context for aligning reference against query within rng.
func New[T cost.Integer](reference, query []byte, rng Range, costs Costs[T], bounds LowerBounds[T], strat Strategies) (*Context[T], error) {
	if rng.R1 <= rng.R0 && rng.Q1 <= rng.Q0 {
		return nil, ErrEmptyRange
	}
	if rng.R0 < 0 || rng.Q0 < 0 || rng.R1 > len(reference) || rng.Q1 > len(query) {
		return nil, ErrRangeOutOfBounds
	}
	if costs.Primary == nil || costs.Secondary == nil || costs.LeftFlank == nil || costs.RightFlank == nil {
		return nil, ErrNilCosts
	}
	if len(costs.Offset.Breakpoints()) == 0 || len(costs.Length.Breakpoints()) == 0 ||
		len(costs.LengthDifference.Breakpoints()) == 0 || len(costs.AntiPrimaryGap.Breakpoints()) == 0 {
		return nil, ErrNilCosts
	}
	if bounds.GapAffine == nil || bounds.TsJump == nil {
		return nil, ErrNilLowerBound
	}

	return &Context[T]{
		reference:    reference,
		query:        query,
		rng:          rng,
		costs:        costs,
		bounds:       bounds,
		strat:        strat,
		labelSetting: true,
	}, nil
}

// WithCostLimit sets an inclusive cost ceiling; searches whose frontier cost
// exceeds it abort with astar.StatusExceededCostLimit.
func (c *Context[T]) WithCostLimit(limit cost.Value[T]) *Context[T] {
	c.costLimit = limit
	c.hasCostLimit = true

	return c
}

// WithMemoryLimit sets a combined open+closed list size ceiling.
func (c *Context[T]) WithMemoryLimit(limit int) *Context[T] {
	c.memoryLimit = limit
	c.hasMemLimit = true

	return c
}

// WithLabelCorrecting forces label-correcting closed-list semantics
// (re-opening a closed node on a strictly better revisit), the
// force_label_correcting parameter from spec §6's align signature.
func (c *Context[T]) WithLabelCorrecting() *Context[T] {
	c.labelSetting = false

	return c
}

func (c *Context[T]) CreateRoot() astar.Node[Identifier, cost.Value[T], Step] {
	id := Identifier{Kind: KindPrimary, R: c.rng.R0, Q: c.rng.Q0, FlankIndex: 0}

	return node[T]{id: id, nodeCost: cost.Zero[T](), lowerBound: c.heuristic(id), edge: StepRoot}
}

// IsTarget reports whether n is a Primary or PrimaryReentry node at the
// range's far corner that has walked at least LeftFlankLength primary steps
// since the root or its last reentry, per spec §4.5's "Target states".
func (c *Context[T]) IsTarget(n astar.Node[Identifier, cost.Value[T], Step]) bool {
	id := n.Identifier()
	if id.Kind != KindPrimary && id.Kind != KindPrimaryReentry {
		return false
	}

	return id.R == c.rng.R1 && id.Q == c.rng.Q1 && id.FlankIndex >= c.costs.LeftFlankLength
}

func (c *Context[T]) CostLimit() (cost.Value[T], bool) { return c.costLimit, c.hasCostLimit }
func (c *Context[T]) MemoryLimit() (int, bool)         { return c.memoryLimit, c.hasMemLimit }
func (c *Context[T]) IsLabelSetting() bool             { return c.labelSetting }

// heuristic implements spec §4.6's per-Kind admissible lower bound.
func (c *Context[T]) heuristic(id Identifier) cost.Value[T] {
	switch id.Kind {
	case KindPrimary, KindPrimaryReentry:
		return c.bounds.GapAffine.PrimaryLowerBound(c.rng.R1-id.R, c.rng.Q1-id.Q)
	case KindTemplateSwitchEntrance:
		return c.bounds.TsJump.Lb12(committedDescendantGap(id))
	case KindSecondary, KindTemplateSwitchExit:
		return c.bounds.TsJump.Lb34(remainingDescendantGap(id))
	default:
		return cost.Zero[T]()
	}
}

// committedDescendantGap and remainingDescendantGap approximate the
// descendant-gap quantities spec §4.4/§4.6 index lb_12/lb_34 by: the
// magnitude of the chosen entrance offset, and the asymmetry between how
// far the primary and secondary coordinates have each travelled inside the
// detour.
func committedDescendantGap(id Identifier) int {
	g := int(id.FirstOffset)
	if g < 0 {
		g = -g
	}

	return g
}

func remainingDescendantGap(id Identifier) int {
	g := id.PrimaryIndex - id.SecondaryIndex
	if g < 0 {
		g = -g
	}

	return g
}

// sequenceFor returns the byte slice named by side.
func (c *Context[T]) sequenceFor(side Side) []byte {
	if side == SideR {
		return c.reference
	}

	return c.query
}

// coordFor returns id's coordinate on the axis named by side: R for SideR,
// Q for SideQ.
func coordFor(id Identifier, side Side) int {
	if side == SideR {
		return id.R
	}

	return id.Q
}

// inRightFlank reports whether id is within RightFlankLength primary steps
// of the target corner on either axis. Spec §4.5 describes the right flank
// as the last steps before the target corner but does not pin down how that
// generalizes to a non-square range; this OR-across-axes reading is the
// interpretation this Context implements (see DESIGN.md). A RightFlankLength
// of zero means there is no right flank.
func (c *Context[T]) inRightFlank(id Identifier) bool {
	if c.costs.RightFlankLength <= 0 {
		return false
	}

	return c.rng.R1-id.R <= c.costs.RightFlankLength || c.rng.Q1-id.Q <= c.costs.RightFlankLength
}

// primaryCostTable selects the edit-cost table a primary step at id should
// use: LeftFlank while the left flank hasn't been walked yet, RightFlank
// once within RightFlankLength of the target corner, Primary otherwise.
func (c *Context[T]) primaryCostTable(id Identifier) *costmodel.AffineGapCosts[T] {
	if id.FlankIndex < c.costs.LeftFlankLength {
		return c.costs.LeftFlank
	}
	if c.inRightFlank(id) {
		return c.costs.RightFlank
	}

	return c.costs.Primary
}

// nextFlankIndex advances id's left-flank counter, capped at
// LeftFlankLength once the left flank has been fully walked.
func (c *Context[T]) nextFlankIndex(id Identifier) int {
	if id.FlankIndex >= c.costs.LeftFlankLength {
		return id.FlankIndex
	}

	return id.FlankIndex + 1
}

func (c *Context[T]) GenerateSuccessors(n astar.Node[Identifier, cost.Value[T], Step], emit func(astar.Node[Identifier, cost.Value[T], Step])) {
	id := n.Identifier()

	switch id.Kind {
	case KindPrimary:
		c.expandPrimary(n, emit)
	case KindPrimaryReentry:
		// A reentry node is a bookkeeping hop back to Primary at the same
		// coordinates; it has exactly one successor and costs nothing extra.
		next := Identifier{Kind: KindPrimary, R: id.R, Q: id.Q, FlankIndex: id.FlankIndex, Switches: id.Switches}
		emit(node[T]{id: next, nodeCost: n.NodeCost(), lowerBound: c.heuristic(next), predID: id, hasPred: true, edge: StepPrimaryReentry})
	case KindTemplateSwitchEntrance:
		c.expandTemplateSwitchEntrance(n, emit)
	case KindSecondary:
		c.expandSecondary(n, emit)
	case KindTemplateSwitchExit:
		c.expandTemplateSwitchExit(n, emit)
	}
}

// expandPrimary generates the ordinary diagonal/gap moves over the primary
// alignment (using the flank-appropriate cost table), plus, once the left
// flank has been fully walked, one TemplateSwitchEntrance successor per
// (primary_side, secondary_side) corner and per feasible first_offset, per
// spec §4.5 item 4.
func (c *Context[T]) expandPrimary(n astar.Node[Identifier, cost.Value[T], Step], emit func(astar.Node[Identifier, cost.Value[T], Step])) {
	id := n.Identifier()
	base := n.NodeCost()
	table := c.primaryCostTable(id)
	flankActive := id.FlankIndex < c.costs.LeftFlankLength || c.inRightFlank(id)

	matchStep, subStep, delStep, insStep := StepMatch, StepSubstitution, StepDeletion, StepInsertion
	if flankActive {
		matchStep, subStep, delStep, insStep = StepFlankMatch, StepFlankSubstitution, StepFlankDeletion, StepFlankInsertion
	}

	if id.R < c.rng.R1 && id.Q < c.rng.Q1 {
		symCost, err := table.MatchOrSubstitutionCost(c.reference[id.R], c.query[id.Q])
		if err == nil {
			step := matchStep
			if c.reference[id.R] != c.query[id.Q] {
				step = subStep
			}
			next := Identifier{Kind: KindPrimary, R: id.R + 1, Q: id.Q + 1, FlankIndex: c.nextFlankIndex(id), Switches: id.Switches, LastStep: step}
			if nc, ok := base.CheckedAdd(symCost); ok {
				emit(node[T]{id: next, nodeCost: nc, lowerBound: c.heuristic(next), predID: id, hasPred: true, edge: step})
			}
		}
	}

	if id.R < c.rng.R1 {
		isFirst := id.LastStep != delStep
		g, err := table.GapCosts(c.reference[id.R], isFirst)
		if err == nil {
			next := Identifier{Kind: KindPrimary, R: id.R + 1, Q: id.Q, FlankIndex: c.nextFlankIndex(id), Switches: id.Switches, LastStep: delStep}
			if nc, ok := base.CheckedAdd(g); ok {
				emit(node[T]{id: next, nodeCost: nc, lowerBound: c.heuristic(next), predID: id, hasPred: true, edge: delStep})
			}
		}
	}

	if id.Q < c.rng.Q1 {
		isFirst := id.LastStep != insStep
		g, err := table.GapCosts(c.query[id.Q], isFirst)
		if err == nil {
			next := Identifier{Kind: KindPrimary, R: id.R, Q: id.Q + 1, FlankIndex: c.nextFlankIndex(id), Switches: id.Switches, LastStep: insStep}
			if nc, ok := base.CheckedAdd(g); ok {
				emit(node[T]{id: next, nodeCost: nc, lowerBound: c.heuristic(next), predID: id, hasPred: true, edge: insStep})
			}
		}
	}

	if id.FlankIndex < c.costs.LeftFlankLength || !c.strat.templateSwitchAllowed(id.Switches) {
		return
	}

	sides := [2]Side{SideR, SideQ}
	for _, primarySide := range sides {
		for _, secondarySide := range sides {
			anchor := coordFor(id, secondarySide)
			seqLen := len(c.sequenceFor(secondarySide))
			lo := int32(-anchor)
			hi := int32(seqLen-anchor) + 1

			for _, offset := range c.costs.Offset.FiniteDomain(lo, hi) {
				total, ok := c.costs.BaseCost.Get(primarySide, secondarySide).CheckedAdd(c.costs.Offset.Evaluate(offset))
				if !ok {
					continue
				}
				nc, ok := base.CheckedAdd(total)
				if !ok {
					continue
				}

				next := Identifier{
					Kind:          KindTemplateSwitchEntrance,
					R:             id.R,
					Q:             id.Q,
					FlankIndex:    id.FlankIndex,
					PrimarySide:   primarySide,
					SecondarySide: secondarySide,
					FirstOffset:   offset,
					Switches:      id.Switches + 1,
				}
				emit(node[T]{id: next, nodeCost: nc, lowerBound: c.heuristic(next), predID: id, hasPred: true, edge: StepTemplateSwitchEntrance})
			}
		}
	}
}

// expandTemplateSwitchEntrance resolves the chosen corner and first_offset
// into the concrete starting position of the secondary detour: the primary
// side continues forward from the entrance coordinate, the secondary side
// starts reading backwards from entrance+first_offset.
func (c *Context[T]) expandTemplateSwitchEntrance(n astar.Node[Identifier, cost.Value[T], Step], emit func(astar.Node[Identifier, cost.Value[T], Step])) {
	id := n.Identifier()

	primaryIndex := coordFor(id, id.PrimarySide)
	secondaryIndex := coordFor(id, id.SecondarySide) + int(id.FirstOffset)
	if secondaryIndex < 0 || secondaryIndex > len(c.sequenceFor(id.SecondarySide)) {
		return
	}

	next := Identifier{
		Kind:           KindSecondary,
		R:              id.R,
		Q:              id.Q,
		PrimarySide:    id.PrimarySide,
		SecondarySide:  id.SecondarySide,
		FirstOffset:    id.FirstOffset,
		PrimaryIndex:   primaryIndex,
		SecondaryIndex: secondaryIndex,
		Switches:       id.Switches,
	}
	emit(node[T]{id: next, nodeCost: n.NodeCost(), lowerBound: c.heuristic(next), predID: id, hasPred: true, edge: StepSecondaryRoot})
}

// expandSecondary walks the template-switch detour: the primary side reads
// primarySeq forward from PrimaryIndex, the secondary side reads the
// reverse complement of secondarySeq backward from SecondaryIndex, per spec
// §4.5's "the secondary coordinate moves backwards... reading the reverse
// complement of secondary_seq". Once Length reaches MinSecondaryLength, one
// TemplateSwitchExit successor is offered per feasible anti_primary_gap.
func (c *Context[T]) expandSecondary(n astar.Node[Identifier, cost.Value[T], Step], emit func(astar.Node[Identifier, cost.Value[T], Step])) {
	id := n.Identifier()
	base := n.NodeCost()

	primarySeq := c.sequenceFor(id.PrimarySide)
	secondarySeq := c.sequenceFor(id.SecondarySide)

	primaryHasNext := id.PrimaryIndex < len(primarySeq)
	secondaryHasNext := id.SecondaryIndex > 0

	if primaryHasNext && secondaryHasNext {
		primarySym := primarySeq[id.PrimaryIndex]
		secondarySym := complement(secondarySeq[id.SecondaryIndex-1])
		symCost, err := c.costs.Secondary.MatchOrSubstitutionCost(primarySym, secondarySym)
		if err == nil {
			step := StepSecondaryMatch
			if primarySym != secondarySym {
				step = StepSecondarySubstitution
			}
			next := Identifier{
				Kind: KindSecondary, R: id.R, Q: id.Q,
				PrimarySide: id.PrimarySide, SecondarySide: id.SecondarySide, FirstOffset: id.FirstOffset,
				Length: id.Length + 1, PrimaryIndex: id.PrimaryIndex + 1, SecondaryIndex: id.SecondaryIndex - 1,
				Switches: id.Switches, LastStep: step,
			}
			if nc, ok := base.CheckedAdd(symCost); ok {
				emit(node[T]{id: next, nodeCost: nc, lowerBound: c.heuristic(next), predID: id, hasPred: true, edge: step})
			}
		}
	}

	if c.strat.AllowSecondaryDeletions {
		if primaryHasNext {
			isFirst := id.LastStep != StepSecondaryDeletion
			g, err := c.costs.Secondary.GapCosts(primarySeq[id.PrimaryIndex], isFirst)
			if err == nil {
				next := Identifier{
					Kind: KindSecondary, R: id.R, Q: id.Q,
					PrimarySide: id.PrimarySide, SecondarySide: id.SecondarySide, FirstOffset: id.FirstOffset,
					Length: id.Length + 1, PrimaryIndex: id.PrimaryIndex + 1, SecondaryIndex: id.SecondaryIndex,
					Switches: id.Switches, LastStep: StepSecondaryDeletion,
				}
				if nc, ok := base.CheckedAdd(g); ok {
					emit(node[T]{id: next, nodeCost: nc, lowerBound: c.heuristic(next), predID: id, hasPred: true, edge: StepSecondaryDeletion})
				}
			}
		}
		if secondaryHasNext {
			isFirst := id.LastStep != StepSecondaryInsertion
			g, err := c.costs.Secondary.GapCosts(complement(secondarySeq[id.SecondaryIndex-1]), isFirst)
			if err == nil {
				next := Identifier{
					Kind: KindSecondary, R: id.R, Q: id.Q,
					PrimarySide: id.PrimarySide, SecondarySide: id.SecondarySide, FirstOffset: id.FirstOffset,
					Length: id.Length + 1, PrimaryIndex: id.PrimaryIndex, SecondaryIndex: id.SecondaryIndex - 1,
					Switches: id.Switches, LastStep: StepSecondaryInsertion,
				}
				if nc, ok := base.CheckedAdd(g); ok {
					emit(node[T]{id: next, nodeCost: nc, lowerBound: c.heuristic(next), predID: id, hasPred: true, edge: StepSecondaryInsertion})
				}
			}
		}
	}

	if id.Length < c.costs.MinSecondaryLength {
		return
	}

	lengthCost := c.costs.Length.Evaluate(int32(id.Length))

	other := id.PrimarySide.Other()
	anchor := coordFor(id, other)
	seqLen := len(c.sequenceFor(other))
	lo := int32(-anchor)
	hi := int32(seqLen-anchor) + 1

	for _, gap := range c.costs.AntiPrimaryGap.FiniteDomain(lo, hi) {
		total, ok := lengthCost.CheckedAdd(c.costs.AntiPrimaryGap.Evaluate(gap))
		if !ok {
			continue
		}
		nc, ok := base.CheckedAdd(total)
		if !ok {
			continue
		}

		next := Identifier{
			Kind: KindTemplateSwitchExit, R: id.R, Q: id.Q,
			PrimarySide: id.PrimarySide, SecondarySide: id.SecondarySide,
			PrimaryIndex: id.PrimaryIndex, AntiPrimaryGap: gap, Switches: id.Switches,
		}
		emit(node[T]{id: next, nodeCost: nc, lowerBound: c.heuristic(next), predID: id, hasPred: true, edge: StepTemplateSwitchExit})
	}
}

// expandTemplateSwitchExit computes the PrimaryReentry coordinates: the
// primary side advances to the final PrimaryIndex reached inside the
// detour, and the non-primary side advances from its entrance coordinate by
// the chosen AntiPrimaryGap, per spec §4.5's reentry formula. The left
// flank counter restarts, since reentry must walk a fresh left flank before
// either a further switch or the target becomes reachable.
func (c *Context[T]) expandTemplateSwitchExit(n astar.Node[Identifier, cost.Value[T], Step], emit func(astar.Node[Identifier, cost.Value[T], Step])) {
	id := n.Identifier()

	newR, newQ := id.R, id.Q
	if id.PrimarySide == SideR {
		newR = id.PrimaryIndex
	} else {
		newQ = id.PrimaryIndex
	}

	other := id.PrimarySide.Other()
	otherVal := coordFor(id, other) + int(id.AntiPrimaryGap)
	if other == SideR {
		newR = otherVal
	} else {
		newQ = otherVal
	}

	if newR < c.rng.R0 || newR > c.rng.R1 || newQ < c.rng.Q0 || newQ > c.rng.Q1 {
		return
	}

	next := Identifier{Kind: KindPrimaryReentry, R: newR, Q: newQ, FlankIndex: 0, Switches: id.Switches}
	emit(node[T]{id: next, nodeCost: n.NodeCost(), lowerBound: c.heuristic(next), predID: id, hasPred: true, edge: StepTemplateSwitchExit})
}
