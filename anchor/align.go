package anchor

import (
	"time"

	"github.com/sebschmi/tsalign-go/alignresult"
	"github.com/sebschmi/tsalign-go/astar"
	"github.com/sebschmi/tsalign-go/cost"
	"github.com/sebschmi/tsalign-go/tsalign"
)

// Align resolves spec's first Open Question ("align... calls todo!... for
// chain-align"): it seeds anchors with BuildAnchorLists, chains the primary
// anchor list with Chain, then fills every gap between consecutive anchors
// (and before the first / after the last anchor) with a full tsalign.Align
// sub-search, producing a reconstructed alignment in the same
// alignresult.AlignmentResult shape tsalign.Align's callers already use.
func Align[T cost.Integer](reference, query []byte, costs tsalign.Costs[T], bounds tsalign.LowerBounds[T], strat tsalign.Strategies, opts Options) (*alignresult.AlignmentResult, error) {
	start := time.Now()

	lists := BuildAnchorLists(reference, query, opts.K)

	chain, _, chainCounters, err := Chain[T](reference, query, lists.Primary, costs, bounds, opts)
	if err != nil {
		return nil, err
	}

	outcome := tsalign.Outcome[T]{Status: astar.StatusFoundTarget, Counters: chainCounters}

	prevR, prevQ := 0, 0
	for _, a := range chain {
		gapOutcome, err := fillGap[T](reference, query, prevR, prevQ, a.R0, a.Q0, costs, bounds, strat)
		if err != nil {
			return nil, err
		}
		mergeOutcome(&outcome, gapOutcome)

		anchorOutcome, err := anchorTrace(reference, a, costs)
		if err != nil {
			return nil, err
		}
		mergeOutcome(&outcome, anchorOutcome)

		prevR, prevQ = a.R1, a.Q1
	}

	tailOutcome, err := fillGap[T](reference, query, prevR, prevQ, len(reference), len(query), costs, bounds, strat)
	if err != nil {
		return nil, err
	}
	mergeOutcome(&outcome, tailOutcome)

	rng := tsalign.Range{R0: 0, R1: len(reference), Q0: 0, Q1: len(query)}

	return alignresult.Build[T](outcome, reference, query, rng, time.Since(start)), nil
}

// fillGap aligns the rectangle [r0,r1)x[q0,q1) with a full tsalign search
// (template switches included, per strat), returning a found-target Outcome
// whose Trace and Cost are relative to that rectangle. An empty rectangle
// contributes nothing.
func fillGap[T cost.Integer](reference, query []byte, r0, q0, r1, q1 int, costs tsalign.Costs[T], bounds tsalign.LowerBounds[T], strat tsalign.Strategies) (tsalign.Outcome[T], error) {
	if r0 == r1 && q0 == q1 {
		return tsalign.Outcome[T]{Status: astar.StatusFoundTarget}, nil
	}

	ctx, err := tsalign.New[T](reference, query, tsalign.Range{R0: r0, R1: r1, Q0: q0, Q1: q1}, costs, bounds, strat)
	if err != nil {
		return tsalign.Outcome[T]{}, err
	}

	return tsalign.Align[T](ctx)
}

// anchorTrace builds a found-target Outcome for the exact-match interior of
// an anchor: a.Len() StepMatch columns priced by the primary cost table's
// match cost at each position.
func anchorTrace[T cost.Integer](reference []byte, a Anchor, costs tsalign.Costs[T]) (tsalign.Outcome[T], error) {
	total := cost.Zero[T]()
	trace := make(tsalign.Trace, 0, a.Len())
	for i := 0; i < a.Len(); i++ {
		symCost, err := costs.Primary.MatchOrSubstitutionCost(reference[a.R0+i], reference[a.R0+i])
		if err != nil {
			return tsalign.Outcome[T]{}, err
		}
		total = total.Add(symCost)
		trace = append(trace, tsalign.StepMatch)
	}

	return tsalign.Outcome[T]{Status: astar.StatusFoundTarget, Cost: total, Trace: trace}, nil
}

// mergeOutcome appends part's trace and cost/counters onto acc, in place.
// Both must already be found-target outcomes (the caller never merges a
// failed sub-search; fillGap/anchorTrace only ever return found-target
// outcomes for non-empty spans).
func mergeOutcome[T cost.Integer](acc *tsalign.Outcome[T], part tsalign.Outcome[T]) {
	acc.Trace = append(acc.Trace, part.Trace...)
	acc.Cost = acc.Cost.Add(part.Cost)
	acc.Counters.Opened += part.Counters.Opened
	acc.Counters.Closed += part.Counters.Closed
	acc.Counters.SuboptimalOpened += part.Counters.SuboptimalOpened
}
