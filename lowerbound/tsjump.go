package lowerbound

import "github.com/sebschmi/tsalign-go/cost"

// TsJumpLowerBounds holds the two 1-D tables used as heuristics when
// chaining primary->secondary and secondary->primary anchors (spec §4.4,
// §4.6): lb_12[g] folds in the fixed template-switch base cost, lb_34[g] is
// the analogue without it.
type TsJumpLowerBounds[T cost.Integer] struct {
	lb12 []cost.Value[T]
	lb34 []cost.Value[T]
}

// NewTsJumpLowerBounds fills lb_12 and lb_34 by min-plus convolution of the
// primary and secondary variable_gap2_lower_bound vectors, a plain double
// loop over every (p, s) pair:
// lb_12[g] = min over p+s=g of primaryVarGapLB[p] + tsBaseCost + secondaryVarGapLB[s].
func NewTsJumpLowerBounds[T cost.Integer](primaryVarGapLB, secondaryVarGapLB []cost.Value[T], tsBaseCost cost.Value[T]) *TsJumpLowerBounds[T] {
	maxG := len(primaryVarGapLB) + len(secondaryVarGapLB) - 2
	if maxG < 0 {
		maxG = 0
	}

	lb12 := make([]cost.Value[T], maxG+1)
	lb34 := make([]cost.Value[T], maxG+1)
	for g := range lb12 {
		lb12[g] = cost.Max[T]()
		lb34[g] = cost.Max[T]()
	}

	for p := range primaryVarGapLB {
		for s := range secondaryVarGapLB {
			g := p + s
			withBase := primaryVarGapLB[p].Add(tsBaseCost).Add(secondaryVarGapLB[s])
			withoutBase := primaryVarGapLB[p].Add(secondaryVarGapLB[s])

			if withBase.Less(lb12[g]) {
				lb12[g] = withBase
			}
			if withoutBase.Less(lb34[g]) {
				lb34[g] = withoutBase
			}
		}
	}

	return &TsJumpLowerBounds[T]{lb12: lb12, lb34: lb34}
}

// Lb12 returns lb_12[descendantGap], or Max if out of the precomputed range.
func (t *TsJumpLowerBounds[T]) Lb12(descendantGap int) cost.Value[T] {
	if descendantGap < 0 || descendantGap >= len(t.lb12) {
		return cost.Max[T]()
	}

	return t.lb12[descendantGap]
}

// Lb34 returns lb_34[descendantGap], or Max if out of the precomputed range.
func (t *TsJumpLowerBounds[T]) Lb34(descendantGap int) cost.Value[T] {
	if descendantGap < 0 || descendantGap >= len(t.lb34) {
		return cost.Max[T]()
	}

	return t.lb34[descendantGap]
}
