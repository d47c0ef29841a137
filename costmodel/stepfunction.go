package costmodel

import (
	"errors"
	"fmt"
	"sort"

	"github.com/sebschmi/tsalign-go/cost"
)

// Sentinel errors for StepFunction construction, per spec §4.2 and §7.
var (
	// ErrNotStrictlyIncreasing indicates the breakpoints of a step function
	// are not given in strictly increasing order.
	ErrNotStrictlyIncreasing = errors.New("costmodel: step function breakpoints must be strictly increasing")

	// ErrMissingMinBreakpoint indicates the first breakpoint is not the
	// minimum representable value of the source domain.
	ErrMissingMinBreakpoint = errors.New("costmodel: step function must define a breakpoint at the domain minimum")

	// ErrNotVShaped indicates a function that is supposed to be V-shaped
	// (non-decreasing away from zero in both directions) is not.
	ErrNotVShaped = errors.New("costmodel: step function must be V-shaped")

	// ErrEmptyBreakpoints indicates a step function was constructed with no
	// breakpoints at all.
	ErrEmptyBreakpoints = errors.New("costmodel: step function needs at least one breakpoint")
)

// step is one (x, cost) breakpoint.
type step[X cost.Integer, C cost.Integer] struct {
	x X
	c cost.Value[C]
}

// StepFunction is a step function over an integer domain, represented as a
// sorted list [(x_i, c_i)]; Evaluate(x) returns c_j for the largest x_j ≤ x.
// Used for the offset/length/length-difference/anti-primary-gap cost
// functions of spec §3.3 and §4.2.
type StepFunction[X cost.Integer, C cost.Integer] struct {
	steps []step[X, C]
}

// NewStepFunction validates and builds a StepFunction from parallel
// breakpoint/cost slices. Breakpoints must be strictly increasing and the
// first breakpoint must equal the minimum representable value of X (so that
// Evaluate is total over X), per spec §4.2's validation rule.
func NewStepFunction[X cost.Integer, C cost.Integer](breakpoints []X, costs []cost.Value[C]) (StepFunction[X, C], error) {
	if len(breakpoints) == 0 || len(costs) == 0 {
		return StepFunction[X, C]{}, ErrEmptyBreakpoints
	}
	if len(breakpoints) != len(costs) {
		return StepFunction[X, C]{}, fmt.Errorf("%w: %d breakpoints, %d costs", ErrTableShape, len(breakpoints), len(costs))
	}
	for i := 1; i < len(breakpoints); i++ {
		if breakpoints[i] <= breakpoints[i-1] {
			return StepFunction[X, C]{}, fmt.Errorf("%w: breakpoint %d (%v) <= breakpoint %d (%v)", ErrNotStrictlyIncreasing, i, breakpoints[i], i-1, breakpoints[i-1])
		}
	}
	if breakpoints[0] != domainMin[X]() {
		return StepFunction[X, C]{}, fmt.Errorf("%w: first breakpoint is %v", ErrMissingMinBreakpoint, breakpoints[0])
	}

	f := StepFunction[X, C]{steps: make([]step[X, C], len(breakpoints))}
	for i := range breakpoints {
		f.steps[i] = step[X, C]{x: breakpoints[i], c: costs[i]}
	}

	return f, nil
}

// domainMin returns the minimum representable value of X. Signed domains
// (used for offset and length-difference functions, which range over
// negative values) report their true minimum; unsigned domains (length,
// anti-primary-gap) report zero.
func domainMin[X cost.Integer]() X {
	var z X
	switch any(z).(type) {
	case int16:
		return any(int16(-1 << 15)).(X)
	case int32:
		return any(int32(-1 << 31)).(X)
	case int64:
		return any(int64(-1 << 63)).(X)
	default:
		return 0
	}
}

// Breakpoints returns the function's breakpoints in increasing order, for
// serialization (spec §6's config file format round-trips this list).
func (f StepFunction[X, C]) Breakpoints() []X {
	xs := make([]X, len(f.steps))
	for i, s := range f.steps {
		xs[i] = s.x
	}

	return xs
}

// Costs returns the cost at each breakpoint, parallel to Breakpoints.
func (f StepFunction[X, C]) Costs() []cost.Value[C] {
	cs := make([]cost.Value[C], len(f.steps))
	for i, s := range f.steps {
		cs[i] = s.c
	}

	return cs
}

// Evaluate returns c_j for the largest x_j <= x. Because the first
// breakpoint is always the domain minimum, this is always defined.
func (f StepFunction[X, C]) Evaluate(x X) cost.Value[C] {
	// Binary search for the largest index with steps[i].x <= x.
	i := sort.Search(len(f.steps), func(i int) bool { return f.steps[i].x > x }) - 1

	return f.steps[i].c
}

// Min returns the minimum cost over the half-open interval [lo, hi) of the
// domain. Used to compute admissible bounds over a range of possible offsets
// or lengths, per spec §4.2's `min(range)`.
func (f StepFunction[X, C]) Min(lo, hi X) cost.Value[C] {
	min := cost.Max[C]()
	for i, s := range f.steps {
		if s.x >= hi {
			break
		}
		if i+1 < len(f.steps) && f.steps[i+1].x <= lo {
			continue
		}
		// This step's cost applies to [s.x, next breakpoint) intersected with [lo, hi).
		min = cost.Min(min, s.c)
	}
	if lo > domainMin[X]() {
		// Breakpoints below lo might still dominate if no later breakpoint
		// exists within [lo, hi); re-evaluate the floor explicitly.
		min = cost.Min(min, f.Evaluate(lo))
	}

	return min
}

// FiniteDomain enumerates every x at which the step function's cost is not
// MaxValue, bounded to [lo, hi). Used by successor generation to enumerate
// first_offset / anti_primary_gap choices (spec §4.5), which must range only
// over feasible values.
func (f StepFunction[X, C]) FiniteDomain(lo, hi X) []X {
	var xs []X
	for i, s := range f.steps {
		if s.x >= hi {
			break
		}
		if s.c.IsMax() {
			continue
		}
		start := s.x
		if start < lo {
			start = lo
		}
		end := hi
		if i+1 < len(f.steps) && f.steps[i+1].x < end {
			end = f.steps[i+1].x
		}
		for x := start; x < end; x++ {
			xs = append(xs, x)
		}
	}

	return xs
}

// IsVShaped reports whether the function is non-decreasing as |x| grows away
// from the zero-cost region: for x <= 0 costs must be non-increasing as x
// grows towards 0, and for x >= 0 costs must be non-decreasing as x grows
// away from 0. This is the invariant spec §3.3 requires of the offset and
// length-difference cost functions.
func (f StepFunction[X, C]) IsVShaped() bool {
	var prevNonNeg *cost.Value[C]
	for _, s := range f.steps {
		if s.x < 0 {
			continue
		}
		if prevNonNeg != nil && s.c.Less(*prevNonNeg) {
			return false
		}
		c := s.c
		prevNonNeg = &c
	}

	var prevNeg *cost.Value[C]
	for i := len(f.steps) - 1; i >= 0; i-- {
		s := f.steps[i]
		if s.x > 0 {
			continue
		}
		if prevNeg != nil && s.c.Less(*prevNeg) {
			return false
		}
		c := s.c
		prevNeg = &c
	}

	return true
}
