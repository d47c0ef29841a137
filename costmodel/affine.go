package costmodel

import (
	"errors"
	"fmt"

	"github.com/sebschmi/tsalign-go/cost"
)

// Sentinel errors for AffineGapCosts construction, per spec §7.
var (
	// ErrNegativeCost indicates a table entry was negative.
	ErrNegativeCost = errors.New("costmodel: cost table entries must be non-negative")

	// ErrTableShape indicates a substitution table is not square, or its size
	// does not match the alphabet.
	ErrTableShape = errors.New("costmodel: substitution table shape mismatch")

	// ErrGapVectorShape indicates a gap-open/gap-extend vector length mismatch.
	ErrGapVectorShape = errors.New("costmodel: gap cost vector shape mismatch")
)

// AffineGapCosts is a per-alphabet cost table: a symmetric |Σ|×|Σ|
// substitution matrix (diagonal = match cost), a length-|Σ| gap-open vector,
// and a length-|Σ| gap-extend vector, per spec §3.2. It is immutable after
// construction.
type AffineGapCosts[T cost.Integer] struct {
	alphabet Alphabet

	substitution [][]cost.Value[T] // substitution[i][j], i==j is match cost
	gapOpen      []cost.Value[T]
	gapExtend    []cost.Value[T]

	minMatch        cost.Value[T]
	minSubstitution cost.Value[T]
	minGapOpen      cost.Value[T]
	minGapExtend    cost.Value[T]
	minNonMatch     cost.Value[T]
}

// NewAffineGapCosts validates and constructs an AffineGapCosts table.
//
// substitution must be alphabet.Len() x alphabet.Len(), symmetric, and every
// entry non-negative. gapOpen and gapExtend must each have alphabet.Len()
// entries. Minima are precomputed once here, per spec §4.2.
func NewAffineGapCosts[T cost.Integer](alphabet Alphabet, substitution [][]cost.Value[T], gapOpen, gapExtend []cost.Value[T]) (*AffineGapCosts[T], error) {
	n := alphabet.Len()
	if len(substitution) != n {
		return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrTableShape, n, len(substitution))
	}
	for i, row := range substitution {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, expected %d", ErrTableShape, i, len(row), n)
		}
	}
	if len(gapOpen) != n || len(gapExtend) != n {
		return nil, fmt.Errorf("%w: expected length %d", ErrGapVectorShape, n)
	}

	c := &AffineGapCosts[T]{
		alphabet:     alphabet,
		substitution: make([][]cost.Value[T], n),
		gapOpen:      append([]cost.Value[T](nil), gapOpen...),
		gapExtend:    append([]cost.Value[T](nil), gapExtend...),
	}
	for i := range substitution {
		c.substitution[i] = append([]cost.Value[T](nil), substitution[i]...)
	}

	if err := c.validateAndPrecomputeMinima(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *AffineGapCosts[T]) validateAndPrecomputeMinima() error {
	n := c.alphabet.Len()

	minMatch := cost.Max[T]()
	minSubstitution := cost.Max[T]()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := c.substitution[i][j]
			if v.Less(cost.Zero[T]()) {
				return fmt.Errorf("%w: substitution[%d][%d]", ErrNegativeCost, i, j)
			}
			if v != c.substitution[j][i] {
				return fmt.Errorf("%w: substitution[%d][%d] != substitution[%d][%d]", ErrTableShape, i, j, j, i)
			}
			if i == j {
				minMatch = cost.Min(minMatch, v)
			} else {
				minSubstitution = cost.Min(minSubstitution, v)
			}
		}
	}

	minGapOpen := cost.Max[T]()
	minGapExtend := cost.Max[T]()
	for i := 0; i < n; i++ {
		if c.gapOpen[i].Less(cost.Zero[T]()) || c.gapExtend[i].Less(cost.Zero[T]()) {
			return fmt.Errorf("%w: gap costs of symbol %d", ErrNegativeCost, i)
		}
		minGapOpen = cost.Min(minGapOpen, c.gapOpen[i])
		minGapExtend = cost.Min(minGapExtend, c.gapExtend[i])
	}

	c.minMatch = minMatch
	c.minSubstitution = minSubstitution
	c.minGapOpen = minGapOpen
	c.minGapExtend = minGapExtend
	c.minNonMatch = cost.Min(minGapOpen, minSubstitution)

	return nil
}

// NewZero returns a cost table over alphabet where every operation is free.
// Used as the base for lower-bound "allow all matches" simplified contexts
// per spec §4.4.
func NewZero[T cost.Integer](alphabet Alphabet) *AffineGapCosts[T] {
	n := alphabet.Len()
	sub := make([][]cost.Value[T], n)
	for i := range sub {
		sub[i] = make([]cost.Value[T], n)
	}
	gapOpen := make([]cost.Value[T], n)
	gapExtend := make([]cost.Value[T], n)
	c, err := NewAffineGapCosts(alphabet, sub, gapOpen, gapExtend)
	if err != nil {
		panic(err) // zero table is always valid
	}

	return c
}

// NewMax returns a cost table over alphabet where every operation is
// impassable (MaxValue). Used to make primary/flank substitutions impassable
// while a template-switch shortcut is explored, per spec §4.4.
func NewMax[T cost.Integer](alphabet Alphabet) *AffineGapCosts[T] {
	n := alphabet.Len()
	max := cost.Max[T]()
	sub := make([][]cost.Value[T], n)
	gapOpen := make([]cost.Value[T], n)
	gapExtend := make([]cost.Value[T], n)
	for i := range sub {
		sub[i] = make([]cost.Value[T], n)
		for j := range sub[i] {
			sub[i][j] = max
		}
		gapOpen[i] = max
		gapExtend[i] = max
	}
	c, err := NewAffineGapCosts(alphabet, sub, gapOpen, gapExtend)
	if err != nil {
		panic(err)
	}

	return c
}

// NewBaseAgnostic builds a cost table where match, substitution, gap-open,
// and gap-extend costs do not depend on the base, per spec §4.2's
// `new_base_agnostic` constructor.
func NewBaseAgnostic[T cost.Integer](alphabet Alphabet, match, substitution, gapOpen, gapExtend cost.Value[T]) (*AffineGapCosts[T], error) {
	n := alphabet.Len()
	sub := make([][]cost.Value[T], n)
	for i := range sub {
		sub[i] = make([]cost.Value[T], n)
		for j := range sub[i] {
			if i == j {
				sub[i][j] = match
			} else {
				sub[i][j] = substitution
			}
		}
	}
	open := make([]cost.Value[T], n)
	extend := make([]cost.Value[T], n)
	for i := range open {
		open[i] = gapOpen
		extend[i] = gapExtend
	}

	return NewAffineGapCosts(alphabet, sub, open, extend)
}

// Alphabet returns the alphabet this table was built over.
func (c *AffineGapCosts[T]) Alphabet() Alphabet { return c.alphabet }

// SubstitutionTable returns a copy of the |Σ|x|Σ| substitution matrix, for
// serialization.
func (c *AffineGapCosts[T]) SubstitutionTable() [][]cost.Value[T] {
	out := make([][]cost.Value[T], len(c.substitution))
	for i, row := range c.substitution {
		out[i] = append([]cost.Value[T](nil), row...)
	}

	return out
}

// GapOpenVector returns a copy of the gap-open cost vector.
func (c *AffineGapCosts[T]) GapOpenVector() []cost.Value[T] {
	return append([]cost.Value[T](nil), c.gapOpen...)
}

// GapExtendVector returns a copy of the gap-extend cost vector.
func (c *AffineGapCosts[T]) GapExtendVector() []cost.Value[T] {
	return append([]cost.Value[T](nil), c.gapExtend...)
}

// MatchOrSubstitutionCost returns the cost of aligning symbol a against b:
// match_cost if equal, substitution_cost otherwise.
func (c *AffineGapCosts[T]) MatchOrSubstitutionCost(a, b byte) (cost.Value[T], error) {
	i, err := c.alphabet.IndexOf(a)
	if err != nil {
		return cost.Value[T]{}, err
	}
	j, err := c.alphabet.IndexOf(b)
	if err != nil {
		return cost.Value[T]{}, err
	}

	return c.substitution[i][j], nil
}

// GapCosts returns the cost to extend a gap opposite symbol c: gap_open if
// isFirst (the previous step was not the same kind of gap), gap_extend
// otherwise. Mirrors spec §4.2's `gap_costs(c, is_first)`.
func (c *AffineGapCosts[T]) GapCosts(cSym byte, isFirst bool) (cost.Value[T], error) {
	i, err := c.alphabet.IndexOf(cSym)
	if err != nil {
		return cost.Value[T]{}, err
	}
	if isFirst {
		return c.gapOpen[i], nil
	}

	return c.gapExtend[i], nil
}

// MinMatch returns the precomputed minimum match cost across the alphabet.
func (c *AffineGapCosts[T]) MinMatch() cost.Value[T] { return c.minMatch }

// MinSubstitution returns the precomputed minimum off-diagonal substitution cost.
func (c *AffineGapCosts[T]) MinSubstitution() cost.Value[T] { return c.minSubstitution }

// MinGapOpen returns the precomputed minimum gap-open cost.
func (c *AffineGapCosts[T]) MinGapOpen() cost.Value[T] { return c.minGapOpen }

// MinGapExtend returns the precomputed minimum gap-extend cost.
func (c *AffineGapCosts[T]) MinGapExtend() cost.Value[T] { return c.minGapExtend }

// MinNonMatch returns min(MinGapOpen, MinSubstitution), per spec §3.2's invariant.
func (c *AffineGapCosts[T]) MinNonMatch() cost.Value[T] { return c.minNonMatch }

// IntoLowerBound collapses every table entry to its respective minimum,
// producing the "lower-bound variant" described in spec §3.2: every match
// costs MinMatch, every substitution costs MinSubstitution, every gap-open
// costs MinGapOpen, every gap-extend costs MinGapExtend.
func (c *AffineGapCosts[T]) IntoLowerBound() *AffineGapCosts[T] {
	n := c.alphabet.Len()
	sub := make([][]cost.Value[T], n)
	for i := range sub {
		sub[i] = make([]cost.Value[T], n)
		for j := range sub[i] {
			if i == j {
				sub[i][j] = c.minMatch
			} else {
				sub[i][j] = c.minSubstitution
			}
		}
	}
	open := make([]cost.Value[T], n)
	extend := make([]cost.Value[T], n)
	for i := range open {
		open[i] = c.minGapOpen
		extend[i] = c.minGapExtend
	}
	lb, err := NewAffineGapCosts(c.alphabet, sub, open, extend)
	if err != nil {
		panic(err) // collapsed table is always internally consistent
	}

	return lb
}

// IntoMatchAgnosticLowerBound is like IntoLowerBound, but additionally
// collapses the match cost into MinNonMatch, so that even a diagonal move is
// priced as at least as expensive as the cheapest non-match. Used by the
// TS-jump lower bound, which must remain admissible even when the real model
// forbids too many consecutive matches (max_match_run).
func (c *AffineGapCosts[T]) IntoMatchAgnosticLowerBound() *AffineGapCosts[T] {
	lb := c.IntoLowerBound()
	for i := 0; i < c.alphabet.Len(); i++ {
		lb.substitution[i][i] = c.minNonMatch
	}
	lb.minMatch = c.minNonMatch

	return lb
}
