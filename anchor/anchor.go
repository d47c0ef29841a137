// Package anchor implements chain-align mode (spec §4.6, C6): k-mer seed
// matching between reference and query, and an A*-driven chaining search
// over the resulting anchors that reuses the astar engine from package
// astar and the gap-affine cost tables from package lowerbound.
package anchor

// Kind identifies which of the five ordered anchor lists spec §4.6
// produces an Anchor belongs to: the forward-forward primary matches, and
// the four reverse-orientation secondary flavours (named by which sequence
// contributes the ancestor and which contributes the descendant half of a
// template switch).
type Kind int

const (
	// KindPrimary is a forward-forward match between reference and query.
	KindPrimary Kind = iota
	// KindRR is a reference-ancestor/reference-descendant reverse match.
	KindRR
	// KindRQ is a reference-ancestor/query-descendant reverse match.
	KindRQ
	// KindQR is a query-ancestor/reference-descendant reverse match.
	KindQR
	// KindQQ is a query-ancestor/query-descendant reverse match.
	KindQQ
)

// String renders the Kind the way spec §4.6 names it.
func (k Kind) String() string {
	switch k {
	case KindPrimary:
		return "primary"
	case KindRR:
		return "RR"
	case KindRQ:
		return "RQ"
	case KindQR:
		return "QR"
	case KindQQ:
		return "QQ"
	default:
		return "unknown"
	}
}

// Anchor is a pair of equal-length blocks (a reference range, a query
// range): an exact k-mer match used as a chain vertex, per spec §3.8.
type Anchor struct {
	Kind   Kind
	R0, R1 int
	Q0, Q1 int
}

// Len returns the anchor's shared block length (R1-R0, equal to Q1-Q0).
func (a Anchor) Len() int { return a.R1 - a.R0 }

// AnchorLists holds the five ordered anchor lists spec §4.6 describes.
type AnchorLists struct {
	Primary []Anchor
	RR      []Anchor
	RQ      []Anchor
	QR      []Anchor
	QQ      []Anchor
}
