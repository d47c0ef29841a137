package tsalign

import "errors"

// Validation / input-shape errors, per tsp's convention of not wrapping with
// fmt.Errorf where a sentinel already says enough.
var (
	ErrEmptyRange         = errors.New("tsalign: empty alignment range")
	ErrRangeOutOfBounds   = errors.New("tsalign: range exceeds sequence bounds")
	ErrNilCosts           = errors.New("tsalign: nil cost model")
	ErrNilLowerBound      = errors.New("tsalign: nil lower-bound table")
	ErrUnknownIdentifierKind = errors.New("tsalign: unknown identifier kind")
)
