// Package tsconfig parses and serializes the section-delimited cost
// configuration file format from spec §6: titled sections introduced by
// "# <Title>" lines, each parsed directly into the matching fields of the
// resulting Config.
package tsconfig

import (
	"github.com/sebschmi/tsalign-go/cost"
	"github.com/sebschmi/tsalign-go/costmodel"
)

// Limits holds the three flank/length knobs from the "Limits" section.
type Limits struct {
	LeftFlankLength  int
	RightFlankLength int
	MinLength        int
}

// BaseCost holds the four fixed template-switch entry costs from the
// "Base Cost" section, one per (source, destination) strand pairing: rr
// (reference-to-reference), rq (reference-to-query), qr, qq.
type BaseCost[T cost.Integer] struct {
	RR, RQ, QR, QQ cost.Value[T]
}

// Config is the fully parsed cost configuration, per spec §6.
type Config[T cost.Integer] struct {
	Limits   Limits
	BaseCost BaseCost[T]

	Offset           costmodel.StepFunction[int32, T]
	Length           costmodel.StepFunction[int32, T]
	LengthDifference costmodel.StepFunction[int32, T]
	AntiPrimaryGap   costmodel.StepFunction[int32, T]

	Primary    *costmodel.AffineGapCosts[T]
	Secondary  *costmodel.AffineGapCosts[T]
	LeftFlank  *costmodel.AffineGapCosts[T]
	RightFlank *costmodel.AffineGapCosts[T]
}
