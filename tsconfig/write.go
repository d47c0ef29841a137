package tsconfig

import (
	"fmt"
	"io"
	"strings"

	"github.com/sebschmi/tsalign-go/cost"
	"github.com/sebschmi/tsalign-go/costmodel"
)

// Write serializes cfg back into the section-delimited text format Parse
// reads, per spec §8's round-trip property.
func Write[T cost.Integer](w io.Writer, cfg *Config[T], alphabet costmodel.Alphabet) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n", sectionLimits)
	fmt.Fprintf(&b, "left_flank_length=%d\n", cfg.Limits.LeftFlankLength)
	fmt.Fprintf(&b, "right_flank_length=%d\n", cfg.Limits.RightFlankLength)
	fmt.Fprintf(&b, "min_length=%d\n", cfg.Limits.MinLength)

	fmt.Fprintf(&b, "# %s\n", sectionBaseCost)
	fmt.Fprintf(&b, "rr=%s\n", formatCost(cfg.BaseCost.RR))
	fmt.Fprintf(&b, "rq=%s\n", formatCost(cfg.BaseCost.RQ))
	fmt.Fprintf(&b, "qr=%s\n", formatCost(cfg.BaseCost.QR))
	fmt.Fprintf(&b, "qq=%s\n", formatCost(cfg.BaseCost.QQ))

	writeStepFunction(&b, sectionOffset, cfg.Offset)
	writeStepFunction(&b, sectionLength, cfg.Length)
	writeStepFunction(&b, sectionLengthDifference, cfg.LengthDifference)
	writeStepFunction(&b, sectionAntiPrimaryGap, cfg.AntiPrimaryGap)

	writeEditCosts(&b, sectionPrimaryEdit, cfg.Primary, alphabet)
	writeEditCosts(&b, sectionSecondaryEdit, cfg.Secondary, alphabet)
	writeEditCosts(&b, sectionLeftFlankEdit, cfg.LeftFlank, alphabet)
	writeEditCosts(&b, sectionRightFlankEdit, cfg.RightFlank, alphabet)

	_, err := io.WriteString(w, b.String())

	return err
}

func writeStepFunction[T cost.Integer](b *strings.Builder, name string, f costmodel.StepFunction[int32, T]) {
	fmt.Fprintf(b, "# %s\n", name)

	breakpoints := f.Breakpoints()
	tokens := make([]string, len(breakpoints))
	for i, x := range breakpoints {
		switch {
		case x == -1<<31:
			tokens[i] = "-inf"
		case x == 1<<31-1:
			tokens[i] = "inf"
		default:
			tokens[i] = fmt.Sprintf("%d", x)
		}
	}
	fmt.Fprintln(b, strings.Join(tokens, " "))

	costs := f.Costs()
	costTokens := make([]string, len(costs))
	for i, c := range costs {
		costTokens[i] = formatCost(c)
	}
	fmt.Fprintln(b, strings.Join(costTokens, " "))
}

func writeEditCosts[T cost.Integer](b *strings.Builder, name string, costs *costmodel.AffineGapCosts[T], alphabet costmodel.Alphabet) {
	fmt.Fprintf(b, "# %s\n", name)

	symbols := alphabet.Symbols()
	header := make([]string, len(symbols))
	for i, s := range symbols {
		header[i] = string(s)
	}
	fmt.Fprintln(b, strings.Join(header, " "))
	fmt.Fprintln(b, strings.Repeat("---+", len(symbols)-1)+"---")

	for _, row := range costs.SubstitutionTable() {
		fmt.Fprintln(b, formatCostRow(row))
	}
	fmt.Fprintln(b, formatCostRow(costs.GapOpenVector()))
	fmt.Fprintln(b, formatCostRow(costs.GapExtendVector()))
}

func formatCostRow[T cost.Integer](row []cost.Value[T]) string {
	tokens := make([]string, len(row))
	for i, v := range row {
		tokens[i] = formatCost(v)
	}

	return strings.Join(tokens, " ")
}

func formatCost[T cost.Integer](v cost.Value[T]) string {
	if v.IsMax() {
		return "inf"
	}

	return fmt.Sprintf("%d", v.ToUint())
}
